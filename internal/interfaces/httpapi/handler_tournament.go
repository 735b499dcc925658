package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/garretthaima/escalation-league/internal/usecase"
)

func (h *Handler) TournamentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.TournamentStatus")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	status, err := h.tournamentService.Status(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "tournament status failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	qualified := make([]standingDTO, 0, len(status.Qualified))
	for _, item := range status.Qualified {
		dto := standingToDTO(item.Standing)
		dto.TournamentGames = item.TournamentGames
		qualified = append(qualified, dto)
	}

	stats := podStatsDTO{
		Total:      status.Pods.Total,
		Completed:  status.Pods.Completed,
		Pending:    status.Pods.Pending,
		Qualifying: status.Pods.Qualifying,
		Drafts:     status.Pods.Drafts,
	}
	if status.Pods.Championship != nil {
		championship := podToDTO(ctx, *status.Pods.Championship)
		stats.Championship = &championship
	}

	writeSuccess(ctx, w, http.StatusOK, tournamentStatusDTO{
		League:    leagueToDTO(status.League),
		Qualified: qualified,
		Pods:      stats,
	})
}

func (h *Handler) TournamentStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.TournamentStandings")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	items, err := h.tournamentService.Standings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "tournament standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankedToDTO(items))
}

func (h *Handler) ChampionshipQualifiers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ChampionshipQualifiers")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	result, err := h.tournamentService.ChampionshipQualifiers(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "championship qualifiers failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, championshipQualifiersDTO{
		AllQualifyingComplete: result.AllQualifyingComplete,
		IncompleteCount:       result.IncompleteCount,
		Qualifiers:            standingsToDTO(result.Qualifiers),
	})
}

func (h *Handler) EndRegularSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.EndRegularSeason")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	result, err := h.tournamentService.EndRegularSeason(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "end regular season failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, qualificationDTO{
		LeagueID:  result.LeagueID,
		Eligible:  result.Eligible,
		Spots:     result.Spots,
		Qualified: standingsToDTO(result.Qualified),
	})
}

func (h *Handler) GenerateTournamentPods(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GenerateTournamentPods")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	result, err := h.tournamentService.GeneratePods(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate tournament pods failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	if len(result.Mismatched) > 0 {
		h.logger.WarnContext(ctx, "tournament pairing count mismatch", "league_id", leagueID, "players", result.Mismatched)
	}

	writeSuccess(ctx, w, http.StatusCreated, generatePodsDTO{
		Pods:       podsToDTO(ctx, result.Pods),
		TargetPods: result.TargetPods,
		Mismatched: result.Mismatched,
	})
}

func (h *Handler) PublishTournamentPods(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.PublishTournamentPods")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	items, err := h.tournamentService.PublishPods(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "publish tournament pods failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podsToDTO(ctx, items))
}

func (h *Handler) SwapTournamentPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SwapTournamentPlayers")
	defer span.End()

	var req swapPlayersRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	err := h.tournamentService.SwapPlayers(ctx, usecase.SwapPlayersInput{
		LeagueID:  leagueID,
		Pod1ID:    req.Pod1ID,
		Player1ID: req.Player1ID,
		Pod2ID:    req.Pod2ID,
		Player2ID: req.Player2ID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "swap tournament players failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "swapped"})
}

func (h *Handler) StartChampionship(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.StartChampionship")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	item, err := h.tournamentService.StartChampionship(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "start championship failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, podToDTO(ctx, item))
}

func (h *Handler) CompleteTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CompleteTournament")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	champion, err := h.tournamentService.CompleteTournament(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "complete tournament failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingToDTO(champion))
}

func (h *Handler) ResetTournament(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ResetTournament")
	defer span.End()

	var req resetTournamentRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	if err := h.tournamentService.ResetTournament(ctx, leagueID, req.Confirmation); err != nil {
		h.logger.WarnContext(ctx, "reset tournament failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "reset"})
}

func (h *Handler) DeleteTournamentDrafts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeleteTournamentDrafts")
	defer span.End()

	championshipOnly := false
	if raw := strings.TrimSpace(r.URL.Query().Get("championship_only")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: championship_only must be a boolean", usecase.ErrInvalidInput))
			return
		}
		championshipOnly = v
	}

	leagueID := r.PathValue("leagueID")
	deleted, err := h.tournamentService.DeleteDrafts(ctx, leagueID, championshipOnly)
	if err != nil {
		h.logger.WarnContext(ctx, "delete tournament drafts failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]int{"deleted": deleted})
}
