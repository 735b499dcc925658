package httpapi

import "net/http"

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	item, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(item))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListStandings")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	items, err := h.leagueService.ListStandings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankedToDTO(items))
}

func (h *Handler) MatchupMatrix(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.MatchupMatrix")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	pairs, err := h.matchupService.MatchupMatrix(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "matchup matrix failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]pairCountDTO, 0, len(pairs))
	for _, pair := range pairs {
		items = append(items, pairCountDTO{PlayerA: pair.PlayerA, PlayerB: pair.PlayerB, Games: pair.Games})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) OpponentMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.OpponentMatchups")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	playerID := r.PathValue("playerID")
	summary, err := h.matchupService.OpponentMatchups(ctx, leagueID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "opponent matchups failed", "league_id", leagueID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := opponentSummaryDTO{
		PlayerID:  summary.PlayerID,
		Opponents: make([]headToHeadDTO, 0, len(summary.Opponents)),
	}
	for _, item := range summary.Opponents {
		dto.Opponents = append(dto.Opponents, headToHeadToDTO(item))
	}
	if summary.Nemesis != nil {
		v := headToHeadToDTO(*summary.Nemesis)
		dto.Nemesis = &v
	}
	if summary.Victim != nil {
		v := headToHeadToDTO(*summary.Victim)
		dto.Victim = &v
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}

func (h *Handler) SuggestPods(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.SuggestPods")
	defer span.End()

	var req suggestPodsRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	suggestion, err := h.matchupService.SuggestPods(ctx, leagueID, req.AttendeeIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest pods failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	dto := podSuggestionDTO{Pods: suggestion.Pods, Leftover: suggestion.Leftover}
	if dto.Pods == nil {
		dto.Pods = [][]string{}
	}
	if dto.Leftover == nil {
		dto.Leftover = []string{}
	}

	writeSuccess(ctx, w, http.StatusOK, dto)
}
