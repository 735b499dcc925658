package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

func (h *Handler) ListPods(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ListPods")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	filter, err := podFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.podService.ListByLeague(ctx, leagueID, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list pods failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podsToDTO(ctx, items))
}

func (h *Handler) GetPod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.GetPod")
	defer span.End()

	podID := r.PathValue("podID")
	item, err := h.podService.Get(ctx, podID)
	if err != nil {
		h.logger.WarnContext(ctx, "get pod failed", "pod_id", podID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}

func (h *Handler) CreatePod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.CreatePod")
	defer span.End()

	callerID, err := requireCaller(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createPodRequest
	if err := h.decodeRequest(ctx, r, &req, true); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	item, err := h.podService.Create(ctx, usecase.CreatePodInput{
		LeagueID:       leagueID,
		CreatorID:      callerID,
		SessionID:      req.SessionID,
		ParticipantIDs: req.ParticipantIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create pod failed", "league_id", leagueID, "creator_id", callerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, podToDTO(ctx, item))
}

func (h *Handler) JoinPod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.JoinPod")
	defer span.End()

	callerID, err := requireCaller(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	podID := r.PathValue("podID")
	item, err := h.podService.Join(ctx, podID, callerID)
	if err != nil {
		h.logger.WarnContext(ctx, "join pod failed", "pod_id", podID, "player_id", callerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}

func (h *Handler) DeclareResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeclareResult")
	defer span.End()

	callerID, err := requireCaller(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req declareResultRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}
	result, err := pod.ParseResult(req.Result)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	podID := r.PathValue("podID")
	item, err := h.podService.DeclareResult(ctx, usecase.DeclareResultInput{
		PodID:    podID,
		PlayerID: callerID,
		Result:   result,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "declare result failed", "pod_id", podID, "player_id", callerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}

func (h *Handler) DeletePod(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.DeletePod")
	defer span.End()

	podID := r.PathValue("podID")
	if err := h.podService.DeletePod(ctx, podID); err != nil {
		h.logger.WarnContext(ctx, "delete pod failed", "pod_id", podID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"id": podID})
}

func podFilterFromQuery(query url.Values) (pod.Filter, error) {
	var filter pod.Filter

	if raw := strings.TrimSpace(query.Get("status")); raw != "" {
		status, err := pod.ParseStatus(raw)
		if err != nil {
			return pod.Filter{}, err
		}
		filter.Status = &status
	}

	boolParams := []struct {
		key string
		dst **bool
	}{
		{key: "tournament", dst: &filter.Tournament},
		{key: "championship", dst: &filter.Championship},
		{key: "published", dst: &filter.Published},
	}
	for _, param := range boolParams {
		raw := strings.TrimSpace(query.Get(param.key))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return pod.Filter{}, fmt.Errorf("%w: %s must be a boolean", usecase.ErrInvalidInput, param.key)
		}
		*param.dst = &v
	}

	if raw := strings.TrimSpace(query.Get("round")); raw != "" {
		round, err := strconv.Atoi(raw)
		if err != nil || round <= 0 {
			return pod.Filter{}, fmt.Errorf("%w: round must be a positive integer", usecase.ErrInvalidInput)
		}
		filter.TournamentRound = &round
	}

	if raw := strings.TrimSpace(query.Get("include_deleted")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return pod.Filter{}, fmt.Errorf("%w: include_deleted must be a boolean", usecase.ErrInvalidInput)
		}
		filter.IncludeDeleted = v
	}

	return filter, nil
}
