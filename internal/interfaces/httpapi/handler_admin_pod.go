package httpapi

import (
	"net/http"

	"github.com/garretthaima/escalation-league/internal/domain/pod"
	"github.com/garretthaima/escalation-league/internal/usecase"
)

func (h *Handler) ReplaceRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ReplaceRoster")
	defer span.End()

	var req replaceRosterRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	entries := make([]usecase.RosterEntry, 0, len(req.Participants))
	for _, item := range req.Participants {
		result, err := pod.ParseResult(item.Result)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		entries = append(entries, usecase.RosterEntry{
			PlayerID:  item.PlayerID,
			Result:    result,
			Confirmed: item.Confirmed,
			TurnOrder: item.TurnOrder,
		})
	}

	input := usecase.ReplaceRosterInput{
		PodID:        r.PathValue("podID"),
		Participants: entries,
	}
	if req.Status != "" {
		status, err := pod.ParseStatus(req.Status)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		input.DesiredStatus = &status
	}

	item, err := h.podService.AdminReplaceRoster(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "replace roster failed", "pod_id", input.PodID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}

func (h *Handler) AddParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.AddParticipant")
	defer span.End()

	var req addParticipantRequest
	if err := h.decodeRequest(ctx, r, &req, false); err != nil {
		writeError(ctx, w, err)
		return
	}

	podID := r.PathValue("podID")
	item, err := h.podService.AddParticipant(ctx, podID, req.PlayerID)
	if err != nil {
		h.logger.WarnContext(ctx, "add participant failed", "pod_id", podID, "player_id", req.PlayerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}

func (h *Handler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.RemoveParticipant")
	defer span.End()

	podID := r.PathValue("podID")
	playerID := r.PathValue("playerID")
	item, err := h.podService.RemoveParticipant(ctx, podID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove participant failed", "pod_id", podID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}

func (h *Handler) UpdateParticipantResult(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.UpdateParticipantResult")
	defer span.End()

	var req updateParticipantResultRequest
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
	playerID := r.PathValue("playerID")
	item, err := h.podService.UpdateParticipantResult(ctx, podID, playerID, result)
	if err != nil {
		h.logger.WarnContext(ctx, "update participant result failed", "pod_id", podID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}

func (h *Handler) ToggleDisqualification(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.ToggleDisqualification")
	defer span.End()

	podID := r.PathValue("podID")
	playerID := r.PathValue("playerID")
	item, err := h.podService.ToggleDisqualification(ctx, podID, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "toggle disqualification failed", "pod_id", podID, "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, podToDTO(ctx, item))
}
