package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/garretthaima/escalation-league/internal/platform/logging"
	"github.com/garretthaima/escalation-league/internal/usecase"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	podService        *usecase.PodService
	tournamentService *usecase.TournamentService
	matchupService    *usecase.MatchupService
	leagueService     *usecase.LeagueService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	podService *usecase.PodService,
	tournamentService *usecase.TournamentService,
	matchupService *usecase.MatchupService,
	leagueService *usecase.LeagueService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		podService:        podService,
		tournamentService: tournamentService,
		matchupService:    matchupService,
		leagueService:     leagueService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dst and validates it. A bodiless
// request is accepted when allowEmpty is set, leaving dst at its zero value.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dst any, allowEmpty bool) error {
	if allowEmpty && (r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0) {
		return h.validateRequest(ctx, dst)
	}

	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func requireCaller(ctx context.Context) (string, error) {
	userID, ok := callerFromContext(ctx)
	if !ok {
		return "", fmt.Errorf("%w: caller is missing from request context", usecase.ErrUnauthorized)
	}
	return userID, nil
}
