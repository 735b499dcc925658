package httpapi

import (
	"net/http"

	"github.com/garretthaima/escalation-league/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	Observer           HTTPObserver
	MetricsHandler     http.Handler
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if len(opts.CORSAllowedOrigins) == 0 {
		opts.CORSAllowedOrigins = []string{"*"}
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.MetricsHandler)
	registerPodRoutes(mux, handler)
	registerAdminPodRoutes(mux, handler)
	registerLeagueRoutes(mux, handler)
	registerTournamentRoutes(mux, handler)

	observed := ObserveRequests(opts.Observer, mux)
	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, observed))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
