package httpapi

import (
	"net/http"

	"github.com/riskibarqy/match-analytics/internal/platform/logging"
)

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	serviceName string,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerMatchRoutes(mux, handler)
	registerStandingsRoutes(mux, handler)
	registerSeasonRoutes(mux, handler)

	return RequestTracing(serviceName, RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
