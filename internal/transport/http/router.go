package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nhicheck/internal/platform/metrics"
	"nhicheck/internal/platform/middleware"
)

// RouterOptions carries the cross-cutting dependencies the router wires
// around every validation route.
type RouterOptions struct {
	Logger         *slog.Logger
	Metrics        *metrics.Metrics
	RequestTimeout time.Duration

	// JWTValidator guards the validation routes when non-nil; health
	// and metrics endpoints stay open either way.
	JWTValidator middleware.JWTValidator
}

// NewRouter wires all public endpoints with the standard middleware
// chain.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	timeout := opts.RequestTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.Recovery(opts.Logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Latency(opts.Metrics))

	r.Get("/healthz", handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(api chi.Router) {
		api.Use(middleware.ContentTypeJSON)
		if opts.JWTValidator != nil {
			api.Use(middleware.RequireAuth(opts.JWTValidator, opts.Logger))
		}
		api.Post("/nhi/validate", h.handleValidate)
		api.Post("/nhi/validate/batch", h.handleValidateBatch)
		api.Get("/nhi/{nhi}", h.handleGet)
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
