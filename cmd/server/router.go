package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/config"
	"github.com/benvon/youthwell/internal/handlers"
	"github.com/benvon/youthwell/internal/metrics"
	"github.com/benvon/youthwell/internal/middleware"
	"github.com/benvon/youthwell/internal/services/ai"
	"github.com/benvon/youthwell/internal/telemetry"
)

type routerDeps struct {
	cfg         *config.Config
	logger      *zap.Logger
	service     *ai.WellnessService
	mailer      handlers.Mailer
	limiter     *middleware.RateLimiter
	tracing     bool
	mailReady   bool
	openAPIPath string
}

func newRouter(d routerDeps) *mux.Router {
	r := mux.NewRouter()

	// Middleware registered first runs outermost
	if d.tracing {
		r.Use(otelmux.Middleware(telemetry.ServiceName))
	}
	r.Use(middleware.RequestID)
	r.Use(metrics.Middleware)
	r.Use(middleware.SecurityHeaders(d.cfg.EnableHSTS))
	r.Use(middleware.CORSFromEnv(d.cfg.FrontendURL))
	r.Use(middleware.MaxRequestSize(middleware.DefaultMaxRequestSize))
	r.Use(middleware.ContentType)
	r.Use(middleware.Timeout(d.cfg.AITimeout + 10*time.Second))
	r.Use(middleware.ErrorHandler(d.logger))
	r.Use(middleware.Audit(d.logger))
	r.Use(middleware.Logging(d.logger))

	providerName := ""
	if p := d.service.Provider(); p != nil {
		providerName = p.Name()
	}
	var store handlers.Pinger
	if d.limiter != nil {
		store = d.limiter
	}
	healthChecker := handlers.NewHealthChecker(store, providerName, d.mailReady)

	// Public routes, not rate limited
	r.HandleFunc("/healthz", healthChecker.HealthCheck).Methods("GET")
	r.HandleFunc("/health", handlers.LegacyHealth).Methods("GET")
	r.HandleFunc("/version", handlers.VersionInfo).Methods("GET")
	r.Handle("/metrics", metrics.Handler()).Methods("GET")

	openAPIPath := d.openAPIPath
	if openAPIPath == "" {
		openAPIPath = handlers.DefaultOpenAPIPath
	}
	// Registered before the /api subrouter so its prefix does not shadow them
	handlers.NewOpenAPIHandler(openAPIPath, d.logger).RegisterRoutes(r)

	apiRouter := r.PathPrefix("/api").Subrouter()
	if d.limiter != nil {
		apiRouter.Use(d.limiter.Handler)
	}
	handlers.NewWellnessHandler(d.service, d.logger).RegisterRoutes(apiRouter)
	handlers.NewContactHandler(d.mailer, d.logger).RegisterRoutes(apiRouter)

	// Preflight requests; the CORS middleware has already answered with headers
	r.Methods("OPTIONS").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	return r
}
