package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	catalogHandler "github.com/zhouzirui/mood-mirror/backend/internal/handler/catalog"
	journalHandler "github.com/zhouzirui/mood-mirror/backend/internal/handler/journal"
	moodHandler "github.com/zhouzirui/mood-mirror/backend/internal/handler/mood"
	middlewarePkg "github.com/zhouzirui/mood-mirror/backend/internal/middleware"
	"github.com/zhouzirui/mood-mirror/backend/internal/model/catalog"
	"github.com/zhouzirui/mood-mirror/backend/pkg/utils"
)

// Dependencies are the services the router exposes.
type Dependencies struct {
	Mood    moodHandler.Service
	Journal journalHandler.Service
	Catalog *catalog.Recommender
	// Health reports storage readiness; nil means always healthy.
	Health         func(ctx context.Context) error
	AllowedOrigins string
	Logger         *slog.Logger
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	origins := deps.AllowedOrigins
	if origins == "" {
		origins = "*"
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(origins))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondError(w, http.StatusNotFound, "Not found")
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if deps.Health != nil {
			if err := deps.Health(r.Context()); err != nil {
				logger.Error("health check failed", "error", err)
				utils.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
				return
			}
		}
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		moodHandler.New(deps.Mood, logger).RegisterRoutes(api)
		journalHandler.New(deps.Journal, logger).RegisterRoutes(api)
		catalogHandler.New(deps.Catalog).RegisterRoutes(api)
	})

	return r
}
