package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"

	analysis "github.com/zhouzirui/mood-mirror/backend/internal/analysis/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/config"
	"github.com/zhouzirui/mood-mirror/backend/internal/handler"
	"github.com/zhouzirui/mood-mirror/backend/internal/model/catalog"
	journalmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/journal"
	moodmodel "github.com/zhouzirui/mood-mirror/backend/internal/model/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/observability"
	"github.com/zhouzirui/mood-mirror/backend/internal/random"
	"github.com/zhouzirui/mood-mirror/backend/internal/service/classifier"
	journalservice "github.com/zhouzirui/mood-mirror/backend/internal/service/journal"
	moodservice "github.com/zhouzirui/mood-mirror/backend/internal/service/mood"
	"github.com/zhouzirui/mood-mirror/backend/internal/store/memory"
	"github.com/zhouzirui/mood-mirror/backend/internal/store/sqlite"
)

// store is what both services need from persistence.
type store interface {
	moodmodel.LogStore
	journalmodel.Store
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Log)
	if envErr != nil {
		logger.Warn("failed to load .env file, continuing with system environment variables only", "error", envErr)
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	st, health, closeStore, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	var rnd random.Source = random.NewFromTime()
	if cfg.RandomSeed != nil {
		rnd = random.New(*cfg.RandomSeed)
		logger.Info("using fixed random seed", "seed", *cfg.RandomSeed)
	}

	// 未配置凭证时降级为本地规则与离线回复
	var chatModel model.BaseChatModel
	if cfg.AI.Enabled() {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			logger.Warn("failed to initialize chat model, continuing without AI functionality", "provider", cfg.AI.Provider, "error", err)
			chatModel = nil
		} else {
			logger.Info("chat model initialized", "provider", cfg.AI.Provider)
		}
	} else {
		logger.Info("AI credentials not configured, using heuristic classifier and offline journal", "provider", cfg.AI.Provider)
	}

	classifierSvc, err := classifier.NewService(ctx, chatModel, classifier.Config{Timeout: cfg.AI.Timeout}, logger)
	if err != nil {
		return err
	}

	journalSvc, err := journalservice.NewService(ctx, chatModel, st, journalservice.Config{
		HistoryLimit: cfg.Journal.HistoryLimit,
		Timeout:      cfg.AI.Timeout,
	}, logger)
	if err != nil {
		return err
	}

	recommender := catalog.NewSeededRecommender(rnd)
	moodSvc := moodservice.NewService(classifierSvc, analysis.NewClassifier(rnd), recommender, st, logger)

	router := handler.NewRouter(handler.Dependencies{
		Mood:           moodSvc,
		Journal:        journalSvc,
		Catalog:        recommender,
		Health:         health,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("mood mirror backend listening", "addr", cfg.Server.Addr, "storage", cfg.Database.Backend)
	return runServer(ctx, srv)
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store, func(context.Context) error, func(), error) {
	if cfg.Backend == config.StorageMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.New(), nil, func() {}, nil
	}

	db, err := sqlite.Open(ctx, cfg.Path, logger)
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn := func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}
	return db, db.Ping, closeFn, nil
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
