// Package app assembles the service graph behind the assistant.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/config"
	"github.com/kapu/contract-assistant-go/internal/router"
	"github.com/kapu/contract-assistant-go/internal/service/classifier"
	"github.com/kapu/contract-assistant-go/internal/service/engine"
	"github.com/kapu/contract-assistant-go/internal/service/mta"
	"github.com/kapu/contract-assistant-go/internal/service/respond"
	"github.com/kapu/contract-assistant-go/internal/service/session"
	"github.com/kapu/contract-assistant-go/internal/service/store"
)

// Container bundles the assembled services. Close releases backends in
// reverse construction order.
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Router    *router.Router
	Documents store.DocumentStore

	closers []func()
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// Build assembles all services. Optional backends (Redis, Postgres, analysis
// engines) are wired only when configured; everything else falls back to
// in-memory implementations so the assistant always starts.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Session context store: Redis when enabled, memory otherwise
	var sessions session.ContextStore
	if cfg.Redis.Enabled {
		addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
		redisStore, redisErr := session.NewRedisStore(addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Session.Retention, logger)
		if redisErr != nil {
			logger.Warn("Redis unavailable, using in-memory session store", zap.Error(redisErr))
			sessions = session.NewMemoryStore(cfg.Session.Retention, logger)
		} else {
			closers = append(closers, func() { _ = redisStore.Close() })
			sessions = redisStore
		}
	} else {
		sessions = session.NewMemoryStore(cfg.Session.Retention, logger)
	}

	// Document store: Postgres when enabled, memory otherwise
	var documents store.DocumentStore
	if cfg.Postgres.Enabled {
		pgStore, pgErr := store.NewPostgresStore(store.PostgresConfig{
			Host:     cfg.Postgres.Host,
			Port:     cfg.Postgres.Port,
			User:     cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			Database: cfg.Postgres.Database,
			SSLMode:  cfg.Postgres.SSLMode,
		}, logger)
		if pgErr != nil {
			return nil, fmt.Errorf("failed to create postgres document store: %w", pgErr)
		}
		closers = append(closers, func() { _ = pgStore.Close() })
		documents = pgStore
	} else {
		documents = store.NewMemoryStore(logger)
	}

	engines := buildEngines(ctx, cfg, logger)

	rt := router.New(
		classifier.New(logger),
		respond.NewSystem(cfg.Export.Dir, logger),
		session.NewTracker(sessions, logger),
		mta.NewSpecialist(logger),
		engines,
		documents,
		logger,
	)

	return &Container{
		Config:    cfg,
		Logger:    logger,
		Router:    rt,
		Documents: documents,
		closers:   closers,
	}, nil
}

func buildEngines(ctx context.Context, cfg *config.Config, logger *zap.Logger) *engine.Manager {
	var engines []engine.Engine

	if cfg.Gemini.APIKey != "" {
		gemini, err := engine.NewGeminiEngine(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, logger)
		if err != nil {
			logger.Warn("Gemini engine unavailable", zap.Error(err))
		} else {
			engines = append(engines, gemini)
			logger.Info("Gemini engine enabled", zap.String("model", cfg.Gemini.Model))
		}
	}

	if cfg.OpenAI.APIKey != "" && cfg.OpenAI.EnableFallback {
		engines = append(engines, engine.NewOpenAIEngine(cfg.OpenAI.APIKey, cfg.OpenAI.Model, logger))
		logger.Info("OpenAI fallback engine enabled", zap.String("model", cfg.OpenAI.Model))
	}

	if len(engines) == 0 {
		logger.Info("No analysis engines configured, using template synthesis only")
		return nil
	}
	return engine.NewManager(engines, logger)
}
