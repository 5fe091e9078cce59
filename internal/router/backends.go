package router

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"livestock-registry/internal/adapters/ai/gemini"
	"livestock-registry/internal/adapters/events/kafka"
	mem "livestock-registry/internal/adapters/storage/memory"
	pg "livestock-registry/internal/adapters/storage/postgres"
	rdb "livestock-registry/internal/adapters/storage/redis"
	"livestock-registry/internal/adapters/storage/sqlite"
	"livestock-registry/internal/domain/breeds"
	"livestock-registry/internal/domain/registrations"
	"livestock-registry/internal/platform/config"
	"livestock-registry/internal/platform/logger"
	"livestock-registry/internal/ports/ai"
)

// Closer libera lo que abrió un constructor de backend.
type Closer func() error

func noopCloser() error { return nil }

// OpenRepository abre el store configurado en cfg.Storage.Backend.
func OpenRepository(ctx context.Context, cfg config.Config) (registrations.Repository, Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory, "":
		return mem.NewRegistrationsRepo(), noopCloser, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewRegistrationsRepo(db), db.Close, nil

	case config.BackendPostgres:
		db, err := pg.Open(cfg.DB.DSN)
		if err != nil {
			return nil, nil, err
		}
		if cfg.DB.Migrate {
			if err := pg.Migrate(db); err != nil {
				_ = db.Close()
				return nil, nil, err
			}
		}
		return pg.NewRegistrationsRepo(db), db.Close, nil

	case config.BackendRedis:
		client, err := rdb.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return rdb.NewRegistrationsRepo(client, cfg.Redis.Prefix), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

// OpenPublisher devuelve nil (sin publicación) si no hay brokers.
func OpenPublisher(cfg config.Config) (registrations.Publisher, Closer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, noopCloser, nil
	}
	p, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if err != nil {
		return nil, nil, err
	}
	return p, func() error { p.Close(); return nil }, nil
}

// AI agrupa los tres puertos; todos nil si Gemini no está configurado.
type AI struct {
	Identifier ai.Identifier
	Detector   ai.Detector
	Chat       ai.ChatStarter
}

// OpenAI crea el cliente Gemini. Sin API key no es error: se loguea y el
// servicio arranca con la IA deshabilitada.
func OpenAI(ctx context.Context, cfg config.Config, httpClient *http.Client, log logger.Logger) (AI, error) {
	c, err := gemini.New(ctx, gemini.Options{
		APIKey:     cfg.Gemini.APIKey,
		Model:      cfg.Gemini.Model,
		Timeout:    cfg.Gemini.Timeout,
		HTTPClient: httpClient,
		Catalog:    breeds.Default(),
	})
	if errors.Is(err, ai.ErrUnavailable) {
		log.Warn("gemini not configured, identification disabled", nil)
		return AI{}, nil
	}
	if err != nil {
		return AI{}, err
	}
	return AI{Identifier: c, Detector: c, Chat: c}, nil
}
