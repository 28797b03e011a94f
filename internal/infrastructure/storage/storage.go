// Package storage selects the backing store driver named in the config.
package storage

import (
	"context"
	"fmt"
	"time"

	"oficina_nova_brasil/internal/config"
	"oficina_nova_brasil/internal/infrastructure/database"
	"oficina_nova_brasil/internal/infrastructure/storage/dynamo"
	"oficina_nova_brasil/internal/infrastructure/storage/memory"
	"oficina_nova_brasil/internal/infrastructure/storage/postgres"
	"oficina_nova_brasil/internal/infrastructure/storage/sqlite"
	"oficina_nova_brasil/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Open returns the configured store and a function releasing its resources.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (interfaces.IKeyValueStore, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		log.Warn("using in-memory storage; data is lost on exit")
		return WithLogging(memory.NewStore(), log), noop, nil

	case config.StorageSQLite:
		s, err := sqlite.NewStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		log.Info("sqlite storage opened", zap.String("path", s.Path()))
		return WithLogging(s, log), func() { _ = s.Close() }, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, noop, err
		}
		log.Info("dynamodb storage configured",
			zap.String("table", cfg.DynamoDB.StateTable),
			zap.String("endpoint", cfg.DynamoDB.Endpoint))
		return WithLogging(dynamo.NewStore(ddb, cfg.DynamoDB.StateTable), log), noop, nil

	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Storage.DatabaseURI)
		if err != nil {
			return nil, noop, err
		}
		s, err := postgres.NewStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, noop, err
		}
		log.Info("postgres storage opened")
		return WithLogging(s, log), s.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

type loggedStore struct {
	next interfaces.IKeyValueStore
	log  *zap.Logger
}

// WithLogging logs every slot write at debug level and failures at error.
func WithLogging(next interfaces.IKeyValueStore, log *zap.Logger) interfaces.IKeyValueStore {
	return &loggedStore{next: next, log: log}
}

func (s *loggedStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	payload, found, err := s.next.Get(ctx, name)
	if err != nil {
		s.log.Error("storage get failed", zap.String("slot", name), zap.Error(err))
	}
	return payload, found, err
}

func (s *loggedStore) Set(ctx context.Context, name string, payload []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, name, payload)
	if err != nil {
		s.log.Error("storage set failed", zap.String("slot", name), zap.Error(err))
		return err
	}
	s.log.Debug("storage slot written",
		zap.String("slot", name),
		zap.Int("bytes", len(payload)),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
