package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tupyy/achievement-tracker/internal/config"
	"github.com/tupyy/achievement-tracker/internal/services"
	"github.com/tupyy/achievement-tracker/internal/store"
	"github.com/tupyy/achievement-tracker/internal/store/migrations"
	"github.com/tupyy/achievement-tracker/internal/telemetry"
	"github.com/tupyy/achievement-tracker/pkg/scheduler"
	"github.com/tupyy/achievement-tracker/pkg/steam"
)

// app holds the services shared by every command.
type app struct {
	store       *store.Store
	scheduler   *scheduler.Scheduler
	library     *services.LibraryService
	collections *services.CollectionService
	credentials *services.CredentialsService
	shutdown    telemetry.ShutdownFunc
}

func newApp(ctx context.Context, cfg *config.Configuration) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	zap.S().Debugw("configuration", "config", cfg.DebugMap())

	tag, err := cfg.Library.Tag()
	if err != nil {
		return nil, err
	}

	client, err := newSteamClient(cfg.Upstream)
	if err != nil {
		return nil, err
	}

	shutdown, err := telemetry.Setup(ctx, cfg.Tracing, "achievement-tracker")
	if err != nil {
		return nil, err
	}

	kv, err := openKV(ctx, cfg.Storage)
	if err != nil {
		_ = shutdown(ctx)
		return nil, err
	}
	st := store.NewStore(kv)

	sched := scheduler.NewScheduler(cfg.Library.NumWorkers)

	return &app{
		store:       st,
		scheduler:   sched,
		library:     services.NewLibraryService(st, client, sched, cfg.Library.FreshnessWindow).WithLocale(tag),
		collections: services.NewCollectionService(st),
		credentials: services.NewCredentialsService(st),
		shutdown:    shutdown,
	}, nil
}

func (a *app) Close() {
	a.scheduler.Close()
	if err := a.store.Close(); err != nil {
		zap.S().Errorw("failed to close store", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.shutdown(ctx); err != nil {
		zap.S().Errorw("failed to flush traces", "error", err)
	}
}

func openKV(ctx context.Context, cfg config.Storage) (store.KV, error) {
	switch cfg.Backend {
	case config.StorageBackendMemory:
		return store.NewMemoryKV(), nil
	case config.StorageBackendRedis:
		kv, err := store.NewRedisKV(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		if err := kv.Ping(ctx); err != nil {
			_ = kv.Close()
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		return kv, nil
	default:
		path, err := store.DBPath(cfg.DataFolder)
		if err != nil {
			return nil, err
		}
		db, err := store.NewDB(path)
		if err != nil {
			return nil, err
		}
		if err := migrations.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		zap.S().Named("store").Infow("duckdb store ready", "path", path)
		return store.NewKVStore(db), nil
	}
}

func newSteamClient(cfg config.Upstream) (*steam.Client, error) {
	token := cfg.Token
	if cfg.TokenFile != "" {
		data, err := os.ReadFile(cfg.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read upstream token: %w", err)
		}
		token = strings.TrimSpace(string(data))
	}

	return steam.NewClient(cfg.URL,
		steam.WithTimeout(cfg.Timeout),
		steam.WithMaxRetries(cfg.MaxRetries),
		steam.WithToken(token),
	)
}
