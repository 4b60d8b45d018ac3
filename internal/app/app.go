// Package app wires configuration into the storage, catalog and services
// shared by the api server and pbctl.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/limbo/placebetween/internal/catalog"
	"github.com/limbo/placebetween/internal/remote"
	"github.com/limbo/placebetween/internal/repository"
	"github.com/limbo/placebetween/internal/service"
	"github.com/limbo/placebetween/pkg/config"
)

type App struct {
	Catalog     *catalog.Catalog
	Repo        repository.KVRepositoryI
	Remote      *remote.Client
	Engine      *service.EngineService
	Mirror      *service.MirrorService
	Maintenance *service.MaintenanceService
}

func Build(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	repo, err := repository.Open(ctx, repository.StoreOptions{
		Driver:     cfg.StoreDriver,
		SQLitePath: cfg.SQLitePath,
		Postgres: &repository.PGCfg{
			Address:  cfg.PGAddress,
			Username: cfg.PGUser,
			Password: cfg.PGPassword,
			DB:       cfg.PGDB,
		},
	})
	if err != nil {
		return nil, errors.New("opening store error: " + err.Error())
	}
	logger.Info("store opened", slog.String("driver", cfg.StoreDriver), slog.Int("activities", cat.Len()))

	client := remote.New(cfg.BackendURL, cfg.RemoteTimeout)
	if !client.Configured() {
		logger.Warn("backend url is not set, running local only")
	}
	tracker := service.NewCompletionService(repo, logger)
	builder := service.NewTodayBuilder(cat, catalog.DefaultWeeklyPlan)
	sets := service.NewTodaySetService(repo, cat, builder, tracker, logger)
	engine := service.NewEngineService(service.EngineDeps{
		Catalog: cat,
		Sets:    sets,
		Tracker: tracker,
		Ledger:  service.NewPointsService(repo),
		Remote:  client,
		Hours: service.PhaseHours{
			DayStart:   cfg.DayStartHour,
			NightStart: cfg.NightStartHour,
		},
		Location: cfg.Location(),
		Logger:   logger,
	})
	return &App{
		Catalog:     cat,
		Repo:        repo,
		Remote:      client,
		Engine:      engine,
		Mirror:      service.NewMirrorService(client, logger),
		Maintenance: service.NewMaintenanceService(repo),
	}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}
