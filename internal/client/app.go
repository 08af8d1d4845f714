package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vedicas-garden/internal/adapter"
	"github.com/MKhiriev/vedicas-garden/internal/config"
	"github.com/MKhiriev/vedicas-garden/internal/logger"
	"github.com/MKhiriev/vedicas-garden/internal/service"
	"github.com/MKhiriev/vedicas-garden/internal/store"
	"github.com/MKhiriev/vedicas-garden/internal/workers"
)

type App struct {
	services *service.ClientServices
	cfg      config.Workers

	closers []func() error
	logger  *logger.Logger
}

// NewApp opens local storage, builds the adapters and services, loads the
// persisted state and restores a saved session. A configured but
// unreachable Redis disables chart caching instead of failing.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}
	closers := []func() error{storages.Close}

	fail := func(err error) (*App, error) {
		closeAll(closers)
		return nil, err
	}

	remote, err := adapter.NewHTTPRemoteStore(cfg.Adapter, logger)
	if err != nil {
		return fail(fmt.Errorf("create remote store adapter: %w", err))
	}

	chart, err := adapter.NewHTTPChartAPI(cfg.Adapter, logger)
	if err != nil {
		return fail(fmt.Errorf("create chart api adapter: %w", err))
	}

	if cfg.Storage.Cache.RedisAddress != "" {
		cache, err := adapter.NewRedisCache(ctx, cfg.Storage.Cache)
		if err != nil {
			logger.Warn().Err(err).Msg("chart cache disabled")
		} else {
			chart = adapter.NewCachedChartAPI(chart, cache, cfg.Storage.Cache.TTL)
			closers = append(closers, cache.Close)
		}
	}

	app := newApp(service.NewClientServices(storages, remote, chart, logger), cfg.Workers, closers, logger)
	if err = app.init(ctx); err != nil {
		return fail(err)
	}

	return app, nil
}

func newApp(services *service.ClientServices, cfg config.Workers, closers []func() error, logger *logger.Logger) *App {
	return &App{services: services, cfg: cfg, closers: closers, logger: logger}
}

func (a *App) init(ctx context.Context) error {
	if err := a.services.State.Init(ctx); err != nil {
		return fmt.Errorf("load local state: %w", err)
	}

	session, ok, err := a.services.AuthService.Restore(ctx)
	switch {
	case err != nil:
		a.logger.Warn().Err(err).Msg("saved session could not be restored")
	case ok:
		a.logger.Info().Str("login", session.Login).Msg("session restored")
	}
	return nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run pulls remote data when signed in, then runs ui alongside the
// periodic push job. When the UI exits the job is stopped and a final push
// is attempted.
func (a *App) Run(ctx context.Context, ui UI) error {
	if a.services.AuthService.Authenticated() {
		if err := a.services.SyncService.Pull(ctx); err != nil {
			a.logger.Warn().Err(err).Msg("initial pull failed")
		}
	}

	syncJob := workers.WorkerFunc(func(ctx context.Context) error {
		a.services.SyncJob.Start(ctx, a.cfg.SyncInterval)
		<-ctx.Done()
		a.services.SyncJob.Stop()
		return nil
	})

	err := workers.New(syncJob, ui).Run(ctx)

	if a.services.AuthService.Authenticated() && !a.services.SyncService.Push(context.WithoutCancel(ctx)) {
		a.logger.Warn().Msg("final push failed")
	}

	return err
}

func (a *App) Close() error {
	return closeAll(a.closers)
}

func closeAll(closers []func() error) error {
	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		errs = append(errs, closers[i]())
	}
	return errors.Join(errs...)
}
