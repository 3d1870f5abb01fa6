// Package main runs the resource service: it loads the APP_PROFILE
// configuration, wires the resource store, downstream source and HTTP
// adapter with samber/do v2, serves until SIGINT/SIGTERM and then drains
// the scheduler, the server and telemetry in that order.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/clients/acl"
	adapthttp "github.com/HumzahChoudry/redux-api-resources/internal/adapters/http"
	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/handlers"
	"github.com/HumzahChoudry/redux-api-resources/internal/adapters/http/middleware"
	"github.com/HumzahChoudry/redux-api-resources/internal/app"
	"github.com/HumzahChoudry/redux-api-resources/internal/app/schedule"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/config"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/health"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/httpclient"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/logging"
	"github.com/HumzahChoudry/redux-api-resources/internal/platform/telemetry"
	"github.com/HumzahChoudry/redux-api-resources/internal/ports"
	"github.com/HumzahChoudry/redux-api-resources/internal/store"
)

const (
	drainTimeout     = 15 * time.Second
	flushTimeout     = 5 * time.Second
	downstreamClient = "resource-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "resource-service:", err)
		os.Exit(1)
	}
}

func run() error {
	profile, ok := os.LookupEnv("APP_PROFILE")
	if !ok || profile == "" {
		return errors.New("APP_PROFILE must name a config profile, e.g. local or prod")
	}

	cfg, err := config.Load(profile)
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		logging.WithRedactFields(cfg.Log.RedactFields...))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	providers, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, providers.Metrics)
	provideCore(injector)
	provideDownstream(injector)
	provideTransport(injector)

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("wiring server: %w", err)
	}
	scheduler, err := do.Invoke[*schedule.Scheduler](injector)
	if err != nil {
		return fmt.Errorf("wiring scheduler: %w", err)
	}

	// Listen synchronously so a port conflict aborts startup.
	if err := server.Listen(); err != nil {
		return err
	}
	served := make(chan error, 1)
	go func() { served <- server.Start() }()

	if err := scheduler.Start(ctx); err != nil {
		return errors.Join(fmt.Errorf("starting scheduler: %w", err), drain(logger, server, nil, served))
	}
	logger.Info("resource service started",
		slog.String("profile", profile),
		slog.String("addr", server.Addr()),
		slog.Int("resources", len(cfg.Resources)))

	select {
	case <-ctx.Done():
		logger.Info("shutting down", slog.String("cause", context.Cause(ctx).Error()))
	case err := <-served:
		return fmt.Errorf("server stopped: %w", err)
	}

	drainErr := drain(logger, server, scheduler, served)

	flushCtx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := providers.Shutdown(flushCtx); err != nil {
		logger.Error("flushing telemetry failed", slog.Any("error", err))
	}
	return drainErr
}

// drain stops periodic refreshes before in-flight requests so no new
// lifecycle starts while the server winds down. It waits for Start to return.
func drain(logger *slog.Logger, server *adapthttp.Server, scheduler *schedule.Scheduler, served <-chan error) error {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	if scheduler != nil {
		if err := scheduler.Stop(ctx); err != nil {
			logger.Warn("scheduler did not stop cleanly", slog.Any("error", err))
		}
	}
	err := server.Shutdown(ctx)
	if startErr := <-served; startErr != nil && !errors.Is(startErr, nethttp.ErrServerClosed) {
		err = errors.Join(err, startErr)
	}
	if err != nil {
		return fmt.Errorf("draining server: %w", err)
	}
	logger.Info("shutdown complete")
	return nil
}

// provideCore registers the resource store and the service running
// lifecycles against it.
func provideCore(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*store.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return store.Build(cfg.Resources, do.MustInvoke[*slog.Logger](i), do.MustInvoke[*telemetry.Metrics](i))
	})
	do.Provide(i, func(i do.Injector) (ports.Store, error) {
		return do.MustInvoke[*store.Store](i), nil
	})
	do.Provide(i, func(i do.Injector) (ports.ResourceService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return app.NewResourceService(
			do.MustInvoke[ports.Store](i),
			do.MustInvoke[ports.ResourceSource](i),
			cfg.Sync.MaxWorkers,
			do.MustInvoke[*slog.Logger](i),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*schedule.Scheduler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return schedule.New(cfg.Sync.Schedule, do.MustInvoke[ports.ResourceService](i), do.MustInvoke[*slog.Logger](i))
	})
}

// provideDownstream registers the REST source the lifecycles call.
func provideDownstream(i do.Injector) {
	do.Provide(i, func(i do.Injector) (*httpclient.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return httpclient.New(&cfg.Client, downstreamClient, do.MustInvoke[*telemetry.Metrics](i), do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) (*acl.Source, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return acl.NewSource(do.MustInvoke[*httpclient.Client](i), cfg.Resources, do.MustInvoke[*slog.Logger](i)), nil
	})
	do.Provide(i, func(i do.Injector) (ports.ResourceSource, error) {
		return do.MustInvoke[*acl.Source](i), nil
	})
}

// provideTransport registers health checks, handlers, the router and the
// server. The downstream source is an optional readiness check: its outage
// degrades the service without taking it out of rotation.
func provideTransport(i do.Injector) {
	do.Provide(i, func(i do.Injector) (ports.HealthRegistry, error) {
		cfg := do.MustInvoke[*config.Config](i)
		registry := health.New(health.WithCheckTimeout(cfg.Server.HealthCheckTimeout))
		registry.Register(do.MustInvoke[*store.Store](i))
		registry.Register(do.MustInvoke[*acl.Source](i))
		return registry, nil
	})
	do.Provide(i, func(i do.Injector) (nethttp.Handler, error) {
		cfg := do.MustInvoke[*config.Config](i)
		logger := do.MustInvoke[*slog.Logger](i)
		svc := do.MustInvoke[ports.ResourceService](i)
		source := do.MustInvoke[*acl.Source](i)

		return adapthttp.NewRouter(
			handlers.NewActionHandler(svc),
			handlers.NewResourceHandler(svc),
			handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), source.Name()),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(do.MustInvoke[*telemetry.Metrics](i)),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})
	do.Provide(i, func(i do.Injector) (*adapthttp.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return adapthttp.NewServer(cfg.Server, do.MustInvoke[nethttp.Handler](i), do.MustInvoke[*slog.Logger](i)), nil
	})
}
