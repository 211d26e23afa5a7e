// Command snapbridge-host serves the bridge command channel over HTTP
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snapbridge/internal/adapters/providers/devkit"
	"snapbridge/internal/core/version"
	"snapbridge/internal/modkit/httpkit"
	"snapbridge/internal/platform/config"
	"snapbridge/internal/platform/logger"
	phttp "snapbridge/internal/platform/net/http"
	"snapbridge/internal/platform/net/middleware"
	"snapbridge/internal/platform/otel"
	"snapbridge/internal/services/api"
	dom "snapbridge/internal/services/bridge/domain"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const serviceName = "snapbridge-host"

func main() {
	// .env is optional; real env wins over it
	envErr := godotenv.Load()

	opts := logger.FromEnv()
	opts.Component = serviceName
	logger.Init(opts)
	l := logger.Get()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		l.Warn().Err(envErr).Msg("could not load .env")
	}

	root := config.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Setup(ctx, serviceName, otel.FromConfig(root))
	if err != nil {
		l.Panic().Err(err).Msg("otel setup failed")
	}

	providers := dom.Providers{Platform: version.Platform{}}
	dk, err := devkit.FromEnv()
	switch {
	case err != nil:
		l.Panic().Err(err).Msg("devkit config invalid")
	case dk != nil:
		providers = dk.Providers()
		l.Warn().Msg("serving with in process dev providers")
	default:
		l.Warn().Msg("no capability providers configured, provider backed commands will report unavailable")
	}

	// http server (reads CORE_HOST_ADDR and friends)
	srv := phttp.NewServer(root, func(m *chi.Mux) {
		m.Use(middleware.Heartbeat("/healthz"))
	})

	api.Mount(srv.Router(), api.Options{
		Config:         root,
		Logger:         l,
		Providers:      providers,
		Stack:          httpkit.StackFromConfig(root.Prefix("CORE_")),
		EnableProfiler: root.MayBool("CORE_HOST_PROFILER", false),
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l.Info().Str("addr", root.MayString("CORE_HOST_ADDR", "127.0.0.1:4000")).Msg("http server starting")
		return srv.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		flush, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return shutdownTracing(flush)
	})

	if err := g.Wait(); err != nil {
		l.Error().Err(err).Msg("host stopped with error")
		os.Exit(1)
	}
	l.Info().Msg("host stopped")
}
