package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vango-dev/teamfight/internal/config"
	"github.com/vango-dev/teamfight/internal/errors"
	"github.com/vango-dev/teamfight/internal/live"
	"github.com/vango-dev/teamfight/internal/metrics"
	"github.com/vango-dev/teamfight/internal/tracker"
)

const shutdownTimeout = 5 * time.Second

type serveFlags struct {
	addr      string
	data      string
	logLevel  string
	logFormat string
	noMetrics bool
}

func serveCmd(dir *string) *cobra.Command {
	var flags serveFlags

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracker in the browser",
		Long: `Serve the tracker on a local address.

The page keeps a WebSocket open to the server, which owns the state and
re-renders after every change. Only one browser tab is connected at a
time; opening another one takes over.

Examples:
  teamfight serve
  teamfight serve --addr=0.0.0.0:8080 --data=matches.json
  TEAMFIGHT_LOG_LEVEL=debug teamfight serve`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*dir)
			if err != nil {
				return err
			}
			flags.apply(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&flags.addr, "addr", "a", "", "Address to listen on (default from teamfight.json)")
	cmd.Flags().StringVarP(&flags.data, "data", "d", "", "Data file holding the matches")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.Flags().StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	cmd.Flags().BoolVar(&flags.noMetrics, "no-metrics", false, "Do not serve /metrics")

	return cmd
}

// apply overrides config values with the flags that were set.
func (f serveFlags) apply(cfg *config.Config) {
	if f.addr != "" {
		cfg.Server.Addr = f.addr
	}
	if f.data != "" {
		cfg.Data.File = f.data
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if f.noMetrics {
		off := false
		cfg.Server.Metrics = &off
	}
}

func runServe(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	logger := newLogger(cfg, cmd.ErrOrStderr())

	store, err := openStorage(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(metrics.WithRegistry(registry))

	tr := tracker.New(
		tracker.NewArchive(store, logger.With("component", "archive"), m),
		tracker.WithLogger(logger.With("component", "tracker")),
	)

	opts := []live.Option{
		live.WithLogger(logger.With("component", "live")),
		live.WithMetrics(m),
	}
	if cfg.MetricsEnabled() {
		opts = append(opts, live.WithMetricsHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	}
	bridge, err := live.New(tr.Component(), opts...)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           bridge.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return bridge.Run(ctx)
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.New("T021").Wrap(err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	w := cmd.OutOrStdout()
	success(w, "Serving %s", cfg.URL())
	info(w, "Data: %s", store.Path())

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	logger.Info("server stopped")
	return nil
}
