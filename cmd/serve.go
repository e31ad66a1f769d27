// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"uptime-warden/internal/alert"
	"uptime-warden/internal/api"
	"uptime-warden/internal/cache"
	"uptime-warden/internal/config"
	"uptime-warden/internal/events"
	logger "uptime-warden/internal/log"
	"uptime-warden/internal/metrics"
	"uptime-warden/internal/monitor"
	"uptime-warden/internal/probe"
	"uptime-warden/internal/scheduler"
	"uptime-warden/internal/store"
	"uptime-warden/internal/throttling"
	"uptime-warden/internal/tracing"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts evaluating checks",
	Run:   startWardenService,
}

func startWardenService(cmd *cobra.Command, args []string) {
	cfg := config.Load()
	logger.SetLogLevel(cfg.LogLevel)

	shutdownTracing, err := tracing.Initialize(cfg.Tracing)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize tracing")
	}

	records, err := store.New(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msgf("Could not open %s store", cfg.Store.Backend)
	}

	locker, err := cache.NewCheckLocker(cfg.Hazelcast)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize check locks")
	}

	publisher, err := events.NewPublisher(cfg.Kafka)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not initialize outcome publisher")
	}

	prober := probe.NewProber(&http.Client{}, throttling.NewProbeThrottler(cfg.Probe.MaxConcurrent))
	dispatcher := alert.NewDispatcher(cfg.Alert, alert.NewNotifier(cfg.Alert.Sms), records)

	recorder := metrics.NewRecorder(cfg.Metrics.Enabled)
	evaluator := monitor.NewMonitor(records, prober, dispatcher,
		monitor.WithPublisher(publisher),
		monitor.WithLocker(locker),
		monitor.WithMetrics(recorder),
		monitor.WithTracingDebug(cfg.Tracing.DebugEnabled),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var server *api.Server
	if cfg.Api.Enabled {
		server = api.NewServer(records, cfg.Tracing.Enabled)
		go func() {
			if err := server.Listen(cfg.Port); err != nil {
				log.Error().Err(err).Msg("Api server stopped")
				stop()
			}
		}()
	}

	if err := scheduler.NewScheduler(records, evaluator, cfg.Scheduler.Interval, recorder).Run(ctx); err != nil {
		log.Error().Err(err).Msg("Scheduler stopped unexpectedly")
	}

	log.Info().Msg("Shutting down")

	if server != nil {
		if err := server.Shutdown(); err != nil {
			log.Warn().Err(err).Msg("Could not shut down api server")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := publisher.Close(); err != nil {
		log.Warn().Err(err).Msg("Could not close outcome publisher")
	}
	if err := records.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Could not close store")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Could not flush traces")
	}
}
