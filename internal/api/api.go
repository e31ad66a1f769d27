// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/rs/zerolog/log"
	"uptime-warden/internal/metrics"
	"uptime-warden/internal/store"
	"uptime-warden/internal/tracing"
)

type Server struct {
	app     *fiber.App
	records store.RecordStore
}

func NewServer(records store.RecordStore, tracingEnabled bool) *Server {
	s := &Server{
		app: fiber.New(fiber.Config{
			DisableStartupMessage: true,
		}),
		records: records,
	}

	s.app.Use(tracing.Middleware(tracingEnabled))
	s.app.Use(healthcheck.New())

	s.app.Get("/metrics", metrics.NewPrometheusHandler())

	v1 := s.app.Group("/api/v1")

	v1.Get("/checks", s.getAllChecks)
	v1.Get("/checks/:checkId", s.getCheck)

	return s
}

func (s *Server) Listen(port int) error {
	log.Info().Msgf("Listening on port %d", port)
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
