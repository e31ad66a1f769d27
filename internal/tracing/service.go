// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package tracing

import (
	"context"
	"fmt"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/propagators/b3"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"strings"
	"uptime-warden/internal/config"
)

const (
	ServiceName = "uptime-warden"
	tracerName  = "uptime-warden/api"
)

// Initialize installs the global tracer provider and returns its shutdown function.
// When tracing is disabled the otel no-op provider stays in place.
func Initialize(cfg config.Tracing) (func(context.Context) error, error) {
	if !cfg.Enabled {
		return func(context.Context) error { return nil }, nil
	}

	exporterOpts := []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(cfg.CollectorEndpoint),
	}

	if !cfg.Https {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(exporterOpts...))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", ServiceName))))

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(b3.New(b3.WithInjectEncoding(b3.B3MultipleHeader)))

	log.Info().Msgf("Exporting traces to %s", cfg.CollectorEndpoint)
	return tp.Shutdown, nil
}

// Middleware starts a server span for every request and continues b3 headers of the caller.
func Middleware(enabled bool) fiber.Handler {
	if !enabled {
		return func(ctx *fiber.Ctx) error {
			return ctx.Next()
		}
	}

	return func(ctx *fiber.Ctx) error {
		carrier := propagation.MapCarrier{}
		ctx.Request().Header.VisitAll(func(key, value []byte) {
			carrier.Set(strings.ToLower(string(key)), string(value))
		})

		parent := otel.GetTextMapPropagator().Extract(ctx.UserContext(), carrier)
		spanCtx, span := otel.Tracer(tracerName).Start(parent, ctx.Method()+" "+ctx.Path())
		defer span.End()

		ctx.SetUserContext(spanCtx)
		err := ctx.Next()

		span.SetAttributes(attribute.Int("http.status_code", ctx.Response().StatusCode()))
		if err != nil {
			span.RecordError(err)
		}
		return err
	}
}
