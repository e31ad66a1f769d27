package tracing

import (
	"context"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http/httptest"
	"testing"
	"uptime-warden/internal/config"
)

func TestInitialize_Disabled(t *testing.T) {
	shutdown, err := Initialize(config.Tracing{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestMiddleware(t *testing.T) {
	for _, enabled := range []bool{false, true} {
		app := fiber.New()
		app.Use(Middleware(enabled))
		app.Get("/ping", func(ctx *fiber.Ctx) error {
			assert.NotNil(t, ctx.UserContext())
			return ctx.SendString("pong")
		})

		request := httptest.NewRequest("GET", "/ping", nil)
		request.Header.Set("X-B3-TraceId", "463ac35c9f6413ad48485a3953bb6124")
		request.Header.Set("X-B3-SpanId", "0020000000000001")

		response, err := app.Test(request)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, response.StatusCode)
	}
}
