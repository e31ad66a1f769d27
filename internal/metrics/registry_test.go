package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"net/http/httptest"
	"testing"
	"time"
	"uptime-warden/internal/check"
)

func TestRecorder(t *testing.T) {
	recorder := NewRecorder(true)

	beforeTimeouts := testutil.ToFloat64(probes.WithLabelValues("timeout"))
	beforeDelivered := testutil.ToFloat64(alerts.WithLabelValues("delivered"))
	beforeCycles := testutil.ToFloat64(cycles.WithLabelValues("persisted"))

	recorder.RecordProbe(check.Outcome{Failure: check.FailureTimeout, Duration: time.Second})
	recorder.RecordAlert(true)
	recorder.RecordCycle("persisted")
	recorder.RecordState("check-1", check.StateUp)
	recorder.RecordState("check-2", check.StateDown)

	assert.Equal(t, beforeTimeouts+1, testutil.ToFloat64(probes.WithLabelValues("timeout")))
	assert.Equal(t, beforeDelivered+1, testutil.ToFloat64(alerts.WithLabelValues("delivered")))
	assert.Equal(t, beforeCycles+1, testutil.ToFloat64(cycles.WithLabelValues("persisted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(checkState.WithLabelValues("check-1")))
	assert.Equal(t, float64(0), testutil.ToFloat64(checkState.WithLabelValues("check-2")))
}

func TestRecorder_Disabled(t *testing.T) {
	recorder := NewRecorder(false)
	before := testutil.ToFloat64(cycles.WithLabelValues("rejected"))

	recorder.RecordCycle("rejected")

	assert.Equal(t, before, testutil.ToFloat64(cycles.WithLabelValues("rejected")))
}

func TestPrometheusMiddleware(t *testing.T) {
	NewRecorder(true).RecordCycle("alerted")

	app := fiber.New()
	app.Get("/metrics", NewPrometheusHandler())

	response, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	defer response.Body.Close()

	body, _ := io.ReadAll(response.Body)
	assert.Contains(t, string(body), "warden_cycles_total")
}
