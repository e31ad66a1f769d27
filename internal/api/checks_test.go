package api

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"testing"
	"uptime-warden/internal/store"
	"uptime-warden/internal/test"
)

func newTestServer(t *testing.T) (*Server, *store.FileStore) {
	t.Helper()

	records := store.NewFileStore(afero.NewMemMapFs(), ".data")
	ctx := context.Background()

	broken := test.NewTestCheckRecord("brokenbrokenbroken00")
	broken["timeOutSeconds"] = float64(10)

	require.NoError(t, test.SeedChecks(ctx, records, test.NewEvaluatedCheckRecord(test.TestCheckId, "up"), broken))

	return NewServer(records, false), records
}

func decode(t *testing.T, response *http.Response, target any) {
	t.Helper()
	defer response.Body.Close()
	require.NoError(t, json.NewDecoder(response.Body).Decode(target))
}

func TestGetCheck(t *testing.T) {
	server, _ := newTestServer(t)

	response, err := server.app.Test(httptest.NewRequest("GET", "/api/v1/checks/"+test.TestCheckId, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var body CheckResponse
	decode(t, response, &body)
	assert.Equal(t, test.TestCheckId, body.Id)
	assert.Equal(t, "up", string(body.State))
	assert.Equal(t, int64(1700000000000), body.LastChecked)
	assert.Equal(t, "GET https://example.com", body.Target)
	assert.True(t, body.Monitorable)
}

func TestGetCheck_NotFound(t *testing.T) {
	server, _ := newTestServer(t)

	response, err := server.app.Test(httptest.NewRequest("GET", "/api/v1/checks/unknown", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestGetCheck_Rejected(t *testing.T) {
	server, _ := newTestServer(t)

	response, err := server.app.Test(httptest.NewRequest("GET", "/api/v1/checks/brokenbrokenbroken00", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, response.StatusCode)

	var body CheckResponse
	decode(t, response, &body)
	assert.False(t, body.Monitorable)
	assert.Contains(t, body.Reason, "timeOutSeconds")
}

func TestGetCheck_StoreError(t *testing.T) {
	records := new(test.StoreMock)
	records.On("Read", mock.Anything, store.NamespaceChecks, "abc").Return(nil, errors.New("connection reset"))

	response, err := NewServer(records, false).app.Test(httptest.NewRequest("GET", "/api/v1/checks/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, response.StatusCode)
}

func TestGetAllChecks(t *testing.T) {
	server, _ := newTestServer(t)

	response, err := server.app.Test(httptest.NewRequest("GET", "/api/v1/checks", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var body struct {
		Items []CheckResponse `json:"items"`
	}
	decode(t, response, &body)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "abcdefghij0123456789", body.Items[0].Id)
	assert.True(t, body.Items[0].Monitorable)
	assert.False(t, body.Items[1].Monitorable)
}

func TestGetAllChecks_Empty(t *testing.T) {
	server := NewServer(store.NewFileStore(afero.NewMemMapFs(), ".data"), false)

	response, err := server.app.Test(httptest.NewRequest("GET", "/api/v1/checks", nil))
	require.NoError(t, err)

	var body struct {
		Items []CheckResponse `json:"items"`
	}
	decode(t, response, &body)
	assert.Empty(t, body.Items)
}

func TestHealthAndMetrics(t *testing.T) {
	server, _ := newTestServer(t)

	for _, path := range []string{"/livez", "/readyz", "/metrics"} {
		response, err := server.app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, response.StatusCode, path)
	}
}
