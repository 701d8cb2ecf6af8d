package restapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentTimeHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/current-time.json?key=invalid")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
}

func TestCurrentTimeHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/where/current-time.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", model.Text)

	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok)

	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok)

	readableTime, ok := entry["readableTime"].(string)
	require.True(t, ok)
	parsed, err := time.Parse(time.RFC3339, readableTime)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)

	millis, ok := entry["time"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().UnixMilli(), int64(millis), 60_000)
}
