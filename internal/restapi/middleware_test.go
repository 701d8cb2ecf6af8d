package restapi

import (
	"bytes"
	"compress/gzip"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeflow.bikeshare.org/internal/logging"
)

func TestCompressionMiddleware(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		largeResponse := strings.Repeat(`{"test": "data"}`, 1000)
		_, _ = w.Write([]byte(largeResponse))
	})

	t.Run("compresses response when gzip accepted", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		recorder := httptest.NewRecorder()

		CompressionMiddleware(testHandler).ServeHTTP(recorder, req)

		require.Equal(t, "gzip", recorder.Header().Get("Content-Encoding"))

		reader, err := gzip.NewReader(recorder.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(reader)
		require.NoError(t, err)
		assert.Contains(t, string(body), `{"test": "data"}`)
	})

	t.Run("skips compression without accept header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		recorder := httptest.NewRecorder()

		CompressionMiddleware(testHandler).ServeHTTP(recorder, req)

		assert.Empty(t, recorder.Header().Get("Content-Encoding"))
	})

	t.Run("skips small responses", func(t *testing.T) {
		small := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		})

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		recorder := httptest.NewRecorder()

		CompressionMiddleware(small).ServeHTTP(recorder, req)

		assert.Empty(t, recorder.Header().Get("Content-Encoding"))
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/api/where/stations.json", nil)
	req.Header.Set("Origin", "https://dashboard.example.org")
	recorder := httptest.NewRecorder()

	securityHeaders(next).ServeHTTP(recorder, req)

	assert.Equal(t, "nosniff", recorder.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", recorder.Header().Get("X-Frame-Options"))
	assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))

	t.Run("answers preflight directly", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/where/stations.json", nil)
		req.Header.Set("Origin", "https://dashboard.example.org")
		recorder := httptest.NewRecorder()

		called := false
		securityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})).ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.False(t, called)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("limits per key", func(t *testing.T) {
		handler := NewRateLimitMiddleware(1, time.Second)(next)

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest("GET", "/?key=TEST", nil))
		assert.Equal(t, http.StatusOK, first.Code)

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest("GET", "/?key=TEST", nil))
		assert.Equal(t, http.StatusTooManyRequests, second.Code)
		assert.NotEmpty(t, second.Header().Get("Retry-After"))
		assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

		// A different key gets its own limiter.
		other := httptest.NewRecorder()
		handler.ServeHTTP(other, httptest.NewRequest("GET", "/?key=OTHER", nil))
		assert.Equal(t, http.StatusOK, other.Code)
	})

	t.Run("negative rate disables limiting", func(t *testing.T) {
		handler := NewRateLimitMiddleware(-1, time.Second)(next)

		for i := 0; i < 10; i++ {
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, httptest.NewRequest("GET", "/?key=TEST", nil))
			assert.Equal(t, http.StatusOK, recorder.Code)
		}
	})
}

func TestRequestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewStructuredLogger(&buf, slog.LevelInfo)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Handlers must see the logger in their context.
		assert.Same(t, logger, logging.FromContext(r.Context()))
		w.WriteHeader(http.StatusNotFound)
	})

	handler := NewRequestLoggingMiddleware(logger)(next)
	req := httptest.NewRequest("GET", "/api/where/station-traffic.json?minute=700", nil)
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	output := buf.String()
	assert.Contains(t, output, `"msg":"http_request"`)
	assert.Contains(t, output, `"method":"GET"`)
	assert.Contains(t, output, `"path":"/api/where/station-traffic.json"`)
	assert.NotContains(t, output, "minute=700")
	assert.Contains(t, output, `"status":404`)
}
