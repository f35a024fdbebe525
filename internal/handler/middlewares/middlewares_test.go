package middlewares

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
)

func statusHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte("hello"))
	}
}

func TestTrackActiveRequests(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	var active sync.WaitGroup
	shutdown := make(chan struct{})
	h := TrackActiveRequests(&active, shutdown, zap.New(core))(statusHandler(http.StatusTeapot))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Zero(t, logs.Len())

	close(shutdown)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "5", w.Header().Get("Retry-After"))
	assert.Equal(t, 1, logs.FilterMessage("request rejected during shutdown").Len())

	active.Wait()
}

func TestRequestLogger(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		level   zapcore.Level
	}{
		{name: "success", status: http.StatusCreated, message: "request served", level: zapcore.DebugLevel},
		{name: "client error", status: http.StatusNotFound, message: "request served", level: zapcore.DebugLevel},
		{name: "server error", status: http.StatusInternalServerError, message: "request failed", level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := zapobserver.New(zapcore.DebugLevel)
			h := middleware.RequestID(RequestLogger(zap.New(core))(statusHandler(tt.status)))

			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/users/jdoe", nil))

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.message, entries[0].Message)
			assert.Equal(t, tt.level, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(5), fields["bytes"])
			assert.Equal(t, "/users/jdoe", fields["uri"])
			assert.NotEmpty(t, fields["request_id"])
		})
	}
}
