package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler keeps every log record it sees.
type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func recordAttrs(r slog.Record) map[string]slog.Value {
	attrs := make(map[string]slog.Value)
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value
		return true
	})
	return attrs
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		handler   http.HandlerFunc
		wantCode  int
		wantLevel slog.Level
		wantBytes int64
	}{
		{
			name: "implicit ok", method: http.MethodGet, path: "/api/event-totals",
			handler:  func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte(`{"data":[]}`)) },
			wantCode: http.StatusOK, wantLevel: slog.LevelInfo, wantBytes: 11,
		},
		{
			name: "created", method: http.MethodPost, path: "/api/events",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusCreated) },
			wantCode: http.StatusCreated, wantLevel: slog.LevelInfo,
		},
		{
			name: "not found is a warning", method: http.MethodPost, path: "/api/login",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			wantCode: http.StatusNotFound, wantLevel: slog.LevelWarn,
		},
		{
			name: "server error", method: http.MethodPost, path: "/api/rsvp",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.WriteHeader(http.StatusOK) // superfluous, ignored
			},
			wantCode: http.StatusInternalServerError, wantLevel: slog.LevelError,
		},
		{
			name: "no write at all", method: http.MethodDelete, path: "/api/rsvp/1",
			handler:  func(w http.ResponseWriter, r *http.Request) {},
			wantCode: http.StatusOK, wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h recordingHandler
			handler := RequestID(LoggingMiddleware(slog.New(&h), tt.handler))
			req := httptest.NewRequest(tt.method, "http://test"+tt.path+"?x=1", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Len(t, h.records, 1)
			rec := h.records[0]
			assert.Equal(t, "http request", rec.Message)
			assert.Equal(t, tt.wantLevel, rec.Level)
			attrs := recordAttrs(rec)
			assert.Equal(t, tt.method, attrs["method"].String())
			assert.Equal(t, tt.path, attrs["path"].String(), "query string is not logged")
			assert.Equal(t, int64(tt.wantCode), attrs["status"].Int64())
			assert.Equal(t, tt.wantBytes, attrs["bytes"].Int64())
			assert.GreaterOrEqual(t, attrs["duration_ms"].Int64(), int64(0))
			assert.Equal(t, "req-1", attrs["request_id"].String())
			assert.Equal(t, tt.wantCode, rr.Code)
		})
	}
}

func TestLoggingMiddleware_ResponseControllerReachesWriter(t *testing.T) {
	var h recordingHandler
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
		require.NoError(t, http.NewResponseController(w).Flush())
	})
	rr := httptest.NewRecorder()
	RequestID(LoggingMiddleware(slog.New(&h), next)).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, rr.Flushed)
}
