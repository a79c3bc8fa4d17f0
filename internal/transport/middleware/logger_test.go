package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kikiarya/hsc-planner/pkg/ctxutil"
)

func logOnce(t *testing.T, status int, mutate func(*http.Request) *http.Request) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte("ok")) //nolint:errcheck
	}))
	req := httptest.NewRequest(http.MethodPost, "/v1/selections", nil)
	if mutate != nil {
		req = mutate(req)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLogger_Fields(t *testing.T) {
	userID := uuid.New()
	entry := logOnce(t, http.StatusCreated, func(r *http.Request) *http.Request {
		ctx := ctxutil.WithRequestID(r.Context(), "rid-1")
		ctx = ctxutil.WithUserID(ctx, userID)
		return r.WithContext(ctx)
	})

	assert.Equal(t, "http.request", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "/v1/selections", entry["path"])
	assert.EqualValues(t, 201, entry["status"])
	assert.EqualValues(t, 2, entry["bytes"])
	assert.Equal(t, "rid-1", entry["request_id"])
	assert.Equal(t, userID.String(), entry["user_id"])
	assert.Contains(t, entry, "duration")
}

func TestLogger_Levels(t *testing.T) {
	cases := map[int]string{
		http.StatusOK:                  "INFO",
		http.StatusConflict:            "INFO",
		http.StatusTooManyRequests:     "WARN",
		http.StatusInternalServerError: "ERROR",
	}
	for status, level := range cases {
		entry := logOnce(t, status, nil)
		assert.Equal(t, level, entry["level"], "status %d", status)
		assert.NotContains(t, entry, "user_id")
	}
}

func TestStatusWriter_KeepsFirstStatus(t *testing.T) {
	sw := &statusWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	sw.WriteHeader(http.StatusNotFound)
	sw.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusNotFound, sw.status)
}
