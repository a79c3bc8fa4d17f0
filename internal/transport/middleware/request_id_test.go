package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kikiarya/hsc-planner/pkg/ctxutil"
)

func serveRequestID(t *testing.T, incoming string) (ctxID, headerID string) {
	t.Helper()
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = ctxutil.RequestIDFromCtx(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return ctxID, rec.Header().Get(RequestIDHeader)
}

func TestRequestID_ReusesIncoming(t *testing.T) {
	ctxID, headerID := serveRequestID(t, "trace-42")
	if ctxID != "trace-42" || headerID != "trace-42" {
		t.Errorf("got ctx=%q header=%q, want trace-42", ctxID, headerID)
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	ctxID, headerID := serveRequestID(t, "")
	if _, err := uuid.Parse(ctxID); err != nil {
		t.Errorf("generated id %q is not a uuid: %v", ctxID, err)
	}
	if headerID != ctxID {
		t.Errorf("header %q != context %q", headerID, ctxID)
	}
}

func TestRequestID_ReplacesOversized(t *testing.T) {
	huge := strings.Repeat("x", maxRequestIDLen+1)
	ctxID, _ := serveRequestID(t, huge)
	if ctxID == huge {
		t.Error("oversized request id was accepted")
	}
}
