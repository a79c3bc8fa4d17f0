package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/kikiarya/hsc-planner/pkg/ctxutil"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestLimiter(t *testing.T) (*RateLimiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)}
	rl := NewRateLimiter(time.Hour)
	rl.now = clock.Now
	t.Cleanup(rl.Stop)
	return rl, clock
}

func hit(h http.Handler, remote string, userID *uuid.UUID) int {
	req := httptest.NewRequest(http.MethodPost, "/v1/selections", nil)
	req.RemoteAddr = remote
	if userID != nil {
		req = req.WithContext(ctxutil.WithUserID(req.Context(), *userID))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func TestRateLimiter_BurstThenBlock(t *testing.T) {
	rl, _ := newTestLimiter(t)
	h := rl.Limit(3)(okHandler())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.1:1111", nil), "request %d", i)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/selections", nil)
	req.RemoteAddr = "10.0.0.1:1111"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "21", rec.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
}

func TestRateLimiter_IPIgnoresPort(t *testing.T) {
	rl, _ := newTestLimiter(t)
	h := rl.Limit(1)(okHandler())

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.2:1000", nil))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.2:2000", nil))
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.3:1000", nil))
}

func TestRateLimiter_UsersIndependentOfIP(t *testing.T) {
	rl, _ := newTestLimiter(t)
	h := rl.Limit(1)(okHandler())
	alice, bob := uuid.New(), uuid.New()

	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.9:1", &alice))
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.9:1", &bob))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.8:1", &alice))
}

func TestRateLimiter_Refill(t *testing.T) {
	rl, clock := newTestLimiter(t)
	h := rl.Limit(60)(okHandler())

	for i := 0; i < 60; i++ {
		hit(h, "10.0.0.4:1", nil)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.4:1", nil))

	clock.Advance(time.Second)
	assert.Equal(t, http.StatusOK, hit(h, "10.0.0.4:1", nil))
	assert.Equal(t, http.StatusTooManyRequests, hit(h, "10.0.0.4:1", nil))
}

func TestRateLimiter_ZeroDisables(t *testing.T) {
	rl, _ := newTestLimiter(t)
	h := rl.Limit(0)(okHandler())
	for i := 0; i < 100; i++ {
		assert.Equal(t, http.StatusOK, hit(h, "10.0.0.5:1", nil))
	}
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(time.Millisecond)
	rl.Stop()
	rl.Stop()
}
