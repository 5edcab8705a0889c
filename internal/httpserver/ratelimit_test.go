package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func TestIPLimiterBurstAndRefill(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newIPLimiter(2)
	l.now = func() time.Time { return now }

	if !l.allow("10.0.0.1") || !l.allow("10.0.0.1") {
		t.Fatalf("burst of 2 should pass")
	}
	if l.allow("10.0.0.1") {
		t.Fatalf("third request should be limited")
	}
	if !l.allow("10.0.0.2") {
		t.Fatalf("other ip has its own bucket")
	}

	now = now.Add(30 * time.Second)
	if !l.allow("10.0.0.1") {
		t.Fatalf("token should refill after 30s")
	}
}

func TestIPLimiterPrunesIdleEntries(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newIPLimiter(5)
	l.now = func() time.Time { return now }

	l.allow("10.0.0.1")
	l.allow("10.0.0.2")
	if l.size() != 2 {
		t.Fatalf("expected 2 entries, got %d", l.size())
	}

	now = now.Add(2 * limiterIdleTTL)
	l.allow("10.0.0.3")
	if l.size() != 1 {
		t.Fatalf("expected idle entries pruned, got %d", l.size())
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/x", rateLimit(zerolog.Nop(), 1), func(c *gin.Context) { c.Status(http.StatusCreated) })

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/x", nil)
		req.RemoteAddr = "192.0.2.7:1234"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}
	if code := send(); code != http.StatusCreated {
		t.Fatalf("first request: expected 201, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("second request: expected 429, got %d", code)
	}

	open := gin.New()
	open.POST("/x", rateLimit(zerolog.Nop(), 0), func(c *gin.Context) { c.Status(http.StatusCreated) })
	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		open.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/x", nil))
		if rec.Code != http.StatusCreated {
			t.Fatalf("disabled limiter rejected request %d", i)
		}
	}
}
