package limiter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestLimiter(t *testing.T, r rate.Limit, b int) *IPRateLimiter {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewIPRateLimiter(ctx, r, b)
}

func TestGetLimiterReusesPerIP(t *testing.T) {
	l := newTestLimiter(t, 1, 1)

	a := l.GetLimiter("10.0.0.1")
	if l.GetLimiter("10.0.0.1") != a {
		t.Error("same IP should return the same limiter")
	}
	if l.GetLimiter("10.0.0.2") == a {
		t.Error("different IPs should not share a limiter")
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}
}

func TestMiddlewareRejectsOverBurst(t *testing.T) {
	l := newTestLimiter(t, rate.Every(time.Hour), 2)

	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(addr string) int {
		r := httptest.NewRequest(http.MethodPost, "/api/files", nil)
		r.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, r)
		return rec.Code
	}

	for n := 0; n < 2; n++ {
		if code := send("198.51.100.4:1000"); code != http.StatusNoContent {
			t.Fatalf("request %d: status = %d", n, code)
		}
	}
	if code := send("198.51.100.4:1001"); code != http.StatusTooManyRequests {
		t.Errorf("third request: status = %d, want 429", code)
	}
	if code := send("198.51.100.5:1000"); code != http.StatusNoContent {
		t.Errorf("other IP: status = %d", code)
	}
}

func TestCleanUpDropsIdleLimiters(t *testing.T) {
	l := newTestLimiter(t, rate.Every(time.Second), 1)

	l.GetLimiter("idle")
	l.GetLimiter("busy").Allow()

	removed, remaining := l.cleanUp(time.Now())
	if removed != 1 || remaining != 1 {
		t.Fatalf("cleanUp = (%d, %d), want (1, 1)", removed, remaining)
	}

	removed, remaining = l.cleanUp(time.Now().Add(time.Minute))
	if removed != 1 || remaining != 0 {
		t.Errorf("after refill cleanUp = (%d, %d), want (1, 0)", removed, remaining)
	}
}
