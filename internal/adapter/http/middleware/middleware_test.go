package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nishad_gateway/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

type fakeAuth map[string]entities.Admin

func (f fakeAuth) Authenticate(_ context.Context, token string) (entities.Admin, error) {
	if a, ok := f[token]; ok {
		return a, nil
	}
	return entities.Admin{}, errors.New("invalid")
}

func newAuthRouter(mw gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.GET("/x", mw, func(c *gin.Context) {
		if admin, ok := AdminFromContext(c); ok {
			c.String(http.StatusOK, admin.ID)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	return r
}

func TestAdminAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := fakeAuth{"good": {ID: "adm-1"}}
	r := newAuthRouter(AdminAuth(auth))

	cases := []struct {
		name   string
		header string
		cookie string
		code   int
		body   string
	}{
		{name: "no token", code: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer bad", code: http.StatusUnauthorized},
		{name: "bearer", header: "Bearer good", code: http.StatusOK, body: "adm-1"},
		{name: "lowercase scheme", header: "bearer good", code: http.StatusOK, body: "adm-1"},
		{name: "cookie", cookie: "good", code: http.StatusOK, body: "adm-1"},
		{name: "basic scheme ignored", header: "Basic good", code: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: AccessCookieName, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if tc.body != "" && w.Body.String() != tc.body {
				t.Fatalf("expected body %q, got %q", tc.body, w.Body.String())
			}
		})
	}
}

func TestOptionalAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := newAuthRouter(OptionalAdmin(fakeAuth{"good": {ID: "adm-1"}}))

	for token, want := range map[string]string{"": "anonymous", "bad": "anonymous", "good": "adm-1"} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || w.Body.String() != want {
			t.Fatalf("token %q: expected 200 %q, got %d %q", token, want, w.Code, w.Body.String())
		}
	}
}

func TestIPRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	l := NewIPRateLimiter(2)
	r := gin.New()
	r.POST("/estimates", l.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/estimates", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	if do("10.0.0.1") != http.StatusOK || do("10.0.0.1") != http.StatusOK {
		t.Fatalf("expected burst of 2 to pass")
	}
	if code := do("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}
	if code := do("10.0.0.2"); code != http.StatusOK {
		t.Fatalf("expected other ip to pass, got %d", code)
	}
}

func TestIPRateLimiter_SweepsIdleVisitorsPeriodically(t *testing.T) {
	start := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	now := start
	l := NewIPRateLimiter(5)
	l.now = func() time.Time { return now }

	l.allow("10.0.0.1")
	if len(l.visitors) != 1 {
		t.Fatalf("expected one visitor, got %d", len(l.visitors))
	}

	// idle past the TTL, but the last sweep is still inside the interval
	now = start.Add(limiterIdleTTL + time.Second)
	l.lastSweep = now.Add(-limiterSweepInterval / 2)
	l.allow("10.0.0.2")
	if len(l.visitors) != 2 {
		t.Fatalf("expected no sweep inside the interval, got %d visitors", len(l.visitors))
	}

	now = now.Add(limiterSweepInterval)
	l.allow("10.0.0.3")
	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Fatalf("expected idle visitor to be swept")
	}
	if len(l.visitors) != 2 {
		t.Fatalf("expected active visitors to stay, got %d", len(l.visitors))
	}
}

func TestMetricsAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(token string) *gin.Engine {
		r := gin.New()
		r.GET("/metrics", MetricsAuth(token), func(c *gin.Context) { c.String(http.StatusOK, "ok") })
		return r
	}
	get := func(r http.Handler, header string) int {
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	t.Run("open without token", func(t *testing.T) {
		if code := get(newRouter(""), ""); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})

	t.Run("rejects missing or wrong token", func(t *testing.T) {
		r := newRouter("scrape-secret")
		if code := get(r, ""); code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", code)
		}
		if code := get(r, "Bearer nope"); code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", code)
		}
	})

	t.Run("accepts matching token", func(t *testing.T) {
		if code := get(newRouter("scrape-secret"), "Bearer scrape-secret"); code != http.StatusOK {
			t.Fatalf("expected 200, got %d", code)
		}
	})
}
