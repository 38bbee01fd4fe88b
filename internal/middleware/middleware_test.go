package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/user"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, RequestIDFrom(c))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if _, err := uuid.Parse(rec.Body.String()); err != nil {
		t.Fatalf("expected generated uuid, got %q", rec.Body.String())
	}

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", id)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Body.String() != id || rec.Header().Get("X-Request-ID") != id {
		t.Fatalf("expected propagated id %s, got body %q header %q", id, rec.Body.String(), rec.Header().Get("X-Request-ID"))
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	router := gin.New()
	router.Use(RequestID(), RequestLogger(log))
	router.GET("/items/:id", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))

	out := buf.String()
	for _, want := range []string{`"path":"/items/:id"`, `"status":418`, `"request_id":"`} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	demo := user.User{ID: uuid.New(), Username: "demo", DefaultCurrency: "USD"}

	router := gin.New()
	router.GET("/anon", func(c *gin.Context) {
		if _, ok := MustUser(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})
	router.GET("/me", Identity(demo), func(c *gin.Context) {
		u, ok := MustUser(c)
		if !ok {
			return
		}
		c.String(http.StatusOK, u.Username)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/anon", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "demo" {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}
