package middleware

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/orderdesk/orderdesk/internal/authz"
	"github.com/orderdesk/orderdesk/internal/domain/model"
)

type resolverStub struct {
	caller authz.Caller
	err    error
	seen   string
}

func (s *resolverStub) ResolveCaller(_ context.Context, token string) (authz.Caller, error) {
	s.seen = token
	return s.caller, s.err
}

func newAuthEngine(resolver CallerResolver) (*gin.Engine, *authz.Caller) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	var captured authz.Caller
	engine.GET("/protected", AuthRequired(resolver), func(c *gin.Context) {
		if value, ok := c.Get(CallerKey); ok {
			captured = value.(authz.Caller)
		}
		c.Status(http.StatusOK)
	})
	return engine, &captured
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	resolver := &resolverStub{caller: authz.Caller{ID: 1, Username: "alice", Role: model.RoleClient, Active: true}}
	engine, captured := newAuthEngine(resolver)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resolver.seen != "token-123" {
		t.Fatalf("resolver got %q", resolver.seen)
	}
	if captured.Username != "alice" {
		t.Fatalf("caller not stored: %+v", captured)
	}
}

func TestAuthRequiredCookieFallback(t *testing.T) {
	resolver := &resolverStub{caller: authz.Caller{ID: 1, Username: "alice"}}
	engine, _ := newAuthEngine(resolver)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AuthCookieName, Value: "cookie-token"})
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if resolver.seen != "cookie-token" {
		t.Fatalf("resolver got %q", resolver.seen)
	}
}

func TestAuthRequiredMissingToken(t *testing.T) {
	engine, _ := newAuthEngine(&resolverStub{})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	engine, _ := newAuthEngine(&resolverStub{err: errors.New("bad token")})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer expired")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	logged := buf.String()
	if !strings.Contains(logged, `"path":"/ping"`) || !strings.Contains(logged, `"status":200`) {
		t.Fatalf("unexpected log line: %s", logged)
	}
}

func TestDecompressRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(DecompressRequest())
	engine.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	var compressed bytes.Buffer
	writer := gzip.NewWriter(&compressed)
	if _, err := writer.Write([]byte("hello")); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close gzip writer: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", &compressed)
	req.Header.Set("Content-Encoding", "gzip")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "hello" {
		t.Fatalf("body = %q, want hello", rec.Body.String())
	}
}

func TestDecompressRequestMalformed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(DecompressRequest())
	engine.POST("/echo", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
