package routes_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arklim/social-platform-blog/internal/infra/config"
	"github.com/arklim/social-platform-blog/internal/transport/http/routes"
)

type pingStub struct {
	err error
}

func (p *pingStub) Ping(_ context.Context) error {
	return p.err
}

func newRouter(db routes.DatabaseChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return routes.Register(routes.Dependencies{
		Config:   &config.AppConfig{},
		Database: db,
	})
}

func TestHealthEndpoint(t *testing.T) {
	router := newRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReadinessEndpoint(t *testing.T) {
	router := newRouter(&pingStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestReadinessEndpointFailingDependency(t *testing.T) {
	router := newRouter(&pingStub{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", w.Code)
	}
}

func TestAPIRoutesRequireIdentityHeaders(t *testing.T) {
	router := newRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/blogs", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
