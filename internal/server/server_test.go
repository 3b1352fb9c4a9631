package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/logger"
	"github.com/pageza/recipebook/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()
	store := service.NewRecipeStore(logger.Discard(), cfg.PlaceholderImage, service.SeedRecipes())
	srv := New(cfg, store, logger.Discard())
	require.NotNil(t, srv)
	return srv
}

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.ServerPort = "9191"
	srv := newTestServer(t, cfg)

	assert.Equal(t, "127.0.0.1:9191", srv.http.Addr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mediterranean Pasta Salad")
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(t, config.Default())

	require.NoError(t, srv.Shutdown(context.Background()))
	// A closed server reports a clean stop
	assert.NoError(t, srv.Start())
}
