package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipebook/backend/internal/logger"
	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestRouter wires the handlers the same way the router package does,
// without CORS or rate limiting
func setupTestRouter(store service.IRecipeStore) *gin.Engine {
	router := gin.New()
	router.Use(middleware.ErrorHandler(logger.Discard()))
	router.GET("/health", HealthCheck)

	v1 := router.Group("/api/v1")
	v1.GET("/categories", ListCategories)
	NewRecipeHandler(store).RegisterRoutes(v1)
	NewSessionHandler(store).RegisterRoutes(v1)
	return router
}

func newSeededRouter() (*gin.Engine, *service.RecipeStore) {
	store := service.NewRecipeStore(logger.Discard(), "", service.SeedRecipes())
	return setupTestRouter(store), store
}

// PerformRequest sends body as JSON when it is not nil
func PerformRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request

	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
