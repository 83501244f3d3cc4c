package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(CORS())
	router.POST("/users/register", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return router
}

func TestCORS_Preflight(t *testing.T) {
	router := corsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/users/register", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_UnknownOrigin(t *testing.T) {
	router := corsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/register", nil)
	req.Header.Set("Origin", "http://evil.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_ExtraOriginFromEnv(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example, ")
	router := corsRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/register", nil)
	req.Header.Set("Origin", "https://app.example")
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}
