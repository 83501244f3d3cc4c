package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorLogger())
	return router
}

func TestErrorLogger_RecoversPanic(t *testing.T) {
	router := newRouter()
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_SERVER_ERROR")
	assert.NotContains(t, w.Body.String(), "kaboom")
}

func TestErrorLogger_PassesThrough(t *testing.T) {
	router := newRouter()
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}

func TestRequestID_AssignsWhenMissing(t *testing.T) {
	router := newRouter()
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, requestID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/id", nil))

	id := w.Header().Get("X-Request-ID")
	assert.Len(t, id, 36)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	router := newRouter()
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, requestID(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
	assert.Equal(t, "abc-123", w.Body.String())
}
