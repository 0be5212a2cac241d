//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"peer-tutor-scheduler/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recordDeadline := func(deadline *bool) gin.HandlerFunc {
		return func(c *gin.Context) {
			_, *deadline = c.Request.Context().Deadline()
			c.Status(http.StatusNoContent)
		}
	}

	t.Run("bounds the request context", func(t *testing.T) {
		var hasDeadline bool
		r := gin.New()
		r.GET("/", middleware.Timeout(time.Second), recordDeadline(&hasDeadline))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, hasDeadline)
	})

	t.Run("zero disables the bound", func(t *testing.T) {
		var hasDeadline bool
		r := gin.New()
		r.GET("/", middleware.Timeout(0), recordDeadline(&hasDeadline))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.False(t, hasDeadline)
	})
}
