//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gearshare/internal/handler/httperr"
	"gearshare/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newEngine := func(h gin.HandlerFunc) *gin.Engine {
		engine := gin.New()
		engine.Use(middleware.ErrorHandler())
		engine.GET("/t", h)
		return engine
	}

	perform := func(engine *gin.Engine) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/t", nil))
		return w
	}

	t.Run("AbortWithError writes status and flat error body", func(t *testing.T) {
		engine := newEngine(func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errors.New("duplicate row"), "Booking is already decided", nil)
		})

		w := perform(engine)

		require.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error": "Booking is already decided"}`, w.Body.String())
	})

	t.Run("attached public error is written when the handler never responds", func(t *testing.T) {
		engine := newEngine(func(c *gin.Context) {
			_ = c.Error(gin.Error{
				Err:  errors.New("boom"),
				Type: gin.ErrorTypePublic,
				Meta: httperr.Response{Status: http.StatusNotFound, Error: "Not found"},
			})
		})

		w := perform(engine)

		require.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Not found"}`, w.Body.String())
	})

	t.Run("unhandled error without meta falls back to 500", func(t *testing.T) {
		engine := newEngine(func(c *gin.Context) {
			_ = c.Error(errors.New("boom"))
		})

		w := perform(engine)

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
	})
}
