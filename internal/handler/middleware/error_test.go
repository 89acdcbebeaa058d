//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"couponbid/internal/handler/httperr"
	"couponbid/internal/handler/middleware"
	"couponbid/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.ErrorHandler())
	return r
}

func TestErrorHandler(t *testing.T) {
	t.Run("aborted handler renders the public error body", func(t *testing.T) {
		r := newErrorTestRouter()
		r.GET("/boom", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errs.New("state clash"), "Auction already resolved", nil)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.JSONEq(t, `{"error": "Auction already resolved"}`, w.Body.String())
	})

	t.Run("unwritten public error is rendered from its meta", func(t *testing.T) {
		r := newErrorTestRouter()
		r.GET("/meta", func(c *gin.Context) {
			resp := httperr.Response{Status: http.StatusNotFound, Error: "Coupon not found"}
			_ = c.Error(gin.Error{Err: errs.New("missing row"), Type: gin.ErrorTypePublic, Meta: resp})
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/meta", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Coupon not found"}`, w.Body.String())
	})

	t.Run("panic recovers to a generic 500", func(t *testing.T) {
		r := newErrorTestRouter()
		r.GET("/panic", func(c *gin.Context) {
			panic("unexpected")
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, w.Body.String())
	})
}
