package api

import (
	"net/http"

	"couponbid/internal/handler/httperr"
	"couponbid/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

var errMissingAuthContext = errs.New("user id missing from request context")

// abortMissingAuth handles the case where an authenticated route runs
// without the middleware having stored a user id.
func abortMissingAuth(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errMissingAuthContext, "Internal server error", nil)
}
