//go:build e2e

package helper

import (
	"net/http"
	"testing"

	"couponbid/internal/handler/dto/request"
	"couponbid/internal/pkg/cookie"
	"couponbid/tests/common/dbtest"
	"couponbid/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type AuthTestHelper struct {
	pool *pgxpool.Pool
}

func NewAuthTestHelper(pool *pgxpool.Pool) *AuthTestHelper {
	return &AuthTestHelper{pool: pool}
}

func (h *AuthTestHelper) CreateTestUser(t *testing.T, email, name string, balance int64) uuid.UUID {
	t.Helper()
	return dbtest.CreateTestUser(t, h.pool, email, name, balance)
}

func (h *AuthTestHelper) LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessToken := ""
	if c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName); c != nil {
		accessToken = c.Value
	}
	require.NotEmpty(t, accessToken, "access token not found in cookies")

	return accessToken
}

func (h *AuthTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, name string, balance int64) (uuid.UUID, string) {
	t.Helper()
	id := h.CreateTestUser(t, email, name, balance)
	token := h.LoginUser(t, router, email, dbtest.TestUserPassword)
	return id, token
}
