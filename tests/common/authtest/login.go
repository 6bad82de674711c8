//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"meeting-room-approval/internal/handler/dto/request"
	"meeting-room-approval/internal/pkg/cookie"
	"meeting-room-approval/tests/common/dbtest"
	"meeting-room-approval/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Username: username, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// CreateAndLogin inserts a user with dbtest.DefaultPassword and logs them in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username, role string) (int64, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, username, role)
	return id, LoginUser(t, router, username, dbtest.DefaultPassword)
}

func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, "/api/auth/logout", nil, cookies, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
