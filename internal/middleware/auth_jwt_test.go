package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	auth "app/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret"

func newGuardedEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := config.Config{JWTSecret: testSecret}
	e := echo.New()

	e.GET("/me", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"id":   c.Get(CtxUserIDKey),
			"role": c.Get(CtxUserRoleKey),
		})
	}, AuthJWT(cfg))

	e.GET("/admin", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, AuthJWT(cfg), AdminRoleGuard())

	return e
}

func issueToken(t *testing.T, role model.Role, at time.Time) string {
	t.Helper()

	issuer := auth.NewJWTIssuer(testSecret, auth.AccessTokenTTL)
	token, err := issuer.Issue(7, "t@example.com", role, at)
	require.NoError(t, err)
	return token
}

func doGet(e *echo.Echo, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// Test: tokenなしは401
func TestAuthJWT_NoToken(t *testing.T) {
	e := newGuardedEcho(t)

	rec := doGet(e, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test: Bearer形式でないヘッダは401
func TestAuthJWT_MalformedHeader(t *testing.T) {
	e := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test: 署名が違うtokenは401
func TestAuthJWT_WrongSecret(t *testing.T) {
	e := newGuardedEcho(t)

	other := auth.NewJWTIssuer("other_secret", auth.AccessTokenTTL)
	token, err := other.Issue(7, "t@example.com", model.RoleUser, time.Now())
	require.NoError(t, err)

	rec := doGet(e, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test: 期限切れtokenは401
func TestAuthJWT_Expired(t *testing.T) {
	e := newGuardedEcho(t)

	token := issueToken(t, model.RoleUser, time.Now().Add(-9*time.Hour))
	rec := doGet(e, "/me", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// Test: 正常tokenはcontextにid/roleが入る
func TestAuthJWT_Valid(t *testing.T) {
	e := newGuardedEcho(t)

	token := issueToken(t, model.RoleUser, time.Now())
	rec := doGet(e, "/me", token)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7,"role":"user"}`, rec.Body.String())
}

// Test: userは403、adminは通る
func TestAdminRoleGuard(t *testing.T) {
	e := newGuardedEcho(t)

	userToken := issueToken(t, model.RoleUser, time.Now())
	rec := doGet(e, "/admin", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken := issueToken(t, model.RoleAdmin, time.Now())
	rec = doGet(e, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
