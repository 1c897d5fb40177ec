package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/alwaha/restaurant-backend/internal/config"
	"github.com/alwaha/restaurant-backend/internal/jwtmiddleware"
)

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, config.EnsureAdmin(env.DB, "admin", "s3cret"))

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/login", map[string]string{
		"username": "admin",
		"password": "s3cret",
	})
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var data struct {
		Token string `json:"token"`
	}
	decodeData(t, rec, &data)
	require.NotEmpty(t, data.Token)
}

func TestAdminLoginBadPassword(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, config.EnsureAdmin(env.DB, "admin", "s3cret"))

	rec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/login", map[string]string{
		"username": "admin",
		"password": "wrong",
	})
	require.NoError(t, env.Auth.Login(c))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	resp := decodeEnvelope(t, rec)
	require.False(t, resp.Success)
}

func TestAdminOnlyMiddleware(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, config.EnsureAdmin(env.DB, "admin", "s3cret"))

	e := echo.New()
	e.GET("/guarded", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, jwtmiddleware.AdminOnly(env.JWTSecret))

	// No token.
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Garbage token.
	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.token")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// Real token from the login handler.
	loginRec, c := env.doJSONRequest(http.MethodPost, "/api/v1/admin/login", map[string]string{
		"username": "admin",
		"password": "s3cret",
	})
	require.NoError(t, env.Auth.Login(c))

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &resp))

	req = httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+resp.Data.Token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
