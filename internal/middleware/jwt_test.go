package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/utils"
)

func runJWT(t *testing.T, secret, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	mw := JWTAuth(secret)
	err := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)
	return rec, c, reached
}

func TestJWTAuthValidToken(t *testing.T) {
	const secret = "test-secret"
	at, err := utils.NewAccessToken(secret, 42, "CUSTOMER", 5)
	require.NoError(t, err)

	rec, c, reached := runJWT(t, secret, "Bearer "+at.Token)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
	// MapClaims decode numbers as float64.
	assert.Equal(t, float64(42), c.Get("user_id"))
	assert.Equal(t, "CUSTOMER", c.Get("role"))
}

func TestJWTAuthMissingHeader(t *testing.T) {
	rec, _, reached := runJWT(t, "test-secret", "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthNotBearer(t *testing.T) {
	rec, _, reached := runJWT(t, "test-secret", "Basic abc")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	at, err := utils.NewAccessToken("other-secret", 42, "CUSTOMER", 5)
	require.NoError(t, err)

	rec, _, reached := runJWT(t, "test-secret", "Bearer "+at.Token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthGarbageToken(t *testing.T) {
	rec, _, reached := runJWT(t, "test-secret", "Bearer not.a.jwt")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
