package handler

// Only the validation branches are covered here; they return before the
// handler touches the user or token repositories, so no database is needed.

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Durgeshwar-AI/QueueKiller-sub001/internal/config"
)

func newAuthHandler() *AuthHandler {
	return NewAuthHandler(nil, nil, config.Config{})
}

func TestRegisterValidation(t *testing.T) {
	h := newAuthHandler()

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@b.c","password":"longenough"}`},
		{"missing email", `{"name":"Dana","password":"longenough"}`},
		{"missing password", `{"name":"Dana","email":"a@b.c"}`},
		{"short password", `{"name":"Dana","email":"a@b.c","password":"short"}`},
		{"unknown role", `{"name":"Dana","email":"a@b.c","password":"longenough","role":"ADMIN"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newJSONContext(http.MethodPost, "/v1/auth/register", tc.body, 0)
			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestLoginValidation(t *testing.T) {
	h := newAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/v1/auth/login", `{"email":"a@b.c"}`, 0)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(http.MethodPost, "/v1/auth/login", `{"password":"x"}`, 0)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefreshAndLogoutRequireToken(t *testing.T) {
	h := newAuthHandler()

	c, rec := newJSONContext(http.MethodPost, "/v1/auth/refresh", `{}`, 0)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newJSONContext(http.MethodPost, "/v1/auth/logout", `{}`, 0)
	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
