package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ID       string `json:"id"`
		Username string `json:"username"`
		Token    string `json:"token"`
	}
	decodeJSON(t, w, &resp)
	assert.Equal(t, testAdminUser, resp.Username)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestLoginWrongPasswordIs401(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": testAdminUser,
		"password": "not the password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMissingFieldsIs400(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": testAdminUser,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginTokenOpensProtectedRoutes(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decodeJSON(t, w, &resp)

	created := env.doJSON(t, http.MethodPost, "/api/projects", resp.Token, map[string]interface{}{
		"title":       "Side Project",
		"description": "Built on weekends",
	})
	assert.Equal(t, http.StatusCreated, created.Code)
}
