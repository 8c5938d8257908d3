package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateUsername(t *testing.T) {
	app, _ := setupApp(t)

	registerUser(t, app, "alice", "student")

	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  "alice",
		"email":     "alice2@example.com",
		"password":  "password123",
		"full_name": "Second Alice",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// A distinct username and email succeeds.
	registerUser(t, app, "alice2", "student")
}

func TestRegisterMissingFields(t *testing.T) {
	app, _ := setupApp(t)

	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"email":    "noname@example.com",
		"password": "password123",
	}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username is required", decodeBody(t, resp)["error"])
}

func TestRegisterOmitsPasswordHash(t *testing.T) {
	app, _ := setupApp(t)

	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  "bob",
		"email":     "bob@example.com",
		"password":  "password123",
		"full_name": "Bob",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody(t, resp)["user"].(map[string]any)
	_, present := user["password_hash"]
	assert.False(t, present)
	assert.Equal(t, "student", user["role"])
}

// Any caller can self-assign an elevated role at registration. This is a
// deliberate property of the training target.
func TestRegisterSelfAssignedRole(t *testing.T) {
	app, _ := setupApp(t)

	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  "mallory",
		"email":     "mallory@example.com",
		"password":  "password123",
		"full_name": "Mallory",
		"role":      "admin",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody(t, resp)["user"].(map[string]any)
	assert.Equal(t, "admin", user["role"])

	token := loginUser(t, app, "mallory")
	me := perform(t, app, jsonRequest(http.MethodGet, "/api/auth/me", token, nil))
	require.Equal(t, http.StatusOK, me.StatusCode)
	assert.Equal(t, "admin", decodeBody(t, me)["role"])
}

func TestLoginGenericError(t *testing.T) {
	app, _ := setupApp(t)

	registerUser(t, app, "carol", "student")

	wrongPassword := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "carol",
		"password": "wrong",
	}))
	unknownUser := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "nobody",
		"password": "password123",
	}))

	require.Equal(t, http.StatusUnauthorized, wrongPassword.StatusCode)
	require.Equal(t, http.StatusUnauthorized, unknownUser.StatusCode)
	assert.Equal(t, decodeBody(t, wrongPassword), decodeBody(t, unknownUser))
}

func TestLoginByEmail(t *testing.T) {
	app, _ := setupApp(t)

	registerUser(t, app, "dave", "student")

	resp := perform(t, app, jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "dave@example.com",
		"password": "password123",
	}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMissingOrUnknownToken(t *testing.T) {
	app, _ := setupApp(t)

	noToken := perform(t, app, jsonRequest(http.MethodGet, "/api/classes", "", nil))
	assert.Equal(t, http.StatusUnauthorized, noToken.StatusCode)

	badToken := perform(t, app, jsonRequest(http.MethodGet, "/api/classes", "deadbeef", nil))
	assert.Equal(t, http.StatusUnauthorized, badToken.StatusCode)
}

// A token stays valid server-side until it is explicitly revoked; a client
// that merely discards its copy leaves the session alive.
func TestTokenValidUntilRevoked(t *testing.T) {
	app, _ := setupApp(t)

	registerUser(t, app, "erin", "student")
	first := loginUser(t, app, "erin")
	second := loginUser(t, app, "erin")
	require.NotEqual(t, first, second)

	// Both concurrent sessions resolve.
	resp := perform(t, app, jsonRequest(http.MethodGet, "/api/auth/me", first, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = perform(t, app, jsonRequest(http.MethodGet, "/api/auth/me", second, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Explicit logout revokes only the presented token.
	resp = perform(t, app, jsonRequest(http.MethodPost, "/api/auth/logout", first, nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = perform(t, app, jsonRequest(http.MethodGet, "/api/auth/me", first, nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp = perform(t, app, jsonRequest(http.MethodGet, "/api/auth/me", second, nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateProfile(t *testing.T) {
	app, _ := setupApp(t)

	registerUser(t, app, "frank", "student")
	token := loginUser(t, app, "frank")

	resp := perform(t, app, jsonRequest(http.MethodPut, "/api/auth/profile", token, map[string]string{
		"full_name": "Franklin Tester",
		"email":     "franklin@example.com",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := decodeBody(t, resp)["user"].(map[string]any)
	assert.Equal(t, "Franklin Tester", user["full_name"])
	assert.Equal(t, "franklin@example.com", user["email"])

	// A fresh login reflects the change.
	resp = perform(t, app, jsonRequest(http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "franklin@example.com",
		"password": "password123",
	}))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
