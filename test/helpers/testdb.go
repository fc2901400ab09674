package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RegisterAndLogin registers a user through the API and returns a bearer
// token for them.
func RegisterAndLogin(t *testing.T, ts *TestServer, username string, skills []string) string {
	t.Helper()

	registerBody := map[string]interface{}{
		"username": username,
		"password": "integration-pass-123",
		"name":     "User " + username,
		"age":      30,
		"skills":   skills,
	}
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration failed: "+body)

	loginBody := map[string]interface{}{
		"username": username,
		"password": "integration-pass-123",
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login failed: "+body)

	var loginResponse struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResponse))
	assert.NotEmpty(t, loginResponse.Token)
	return loginResponse.Token
}

// CreateProject creates a project through the API as the token's user.
func CreateProject(t *testing.T, ts *TestServer, token, name string, skills []string) {
	t.Helper()

	body := map[string]interface{}{
		"name":        name,
		"description": "integration test project",
		"skills":      skills,
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/v1/projects", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "project creation failed: "+resBody)
}
