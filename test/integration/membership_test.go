package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"projectconnect/test/helpers"
)

func TestMembership_RequestAcceptFlow(t *testing.T) {
	ts := GetTestServer(t)

	creatorToken := helpers.RegisterAndLogin(t, ts, "mem_alice", []string{"Go"})
	candidateToken := helpers.RegisterAndLogin(t, ts, "mem_bob", []string{"Go"})
	helpers.CreateProject(t, ts, creatorToken, "mem_atlas", []string{"Go"})

	// Candidate requests to join.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects/mem_atlas/requests", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// The creator sees the notification.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", creatorToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "new_request")

	// The creator accepts; the candidate becomes a member.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/projects/mem_atlas/requests/mem_bob/accept", creatorToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/projects/mem_atlas", candidateToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "mem_bob")

	// A second accept of the same request is an invalid transition.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/projects/mem_atlas/requests/mem_bob/accept", creatorToken, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, body, "INVALID_TRANSITION")
}

func TestMembership_InviteFlow(t *testing.T) {
	ts := GetTestServer(t)

	creatorToken := helpers.RegisterAndLogin(t, ts, "inv_alice", nil)
	inviteeToken := helpers.RegisterAndLogin(t, ts, "inv_bob", nil)
	helpers.CreateProject(t, ts, creatorToken, "inv_atlas", nil)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/projects/inv_atlas/invitations", creatorToken,
		map[string]interface{}{"username": "inv_bob"})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// Only the creator may invite.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/projects/inv_atlas/invitations", inviteeToken,
		map[string]interface{}{"username": "inv_alice"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	// The invitee accepts.
	res, body = ts.SendRequest(t, http.MethodPut, "/api/v1/projects/inv_atlas/invitations/accept", inviteeToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "inv_bob")
}

func TestRecommendations(t *testing.T) {
	ts := GetTestServer(t)

	creatorToken := helpers.RegisterAndLogin(t, ts, "rec_alice", []string{"Go", "SQL"})
	helpers.RegisterAndLogin(t, ts, "rec_bob", []string{"Go", "SQL"})
	helpers.CreateProject(t, ts, creatorToken, "rec_atlas", []string{"Go", "SQL"})

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/projects/rec_atlas/recommendations/users", creatorToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "rec_bob")

	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/compatibility/rec_atlas", creatorToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "breakdown")
}

func TestVocabulary_Public(t *testing.T) {
	ts := GetTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/vocabulary/skills", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, body, "skills")
}
