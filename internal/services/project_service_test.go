package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectconnect/internal/models"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"
)

func newProjectFixture(t *testing.T) (*fakeUserRepo, *fakeProjectRepo, ProjectService) {
	t.Helper()
	users := newFakeUserRepo()
	projects := newFakeProjectRepo()

	for _, name := range []string{"alice", "bob"} {
		u := models.User{Username: name, Name: name}
		u.SetProjectNames(nil)
		u.SetInvitationNames(nil)
		u.SetRequestNames(nil)
		require.NoError(t, users.Create(&u))
	}

	return users, projects, NewProjectService(projects, users)
}

func TestCreateProject(t *testing.T) {
	users, projects, svc := newProjectFixture(t)

	resp, err := svc.Create("alice", &dto.CreateProjectRequest{
		Name:        "atlas",
		Description: "distributed atlas service",
		Skills:      []string{"Distributed Systems"},
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.Creator)
	assert.True(t, resp.IsInProgress)
	// The creator is the first confirmed member.
	assert.Equal(t, []string{"alice"}, resp.Users)

	stored, err := projects.FindByName("atlas")
	require.NoError(t, err)
	assert.Equal(t, []string{"Distributed Systems"}, stored.AttributeSet(models.CategorySkills))

	alice, _ := users.FindByUsername("alice")
	assert.Equal(t, []string{"atlas"}, alice.ProjectNames())
}

func TestCreateProject_DuplicateName(t *testing.T) {
	_, _, svc := newProjectFixture(t)

	_, err := svc.Create("alice", &dto.CreateProjectRequest{Name: "atlas"})
	require.NoError(t, err)

	_, err = svc.Create("bob", &dto.CreateProjectRequest{Name: "atlas"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErrorCode(t, err))
}

func TestCreateProject_UnknownCreator(t *testing.T) {
	_, _, svc := newProjectFixture(t)

	_, err := svc.Create("ghost", &dto.CreateProjectRequest{Name: "atlas"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, appErrorCode(t, err))
}

func TestCompleteProject(t *testing.T) {
	_, projects, svc := newProjectFixture(t)

	_, err := svc.Create("alice", &dto.CreateProjectRequest{Name: "atlas"})
	require.NoError(t, err)

	resp, err := svc.Complete("alice", "atlas")
	require.NoError(t, err)
	assert.False(t, resp.IsInProgress)
	require.NotNil(t, resp.CompletionDate)

	stored, _ := projects.FindByName("atlas")
	assert.False(t, stored.IsInProgress)
}

func TestCompleteProject_CreatorOnly(t *testing.T) {
	_, _, svc := newProjectFixture(t)

	_, err := svc.Create("alice", &dto.CreateProjectRequest{Name: "atlas"})
	require.NoError(t, err)

	_, err = svc.Complete("bob", "atlas")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeForbidden, appErrorCode(t, err))
}

func TestCompleteProject_Twice(t *testing.T) {
	_, _, svc := newProjectFixture(t)

	_, err := svc.Create("alice", &dto.CreateProjectRequest{Name: "atlas"})
	require.NoError(t, err)

	_, err = svc.Complete("alice", "atlas")
	require.NoError(t, err)

	_, err = svc.Complete("alice", "atlas")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeInvalidTransition, appErrorCode(t, err))
}
