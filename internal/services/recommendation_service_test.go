package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectconnect/internal/models"
	"projectconnect/pkg/apperrors"
)

func seedUser(t *testing.T, users *fakeUserRepo, username string, skills ...string) {
	t.Helper()
	u := models.User{Username: username, Name: username}
	u.SetSkillsIn(models.CategorySkills, unendorsed(skills))
	u.SetProjectNames(nil)
	u.SetInvitationNames(nil)
	u.SetRequestNames(nil)
	require.NoError(t, users.Create(&u))
}

func newRecommendationFixture(t *testing.T) (*fakeUserRepo, *fakeProjectRepo, RecommendationService) {
	t.Helper()
	users := newFakeUserRepo()
	projects := newFakeProjectRepo()

	seedUser(t, users, "alice")
	seedUser(t, users, "bob", "Go", "SQL")
	seedUser(t, users, "carol", "Go")
	seedUser(t, users, "dave", "UI/UX")

	p := models.Project{Name: "atlas", Creator: "alice", IsInProgress: true}
	p.SetAttributeSet(models.CategorySkills, []string{"Go", "SQL"})
	p.SetMemberNames([]string{"alice"})
	p.SetInviteeNames(nil)
	p.SetRequesterNames(nil)
	require.NoError(t, projects.Create(&p))

	return users, projects, NewRecommendationService(users, projects)
}

func TestRankUsersForProject_DescendingAndMembersExcluded(t *testing.T) {
	_, _, svc := newRecommendationFixture(t)

	scores, err := svc.RankUsersForProject("atlas", 10)
	require.NoError(t, err)

	// alice is already a member and never appears as a candidate.
	require.Len(t, scores, 3)
	assert.Equal(t, "bob", scores[0].User.Username)
	assert.Equal(t, "carol", scores[1].User.Username)
	assert.Equal(t, "dave", scores[2].User.Username)

	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].Score, scores[i].Score)
	}
}

func TestRankUsersForProject_StableTies(t *testing.T) {
	users, _, svc := newRecommendationFixture(t)

	// Two indistinguishable candidates keep their input (username) order.
	seedUser(t, users, "eve", "UI/UX")
	seedUser(t, users, "frank", "UI/UX")

	scores, err := svc.RankUsersForProject("atlas", 10)
	require.NoError(t, err)
	require.Len(t, scores, 5)

	var tied []string
	for _, s := range scores {
		switch s.User.Username {
		case "dave", "eve", "frank":
			tied = append(tied, s.User.Username)
		}
	}
	assert.Equal(t, []string{"dave", "eve", "frank"}, tied)
}

func TestRankUsersForProject_Truncation(t *testing.T) {
	_, _, svc := newRecommendationFixture(t)

	scores, err := svc.RankUsersForProject("atlas", 2)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, "bob", scores[0].User.Username)
}

func TestRankUsersForProject_UnknownProject(t *testing.T) {
	_, _, svc := newRecommendationFixture(t)

	_, err := svc.RankUsersForProject("phantom", 10)
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, appErrorCode(t, err))
}

func TestRankProjectsForUser_SkipsOwnAndCompleted(t *testing.T) {
	_, projects, svc := newRecommendationFixture(t)

	// bob is already a member of orion; zeta is finished.
	orion := models.Project{Name: "orion", Creator: "bob", IsInProgress: true}
	orion.SetMemberNames([]string{"bob"})
	require.NoError(t, projects.Create(&orion))

	zeta := models.Project{Name: "zeta", Creator: "alice", IsInProgress: false}
	zeta.SetMemberNames([]string{"alice"})
	require.NoError(t, projects.Create(&zeta))

	scores, err := svc.RankProjectsForUser("bob", 10)
	require.NoError(t, err)

	require.Len(t, scores, 1)
	assert.Equal(t, "atlas", scores[0].Project.Name)
}

func TestCompatibility(t *testing.T) {
	_, _, svc := newRecommendationFixture(t)

	resp, err := svc.Compatibility("bob", "atlas")
	require.NoError(t, err)

	assert.True(t, resp.Defined)
	assert.GreaterOrEqual(t, resp.Score, 0.0)
	assert.LessOrEqual(t, resp.Score, 1.0)

	require.NotNil(t, resp.Breakdown.Skills)
	assert.Equal(t, []string{"Go", "SQL"}, resp.Breakdown.Skills.Required)
	assert.Equal(t, 1.0, resp.Breakdown.Skills.Score)
}

func TestCompatibility_Undefined(t *testing.T) {
	_, projects, svc := newRecommendationFixture(t)

	// No attribute sets, no members: nothing to compare.
	bare := models.Project{Name: "bare", Creator: "alice", IsInProgress: true}
	bare.SetMemberNames(nil)
	require.NoError(t, projects.Create(&bare))

	resp, err := svc.Compatibility("bob", "bare")
	require.NoError(t, err)
	assert.False(t, resp.Defined)
	assert.Equal(t, 0.0, resp.Score)
}
