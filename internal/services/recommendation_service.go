package services

import (
	"sort"

	"projectconnect/internal/algorithms"
	"projectconnect/internal/models"
	"projectconnect/internal/repositories"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"
)

// RecommendationService ranks candidates by compatibility score. Ranking
// is a pure batch computation over loaded snapshots: no writes, safe to
// run concurrently for independent projects.
type RecommendationService interface {
	RankUsersForProject(projectName string, limit int) ([]*dto.UserScore, error)
	RankProjectsForUser(username string, limit int) ([]*dto.ProjectScore, error)
	Compatibility(username, projectName string) (*dto.CompatibilityResponse, error)
}

type recommendationService struct {
	userRepo    repositories.UserRepository
	projectRepo repositories.ProjectRepository
}

func NewRecommendationService(
	userRepo repositories.UserRepository,
	projectRepo repositories.ProjectRepository,
) RecommendationService {
	return &recommendationService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
	}
}

// RankUsersForProject scores every non-member user against the project and
// returns the top candidates, sorted descending. Equal scores keep their
// input order; an undefined score ranks as 0.
func (s *recommendationService) RankUsersForProject(projectName string, limit int) ([]*dto.UserScore, error) {
	project, err := s.projectRepo.FindByName(projectName)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found: "+projectName)
		}
		return nil, err
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	memberNames := make(map[string]bool)
	for _, name := range project.MemberNames() {
		memberNames[name] = true
	}

	var members []models.User
	for _, u := range users {
		if memberNames[u.Username] {
			members = append(members, u)
		}
	}

	scores := make([]*dto.UserScore, 0, len(users))
	for i := range users {
		if memberNames[users[i].Username] {
			continue
		}
		score, _ := algorithms.Score(&users[i], project, members)
		scores = append(scores, &dto.UserScore{
			User:  dto.NewUserResponse(&users[i]),
			Score: score,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	return truncateUserScores(scores, limit), nil
}

// RankProjectsForUser scores every in-progress project the user does not
// already belong to.
func (s *recommendationService) RankProjectsForUser(username string, limit int) ([]*dto.ProjectScore, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found: "+username)
		}
		return nil, err
	}

	projects, err := s.projectRepo.FindInProgress()
	if err != nil {
		return nil, err
	}

	scores := make([]*dto.ProjectScore, 0, len(projects))
	for i := range projects {
		project := &projects[i]
		if project.MembershipStateOf(username) == models.MembershipMember {
			continue
		}

		members, err := s.userRepo.FindByUsernames(project.MemberNames())
		if err != nil {
			return nil, err
		}

		score, _ := algorithms.Score(user, project, members)
		scores = append(scores, &dto.ProjectScore{
			Project: dto.NewProjectResponse(project),
			Score:   score,
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	return truncateProjectScores(scores, limit), nil
}

// Compatibility computes the scalar plus its attribute-level breakdown for
// a single pair.
func (s *recommendationService) Compatibility(username, projectName string) (*dto.CompatibilityResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found: "+username)
		}
		return nil, err
	}

	project, err := s.projectRepo.FindByName(projectName)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found: "+projectName)
		}
		return nil, err
	}

	members, err := s.userRepo.FindByUsernames(project.MemberNames())
	if err != nil {
		return nil, err
	}

	score, defined := algorithms.Score(user, project, members)
	return &dto.CompatibilityResponse{
		Score:     score,
		Defined:   defined,
		Breakdown: algorithms.ComputeBreakdown(user, project, members),
	}, nil
}

func truncateUserScores(scores []*dto.UserScore, limit int) []*dto.UserScore {
	if limit > 0 && len(scores) > limit {
		return scores[:limit]
	}
	return scores
}

func truncateProjectScores(scores []*dto.ProjectScore, limit int) []*dto.ProjectScore {
	if limit > 0 && len(scores) > limit {
		return scores[:limit]
	}
	return scores
}
