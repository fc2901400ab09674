package services

import (
	"projectconnect/internal/auth"
	"projectconnect/internal/models"
	"projectconnect/internal/repositories"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"
)

type UserService interface {
	Register(req *dto.RegisterRequest) (*dto.UserResponse, error)
	GetUser(username string) (*dto.UserResponse, error)
	GetUsers() ([]*dto.UserResponse, error)
	GetUsersByUsernames(usernames []string) ([]*dto.UserResponse, error)
	Search(query string) ([]*dto.UserResponse, error)
	VoteForSkill(actor, targetUsername string, category models.SkillCategory, skillName string) (*dto.UserResponse, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(req *dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.ExistsByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewAlreadyExistsError("user", "Username already taken: "+req.Username)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:        req.Username,
		PasswordHash:    hash,
		Email:           req.Email,
		Name:            req.Name,
		Age:             req.Age,
		Region:          req.Region,
		Education:       req.Education,
		Industry:        req.Industry,
		Bio:             req.Bio,
		CurrentPosition: req.CurrentEmployment.Position,
		CurrentCompany:  req.CurrentEmployment.Company,
	}
	user.SetPastEmployment(req.PastEmployment)
	user.SetSkillsIn(models.CategorySkills, unendorsed(req.Skills))
	user.SetSkillsIn(models.CategoryProgrammingLanguages, unendorsed(req.ProgrammingLanguages))
	user.SetSkillsIn(models.CategoryFrameworks, unendorsed(req.Frameworks))
	user.SetProjectNames(nil)
	user.SetInvitationNames(nil)
	user.SetRequestNames(nil)

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.NewAlreadyExistsError("user", "Username already taken: "+req.Username)
		}
		return nil, err
	}

	return dto.NewUserResponse(user), nil
}

func (s *userService) GetUser(username string) (*dto.UserResponse, error) {
	user, err := s.findUser(username)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

func (s *userService) GetUsers() ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponses(users), nil
}

func (s *userService) GetUsersByUsernames(usernames []string) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindByUsernames(usernames)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponses(users), nil
}

func (s *userService) Search(query string) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.Search(query)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponses(users), nil
}

// VoteForSkill adds the actor to the voter set of one of the target's
// skills. Voting is a set insert: a second vote by the same user is
// refused and leaves the set unchanged. Users cannot vote on their own
// profile.
func (s *userService) VoteForSkill(actor, targetUsername string, category models.SkillCategory, skillName string) (*dto.UserResponse, error) {
	if actor == targetUsername {
		return nil, apperrors.NewInvalidInputError("user", "cannot vote for your own skill")
	}

	target, err := s.findUser(targetUsername)
	if err != nil {
		return nil, err
	}

	skills := target.SkillsIn(category)
	idx := -1
	for i, skill := range skills {
		if skill.Name == skillName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NewNotFoundError("user", "Skill not found: "+skillName)
	}

	if skills[idx].HasVoter(actor) {
		return nil, apperrors.NewAlreadyExistsError("user", "Already voted for this skill")
	}

	skills[idx].Voters = append(skills[idx].Voters, actor)
	target.SetSkillsIn(category, skills)

	if err := s.userRepo.Update(target); err != nil {
		return nil, err
	}

	return dto.NewUserResponse(target), nil
}

func (s *userService) findUser(username string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found: "+username)
		}
		return nil, err
	}
	return user, nil
}

func unendorsed(names []string) []models.WeightedSkill {
	out := make([]models.WeightedSkill, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, models.WeightedSkill{Name: name, Voters: []string{}})
	}
	return out
}
