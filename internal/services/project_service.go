package services

import (
	"time"

	"projectconnect/internal/models"
	"projectconnect/internal/repositories"
	"projectconnect/internal/services/dto"
	"projectconnect/pkg/apperrors"
)

type ProjectService interface {
	Create(actor string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(name string) (*dto.ProjectResponse, error)
	GetProjects() ([]*dto.ProjectResponse, error)
	GetProjectsByNames(names []string) ([]*dto.ProjectResponse, error)
	Search(query string) ([]*dto.ProjectResponse, error)
	Complete(actor, name string) (*dto.ProjectResponse, error)
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, userRepo repositories.UserRepository) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// Create registers a new project. The actor becomes its creator and first
// confirmed member.
func (s *projectService) Create(actor string, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	creator, err := s.userRepo.FindByUsername(actor)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewNotFoundError("user", "User not found: "+actor)
		}
		return nil, err
	}

	exists, err := s.projectRepo.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewAlreadyExistsError("project", "Project name already taken: "+req.Name)
	}

	project := &models.Project{
		Name:         req.Name,
		Creator:      actor,
		Description:  req.Description,
		IsInProgress: true,
		StartDate:    time.Now(),
	}
	project.SetAttributeSet(models.CategorySkills, req.Skills)
	project.SetAttributeSet(models.CategoryProgrammingLanguages, req.ProgrammingLanguages)
	project.SetAttributeSet(models.CategoryFrameworks, req.Frameworks)
	project.SetMemberNames([]string{actor})
	project.SetInviteeNames(nil)
	project.SetRequesterNames(nil)

	if err := s.projectRepo.Create(project); err != nil {
		if apperrors.Is(err, repositories.ErrProjectAlreadyExists) {
			return nil, apperrors.NewAlreadyExistsError("project", "Project name already taken: "+req.Name)
		}
		return nil, err
	}

	creator.SetProjectNames(append(creator.ProjectNames(), project.Name))
	if err := s.userRepo.Update(creator); err != nil {
		return nil, err
	}

	return dto.NewProjectResponse(project), nil
}

func (s *projectService) GetProject(name string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(name)
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(project), nil
}

func (s *projectService) GetProjects() ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindAll()
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponses(projects), nil
}

func (s *projectService) GetProjectsByNames(names []string) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.FindByNames(names)
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponses(projects), nil
}

func (s *projectService) Search(query string) ([]*dto.ProjectResponse, error) {
	projects, err := s.projectRepo.Search(query)
	if err != nil {
		return nil, err
	}
	return dto.NewProjectResponses(projects), nil
}

// Complete marks the project finished. Creator only; completing twice is
// an invalid transition.
func (s *projectService) Complete(actor, name string) (*dto.ProjectResponse, error) {
	project, err := s.findProject(name)
	if err != nil {
		return nil, err
	}

	if project.Creator != actor {
		return nil, apperrors.NewUnauthorizedActorError("only the project creator can complete the project")
	}
	if !project.IsInProgress {
		return nil, apperrors.NewInvalidTransitionError("project is already completed")
	}

	now := time.Now()
	project.IsInProgress = false
	project.CompletionDate = &now

	if err := s.projectRepo.Update(project); err != nil {
		return nil, err
	}
	return dto.NewProjectResponse(project), nil
}

func (s *projectService) findProject(name string) (*models.Project, error) {
	project, err := s.projectRepo.FindByName(name)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.NewNotFoundError("project", "Project not found: "+name)
		}
		return nil, err
	}
	return project, nil
}
