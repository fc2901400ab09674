package dto

import (
	"time"

	"projectconnect/internal/models"
)

type CreateProjectRequest struct {
	Name                 string   `json:"name" validate:"required,min=1,max=100"`
	Description          string   `json:"description"`
	Skills               []string `json:"skills"`
	ProgrammingLanguages []string `json:"programmingLanguages"`
	Frameworks           []string `json:"frameworks"`
}

type ProjectResponse struct {
	Name                 string     `json:"name"`
	Creator              string     `json:"creator"`
	Description          string     `json:"description"`
	IsInProgress         bool       `json:"isInProgress"`
	StartDate            time.Time  `json:"startDate"`
	CompletionDate       *time.Time `json:"completionDate,omitempty"`
	Skills               []string   `json:"skills"`
	ProgrammingLanguages []string   `json:"programmingLanguages"`
	Frameworks           []string   `json:"frameworks"`
	Users                []string   `json:"users"`
	Invitees             []string   `json:"invitees"`
	Requests             []string   `json:"requests"`
}

func NewProjectResponse(project *models.Project) *ProjectResponse {
	return &ProjectResponse{
		Name:                 project.Name,
		Creator:              project.Creator,
		Description:          project.Description,
		IsInProgress:         project.IsInProgress,
		StartDate:            project.StartDate,
		CompletionDate:       project.CompletionDate,
		Skills:               project.AttributeSet(models.CategorySkills),
		ProgrammingLanguages: project.AttributeSet(models.CategoryProgrammingLanguages),
		Frameworks:           project.AttributeSet(models.CategoryFrameworks),
		Users:                project.MemberNames(),
		Invitees:             project.InviteeNames(),
		Requests:             project.RequesterNames(),
	}
}

func NewProjectResponses(projects []models.Project) []*ProjectResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, NewProjectResponse(&projects[i]))
	}
	return out
}

type LookupProjectsRequest struct {
	Names []string `json:"names" validate:"required"`
}
