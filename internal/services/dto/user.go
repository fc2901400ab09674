package dto

import "projectconnect/internal/models"

// UserResponse is the public view of a user profile.
type UserResponse struct {
	Username             string                 `json:"username"`
	Name                 string                 `json:"name"`
	Age                  int                    `json:"age"`
	Region               string                 `json:"region"`
	Education            string                 `json:"education"`
	Industry             string                 `json:"industry"`
	Bio                  string                 `json:"bio"`
	CurrentEmployment    models.Employment      `json:"currentEmployment"`
	PastEmployment       []models.Employment    `json:"pastEmployment"`
	Skills               []models.WeightedSkill `json:"skills"`
	ProgrammingLanguages []models.WeightedSkill `json:"programmingLanguages"`
	Frameworks           []models.WeightedSkill `json:"frameworks"`
	Projects             []string               `json:"projects"`
	Invitations          []string               `json:"invitations"`
	Requests             []string               `json:"requests"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		Username:  user.Username,
		Name:      user.Name,
		Age:       user.Age,
		Region:    user.Region,
		Education: user.Education,
		Industry:  user.Industry,
		Bio:       user.Bio,
		CurrentEmployment: models.Employment{
			Position: user.CurrentPosition,
			Company:  user.CurrentCompany,
		},
		PastEmployment:       user.GetPastEmployment(),
		Skills:               user.SkillsIn(models.CategorySkills),
		ProgrammingLanguages: user.SkillsIn(models.CategoryProgrammingLanguages),
		Frameworks:           user.SkillsIn(models.CategoryFrameworks),
		Projects:             user.ProjectNames(),
		Invitations:          user.InvitationNames(),
		Requests:             user.RequestNames(),
	}
}

func NewUserResponses(users []models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

type LookupUsersRequest struct {
	Usernames []string `json:"usernames" validate:"required"`
}
