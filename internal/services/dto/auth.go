package dto

import "projectconnect/internal/models"

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token,omitempty"`
	Username string `json:"username,omitempty"`
	Message  string `json:"message,omitempty"`
}

// RegisterRequest mirrors the registration form: profile attributes,
// employment history, and the initial (unendorsed) skill selections.
type RegisterRequest struct {
	Username             string              `json:"username" validate:"required,min=3,max=32"`
	Password             string              `json:"password" validate:"required,min=8"`
	Email                string              `json:"email" validate:"omitempty,email"`
	Name                 string              `json:"name" validate:"required"`
	Age                  int                 `json:"age" validate:"required,gt=0"`
	Region               string              `json:"region"`
	Education            string              `json:"education"`
	Industry             string              `json:"industry"`
	Bio                  string              `json:"bio"`
	CurrentEmployment    models.Employment   `json:"currentEmployment"`
	PastEmployment       []models.Employment `json:"pastEmployment"`
	Skills               []string            `json:"skills"`
	ProgrammingLanguages []string            `json:"programmingLanguages"`
	Frameworks           []string            `json:"frameworks"`
}
