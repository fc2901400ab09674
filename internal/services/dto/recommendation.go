package dto

import "projectconnect/internal/algorithms"

// UserScore pairs a candidate user with their compatibility against a
// project. Transient: recomputed on demand, never persisted.
type UserScore struct {
	User  *UserResponse `json:"user"`
	Score float64       `json:"score"`
}

// ProjectScore pairs a candidate project with its compatibility for a user.
type ProjectScore struct {
	Project *ProjectResponse `json:"project"`
	Score   float64          `json:"score"`
}

// CompatibilityResponse carries the scalar plus its attribute breakdown.
// Defined is false when there was no basis for comparison; the score is 0
// in that case.
type CompatibilityResponse struct {
	Score     float64              `json:"score"`
	Defined   bool                 `json:"defined"`
	Breakdown algorithms.Breakdown `json:"breakdown"`
}
