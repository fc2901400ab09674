package dto

type InviteRequest struct {
	Username string `json:"username" validate:"required"`
}

// MembershipResponse returns the updated pair after a successful
// transition so callers can re-render without a second fetch.
type MembershipResponse struct {
	Success bool             `json:"success"`
	User    *UserResponse    `json:"user,omitempty"`
	Project *ProjectResponse `json:"project,omitempty"`
}
