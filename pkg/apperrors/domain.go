package apperrors

import "net/http"

// Domain factories. The lifecycle manager distinguishes four recoverable
// failure classes; all of them surface as 4xx responses, never as 5xx.

// NewNotFoundError reports a missing user, project or notification.
func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// NewAlreadyExistsError reports a uniqueness conflict (username, project
// name, duplicate skill vote).
func NewAlreadyExistsError(domain, message string) *AppError {
	return New(CodeAlreadyExists, domain, message, http.StatusConflict)
}

// NewInvalidTransitionError reports a membership action whose precondition
// does not hold in the current state. Retries of an already-applied
// transition land here and must leave state untouched.
func NewInvalidTransitionError(message string) *AppError {
	return New(CodeInvalidTransition, "membership", message, http.StatusConflict)
}

// NewUnauthorizedActorError reports an actor attempting a creator-only
// membership action on a project they do not own.
func NewUnauthorizedActorError(message string) *AppError {
	return New(CodeForbidden, "membership", message, http.StatusForbidden)
}

// NewInvalidInputError reports semantically invalid input that passed
// structural validation (e.g. a self-vote).
func NewInvalidInputError(domain, message string) *AppError {
	return New(CodeValidationFailed, domain, message, http.StatusBadRequest)
}

// NewConflictError reports a concurrent-update conflict from the storage
// layer; callers may retry with fresh state.
func NewConflictError(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}
