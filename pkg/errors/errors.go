package errors

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")
	ErrDuplicate    = errors.New("resource already exists")
	ErrValidation   = errors.New("validation failed")

	// ErrInvalidState is returned when a verification or report transition is
	// attempted from a state that does not allow it.
	ErrInvalidState = errors.New("invalid state for this operation")

	// ErrMissingDocuments is returned when a verification submission is missing
	// one or more of the three required document references.
	ErrMissingDocuments = errors.New("all verification documents are required")

	// ErrMissingReason is returned when a rejection or ban lacks a reason.
	ErrMissingReason = errors.New("reason is required")

	// ErrForbidden is returned when the actor lacks privilege for the action,
	// e.g. banning an admin account.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidTarget is returned when a report names neither or both of a
	// user and a post.
	ErrInvalidTarget = errors.New("report must target exactly one user or post")

	// ErrBanned is returned when a suspended account attempts any
	// authenticated action.
	ErrBanned = errors.New("account suspended")
)
