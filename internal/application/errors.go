package application

import "errors"

// Business errors surfaced by the services. Handlers map these to HTTP
// statuses; anything else becomes a generic 500.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("user not authorized")
	ErrAlreadyLiked       = errors.New("post already liked")
	ErrNotLiked           = errors.New("post has not yet been liked")
)
