package services

import "errors"

// Domain errors surfaced to the API boundary. All are recoverable by the
// caller retrying the form.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrEmailTaken         = errors.New("email already registered")
	ErrEmailNotFound      = errors.New("email not found")
	ErrInvalidType        = errors.New("unknown campaign type")
	ErrInvalidStatus      = errors.New("unknown status")
	ErrInvalidSegment     = errors.New("unknown contact segment")
)

// MinPasswordLength is the registration password floor.
const MinPasswordLength = 6
