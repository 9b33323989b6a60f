// errors/errors.go
package errors

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserConflict       = errors.New("username or email already exists")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrNoteNotFound    = errors.New("note not found")
	ErrInvalidNoteData = errors.New("invalid note data")

	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")

	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
)
