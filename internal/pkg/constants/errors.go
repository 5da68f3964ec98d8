package constants

import "net/http"

// CodedError is an error that maps to a specific http status code.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized       = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie  = NewCodedError("missing auth cookie", http.StatusUnauthorized)
	ErrInvalidAuthToken   = NewCodedError("invalid auth token", http.StatusUnauthorized)
	ErrInvalidCredentials = NewCodedError("invalid username or password", http.StatusUnauthorized)
	ErrUsernameTaken      = NewCodedError("username already taken", http.StatusConflict)
	ErrInvalidRange       = NewCodedError("invalid date range", http.StatusBadRequest)
	ErrNoChannels         = NewCodedError("no channels connected", http.StatusNotFound)
	ErrInvalidOAuthState  = NewCodedError("invalid oauth state", http.StatusBadRequest)
)
