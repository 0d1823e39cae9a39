// Package apperr defines the error taxonomy surfaced by the HTTP API.
// The real-time path never surfaces these to clients; failing events are
// logged server-side and dropped.
package apperr

import "fmt"

var (
	ErrValidation = fmt.Errorf("invalid request")
	ErrEmailTaken = fmt.Errorf("email already registered")
	// ErrInvalidCredentials is returned for unknown email and wrong password
	// alike, so a caller cannot enumerate accounts.
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrNotFound           = fmt.Errorf("not found")
)
