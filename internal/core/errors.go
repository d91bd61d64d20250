package core

import "errors"

// Domain errors the HTTP layer maps onto status codes. The punch conflicts
// are produced by the write gate before a record is appended, never by the
// derivation engine itself.
var (
	ErrAlreadyClockedIn   = errors.New("already clocked in")
	ErrNotClockedIn       = errors.New("not clocked in")
	ErrAlreadyOnBreak     = errors.New("already on a break")
	ErrNotOnBreak         = errors.New("not currently on a break")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrRecordNotOwned     = errors.New("record belongs to another employee")
)
