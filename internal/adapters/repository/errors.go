package repository

import "errors"

// Sentinel kinds for registry errors. Handlers translate these to HTTP
// statuses with errors.Is.
var (
	ErrActivityNotFound = errors.New("Activity not found")
	ErrAlreadySignedUp  = errors.New("Already signed up")
	ErrNotSignedUp      = errors.New("Not signed up")
	ErrActivityFull     = errors.New("Activity is full")
)
