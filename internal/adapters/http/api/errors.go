package api

import "errors"

// Sentinel kinds for API errors. Error strings double as the response
// detail, so their wording is part of the wire contract.
var (
	ErrMissingEmail = errors.New("Email is required")
)
