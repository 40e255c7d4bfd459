package repository

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrNotFound  = errors.New("project not found")
	ErrMissingID = errors.New("project id is required")
)
