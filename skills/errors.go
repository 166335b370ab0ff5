package skills

import "errors"

// Sentinel errors for the skills registry.
var (
	ErrNotFound      = errors.New("skill not found")
	ErrAlreadyExists = errors.New("skill already registered")
	ErrEmptyName     = errors.New("skill name is empty")
	ErrNoKeywords    = errors.New("skill has no keywords")
)
