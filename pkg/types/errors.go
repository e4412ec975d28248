package types

import "errors"

// Store operation errors.
var (
	ErrNotFound      = errors.New("recipe not found")
	ErrGroupNotFound = errors.New("revision group not found")
	ErrDuplicateLink = errors.New("duplicate ingredient or tag in revision")
)

// Graph validation errors, returned by Recipe.Validate before any row is
// written.
var (
	ErrInvalidTitle    = errors.New("title must not be empty")
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidUnit     = errors.New("invalid unit")
	ErrInvalidCategory = errors.New("invalid ingredient category")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidStep     = errors.New("invalid instruction step")
	ErrInvalidServings = errors.New("servings must be positive")
	ErrInvalidTime     = errors.New("prep and cook times must not be negative")
)
