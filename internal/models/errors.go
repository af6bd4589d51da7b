package models

import "errors"

// Domain-specific errors for board operations
var (
	// ErrEmptyTitle indicates a card or column title that is empty after trimming
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrColumnNotFound indicates a lookup by a column id that no longer exists
	ErrColumnNotFound = errors.New("column not found")

	// ErrCardNotFound indicates a lookup by a card id that no longer exists
	ErrCardNotFound = errors.New("card not found")
)
