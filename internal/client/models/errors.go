package models

import (
	"errors"
	"fmt"
)

// ErrNotFound means a slug is absent from both live and fallback data.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing field or an over-long value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
