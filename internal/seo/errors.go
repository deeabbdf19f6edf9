package seo

import (
	"errors"
	"fmt"
)

// ErrDuplicate is returned by stores when an insert hits a uniqueness
// constraint. Orchestrators treat it as "the row appeared concurrently" and
// re-read instead of failing.
var ErrDuplicate = errors.New("duplicate row")

// ValidationError reports malformed or out-of-range input. The message names
// the offending value to aid debugging.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Message)
}

// NotFoundError reports a referenced entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}
