package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord is returned when a board source yields a card that is
// missing a required field.
var ErrInvalidRecord = errors.New("invalid record")

// RecordError describes which field of which card was missing.
type RecordError struct {
	Group string
	Index int
	Field string
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: section %q item %d: missing %s", ErrInvalidRecord, e.Group, e.Index, e.Field)
}

func (e *RecordError) Unwrap() error { return ErrInvalidRecord }
