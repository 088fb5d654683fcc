package estimate

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid rate-table keys.
var (
	ErrUnknownScope     = errors.New("unknown painting scope")
	ErrUnknownPrepLevel = errors.New("unknown prep level")
)

// RangeError reports an input outside its allowed bounds.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}
