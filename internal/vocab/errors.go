package vocab

import (
	"errors"
	"fmt"
)

// ErrUnknownCategoryValue is matched by every UnknownCategoryValueError.
var ErrUnknownCategoryValue = errors.New("unknown category value")

// UnknownCategoryValueError is returned when a value is looked up that is
// not a member of its category's canonical set.
type UnknownCategoryValueError struct {
	Category   string
	Value      string
	Suggestion string // Closest canonical name, empty if nothing is similar enough
}

func (e *UnknownCategoryValueError) Error() string {
	var msg string
	if e.Category != "" {
		msg = fmt.Sprintf("unknown %s: %q", e.Category, e.Value)
	} else {
		msg = fmt.Sprintf("unknown value: %q", e.Value)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", e.Suggestion)
	}
	return msg
}

// Is reports whether target is ErrUnknownCategoryValue.
func (e *UnknownCategoryValueError) Is(target error) bool {
	return target == ErrUnknownCategoryValue
}
