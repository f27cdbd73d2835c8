package calculation

import "fmt"

// InvalidInputError reports a projection input that parsed but is
// semantically out of range. Presentation layers are responsible for
// turning it into user-facing text.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}
