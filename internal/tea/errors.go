package tea

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors, comparable with errors.Is().
var (
	// ErrUnknownParameter indicates a sensitivity-analysis parameter name
	// not present in the parameter registry.
	ErrUnknownParameter = constError("unknown sensitivity parameter")

	// ErrNoVariations indicates an empty variation list for a sweep.
	ErrNoVariations = constError("no variations supplied")
)

// ValidationError reports an assumption field that failed a hard constraint.
// No computation proceeds once one is raised.
type ValidationError struct {
	Field string
	Msg   string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid assumption %s: %s", e.Field, e.Msg)
}

func validationErr(field, msg string) *ValidationError {
	return &ValidationError{Field: field, Msg: msg}
}
