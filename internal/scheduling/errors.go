package scheduling

import "fmt"

// InputError is raised at load/validation time and aborts the run: malformed
// time string, unknown day name, a combined room referencing a non-existent
// component, a duplicate class/room id, a negative duration.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newInputError(field, format string, args ...any) *InputError {
	return &InputError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// InternalInvariantViolation is fatal: the AvailabilityMatrix and the
// AccordionGraph disagree (invariant C1). It indicates a bug in the placer,
// never a property of the input data.
type InternalInvariantViolation struct {
	Message string
}

func (e *InternalInvariantViolation) Error() string {
	return "internal invariant violation: " + e.Message
}

func newInvariantViolation(format string, args ...any) *InternalInvariantViolation {
	return &InternalInvariantViolation{Message: fmt.Sprintf(format, args...)}
}
