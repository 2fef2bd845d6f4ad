package booking

import "fmt"

// FlowError is a user-facing booking-flow failure with a stable code.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newValidationError(msg string) error {
	return &FlowError{Code: "validationError", Message: msg}
}

func newSelectionError(msg string) error {
	return &FlowError{Code: "selectionError", Message: msg}
}

func newTransitionError(msg string) error {
	return &FlowError{Code: "transitionError", Message: msg}
}

// IsValidation reports whether err is a local validation failure (no upstream
// call was made).
func IsValidation(err error) bool {
	fe, ok := err.(*FlowError)
	return ok && (fe.Code == "validationError" || fe.Code == "selectionError")
}
