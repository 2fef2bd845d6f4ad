package user

import "fmt"

// AuthError signals a failed or missing gateway session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authError: %s", e.Message)
}

func newAuthError(msg string) error {
	return &AuthError{Message: msg}
}

// FlowError is a user-facing dashboard-flow failure.
type FlowError struct {
	Message string
}

func (e *FlowError) Error() string {
	return e.Message
}

func newFlowError(msg string) error {
	return &FlowError{Message: msg}
}
