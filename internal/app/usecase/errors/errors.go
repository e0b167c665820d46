package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrTokenNotValid = errors.New("token is not valid")
	ErrTokenExpired  = errors.New("token is expired")

	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// ValidationError reports malformed or semantically illegal caller input.
// Details, when set, is echoed to the client next to the message.
type ValidationError struct {
	Message string
	Details map[string]any
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		Message: message,
	}
}

func NewValidationErrorWithDetails(message string, details map[string]any) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

type NotFoundError struct {
	OrderID string
}

func NewNotFoundError(orderID string) *NotFoundError {
	return &NotFoundError{
		OrderID: orderID,
	}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Order %s not found", e.OrderID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
