package service

import "fmt"

// GenerationServiceError is a custom error type for generation service errors.
type GenerationServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for GenerationServiceError.
func (e *GenerationServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("generation service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("generation service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationServiceError) Unwrap() error {
	return e.Err
}

// NewGenerationServiceError creates a new GenerationServiceError.
func NewGenerationServiceError(operation, message string, err error) *GenerationServiceError {
	return &GenerationServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
