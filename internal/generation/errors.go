package generation

import "errors"

// Common errors returned by generator implementations.
var (
	// ErrGenerationFailed is returned when the external model call fails
	// for any general reason (network, quota, service error).
	ErrGenerationFailed = errors.New("failed to generate learning content")

	// ErrInvalidResponse is returned when the model's response is not a
	// parseable JSON array of the expected shape.
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrEmptyPrompt is returned when a generator is invoked with an
	// empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")

	// ErrInvalidConfig is returned when a generator is constructed with
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
