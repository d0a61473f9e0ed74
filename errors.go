package convo

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a message failed validation.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedVersion indicates a conversation file uses an unknown
	// envelope version.
	ErrUnsupportedVersion = errors.New("unsupported version")
)
