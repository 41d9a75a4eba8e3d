package combo

import "errors"

// Grammar errors
var (
	// ErrInvalidCombo is returned when a combo has no non-modifier key.
	ErrInvalidCombo = errors.New("invalid combo")

	// ErrInvalidSequence is returned when a sequence has no steps.
	ErrInvalidSequence = errors.New("invalid sequence")
)
