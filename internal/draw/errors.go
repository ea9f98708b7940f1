package draw

import "errors"

var (
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrQuantityTooLarge  = errors.New("quantity exceeds the maximum for draws with repetition")
	ErrInvalidRange      = errors.New("min_value must not exceed max_value")
	ErrInsufficientRange = errors.New("quantity exceeds the number of values in range")
	ErrInvalidGroupSize  = errors.New("members_per_group must be at least 1")
	ErrEmptySource       = errors.New("no names available to draw from")
	ErrBoundOutOfRange   = errors.New("min_value and max_value must be between -9999 and 9999")

	ErrTooFewParticipants = errors.New("at least 2 participants are required")
	ErrWeightTooLarge     = errors.New("weight must not exceed 1000000")
)
