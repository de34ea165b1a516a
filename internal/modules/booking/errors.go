package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrForbidden               = errors.New("forbidden")
	ErrNotAvailable            = errors.New("facility not available")
	ErrSlotTaken               = errors.New("slot already booked")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrGroupEditUnsupported    = errors.New("editing a multi-day series is not supported")
)
