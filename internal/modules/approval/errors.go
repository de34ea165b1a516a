package approval

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrAlreadyResolved         = errors.New("request already resolved")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
