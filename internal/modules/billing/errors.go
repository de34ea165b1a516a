package billing

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrInvoiceNotFound = errors.New("invoice not found")
	ErrUnitNotFound    = errors.New("unit not found")
)
