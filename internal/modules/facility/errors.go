package facility

import "errors"

var ErrValidation = errors.New("validation error")
