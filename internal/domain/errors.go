package domain

import "errors"

// ErrInvalidConfig indicates the department table failed validation.
var ErrInvalidConfig = errors.New("invalid department configuration")
