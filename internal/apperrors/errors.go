package apperrors

import "errors"

// ErrNotFound indicates that a requested check, location, or line item could
// not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that a uniqueness constraint was violated, such as
// adding a location whose name already exists on the check.
var ErrDuplicate = errors.New("resource already exists")
