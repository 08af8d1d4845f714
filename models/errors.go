package models

import "errors"

// ErrInvalidBirthData is returned when birth date or time strings cannot be parsed.
var ErrInvalidBirthData = errors.New("invalid birth data")
