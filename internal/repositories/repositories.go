package repositories

import "errors"

// ErrNotFound is returned when a record targeted by id does not exist.
var ErrNotFound = errors.New("record not found")
