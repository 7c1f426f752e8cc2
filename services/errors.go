package services

import "errors"

// ErrNotFound is returned when an operation targets an id that does not
// exist. Controllers map it to 404; raw storage errors stay server-side.
var ErrNotFound = errors.New("record not found")
