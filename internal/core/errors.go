package core

import "errors"

// ErrInvalidArgument is returned when a value handed to a constructor or the
// configuration layer is malformed. It is fatal at startup.
var ErrInvalidArgument = errors.New("invalid argument")
