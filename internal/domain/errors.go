package domain

import "errors"

// ErrIndexOutOfRange reports a position outside a collection.
var ErrIndexOutOfRange = errors.New("index out of range")
