package repository

import "errors"

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("record not found")
