package core

import "errors"

// Common errors.
var (
	// ErrNotFound reports a missing backing file, template, or article body.
	ErrNotFound = errors.New("not found")

	// ErrParse reports stored data or markup that could not be decoded.
	ErrParse = errors.New("malformed data")

	// ErrSerialize reports a record that could not be encoded for storage.
	ErrSerialize = errors.New("record cannot be serialized")
)
