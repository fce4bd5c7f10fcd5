// Package common defines shared constants and sentinel errors used across
// the application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input validation errors.
	ErrEmptyInput = errors.New("empty input")

	// Bookmark store errors.
	ErrDuplicateIP     = errors.New("ip already bookmarked")
	ErrNotFound        = errors.New("not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)
