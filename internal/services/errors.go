package services

import "errors"

// Common service errors
var (
	ErrUnsupportedFormat = errors.New("unsupported export format")
)
