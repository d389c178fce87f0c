package config

import "errors"

// Sentinel kinds callers can match with errors.Is: validation failures
// versus problems reading the file or environment layers.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("loading config failed")
)
