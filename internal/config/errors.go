package config

import "errors"

// Configuration errors.
var (
	// ErrInvalidConfig indicates the file parsed but failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrWatcherClosed indicates the watcher has been closed.
	ErrWatcherClosed = errors.New("config: watcher closed")
)
