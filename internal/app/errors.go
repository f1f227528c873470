package app

import "errors"

var (
	// ErrInit marks a failure to create the window or graphics context.
	ErrInit = errors.New("init failure")
	// ErrDraw marks a failed per-frame renderer call. It ends the run.
	ErrDraw = errors.New("draw failure")
	// ErrConfig marks an invalid configuration value.
	ErrConfig = errors.New("invalid config")
)
