package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrNoTargetApp is returned when target_app is empty.
	ErrNoTargetApp = errors.New("config: target_app must not be empty")

	// ErrNoInjector is returned when the ydotool binary setting is empty.
	ErrNoInjector = errors.New("config: ydotool must not be empty")

	// ErrBadLogLevel is returned for log levels the tools do not accept.
	ErrBadLogLevel = errors.New("config: invalid log_level")
)
