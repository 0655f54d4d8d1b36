// Package common provides shared constants, types, and utilities
// used across VPN Launcher.
package common

import "errors"

// Sentinel errors for plugin operations.
// These can be checked with errors.Is() for proper error handling.
var (
	// Initialization errors.
	ErrToolNotFound   = errors.New("required tool not found")
	ErrNotInitialized = errors.New("plugin not initialized")

	// NetworkManager errors.
	ErrServiceUnavailable = errors.New("network configuration service unavailable")
	ErrInvalidSettings    = errors.New("invalid connection settings")

	// Lookup errors.
	ErrNoMatch        = errors.New("no matching connection")
	ErrAmbiguousMatch = errors.New("more than one matching connection")

	// Action errors.
	ErrActionFailed = errors.New("action failed")

	// Configuration errors.
	ErrConfigLoad = errors.New("failed to load configuration")
	ErrConfigSave = errors.New("failed to save configuration")
)

// WrapError wraps an error with additional context.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{
		msg: message,
		err: err,
	}
}

type wrappedError struct {
	msg string
	err error
}

func (e *wrappedError) Error() string {
	return e.msg + ": " + e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}
