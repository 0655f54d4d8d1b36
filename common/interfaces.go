// Package common provides shared constants, types, and utilities
// used across VPN Launcher.
package common

// Logger defines the interface for leveled logging.
// *AppLogger satisfies it; tests substitute their own.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}
