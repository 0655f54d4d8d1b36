// Package common provides shared constants, types, utilities, and interfaces
// used throughout VPN Launcher.
//
// This package serves as the foundation for cross-cutting concerns:
//
//   - Constants: Application-wide constants like the plugin trigger and file names
//   - Errors: Sentinel errors for consistent error handling across packages
//   - Logger: Leveled logging backed by logrus with optional rotated file output
//   - Utils: Helpers for configuration and cache directories
//
// # Usage
//
//	// Use logger
//	common.LogInfo("Toggling %s", connectionName)
//
//	// Check errors
//	if errors.Is(err, common.ErrToolNotFound) {
//	    // Plugin cannot be loaded
//	}
package common
