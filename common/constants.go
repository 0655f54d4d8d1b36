// Package common provides shared constants, types, and utilities
// used across VPN Launcher.
package common

// Application metadata.
const (
	// AppID is the unique identifier for the application.
	AppID = "com.vpnlauncher.app"
	// AppName is the display name of the application.
	AppName = "VPN Launcher"
	// ConfigDirName is the name of the configuration directory.
	ConfigDirName = "vpn-launcher"
)

// File names used by the application.
const (
	ConfigFileName   = "config.yaml"
	LogFileName      = "vpn-launcher.log"
	FallbackIconName = "vpn-launcher.png"
)

// Plugin defaults.
const (
	// DefaultTrigger is the prefix that activates the plugin.
	DefaultTrigger = "vpn "
	// DefaultTool is the command-line tool used to toggle connections.
	DefaultTool = "nmcli"
	// DefaultIconName is the icon theme name used for result items.
	DefaultIconName = "network-wireless"
)

// NetworkManager D-Bus names.
const (
	NMServiceName       = "org.freedesktop.NetworkManager"
	NMSettingsPath      = "/org/freedesktop/NetworkManager/Settings"
	NMSettingsInterface = "org.freedesktop.NetworkManager.Settings"
	NMConnectionIface   = "org.freedesktop.NetworkManager.Settings.Connection"
	NMConnectionTypeVPN = "vpn"
	NMConnectionSection = "connection"
)

// Log levels accepted in the configuration file.
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)
