// Package ui provides the interactive hosts for VPN Launcher.
//
// Both hosts drive the launcher plugin through the QueryHandler interface:
//
//   - Picker: A bubbletea terminal launcher. Each keystroke issues a new
//     query; results of superseded queries are dropped.
//   - Tray: A system tray menu with one checkbox entry per VPN connection.
//
// Actions started from either host are run to completion so their outcome
// can be shown, in the status line or as a desktop notification.
//
// # File Organization
//
//   - picker.go: Terminal picker
//   - styles.go: Picker styles
//   - tray.go: System tray host
//   - icons.go: Icon generation for the tray and the bundled item icon
//   - icontheme.go: Freedesktop icon theme lookup
//   - notifications.go: Desktop notifications over the session bus
package ui
