// Package vpn provides VPN profile discovery through NetworkManager.
// This file contains the Connection snapshot type.
package vpn

import (
	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"
)

// Verbs accepted by "nmcli connection".
const (
	VerbUp   = "up"
	VerbDown = "down"
)

// ConnectionStatus represents the state of a VPN profile as reported
// by NetworkManager.
type ConnectionStatus int

const (
	// StatusDisconnected indicates the profile carries no session marker.
	StatusDisconnected ConnectionStatus = iota
	// StatusConnected indicates the profile carries a session marker.
	StatusConnected
)

// String returns a human-readable representation of the connection status.
func (s ConnectionStatus) String() string {
	switch s {
	case StatusDisconnected:
		return "Disconnected"
	case StatusConnected:
		return "Connected"
	default:
		return "Unknown"
	}
}

// Connection is an immutable snapshot of one VPN profile.
type Connection struct {
	// Name is the profile's display identifier (connection.id).
	Name string
	// Connected is true when the profile's connection section has a timestamp.
	Connected bool
	// UUID is the profile's connection.uuid, or uuid.Nil when absent.
	UUID uuid.UUID
	// Path is the profile's object path on the bus.
	Path dbus.ObjectPath
}

// Status returns the connection status.
func (c Connection) Status() ConnectionStatus {
	if c.Connected {
		return StatusConnected
	}
	return StatusDisconnected
}

// Verb returns the action that inverts the current state.
func (c Connection) Verb() string {
	if c.Connected {
		return VerbDown
	}
	return VerbUp
}
