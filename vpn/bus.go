// Package vpn provides VPN profile discovery through NetworkManager.
// This file contains the system bus session used to query NetworkManager.
package vpn

import (
	"context"
	"fmt"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/vpn-launcher/common"
)

// SettingsService is the subset of the NetworkManager settings API
// the lister needs.
type SettingsService interface {
	// ListConnections returns the object paths of all connection profiles.
	ListConnections(ctx context.Context) ([]dbus.ObjectPath, error)
	// GetSettings returns the settings bundle of one profile.
	GetSettings(ctx context.Context, path dbus.ObjectPath) (Settings, error)
}

// Bus is a SettingsService backed by the system bus.
// The connection is opened on first use and kept until Close.
type Bus struct {
	mu   sync.Mutex
	conn *dbus.Conn
	dial func() (*dbus.Conn, error)
}

// NewBus returns a Bus that connects to the system bus lazily.
func NewBus() *Bus {
	return &Bus{
		dial: func() (*dbus.Conn, error) {
			return dbus.ConnectSystemBus()
		},
	}
}

func (b *Bus) connection() (*dbus.Conn, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		return b.conn, nil
	}

	conn, err := b.dial()
	if err != nil {
		return nil, fmt.Errorf("%w: connecting to system bus: %v", common.ErrServiceUnavailable, err)
	}
	common.LogDebug("Connected to system bus")
	b.conn = conn
	return conn, nil
}

// ListConnections implements SettingsService.
func (b *Bus) ListConnections(ctx context.Context) ([]dbus.ObjectPath, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	obj := conn.Object(common.NMServiceName, dbus.ObjectPath(common.NMSettingsPath))

	var paths []dbus.ObjectPath
	if err := obj.CallWithContext(ctx, common.NMSettingsInterface+".ListConnections", 0).Store(&paths); err != nil {
		return nil, fmt.Errorf("%w: ListConnections: %v", common.ErrServiceUnavailable, err)
	}
	return paths, nil
}

// GetSettings implements SettingsService.
func (b *Bus) GetSettings(ctx context.Context, path dbus.ObjectPath) (Settings, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	obj := conn.Object(common.NMServiceName, path)

	var settings Settings
	if err := obj.CallWithContext(ctx, common.NMConnectionIface+".GetSettings", 0).Store(&settings); err != nil {
		return nil, fmt.Errorf("%w: GetSettings %s: %v", common.ErrServiceUnavailable, path, err)
	}
	return settings, nil
}

// Close closes the bus connection if one was opened.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	return err
}
