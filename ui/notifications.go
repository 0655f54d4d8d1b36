// Package ui provides the interactive hosts for VPN Launcher.
// This file contains desktop notifications for action outcomes.
package ui

import (
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/yllada/vpn-launcher/common"
)

// NotificationType represents the type of notification
type NotificationType int

const (
	NotificationInfo NotificationType = iota
	NotificationSuccess
	NotificationError
)

// Notification represents a desktop notification
type Notification struct {
	Title   string
	Message string
	Type    NotificationType
	Icon    string
}

// Notifier delivers notifications.
type Notifier interface {
	Notify(n Notification) error
}

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = "/org/freedesktop/Notifications"
	notificationsMethod  = "org.freedesktop.Notifications.Notify"
)

// urgency returns the freedesktop urgency hint for the type.
func (t NotificationType) urgency() byte {
	switch t {
	case NotificationError:
		return 2 // critical
	case NotificationSuccess:
		return 1 // normal
	default:
		return 0 // low
	}
}

func (n Notification) icon() string {
	if n.Icon != "" {
		return n.Icon
	}
	switch n.Type {
	case NotificationError:
		return "network-vpn-error"
	case NotificationSuccess:
		return "network-vpn"
	default:
		return common.DefaultIconName
	}
}

// DesktopNotifier sends notifications over the session bus.
type DesktopNotifier struct {
	conn *dbus.Conn
}

// NewDesktopNotifier connects to the shared session bus.
func NewDesktopNotifier() (*DesktopNotifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("connecting to session bus: %w", err)
	}
	return &DesktopNotifier{conn: conn}, nil
}

// Notify implements Notifier.
func (d *DesktopNotifier) Notify(n Notification) error {
	obj := d.conn.Object(notificationsService, dbus.ObjectPath(notificationsPath))
	hints := map[string]dbus.Variant{
		"urgency":       dbus.MakeVariant(n.Type.urgency()),
		"desktop-entry": dbus.MakeVariant(common.AppID),
	}

	call := obj.Call(notificationsMethod, 0,
		common.AppName, // app_name
		uint32(0),      // replaces_id
		n.icon(),       // app_icon
		n.Title,
		n.Message,
		[]string{}, // actions
		hints,
		int32(-1), // expire_timeout: server default
	)
	if call.Err != nil {
		return fmt.Errorf("sending notification: %w", call.Err)
	}
	return nil
}

// logNotifier is used when no notification server is reachable.
type logNotifier struct{}

func (logNotifier) Notify(n Notification) error {
	common.LogInfo("%s: %s", n.Title, n.Message)
	return nil
}

// DefaultNotifier returns a DesktopNotifier, or a notifier that only logs
// when the session bus is unavailable.
func DefaultNotifier() Notifier {
	notifier, err := NewDesktopNotifier()
	if err != nil {
		common.LogWarn("Desktop notifications unavailable: %v", err)
		return logNotifier{}
	}
	return notifier
}

// actionNotification describes the outcome of toggling a connection.
func actionNotification(name string, connecting bool, err error) Notification {
	if err != nil {
		return Notification{
			Title:   "VPN Error",
			Message: name + ": " + err.Error(),
			Type:    NotificationError,
		}
	}
	if connecting {
		return Notification{
			Title:   "VPN Connected",
			Message: "Connected to " + name,
			Type:    NotificationSuccess,
		}
	}
	return Notification{
		Title:   "VPN Disconnected",
		Message: "Disconnected from " + name,
		Type:    NotificationInfo,
		Icon:    "network-vpn-disconnected",
	}
}
