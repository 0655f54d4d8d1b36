// Package vpn provides VPN profile discovery through NetworkManager.
// This file parses settings bundles into typed values.
package vpn

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"

	"github.com/yllada/vpn-launcher/common"
)

// Settings is the nested settings bundle of one profile, as returned by
// org.freedesktop.NetworkManager.Settings.Connection.GetSettings (a{sa{sv}}).
type Settings map[string]map[string]dbus.Variant

// ConnectionSection holds the fields of the "connection" section
// that the lister cares about.
type ConnectionSection struct {
	ID           string
	Type         string
	UUID         uuid.UUID
	HasTimestamp bool
}

// IsVPN reports whether the section describes a VPN profile.
func (s ConnectionSection) IsVPN() bool {
	return s.Type == common.NMConnectionTypeVPN
}

// ParseConnectionSection extracts the connection section from a bundle.
// Missing or wrong-typed required fields yield an error wrapping
// common.ErrInvalidSettings.
func ParseConnectionSection(settings Settings) (ConnectionSection, error) {
	var section ConnectionSection

	raw, ok := settings[common.NMConnectionSection]
	if !ok {
		return section, fmt.Errorf("%w: missing %q section", common.ErrInvalidSettings, common.NMConnectionSection)
	}

	var err error
	if section.Type, err = stringField(raw, "type"); err != nil {
		return section, err
	}
	if section.ID, err = stringField(raw, "id"); err != nil {
		return section, err
	}

	if v, ok := raw["uuid"]; ok {
		s, ok := v.Value().(string)
		if !ok {
			return section, fmt.Errorf("%w: field \"uuid\" has type %s, want string", common.ErrInvalidSettings, v.Signature())
		}
		if section.UUID, err = uuid.Parse(s); err != nil {
			return section, fmt.Errorf("%w: field \"uuid\": %v", common.ErrInvalidSettings, err)
		}
	}

	_, section.HasTimestamp = raw["timestamp"]

	return section, nil
}

func stringField(section map[string]dbus.Variant, key string) (string, error) {
	v, ok := section[key]
	if !ok {
		return "", fmt.Errorf("%w: missing field %q", common.ErrInvalidSettings, key)
	}
	s, ok := v.Value().(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q has type %s, want string", common.ErrInvalidSettings, key, v.Signature())
	}
	return s, nil
}
