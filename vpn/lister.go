// Package vpn provides VPN profile discovery through NetworkManager.
// This file contains the Lister, which enumerates VPN profiles.
package vpn

import (
	"context"
	"fmt"
	"time"

	"github.com/yllada/vpn-launcher/common"
)

// Lister enumerates the VPN profiles known to NetworkManager.
// Every call queries the service again; nothing is cached.
type Lister struct {
	service SettingsService
	log     common.Logger
}

// NewLister creates a Lister over service.
func NewLister(service SettingsService) *Lister {
	return &Lister{
		service: service,
		log:     common.GetLogger(),
	}
}

// List returns the VPN profiles in the service's enumeration order.
// A failure talking to the service fails the whole call. A profile whose
// settings cannot be parsed is skipped.
func (l *Lister) List(ctx context.Context) ([]Connection, error) {
	start := time.Now()
	defer func() {
		l.log.Debug("Listing VPN connections took %s", time.Since(start))
	}()

	paths, err := l.service.ListConnections(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing connections: %w", err)
	}

	connections := make([]Connection, 0, len(paths))
	for _, path := range paths {
		settings, err := l.service.GetSettings(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("reading settings of %s: %w", path, err)
		}

		section, err := ParseConnectionSection(settings)
		if err != nil {
			l.log.Warn("Skipping profile %s: %v", path, err)
			continue
		}

		if !section.IsVPN() {
			continue
		}

		connections = append(connections, Connection{
			Name:      section.ID,
			Connected: section.HasTimestamp,
			UUID:      section.UUID,
			Path:      path,
		})
	}

	return connections, nil
}
