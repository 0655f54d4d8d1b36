// Package vpn provides VPN profile discovery through NetworkManager.
//
// # Architecture
//
// The package is organized around three types:
//
//   - Bus: Owns the system bus connection and calls the NetworkManager
//     settings API. It connects on first use and is closed by its owner.
//   - Lister: Enumerates profiles through a SettingsService and keeps
//     those of type "vpn".
//   - Connection: An immutable snapshot of one VPN profile.
//
// # Listing Flow
//
//  1. Lister calls ListConnections on /org/freedesktop/NetworkManager/Settings
//  2. For each object path it calls GetSettings
//  3. ParseConnectionSection turns the a{sa{sv}} bundle into typed fields
//  4. Profiles of type "vpn" become Connections; a profile is reported as
//     connected when its connection section carries a timestamp
//
// Bus errors abort the listing. Malformed bundles are logged and skipped.
//
// # Thread Safety
//
// Bus guards its lazily opened connection with a mutex. Lister holds no
// mutable state.
package vpn
