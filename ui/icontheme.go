// Package ui provides the interactive hosts for VPN Launcher.
// This file resolves freedesktop icon theme names to files.
package ui

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/yllada/vpn-launcher/common"
)

// IconTheme describes where to look for themed icons.
type IconTheme struct {
	// Roots are the "icons" base directories, in priority order.
	Roots []string
	// Pixmaps are flat directories checked after the themes.
	Pixmaps []string
	// Themes are the theme names to search, in priority order.
	Themes []string
	// Sizes are the size directories to search, in priority order.
	Sizes []string
	// Contexts are the context directories within a size.
	Contexts []string
	// Extensions are the file extensions tried for each candidate.
	Extensions []string
}

// DefaultIconTheme returns the lookup order of the XDG base directories.
func DefaultIconTheme() IconTheme {
	home, _ := os.UserHomeDir()

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" && home != "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}

	var roots []string
	if home != "" {
		roots = append(roots, filepath.Join(home, ".icons"))
	}
	if dataHome != "" {
		roots = append(roots, filepath.Join(dataHome, "icons"))
	}
	for _, dir := range filepath.SplitList(dataDirs) {
		if dir != "" {
			roots = append(roots, filepath.Join(dir, "icons"))
		}
	}

	return IconTheme{
		Roots:      roots,
		Pixmaps:    []string{"/usr/share/pixmaps"},
		Themes:     []string{"hicolor", "Adwaita"},
		Sizes:      []string{"scalable", "48x48", "32x32", "24x24", "16x16"},
		Contexts:   []string{"devices", "status", "apps", "places"},
		Extensions: []string{".svg", ".png"},
	}
}

// Lookup returns the path of the first icon file named name, or "".
func (t IconTheme) Lookup(name string) string {
	if name == "" || strings.ContainsRune(name, filepath.Separator) {
		return ""
	}

	for _, root := range t.Roots {
		for _, theme := range t.Themes {
			for _, size := range t.Sizes {
				for _, ctx := range t.Contexts {
					if path := t.find(filepath.Join(root, theme, size, ctx), name); path != "" {
						return path
					}
				}
			}
		}
	}

	for _, dir := range t.Pixmaps {
		if path := t.find(dir, name); path != "" {
			return path
		}
	}
	return ""
}

func (t IconTheme) find(dir, name string) string {
	for _, ext := range t.Extensions {
		path := filepath.Join(dir, name+ext)
		if common.FileExists(path) {
			return path
		}
	}
	return ""
}

// ResolveIcon maps an icon theme name to a file, falling back to the
// bundled icon and finally to the name itself.
func ResolveIcon(name string) string {
	if path := DefaultIconTheme().Lookup(name); path != "" {
		return path
	}
	common.LogDebug("Icon %q not found in theme, using bundled icon", name)
	if path := FallbackIconPath(); path != "" {
		return path
	}
	return name
}
