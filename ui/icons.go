// Package ui provides the interactive hosts for VPN Launcher.
// This file contains icon generation for the tray and the fallback item icon.
package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"github.com/yllada/vpn-launcher/common"
)

// IconConfig defines the configuration for icon generation.
type IconConfig struct {
	Size          int
	FillColor     color.RGBA
	BorderColor   color.RGBA
	AccentColor   color.RGBA
	SymbolColor   color.RGBA
	ShowCheckmark bool
}

// DefaultConnectedIconConfig returns the default config for connected state.
func DefaultConnectedIconConfig() IconConfig {
	return IconConfig{
		Size:          22,
		FillColor:     color.RGBA{56, 142, 60, 255},   // Dark green
		BorderColor:   color.RGBA{76, 175, 80, 255},   // Green
		AccentColor:   color.RGBA{200, 230, 201, 255}, // Light green
		SymbolColor:   color.RGBA{255, 255, 255, 255}, // White
		ShowCheckmark: true,
	}
}

// DefaultDisconnectedIconConfig returns the default config for disconnected state.
func DefaultDisconnectedIconConfig() IconConfig {
	return IconConfig{
		Size:          22,
		FillColor:     color.RGBA{117, 117, 117, 255}, // Dark gray
		BorderColor:   color.RGBA{158, 158, 158, 255}, // Gray
		AccentColor:   color.RGBA{189, 189, 189, 255}, // Light gray
		SymbolColor:   color.RGBA{255, 255, 255, 255}, // White
		ShowCheckmark: false,
	}
}

// DefaultItemIconConfig returns the config for the bundled result-item icon.
func DefaultItemIconConfig() IconConfig {
	return IconConfig{
		Size:        48,
		FillColor:   color.RGBA{25, 118, 210, 255},  // Dark blue
		BorderColor: color.RGBA{66, 165, 245, 255},  // Blue
		AccentColor: color.RGBA{187, 222, 251, 255}, // Light blue
		SymbolColor: color.RGBA{255, 255, 255, 255}, // White
	}
}

// IconGenerator generates PNG icons.
type IconGenerator struct {
	config IconConfig
}

// NewIconGenerator creates a new icon generator with the given config.
func NewIconGenerator(config IconConfig) *IconGenerator {
	return &IconGenerator{config: config}
}

// Generate creates a PNG icon and returns the bytes.
func (g *IconGenerator) Generate() []byte {
	size := g.config.Size
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Draw shield
	g.drawShield(img)

	// Draw symbol (checkmark or lock)
	if g.config.ShowCheckmark {
		g.drawCheckmark(img)
	} else {
		g.drawLock(img)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		common.LogWarn("Could not encode icon: %v", err)
		return nil
	}
	return buf.Bytes()
}

// drawShield draws the shield shape on the image.
func (g *IconGenerator) drawShield(img *image.RGBA) {
	size := g.config.Size
	centerX := float64(size) / 2
	topY := 1.0
	bottomY := float64(size) - 2
	shieldWidth := float64(size) - 4

	isInShield := func(x, y float64) bool {
		relY := (y - topY) / (bottomY - topY)
		if relY < 0 || relY > 1 {
			return false
		}

		var halfWidth float64
		if relY < 0.5 {
			halfWidth = shieldWidth/2 - relY*0.5
		} else {
			progress := (relY - 0.5) * 2
			halfWidth = (shieldWidth/2 - 0.25) * (1 - progress*progress)
		}

		return x >= centerX-halfWidth && x <= centerX+halfWidth
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			fx, fy := float64(x)+0.5, float64(y)+0.5

			if isInShield(fx, fy) {
				isBorder := !isInShield(fx-1, fy) || !isInShield(fx+1, fy) ||
					!isInShield(fx, fy-1) || !isInShield(fx, fy+1)

				if isBorder {
					img.Set(x, y, g.config.BorderColor)
				} else {
					relY := float64(y) / float64(size)
					if relY < 0.3 {
						img.Set(x, y, g.config.AccentColor)
					} else {
						img.Set(x, y, g.config.FillColor)
					}
				}
			}
		}
	}
}

// scale maps a coordinate on the 22px design grid to the icon size.
func (g *IconGenerator) scale(v int) int {
	return v * g.config.Size / 22
}

// setBlock paints the grid cell (x, y) scaled to the icon size.
func (g *IconGenerator) setBlock(img *image.RGBA, x, y int, c color.RGBA) {
	x0, y0 := g.scale(x), g.scale(y)
	x1, y1 := g.scale(x+1), g.scale(y+1)
	if x1 == x0 {
		x1 = x0 + 1
	}
	if y1 == y0 {
		y1 = y0 + 1
	}
	for py := y0; py < y1 && py < g.config.Size; py++ {
		for px := x0; px < x1 && px < g.config.Size; px++ {
			img.Set(px, py, c)
		}
	}
}

// drawCheckmark draws a checkmark symbol on the image.
func (g *IconGenerator) drawCheckmark(img *image.RGBA) {
	// Checkmark points
	points := []struct{ x, y int }{
		{6, 11}, {7, 11}, {7, 12}, {8, 12}, {8, 13}, {9, 13},
		{9, 12}, {10, 12}, {10, 11}, {11, 11}, {11, 10}, {12, 10},
		{12, 9}, {13, 9}, {13, 8}, {14, 8},
	}
	for _, p := range points {
		g.setBlock(img, p.x, p.y, g.config.SymbolColor)
	}
}

// drawLock draws a lock symbol on the image.
func (g *IconGenerator) drawLock(img *image.RGBA) {
	c := g.config.SymbolColor

	// Lock body
	for y := 10; y <= 15; y++ {
		for x := 8; x <= 14; x++ {
			if y == 10 || y == 15 || x == 8 || x == 14 {
				g.setBlock(img, x, y, c)
			}
		}
	}

	// Lock shackle
	for y := 6; y <= 10; y++ {
		if y <= 8 {
			g.setBlock(img, 9, y, c)
			g.setBlock(img, 13, y, c)
		}
		if y == 6 {
			for x := 9; x <= 13; x++ {
				g.setBlock(img, x, y, c)
			}
		}
	}
}

// GenerateConnectedIcon generates the connected state icon.
func GenerateConnectedIcon() []byte {
	gen := NewIconGenerator(DefaultConnectedIconConfig())
	return gen.Generate()
}

// GenerateDisconnectedIcon generates the disconnected state icon.
func GenerateDisconnectedIcon() []byte {
	gen := NewIconGenerator(DefaultDisconnectedIconConfig())
	return gen.Generate()
}

// GenerateItemIcon generates the bundled result-item icon.
func GenerateItemIcon() []byte {
	return NewIconGenerator(DefaultItemIconConfig()).Generate()
}

var (
	fallbackOnce sync.Once
	fallbackPath string
)

// FallbackIconPath writes the bundled item icon to the cache directory once
// and returns its path, or "" if it could not be written.
func FallbackIconPath() string {
	fallbackOnce.Do(func() {
		cacheDir, err := common.GetCacheDir()
		if err != nil {
			common.LogWarn("No cache directory for fallback icon: %v", err)
			return
		}
		path := filepath.Join(cacheDir, common.FallbackIconName)
		if common.FileExists(path) {
			fallbackPath = path
			return
		}
		data := GenerateItemIcon()
		if data == nil {
			return
		}
		if err := os.WriteFile(path, data, 0600); err != nil {
			common.LogWarn("Could not write fallback icon: %v", err)
			return
		}
		fallbackPath = path
	})
	return fallbackPath
}
