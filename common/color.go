package common

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Color is a linear RGBA color with float32 channels in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorFromHex converts a 0xRRGGBB value into an opaque Color.
//
// Parameters:
//   - hex: the packed 24-bit color
//
// Returns:
//   - Color: the unpacked color with alpha 1
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float32((hex>>16)&0xff) / 255,
		G: float32((hex>>8)&0xff) / 255,
		B: float32(hex&0xff) / 255,
		A: 1,
	}
}

// ParseHexColor parses "#rrggbb", "0xrrggbb" or "rrggbb" into an opaque Color.
//
// Parameters:
//   - s: the textual color
//
// Returns:
//   - Color: the parsed color
//   - error: an error if s is not a 6 digit hex color
func ParseHexColor(s string) (Color, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "#"), "0x")
	if len(trimmed) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: expected 6 digits", s)
	}
	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return ColorFromHex(uint32(v)), nil
}

// Scale multiplies the RGB channels by f and keeps alpha.
func (c Color) Scale(f float32) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f, A: c.A}
}

// Vec4 returns the color as an mgl32.Vec4.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Array returns the color as a [4]float32, the layout used in vertex data.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// Hex packs the RGB channels back into 0xRRGGBB.
func (c Color) Hex() uint32 {
	to8 := func(v float32) uint32 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 0xff
		}
		return uint32(v*255 + 0.5)
	}
	return to8(c.R)<<16 | to8(c.G)<<8 | to8(c.B)
}
