package core

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a fill color as a CSS-style hex string ("#rrggbb").
// The empty Color marks a cleared pixel.
type Color string

// Predefined colors for game elements.
const (
	ColorNone  Color = ""
	ColorRed   Color = "#ff0000"
	ColorGreen Color = "#00ff00"
)

// ParseColor validates and normalizes a hex color string.
// Accepts "#rgb" and "#rrggbb" forms; anything else is an ErrInvalidArgument.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorNone, fmt.Errorf("%w: empty color", ErrInvalidArgument)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return ColorNone, fmt.Errorf("%w: color %q: %v", ErrInvalidArgument, s, err)
	}
	return Color(c.Hex()), nil
}

// Valid reports whether c parses as a hex color.
func (c Color) Valid() bool {
	_, err := ParseColor(string(c))
	return err == nil
}

// String returns the hex representation.
func (c Color) String() string {
	return string(c)
}
