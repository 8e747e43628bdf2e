package main

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

// Named colors accepted alongside hex notation.
var namedColors = map[string]color.NRGBA{
	"black":     {0x00, 0x00, 0x00, 0xFF},
	"darkgray":  {0x44, 0x44, 0x44, 0xFF},
	"darkgrey":  {0x44, 0x44, 0x44, 0xFF},
	"gray":      {0x88, 0x88, 0x88, 0xFF},
	"grey":      {0x88, 0x88, 0x88, 0xFF},
	"lightgray": {0xCC, 0xCC, 0xCC, 0xFF},
	"lightgrey": {0xCC, 0xCC, 0xCC, 0xFF},
	"white":     {0xFF, 0xFF, 0xFF, 0xFF},
	"red":       {0xFF, 0x00, 0x00, 0xFF},
	"green":     {0x00, 0xFF, 0x00, 0xFF},
	"blue":      {0x00, 0x00, 0xFF, 0xFF},
	"yellow":    {0xFF, 0xFF, 0x00, 0xFF},
	"cyan":      {0x00, 0xFF, 0xFF, 0xFF},
	"magenta":   {0xFF, 0x00, 0xFF, 0xFF},
	"aqua":      {0x00, 0xFF, 0xFF, 0xFF},
	"fuchsia":   {0xFF, 0x00, 0xFF, 0xFF},
	"lime":      {0x00, 0xFF, 0x00, 0xFF},
	"maroon":    {0x80, 0x00, 0x00, 0xFF},
	"navy":      {0x00, 0x00, 0x80, 0xFF},
	"olive":     {0x80, 0x80, 0x00, 0xFF},
	"purple":    {0x80, 0x00, 0x80, 0xFF},
	"silver":    {0xC0, 0xC0, 0xC0, 0xFF},
	"teal":      {0x00, 0x80, 0x80, 0xFF},
}

// parseColor accepts #RGB, #RRGGBB, #AARRGGBB or a color name.
func parseColor(s string) (color.NRGBA, error) {
	value := strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(value)]; ok {
		return c, nil
	}
	if !strings.HasPrefix(value, "#") || !isHexDigits(value[1:]) {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	alpha := uint8(0xFF)
	if len(value) == 9 {
		a, err := strconv.ParseUint(value[1:3], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		value = "#" + value[3:]
	}

	if len(value) != 4 && len(value) != 7 {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func isHexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// hexString formats an opaque color as #RRGGBB, or #AARRGGBB when translucent.
func hexString(c color.NRGBA) string {
	rgb := strings.ToUpper(colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex())
	if c.A == 0xFF {
		return rgb
	}
	return fmt.Sprintf("#%02X%s", c.A, rgb[1:])
}
