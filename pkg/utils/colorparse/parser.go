// Package colorparse provides parsing of CSS-like color strings
// into image/color RGBA values.
//
// This is a minimal, dependency-free implementation covering the hex,
// rgb()/rgba() and named forms accepted on icon generator command lines.
package colorparse

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	// ErrEmptyColor is returned when the input string is empty
	ErrEmptyColor = errors.New("empty color string")

	// ErrInvalidColor is returned when the input matches no supported form
	ErrInvalidColor = errors.New("invalid color string")

	// ErrChannelRange is returned when a channel value falls outside 0-255
	ErrChannelRange = errors.New("color channel out of range")
)

// named holds the color words accepted alongside numeric forms. The brand
// entries match the built-in icon palettes.
var named = map[string]color.RGBA{
	"white":       {R: 255, G: 255, B: 255, A: 255},
	"black":       {R: 0, G: 0, B: 0, A: 255},
	"transparent": {},
	"feed-blue":   {R: 33, G: 150, B: 243, A: 255},
	"night":       {R: 30, G: 30, B: 30, A: 255},
	"flame":       {R: 255, G: 126, B: 0, A: 255},
	"amber":       {R: 255, G: 165, B: 0, A: 255},
}

// Parse converts a color string into a color.RGBA.
//
// Accepted forms:
//   - "#RGB" shorthand hex, each nibble doubled
//   - "#RRGGBB" hex with implicit full alpha
//   - "#RRGGBBAA" hex with explicit alpha
//   - "rgb(r, g, b)" decimal channels 0-255
//   - "rgba(r, g, b, a)" with alpha as 0-255 or a 0.0-1.0 fraction
//   - named colors such as "white", "black", "transparent"
//
// Examples:
//
//	Parse("#2196F3") => color.RGBA{33, 150, 243, 255}
//	Parse("rgb(30, 30, 30)") => color.RGBA{30, 30, 30, 255}
//	Parse("rgba(255, 255, 255, 0.5)") => color.RGBA{255, 255, 255, 128}
//	Parse("white") => color.RGBA{255, 255, 255, 255}
func Parse(input string) (color.RGBA, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return color.RGBA{}, ErrEmptyColor
	}

	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(s, ")") {
		return parseFunc(s[5:len(s)-1], true)
	}
	if strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(s, ")") {
		return parseFunc(s[4:len(s)-1], false)
	}

	return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, input)
}

// MustParse is like Parse but panics on error.
// This is useful for static palette definitions that are known to be valid.
func MustParse(input string) color.RGBA {
	c, err := Parse(input)
	if err != nil {
		panic(fmt.Sprintf("colorparse.MustParse: %v", err))
	}
	return c
}

// Format renders a color as lowercase hex, omitting the alpha
// component when it is fully opaque.
func Format(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// parseHex handles the 3, 6 and 8 digit hex bodies (leading '#' removed)
func parseHex(body string) (color.RGBA, error) {
	expand := func(nibbles string) string {
		var b strings.Builder
		for _, ch := range nibbles {
			b.WriteRune(ch)
			b.WriteRune(ch)
		}
		return b.String()
	}

	switch len(body) {
	case 3:
		body = expand(body)
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: #%s", ErrInvalidColor, body)
	}

	val, err := strconv.ParseUint(body, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: #%s", ErrInvalidColor, body)
	}

	if len(body) == 6 {
		val = val<<8 | 0xff
	}

	return color.RGBA{
		R: uint8(val >> 24),
		G: uint8(val >> 16),
		B: uint8(val >> 8),
		A: uint8(val),
	}, nil
}

// parseFunc handles the comma separated rgb()/rgba() bodies
func parseFunc(body string, withAlpha bool) (color.RGBA, error) {
	parts := strings.Split(body, ",")
	want := 3
	if withAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.RGBA{}, fmt.Errorf("%w: expected %d channels, got %d", ErrInvalidColor, want, len(parts))
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, parts[i])
		}
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("%w: %d", ErrChannelRange, v)
		}
		channels[i] = uint8(v)
	}

	alpha := uint8(255)
	if withAlpha {
		raw := strings.TrimSpace(parts[3])
		if strings.Contains(raw, ".") {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil || f < 0 || f > 1 {
				return color.RGBA{}, fmt.Errorf("%w: alpha %q", ErrChannelRange, raw)
			}
			alpha = uint8(f*255 + 0.5)
		} else {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("%w: alpha %q", ErrInvalidColor, raw)
			}
			if v < 0 || v > 255 {
				return color.RGBA{}, fmt.Errorf("%w: alpha %d", ErrChannelRange, v)
			}
			alpha = uint8(v)
		}
	}

	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}
