// Package slotspec provides utilities for parsing and formatting iOS
// app icon slot names
package slotspec

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Slot name layout constants
const (
	NamePrefix = "Icon-App-"
	NameSuffix = ".png"

	// MarketingPoints is the App Store marketing slot size in points
	MarketingPoints = 1024
)

// ErrMalformedName is returned when a slot name does not follow the
// Icon-App-<W>x<H>@<N>x.png layout
var ErrMalformedName = errors.New("malformed icon slot name")

// Slot is a parsed icon slot: a point size plus a display scale factor
type Slot struct {
	Points float64
	Scale  int
}

// Parse decodes a slot filename like "Icon-App-83.5x83.5@2x.png"
// Width and height must agree; icons are always square
func Parse(name string) (Slot, error) {
	body, ok := strings.CutPrefix(name, NamePrefix)
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q missing %q prefix", ErrMalformedName, name, NamePrefix)
	}
	body, ok = strings.CutSuffix(body, NameSuffix)
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q missing %q suffix", ErrMalformedName, name, NameSuffix)
	}

	dims, scalePart, ok := strings.Cut(body, "@")
	if !ok {
		return Slot{}, fmt.Errorf("%w: %q missing scale", ErrMalformedName, name)
	}

	width, height, ok := strings.Cut(dims, "x")
	if !ok || width != height {
		return Slot{}, fmt.Errorf("%w: %q is not square", ErrMalformedName, name)
	}

	points, err := strconv.ParseFloat(width, 64)
	if err != nil || points <= 0 {
		return Slot{}, fmt.Errorf("%w: bad point size %q", ErrMalformedName, width)
	}

	scaleDigits, ok := strings.CutSuffix(scalePart, "x")
	if !ok {
		return Slot{}, fmt.Errorf("%w: bad scale %q", ErrMalformedName, scalePart)
	}
	scale, err := strconv.Atoi(scaleDigits)
	if err != nil || scale < 1 {
		return Slot{}, fmt.Errorf("%w: bad scale %q", ErrMalformedName, scalePart)
	}

	return Slot{Points: points, Scale: scale}, nil
}

// String formats the canonical slot filename
func (s Slot) String() string {
	return fmt.Sprintf("%s%sx%s@%dx%s", NamePrefix, formatPoints(s.Points), formatPoints(s.Points), s.Scale, NameSuffix)
}

// Pixels returns the rendered pixel edge length for the slot
func (s Slot) Pixels() int {
	return int(math.Round(s.Points * float64(s.Scale)))
}

// IsMarketing reports whether this is the App Store marketing slot
func (s Slot) IsMarketing() bool {
	return s.Points == MarketingPoints
}

// formatPoints renders point sizes the way Xcode names them: integral
// values without a decimal part, fractional ones with a single digit
func formatPoints(points float64) string {
	if points == math.Trunc(points) {
		return strconv.Itoa(int(points))
	}
	return strconv.FormatFloat(points, 'f', 1, 64)
}
