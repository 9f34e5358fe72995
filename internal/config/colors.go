package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// maxANSIColor is the highest index in the 256-color palette.
const maxANSIColor = 255

//nolint:gochecknoglobals // Compiled once.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidateColor accepts "#RRGGBB" or an ANSI palette index 0-255.
func ValidateColor(c string) error {
	if hexColorPattern.MatchString(c) {
		return nil
	}
	if n, err := strconv.Atoi(c); err == nil && n >= 0 && n <= maxANSIColor {
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidColor, c)
}
