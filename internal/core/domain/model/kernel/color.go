package kernel

import (
	"fmt"
	"regexp"
	"strings"

	"backoffice/internal/pkg/errs"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Color is the hex display color of a status badge, e.g. "#32CD32".
type Color struct {
	hex string
}

// NewColor accepts #RGB and #RRGGBB notations.
func NewColor(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return Color{}, errs.NewValueIsRequiredError("color")
	}
	if !IsHexColor(hex) {
		return Color{}, errs.NewValueIsInvalidErrorWithCause("color", fmt.Errorf("%q is not a hex color", hex))
	}
	return Color{hex: hex}, nil
}

// IsHexColor reports whether s is a #RGB or #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

func (c Color) String() string {
	return c.hex
}

func (c Color) IsZero() bool {
	return c.hex == ""
}

func (c Color) Validate() error {
	if c.IsZero() {
		return errs.NewValueIsRequiredError("color")
	}
	return nil
}
