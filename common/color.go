package common

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor reads "#rrggbb" or "#rrggbbaa".
func ParseHexColor(v string) (color.RGBA, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	if len(s) != 6 && len(s) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var out [4]uint8
	out[3] = 255
	for i := 0; i < len(s)/2; i++ {
		n, err := parse(i * 2)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
		}
		out[i] = n
	}
	// premultiply so the value is a valid color.RGBA
	a := uint16(out[3])
	return color.RGBA{
		R: uint8(uint16(out[0]) * a / 255),
		G: uint8(uint16(out[1]) * a / 255),
		B: uint8(uint16(out[2]) * a / 255),
		A: out[3],
	}, nil
}
