package report

import (
	"image/color"
	"strconv"
	"strings"
)

// parseHexColor reads #rgb and #rrggbb colours.
func parseHexColor(hex string) (color.RGBA, bool) {
	s, ok := strings.CutPrefix(strings.TrimSpace(hex), "#")
	if !ok {
		return color.RGBA{}, false
	}
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	rgb, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}, true
}

// rgbOf splits a colour into 8-bit channels for the PDF writer.
func rgbOf(c color.Color) (r, g, b int) {
	cr, cg, cb, _ := c.RGBA()
	return int(cr >> 8), int(cg >> 8), int(cb >> 8)
}
