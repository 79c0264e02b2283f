package display

import (
	"fmt"
	"math"
)

// ArrowRotation is the rotation in degrees of an arrow pointing where the wind
// blows to, relative to the device. wd is the direction the wind comes from.
// The result is not wrapped into [0, 360).
func ArrowRotation(wd, heading float64) float64 {
	return wd - heading + 180
}

// Hue maps a rotation onto an HSL hue
func Hue(rotation float64) float64 {
	return math.Abs(90 - rotation/2)
}

// Color returns the CSS color for an arrow with the given rotation
func Color(rotation float64) string {
	return fmt.Sprintf("hsl(%g, 100%%, 40%%)", Hue(rotation))
}

var arrowGlyphs = []string{"↑", "↗", "→", "↘", "↓", "↙", "←", "↖"}

// Glyph picks the terminal arrow closest to the rotation
func Glyph(rotation float64) string {
	deg := math.Mod(rotation, 360)
	if deg < 0 {
		deg += 360
	}
	return arrowGlyphs[int(math.Round(deg/45))%len(arrowGlyphs)]
}
