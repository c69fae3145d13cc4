package heatmap

import (
	"github.com/lucasb-eyer/go-colorful"
)

const (
	emptyColor    = "#ebedf0"
	lightestGreen = "#9be9a8"
	darkestGreen  = "#216e39"
)

// Palette holds one fill color per bucket, ordered lightest to darkest.
// The four active shades blend the endpoint greens in Lab space so the
// ramp is perceptually even.
var Palette = buildPalette()

func buildPalette() [5]string {
	light, _ := colorful.Hex(lightestGreen)
	dark, _ := colorful.Hex(darkestGreen)

	p := [5]string{emptyColor}
	for i := 1; i < len(p); i++ {
		t := float64(i-1) / 3
		p[i] = light.BlendLab(dark, t).Clamped().Hex()
	}
	return p
}

// Color returns the fill color for a bucket, clamping out-of-range values
// to the palette edges.
func Color(bucket int) string {
	if bucket < 0 {
		bucket = 0
	}
	if bucket >= len(Palette) {
		bucket = len(Palette) - 1
	}
	return Palette[bucket]
}
