package hues

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func colorfulOf(rgb RGB) colorful.Color {
	return colorful.Color{R: float64(rgb.R) / 255., G: float64(rgb.G) / 255., B: float64(rgb.B) / 255.}
}

// Nearest returns the spectrum color closest to an arbitrary RGB value,
// by CIE Lab distance over the classified palette codes. Exact palette
// values map to themselves.
func Nearest(rgb RGB) Color {
	target := colorfulOf(rgb)
	var best Color
	bestDist := math.Inf(1)
	t := Table()
	seen := map[Channel]bool{}
	for _, d := range t.Degrees() {
		for _, a := range t.Amounts(d) {
			for _, c := range t.Colors(d, a) {
				if seen[c.Code] {
					continue // padding duplicates
				}
				seen[c.Code] = true
				if dist := target.DistanceLab(colorfulOf(c.RGB)); dist < bestDist {
					bestDist, best = dist, c
				}
			}
		}
	}
	return best
}
