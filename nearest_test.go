package hues_test

import (
	"testing"

	"fortio.org/hues"
)

func TestNearest(t *testing.T) {
	tests := []struct {
		rgb      hues.RGB
		expected hues.Channel
	}{
		// Exact palette values map to themselves.
		{hues.RGB{R: 255, G: 0, B: 0}, 196},
		{hues.RGB{R: 0, G: 0, B: 0}, 16},
		{hues.RGB{R: 255, G: 255, B: 255}, 231},
		{hues.RGB{R: 95, G: 95, B: 95}, 59},
		{hues.RGB{R: 8, G: 8, B: 8}, 232},
		// Off-palette values snap to the closest classified code.
		{hues.RGB{R: 250, G: 4, B: 4}, 196},
	}
	for _, test := range tests {
		t.Run(test.rgb.String(), func(t *testing.T) {
			if got := hues.Nearest(test.rgb); got.Code != test.expected {
				t.Errorf("Nearest(%s) = %d, expected %d", test.rgb, got.Code, test.expected)
			}
		})
	}
}

func TestNearestReturnsClassified(t *testing.T) {
	c := hues.Nearest(hues.RGB{R: 1, G: 2, B: 3})
	if c.Code < 16 || c.Code > 252 {
		t.Errorf("Nearest returned unclassified code %d", c.Code)
	}
	if _, err := c.RotateHue(0); err != nil {
		t.Errorf("Nearest result not in the spectrum: %v", err)
	}
}
