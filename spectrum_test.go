package hues_test

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"fortio.org/hues"
)

func TestTableShape(t *testing.T) {
	tbl := hues.Table()
	degs := tbl.Degrees()
	if len(degs) != 13 {
		t.Fatalf("Expected 13 hue rows, got %d: %v", len(degs), degs)
	}
	if degs[0] != 360 || degs[len(degs)-1] != 0 {
		t.Errorf("Expected Red (360°) first and Grey (0°) last, got %v", degs)
	}
	// On-axis hues reach down to amount 95, off-axis ones start at 135.
	offAxis := []hues.Degree{30, 90, 150, 210, 270, 330}
	for _, d := range degs {
		amounts := tbl.Amounts(d)
		expected := 5
		if slices.Contains(offAxis, d) {
			expected = 4
		}
		if len(amounts) != expected {
			t.Errorf("Hue %s: expected %d brightness buckets, got %v", d, expected, amounts)
		}
		if amounts[0] != 255 {
			t.Errorf("Hue %s: expected amount 255 first, got %v", d, amounts)
		}
		for _, a := range amounts {
			bucket := tbl.Colors(d, a)
			if len(bucket) != hues.MaxSat {
				t.Errorf("Hue %s amount %d: expected %d saturation slots, got %d", d, a, hues.MaxSat, len(bucket))
			}
			for i := 1; i < len(bucket); i++ {
				if bucket[i].HSV.S > bucket[i-1].HSV.S {
					t.Errorf("Hue %s amount %d: saturation not descending at %d: %s > %s",
						d, a, i, bucket[i].HSV.S, bucket[i-1].HSV.S)
				}
			}
		}
	}
	greyAmounts := tbl.Amounts(0)
	if !slices.Equal(greyAmounts, []hues.Channel{255, 215, 175, 135, 95}) {
		t.Errorf("Grey row amounts = %v", greyAmounts)
	}
}

func TestPickVectors(t *testing.T) {
	tests := []struct {
		hue        *hues.Hue
		level, sat int
		expected   hues.Channel
	}{
		{hues.Red, 2, 7, 95},
		{hues.Orange, 1, 7, 94}, // widens to level 2, Orange has no level 1
		{hues.Yellow, 3, 5, 144},
		{hues.Lime, 5, 6, 155},
		{hues.Green, 3, 5, 108},
		{hues.Turquoise, 1, 9, 29}, // widens to level 2
		{hues.Teal, 1, 9, 23},
		{hues.Cyan, 5, 6, 75},
		{hues.Blue, 5, 6, 99},
		{hues.Purple, 5, 6, 135},
		{hues.Magenta, 5, 6, 171},
		{hues.Rose, 5, 6, 205},
		{hues.Grey, 3, 6, 244},
	}
	for _, test := range tests {
		t.Run(test.hue.Name(), func(t *testing.T) {
			c, err := test.hue.Pick(test.level, test.sat)
			if err != nil {
				t.Fatalf("%s.Pick(%d,%d): %v", test.hue.Name(), test.level, test.sat, err)
			}
			if c.Code != test.expected {
				t.Errorf("%s.Pick(%d,%d) = %d, expected %d", test.hue.Name(), test.level, test.sat, c.Code, test.expected)
			}
		})
	}
}

func TestPickRangeErrors(t *testing.T) {
	for _, coord := range [][2]int{{0, 9}, {6, 9}, {5, 0}, {5, 10}} {
		_, err := hues.Red.Pick(coord[0], coord[1])
		var re *hues.RangeError
		if !errors.As(err, &re) {
			t.Errorf("Pick(%d,%d) expected RangeError, got %v", coord[0], coord[1], err)
		}
	}
}

// Every classified code must find itself back at its own coordinate.
func TestRoundTrip(t *testing.T) {
	for code := 16; code <= 252; code++ {
		c := hues.FromCode(hues.Channel(code)) //nolint:gosec // 16-252 fits.
		got, err := c.RotateHue(0)
		if err != nil {
			t.Fatalf("Code %d: %v", code, err)
		}
		if got != c {
			t.Errorf("Code %d round trips to %s", code, got)
		}
	}
}

// Codes 0-15 and 253-255 are outside the classified spectrum; transforms
// on them report the gap.
func TestUnclassifiedCodes(t *testing.T) {
	for _, code := range []hues.Channel{0, 5, 15, 253, 254, 255} {
		_, err := hues.FromCode(code).Brighten(1)
		var ge *hues.LookupGapError
		if !errors.As(err, &ge) {
			t.Errorf("Code %d expected LookupGapError, got %v", code, err)
		}
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	const n = 16
	tables := make([]*hues.Spectrum, n)
	wg := sync.WaitGroup{}
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tables[i] = hues.Table()
		}()
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if tables[i] != tables[0] {
			t.Fatalf("Table() returned different instances: %p vs %p", tables[i], tables[0])
		}
	}
}
