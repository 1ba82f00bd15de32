package hues

import (
	"fmt"
	"slices"
	"sync"

	"fortio.org/log"
	"fortio.org/sets"
)

const (
	MinLevel = 1 // darkest brightness level
	MaxLevel = 5 // brightest brightness level
	MinSat   = 1 // dullest saturation
	MaxSat   = 9 // most vivid saturation
)

// levelAmounts maps each brightness level to its canonical channel amount
// (index 0, amount 0, exists only as the shade distribution floor).
var levelAmounts = [MaxLevel + 1]Channel{0, 95, 135, 175, 215, 255}

var amountLevels = map[Channel]int{0: 0, 95: 1, 135: 2, 175: 3, 215: 4, 255: 5}

var canonicalAmounts = sets.New(levelAmounts[:]...)

// Spectrum is the read-only classification of the palette: hue degree to
// brightness amount to nine colors ordered by descending saturation.
type Spectrum struct {
	rows map[Degree]map[Channel][]Color
}

var (
	spectrum     *Spectrum
	spectrumOnce sync.Once
)

// Table returns the process wide spectrum table, building it on first use.
// After construction the table is immutable and safe for any number of
// concurrent readers.
func Table() *Spectrum {
	spectrumOnce.Do(buildSpectrum)
	return spectrum
}

// buildSpectrum classifies codes 16-254 (the legacy 16 and code 255 stay
// outside the spectrum) into the hue/brightness/saturation grid.
func buildSpectrum() {
	rows := map[Degree]map[Channel][]Color{}
	var shades []Color
	for code := 16; code <= 254; code++ {
		c := FromCode(Channel(code))
		if c.HSV.V != 0 && canonicalAmounts.Has(c.HSV.V) {
			row := rows[c.HSV.H]
			if row == nil {
				row = map[Channel][]Color{}
				rows[c.HSV.H] = row
			}
			row[c.HSV.V] = append(row[c.HSV.V], c)
			continue
		}
		if c.RGB.R != c.RGB.G || c.RGB.G != c.RGB.B {
			// Cube channels are all canonical, so a chromatic color off the
			// brightness grid means the conversion itself broke.
			panic(fmt.Sprintf("spectrum: chromatic code %d has brightness %d off the level grid", code, c.HSV.V))
		}
		shades = append(shades, c)
	}
	// Distribute the grey ramp over the Grey row, brightest boundary pair
	// first: shades whose V+40 falls strictly between two canonical amounts
	// join the upper bucket, brightest first, and the bucket is reversed.
	grey := rows[0]
	for level := MaxLevel; level >= MinLevel; level-- {
		upper, lower := levelAmounts[level], levelAmounts[level-1]
		var picked []Color
		for _, sh := range shades {
			v := int(sh.HSV.V) + 40
			if v < int(upper) && v > int(lower) {
				picked = append(picked, sh)
			}
		}
		slices.SortStableFunc(picked, func(a, b Color) int {
			return int(b.HSV.V) - int(a.HSV.V)
		})
		bucket := append(grey[upper], picked...)
		slices.Reverse(bucket)
		grey[upper] = bucket
	}
	// Order every bucket by descending saturation (stable, preserving the
	// ascending code insertion order between equals) and right-pad with the
	// dullest entry to exactly MaxSat slots.
	for _, row := range rows {
		for amount, bucket := range row {
			slices.SortStableFunc(bucket, func(a, b Color) int {
				switch {
				case a.HSV.S > b.HSV.S:
					return -1
				case a.HSV.S < b.HSV.S:
					return 1
				default:
					return 0
				}
			})
			for len(bucket) < MaxSat {
				bucket = append(bucket, bucket[len(bucket)-1])
			}
			row[amount] = bucket
		}
	}
	spectrum = &Spectrum{rows: rows}
	log.Debugf("Spectrum table built: %d hue rows", len(rows))
}

func (s *Spectrum) row(d Degree) map[Channel][]Color {
	return s.rows[d]
}

// Degrees returns the hue degrees present in the table, Red (360°) first
// down to Orange (30°), Grey (0°) last.
func (s *Spectrum) Degrees() []Degree {
	degs := make([]Degree, 0, len(s.rows))
	for d := range s.rows {
		degs = append(degs, d)
	}
	slices.Sort(degs)
	slices.Reverse(degs)
	return degs
}

// Amounts returns the populated brightness amounts of one hue row,
// brightest first. Off-axis hues have no level 1 (amount 95) bucket; the
// Grey row always has all five.
func (s *Spectrum) Amounts(d Degree) []Channel {
	row := s.rows[d]
	amounts := make([]Channel, 0, len(row))
	for a := range row {
		amounts = append(amounts, a)
	}
	slices.Sort(amounts)
	slices.Reverse(amounts)
	return amounts
}

// Colors returns a copy of the nine colors of one brightness bucket,
// ordered by descending saturation.
func (s *Spectrum) Colors(d Degree, amount Channel) []Color {
	return slices.Clone(s.rows[d][amount])
}

// at returns the color at a (level, saturation rank) coordinate of a hue
// row, widening the level upward over unpopulated brightness amounts.
func (s *Spectrum) at(d Degree, level, rank int) (Color, error) {
	row := s.rows[d]
	for row != nil {
		if bucket, ok := row[levelAmounts[level]]; ok {
			return bucket[rank], nil
		}
		if level >= MaxLevel {
			break
		}
		level++
	}
	return Color{}, &LookupGapError{Degree: d, Level: max(level, MinLevel)}
}

// Pick returns the color of a hue row at brightness level 1 (darkest) to 5
// (brightest) and saturation 1 (dull) to 9 (vivid), widening the level
// upward when the exact brightness amount is absent from the row.
func (s *Spectrum) Pick(d Degree, level, sat int) (Color, error) {
	if level < MinLevel || level > MaxLevel {
		return Color{}, &RangeError{What: "level", Value: float64(level), Min: MinLevel, Max: MaxLevel}
	}
	if sat < MinSat || sat > MaxSat {
		return Color{}, &RangeError{What: "saturation", Value: float64(sat), Min: MinSat, Max: MaxSat}
	}
	return s.at(d, level, MaxSat-sat)
}

func indexOfCode(bucket []Color, code Channel) int {
	return slices.IndexFunc(bucket, func(c Color) bool { return c.Code == code })
}
