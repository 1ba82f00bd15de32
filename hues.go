// Package hues models the xterm 256 color palette by perceptual attributes
// instead of raw codes: twelve chromatic hue families (Red, Orange, ...,
// Rose) plus Grey, each offering every brightness and saturation variant
// the palette provides, with transforms to rotate, brighten, darken,
// saturate and desaturate within the grid.
package hues // import "fortio.org/hues"

import (
	"fmt"
	"strings"
)

// Hue is a named facade over one hue degree of the spectrum. It carries a
// mutable default (level, saturation) pair used when the family is rendered
// without explicit coordinates. The predefined families are package
// globals; setting a default mutates shared state and is meant for setup,
// not for concurrent use.
type Hue struct {
	name   string
	degree Degree
	level  int
	sat    int
}

// The thirteen hue families, one per 30° of the wheel plus Grey at the
// reserved 0° slot.
var (
	Red       = newHue("Red", 360)
	Orange    = newHue("Orange", 30)
	Yellow    = newHue("Yellow", 60)
	Lime      = newHue("Lime", 90)
	Green     = newHue("Green", 120)
	Turquoise = newHue("Turquoise", 150)
	Teal      = newHue("Teal", 180)
	Cyan      = newHue("Cyan", 210)
	Blue      = newHue("Blue", 240)
	Purple    = newHue("Purple", 270)
	Magenta   = newHue("Magenta", 300)
	Rose      = newHue("Rose", 330)
	Grey      = newHue("Grey", 0)
)

var allHues = []*Hue{Red, Orange, Yellow, Lime, Green, Turquoise, Teal, Cyan, Blue, Purple, Magenta, Rose, Grey}

// HueMap maps lowercase family names to their Hue.
var HueMap map[string]*Hue

// HueHelp lists the valid family names.
var HueHelp string

var hueNames map[Degree]string

func newHue(name string, degree Degree) *Hue {
	return &Hue{name: name, degree: degree, level: MaxLevel, sat: MaxSat}
}

func init() {
	HueMap = make(map[string]*Hue, len(allHues))
	hueNames = make(map[Degree]string, len(allHues))
	buf := strings.Builder{}
	for i, h := range allHues {
		HueMap[strings.ToLower(h.name)] = h
		hueNames[h.degree] = h.name
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strings.ToLower(h.name))
	}
	HueHelp = buf.String()
}

// Hues returns the families in wheel order, Red first, Grey last.
func Hues() []*Hue {
	res := make([]*Hue, len(allHues))
	copy(res, allHues)
	return res
}

// ByName resolves a family from user input, ignoring case, spaces, dashes
// and underscores (" Tur_quoise " resolves to Turquoise).
func ByName(name string) (*Hue, error) {
	toRemove := " \t\r\n_-"
	cleaned := strings.ToLower(strings.Map(func(r rune) rune {
		if strings.ContainsRune(toRemove, r) {
			return -1
		}
		return r
	}, name))
	if h, ok := HueMap[cleaned]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("invalid hue %q, must be one of: %s", name, HueHelp)
}

// ForDegree returns the family anchored at d.
func ForDegree(d Degree) (*Hue, error) {
	name, ok := hueNames[d]
	if !ok {
		return nil, fmt.Errorf("no hue family at %s, families sit at multiples of 30°", d)
	}
	return HueMap[strings.ToLower(name)], nil
}

// White is Grey at maximum brightness and minimum saturation (code 231).
func White() Color {
	c, err := Grey.Pick(MaxLevel, MinSat)
	if err != nil {
		panic(err) // can't happen, the Grey row is fully populated
	}
	return c
}

// Black is Grey at minimum brightness and maximum saturation (code 16).
func Black() Color {
	c, err := Grey.Pick(MinLevel, MaxSat)
	if err != nil {
		panic(err) // can't happen, the Grey row is fully populated
	}
	return c
}

// Name returns the family name.
func (h *Hue) Name() string {
	return h.name
}

// Degree returns the family's fixed position on the hue wheel.
func (h *Hue) Degree() Degree {
	return h.degree
}

// Level returns the current default brightness level.
func (h *Hue) Level() int {
	return h.level
}

// Saturation returns the current default saturation.
func (h *Hue) Saturation() int {
	return h.sat
}

// SetDefault changes the color used when the family is referenced without
// explicit coordinates: level 1 (darkest) to 5 (brightest), saturation 1
// (dull) to 9 (vivid).
func (h *Hue) SetDefault(level, sat int) error {
	if level < MinLevel || level > MaxLevel {
		return &RangeError{What: "level", Value: float64(level), Min: MinLevel, Max: MaxLevel}
	}
	if sat < MinSat || sat > MaxSat {
		return &RangeError{What: "saturation", Value: float64(sat), Min: MinSat, Max: MaxSat}
	}
	h.level = level
	h.sat = sat
	return nil
}

// Pick returns the family color at the given brightness level and
// saturation, widening the level upward when the exact brightness amount
// is absent from the row (off-axis hues have no level 1 colors).
func (h *Hue) Pick(level, sat int) (Color, error) {
	return Table().Pick(h.degree, level, sat)
}

// Default returns the family's current default color.
func (h *Hue) Default() Color {
	c, err := Table().Pick(h.degree, h.level, h.sat)
	if err != nil {
		panic(err) // can't happen: defaults are validated and rows widen up to level 5
	}
	return c
}

// RotateHue rotates the family's default color n steps around the wheel.
func (h *Hue) RotateHue(n int) (Color, error) {
	return h.Default().RotateHue(n)
}

// Brighten raises the family's default color n brightness levels.
func (h *Hue) Brighten(n int) (Color, error) {
	return h.Default().Brighten(n)
}

// Darken lowers the family's default color n brightness levels.
func (h *Hue) Darken(n int) (Color, error) {
	return h.Default().Darken(n)
}

// Saturate makes the family's default color n ranks more vivid.
func (h *Hue) Saturate(n int) (Color, error) {
	return h.Default().Saturate(n)
}

// Desaturate makes the family's default color n ranks duller.
func (h *Hue) Desaturate(n int) (Color, error) {
	return h.Default().Desaturate(n)
}

// Grid renders the family's level by saturation grid, each cell showing its
// color code in that color.
func (h *Hue) Grid() string {
	t := Table()
	purest, err := t.at(h.degree, MaxLevel, 0)
	if err != nil {
		return ""
	}
	sb := strings.Builder{}
	sb.WriteString(purest.Colorize(h.name + " (rows: level, columns: saturation)"))
	sb.WriteString("\n\n    ")
	for sat := MaxSat; sat >= MinSat; sat-- {
		sb.WriteString(purest.Colorize(fmt.Sprintf("(%d)", sat)) + " ")
	}
	sb.WriteString("\n")
	for _, amount := range t.Amounts(h.degree) {
		sb.WriteString(purest.Colorize(fmt.Sprintf("(%d)", amountLevels[amount])) + " ")
		for _, c := range t.Colors(h.degree, amount) {
			sb.WriteString(c.Colorize(fmt.Sprintf("%3d", c.Code)) + " ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// SpectrumGrid renders every family's grid, Red first, Grey last.
func SpectrumGrid() string {
	sb := strings.Builder{}
	for _, d := range Table().Degrees() {
		h, err := ForDegree(d)
		if err != nil {
			continue
		}
		sb.WriteString(h.Grid())
		sb.WriteString("\n")
	}
	return sb.String()
}
