package hues

import "fmt"

// RGB is a red, green, blue triple.
type RGB struct {
	R, G, B Channel
}

func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%3d, %3d, %3d)", rgb.R, rgb.G, rgb.B)
}

// HSV is the quantized hue, saturation, brightness triple: H is a multiple
// of 30° (0° meaning Grey, 360° Red), S the saturation ratio and V the
// brightest channel amount.
type HSV struct {
	H Degree
	S Ratio
	V Channel
}

func (hsv HSV) String() string {
	return fmt.Sprintf("hsv(%4s, %6s, %3d)", hsv.H, hsv.S, hsv.V)
}

// Color is an immutable snapshot of one terminal color code together with
// its RGB and quantized HSV models. Colors are plain comparable values;
// two colors are equal iff code, RGB and HSV all match.
type Color struct {
	Code Channel
	RGB  RGB
	HSV  HSV
}

func (c Color) String() string {
	return fmt.Sprintf("%3d | %s | %s", c.Code, c.RGB, c.HSV)
}

// Hue returns the name of the hue family the color belongs to.
func (c Color) Hue() string {
	return hueNames[c.HSV.H]
}

// Reset terminates any coloring.
const Reset = "\033[0m"

// Foreground returns the escape sequence selecting the color as foreground.
func (c Color) Foreground() string {
	return fmt.Sprintf("\033[38;5;%dm", c.Code)
}

// Background returns the escape sequence selecting the color as background.
func (c Color) Background() string {
	return fmt.Sprintf("\033[48;5;%dm", c.Code)
}

// Colorize wraps text in the color as foreground, resetting afterwards.
func (c Color) Colorize(text string) string {
	return c.Foreground() + text + Reset
}

// ColorizeBg wraps text in the color as background, resetting afterwards.
func (c Color) ColorizeBg(text string) string {
	return c.Background() + text + Reset
}

// locate recovers the receiver's (brightness level, saturation rank)
// coordinate within its hue row by searching for its own code.
func (c Color) locate() (level, rank int, err error) {
	t := Table()
	row := t.row(c.HSV.H)
	if row == nil {
		return 0, 0, &LookupGapError{Code: c.Code}
	}
	// Canonically bright colors sit in the bucket keyed by their own V.
	if bucket, ok := row[c.HSV.V]; ok {
		if i := indexOfCode(bucket, c.Code); i >= 0 {
			return amountLevels[c.HSV.V], i, nil
		}
	}
	// Grey shades live in the bucket of the level above their brightness.
	for amount, bucket := range row {
		if i := indexOfCode(bucket, c.Code); i >= 0 {
			return amountLevels[amount], i, nil
		}
	}
	return 0, 0, &LookupGapError{Code: c.Code}
}

// RotateHue returns the color n steps of 30° around the hue wheel (negative
// n rotates backward), at the receiver's own brightness and saturation
// coordinate. Rotation is an order 12 cycle on chromatic colors: a result
// landing exactly on 0° (Grey's reserved slot) wraps to 360° (Red).
func (c Color) RotateHue(n int) (Color, error) {
	level, rank, err := c.locate()
	if err != nil {
		return Color{}, err
	}
	deg := c.HSV.H.Add(30 * n)
	if deg == 0 && c.HSV.H != 0 {
		deg = MaxDegree
	}
	return Table().at(deg, level, rank)
}

// Brighten returns the color n brightness levels up, clamped at level 5.
func (c Color) Brighten(n int) (Color, error) {
	if n < 0 {
		return c.Darken(-n)
	}
	level, rank, err := c.locate()
	if err != nil {
		return Color{}, err
	}
	return Table().at(c.HSV.H, min(MaxLevel, level+n), rank)
}

// Darken returns the color n brightness levels down, clamped at level 1.
// On hue rows missing the target brightness the level widens back up until
// a populated amount is found.
func (c Color) Darken(n int) (Color, error) {
	if n < 0 {
		return c.Brighten(-n)
	}
	level, rank, err := c.locate()
	if err != nil {
		return Color{}, err
	}
	return Table().at(c.HSV.H, max(MinLevel, level-n), rank)
}

// Saturate returns the color n saturation ranks more vivid, clamped at the
// most saturated slot of its brightness bucket.
func (c Color) Saturate(n int) (Color, error) {
	if n < 0 {
		return c.Desaturate(-n)
	}
	level, rank, err := c.locate()
	if err != nil {
		return Color{}, err
	}
	return Table().at(c.HSV.H, level, max(0, rank-n))
}

// Desaturate returns the color n saturation ranks duller, clamped at the
// least saturated slot of its brightness bucket.
func (c Color) Desaturate(n int) (Color, error) {
	if n < 0 {
		return c.Saturate(-n)
	}
	level, rank, err := c.locate()
	if err != nil {
		return Color{}, err
	}
	return Table().at(c.HSV.H, level, min(MaxSat-1, rank+n))
}
