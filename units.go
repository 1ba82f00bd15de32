package hues

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Channel is an 8 bit quantity: one RGB component or a raw terminal color code.
// Arithmetic on channels saturates at the bounds instead of wrapping.
type Channel uint8

const MaxChannel Channel = 255

// NewChannel validates an integer into a Channel.
func NewChannel(v int) (Channel, error) {
	if v < 0 || v > int(MaxChannel) {
		return 0, &RangeError{What: "channel", Value: float64(v), Min: 0, Max: float64(MaxChannel)}
	}
	return Channel(safecast.MustConvert[uint8](v)), nil
}

// ParseChannel converts a decimal string into a Channel.
func ParseChannel(s string) (Channel, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ConversionError{What: "channel", Input: s, Err: err}
	}
	return NewChannel(v)
}

func clampChannel(v int) Channel {
	return Channel(safecast.MustConvert[uint8](min(int(MaxChannel), max(0, v))))
}

// Add returns c+n saturated to [0,255].
func (c Channel) Add(n int) Channel {
	return clampChannel(int(c) + n)
}

// Sub returns c-n saturated to [0,255].
func (c Channel) Sub(n int) Channel {
	return clampChannel(int(c) - n)
}

// Mul returns c*n saturated to [0,255].
func (c Channel) Mul(n int) Channel {
	return clampChannel(int(c) * n)
}

// Div returns c/n (truncated) saturated to [0,255].
// Dividing by zero saturates to the maximum.
func (c Channel) Div(n int) Channel {
	if n == 0 {
		return MaxChannel
	}
	return clampChannel(int(c) / n)
}

// Invert returns the complement 255-c.
func (c Channel) Invert() Channel {
	return MaxChannel - c
}

// Degree is a position on the hue wheel, 0 to 360 inclusive.
// 0° is reserved for the achromatic Grey family and 360° for Red, so
// arithmetic preserves 360 and only wraps past it.
type Degree uint16

const MaxDegree Degree = 360

// NewDegree validates an integer into a Degree.
func NewDegree(v int) (Degree, error) {
	if v < 0 || v > int(MaxDegree) {
		return 0, &RangeError{What: "degree", Value: float64(v), Min: 0, Max: float64(MaxDegree)}
	}
	return Degree(safecast.MustConvert[uint16](v)), nil
}

// ParseDegree converts a decimal string into a Degree.
func ParseDegree(s string) (Degree, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ConversionError{What: "degree", Input: s, Err: err}
	}
	return NewDegree(v)
}

// Add returns d+n wrapped onto the wheel. Results above 360 wrap forward
// (390° is 30°), negative results wrap backward (-30° is 330°); 360 itself
// is preserved.
func (d Degree) Add(n int) Degree {
	r := int(d) + n
	switch {
	case r > int(MaxDegree):
		r %= int(MaxDegree)
	case r < 0:
		r = ((r % int(MaxDegree)) + int(MaxDegree)) % int(MaxDegree)
	}
	return Degree(safecast.MustConvert[uint16](r))
}

// Sub returns d-n wrapped onto the wheel.
func (d Degree) Sub(n int) Degree {
	return d.Add(-n)
}

func (d Degree) String() string {
	return fmt.Sprintf("%d°", uint16(d))
}

// Ratio is a fraction in [0,1], used for saturation.
type Ratio float64

// NewRatio validates a float into a Ratio.
func NewRatio(v float64) (Ratio, error) {
	if v < 0 || v > 1 {
		return 0, &RangeError{What: "ratio", Value: v, Min: 0, Max: 1}
	}
	return Ratio(v), nil
}

// ParseRatio converts a decimal string into a Ratio.
func ParseRatio(s string) (Ratio, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ConversionError{What: "ratio", Input: s, Err: err}
	}
	return NewRatio(v)
}

// Percent is the ratio scaled to 0-100, a display view only.
func (r Ratio) Percent() float64 {
	return float64(r) * 100.
}

func (r Ratio) String() string {
	return fmt.Sprintf("%.1f%%", r.Percent())
}
