package hues

import "fmt"

// RangeError is returned when a numeric value lies outside its declared bound.
type RangeError struct {
	What     string
	Value    float64
	Min, Max float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value must be between %g and %g, got %g", e.What, e.Min, e.Max, e.Value)
}

// ConversionError is returned when an input string can't be converted to the
// expected numeric type. It wraps the underlying strconv error.
type ConversionError struct {
	What  string
	Input string
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s value %q is not numeric: %v", e.What, e.Input, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// LookupGapError is returned when a spectrum coordinate has no populated
// entry: either the requested color code was never classified (codes 0-15,
// 253-255) or a brightness level stayed empty even after widening.
type LookupGapError struct {
	Degree Degree
	Level  int
	Code   Channel // set when address recovery failed for the receiver itself
}

func (e *LookupGapError) Error() string {
	if e.Level == 0 {
		return fmt.Sprintf("color code %d is not part of the spectrum", e.Code)
	}
	return fmt.Sprintf("no spectrum entry at %s level %d", e.Degree, e.Level)
}
