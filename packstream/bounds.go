package packstream

import "math"

// Tiny integer value bounds. Values inside these ranges encode as a single
// byte with no marker prefix.
const (
	MaxPlusTinyInt  = 127 // largest value encodable as PlusTinyInt
	MinMinusTinyInt = -16 // smallest value encodable as MinusTinyInt
)

// combineNibbles packs a type nibble and a size nibble into one marker byte.
func combineNibbles(high, low byte) byte {
	return (high & 0xF0) | (low & 0x0F)
}

// highNibbleEquals reports whether b carries the given high nibble.
func highNibbleEquals(b, high byte) bool {
	return b&0xF0 == high
}

// tinySize extracts the size embedded in the low nibble of a marker byte.
func tinySize(b byte) int {
	return int(b & 0x0F)
}

func inPlusTinyIntBound(i int64) bool {
	return i >= 0 && i <= MaxPlusTinyInt
}

func inMinusTinyIntBound(i int64) bool {
	return i < 0 && i >= MinMinusTinyInt
}

func inInt8Bound(i int64) bool {
	return i >= math.MinInt8 && i <= math.MaxInt8
}

func inInt16Bound(i int64) bool {
	return i >= math.MinInt16 && i <= math.MaxInt16
}

func inInt32Bound(i int64) bool {
	return i >= math.MinInt32 && i <= math.MaxInt32
}
