package common

// ToleranceChannel declares the inclusive range
// [Value - Tolerance, Value + Tolerance] for one channel.  Tolerance must
// not be negative.
type ToleranceChannel struct {
	Value     int
	Tolerance int
}

// Contains reports whether v falls within the channel's range, bounds
// inclusive.
func (t ToleranceChannel) Contains(v uint8) bool {
	return int(v) >= t.Value-t.Tolerance && int(v) <= t.Value+t.Tolerance
}

// ColorSpec declares a tolerance region, one ToleranceChannel per channel.
// Specs are immutable after construction, whether built explicitly or
// derived from a scan.
type ColorSpec struct {
	R ToleranceChannel
	G ToleranceChannel
	B ToleranceChannel
}

// Matches reports whether every channel of color falls within the spec's
// region.
func (s ColorSpec) Matches(color Color) bool {
	return s.R.Contains(color.R) && s.G.Contains(color.G) && s.B.Contains(color.B)
}
