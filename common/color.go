package common

// Color is a single reading from a three-channel RGB sensor.  Channels are
// clamped to [0, 255] by the upstream sensor, the library does not enforce
// the range.  Every color published by a Controller is a fresh value, never
// an alias into mutable scan or window state.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Off is the all-zero sentinel a sensor reports at startup or with nothing
// in view.  Scans exclude it from accumulation entirely.
var Off = Color{}

// IsOff returns true for the all-zero sentinel reading.
func (c Color) IsOff() bool {
	return c == Off
}
