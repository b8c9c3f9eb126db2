package common

// EventUpdateColor is emitted by a Controller when its stable color changes
type EventUpdateColor struct {
	Color Color
}

// EventScanComplete is emitted by a Controller when one of its scans is
// stopped.  Spec is the zero value if the scan never accumulated a usable
// sample.
type EventScanComplete struct {
	Spec  ColorSpec
	Count int
}
