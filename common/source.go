package common

// SampleSource supplies the current instantaneous sensor reading on demand.
// It is the library's only external collaborator; surfacing sensor hardware
// faults is the host's responsibility, upstream of this interface.
type SampleSource interface {
	Sample() Color
}

// SampleSourceFunc adapts a bare function to the SampleSource interface.
type SampleSourceFunc func() Color

// Sample calls f.
func (f SampleSourceFunc) Sample() Color {
	return f()
}
