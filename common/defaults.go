package common

import "time"

const (
	// DefaultTimeout is how long a subscription write waits before
	// abandoning the event
	DefaultTimeout = 2 * time.Second
	// DefaultStability is the rolling window length used until the
	// controller is configured
	DefaultStability = 5
	// DefaultStabilityThreshold is the per-channel standard deviation, over
	// the window of running averages, below which a channel is considered
	// settled.  Determined empirically against the reference sensor; see
	// Controller.SetStabilityThreshold to override per instance.
	DefaultStabilityThreshold = 2.9
	// DefaultScanFrequency in Hz, used when StartScan is given a zero
	// frequency
	DefaultScanFrequency = 10
)
