package common

import "errors"

var (
	// ErrNoSampleSource is returned when a Controller is created without a
	// SampleSource collaborator
	ErrNoSampleSource = errors.New(`no sample source wired`)
	// ErrNoSamples is returned by statistics over an empty window, and by
	// scans that never accumulated a usable sample
	ErrNoSamples = errors.New(`no samples`)
	// ErrClosed is returned on operations against a closed controller or
	// subscription
	ErrClosed = errors.New(`closed`)
	// ErrNotFound is returned when closing a subscription that is not known
	ErrNotFound = errors.New(`not found`)
	// ErrTimeout is returned when an event write exceeds DefaultTimeout
	ErrTimeout = errors.New(`timed out`)
	// ErrInvalidStability is returned by Configure for a window length
	// below one
	ErrInvalidStability = errors.New(`stability must be at least 1`)
	// ErrInvalidFrequency is returned for a negative sampling frequency
	ErrInvalidFrequency = errors.New(`frequency must not be negative`)
)
