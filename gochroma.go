// Copyright 2016 Peter Fern
// Use of this source code is governed by the MIT
// license that can be found in the LICENSE file

// Package gochroma turns the noisy reading stream from an RGB color sensor
// into a debounced stable color, tests it against declared tolerance
// regions, derives regions from live data via calibration scans, and fires
// registered handlers when the stable color enters a region.
//
// Also included in cmd/chroma is a small CLI utility that exercises a
// controller against a line-oriented sample source.
package gochroma

import (
	"github.com/pdf/gochroma/common"
)

const (
	// VERSION of this library
	VERSION = `0.1.0`
)

// NewController returns a pointer to a new Controller reading from source,
// and any error that occurred initializing it.  A nil source fails
// immediately with common.ErrNoSampleSource - the controller never
// substitutes a default color for a missing collaborator.
func NewController(source common.SampleSource) (*Controller, error) {
	if source == nil {
		return nil, common.ErrNoSampleSource
	}
	c := &Controller{
		source:        source,
		stab:          newStabilizer(common.DefaultStability, common.DefaultStabilityThreshold),
		reg:           newRegistry(),
		scans:         make(map[string]*Scan),
		subscriptions: make(map[string]*common.Subscription),
		quitChan:      make(chan bool, 1),
	}
	return c, nil
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface.  To capture logs generated during controller
// creation, this should be called before creating a Controller.  Defaults
// to common.StubLogger, which does no logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
