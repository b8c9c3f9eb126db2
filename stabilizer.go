package gochroma

import (
	"github.com/pdf/gochroma/common"
	"github.com/pdf/gochroma/stats"
)

// stabilizer maintains the rolling raw and running-average windows and the
// published stable color.  It is owned by a Controller and must only be
// mutated under the controller's lock.
type stabilizer struct {
	stability int
	threshold float64
	raw       []stats.Channels
	averages  []stats.Channels
	stable    common.Color
}

func newStabilizer(stability int, threshold float64) *stabilizer {
	return &stabilizer{
		stability: stability,
		threshold: threshold,
	}
}

// process runs the transition rule for one raw sample and reports whether
// the published stable color changed.
//
// The sample and the running average of the raw window are appended to
// their windows.  Once the averages window reaches the stability length, a
// channel whose deviation over that window is below the threshold takes the
// rounded running average; an unsettled channel retains its previous stable
// value.  Both windows then slide back to stability-1 entries, oldest
// first.
func (s *stabilizer) process(sample common.Color) bool {
	s.raw = append(s.raw, stats.ChannelsOf(sample))
	avg, err := stats.Mean(s.raw)
	if err != nil {
		common.Log.Panicf(`stabilizer: %v`, err)
	}
	s.averages = append(s.averages, avg)

	if len(s.averages) < s.stability {
		return false
	}

	dev, err := stats.StdDev(s.averages)
	if err != nil {
		common.Log.Panicf(`stabilizer: %v`, err)
	}

	next := s.stable
	rounded := avg.Color()
	if dev.R < s.threshold {
		next.R = rounded.R
	}
	if dev.G < s.threshold {
		next.G = rounded.G
	}
	if dev.B < s.threshold {
		next.B = rounded.B
	}

	// Slide the windows.  The loop also re-bounds them after a mid-stream
	// stability reduction.
	for len(s.raw) > s.stability-1 {
		s.raw = s.raw[1:]
	}
	for len(s.averages) > s.stability-1 {
		s.averages = s.averages[1:]
	}

	changed := next != s.stable
	s.stable = next
	return changed
}

// setStability changes the window bound.  Accumulated entries survive; an
// over-long window is trimmed on the next decision.
func (s *stabilizer) setStability(stability int) {
	s.stability = stability
}
