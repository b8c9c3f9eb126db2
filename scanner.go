package gochroma

import (
	"math"
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/pdf/gochroma/common"
)

// channelBounds tracks the observed extrema for one channel.  Bounds start
// inverted ({min: 255, max: 0}) so any real sample tightens them.
type channelBounds struct {
	min uint8
	max uint8
}

func (b *channelBounds) widen(v uint8) {
	if v < b.min {
		b.min = v
	}
	if v > b.max {
		b.max = v
	}
}

// channel derives the tolerance region for the observed extrema.  The value
// is the rounded midpoint of [min, max]; the tolerance is rounded from the
// unrounded midpoint, so a channel that only ever saw a single value gets
// tolerance zero.
func (b channelBounds) channel() common.ToleranceChannel {
	mid := (float64(b.max) + float64(b.min)) / 2
	return common.ToleranceChannel{
		Value:     int(math.Round(mid)),
		Tolerance: int(math.Round(float64(b.max) - mid)),
	}
}

// Scan accumulates per-channel extrema of a controller's stable color on
// its own timer, and derives a midpoint tolerance region on demand.  Obtain
// one from Controller.StartScan; a stopped scan is terminal, start a new
// one for a fresh calibration pass.
type Scan struct {
	id         string
	controller *Controller
	frequency  float64
	enabled    bool
	count      int
	r          channelBounds
	g          channelBounds
	b          channelBounds
	sync.RWMutex
}

func newScan(c *Controller, frequency float64) *Scan {
	return &Scan{
		id:         uuid.NewV4().String(),
		controller: c,
		frequency:  frequency,
		enabled:    true,
		r:          channelBounds{min: 255},
		g:          channelBounds{min: 255},
		b:          channelBounds{min: 255},
	}
}

func (s *Scan) run() {
	go func() {
		tick := time.Tick(period(s.frequency))
		for range tick {
			if !s.tick() {
				common.Log.Debugf(`quitting scan loop %s`, s.id)
				return
			}
		}
	}()
}

// tick processes one scan sample and reports whether the loop should keep
// running.  The stop flag is only checked here, not preemptively - a tick
// already in flight completes.
func (s *Scan) tick() bool {
	s.RLock()
	enabled := s.enabled
	s.RUnlock()
	if !enabled {
		return false
	}

	color, err := s.controller.GetColor()
	if err != nil {
		common.Log.Warnf(`scan %s could not read stable color: %v`, s.id, err)
		return false
	}
	if color.IsOff() {
		// Startup artifact.  It contributes nothing, not even to the count,
		// so an off reading never inflates the derived tolerances.
		return true
	}

	s.Lock()
	s.r.widen(color.R)
	s.g.widen(color.G)
	s.b.widen(color.B)
	s.count++
	s.Unlock()
	return true
}

// Stop disables the scan; the loop observes the flag on its next tick and
// terminates without scheduling another.  Stopping publishes a
// common.EventScanComplete carrying the derived spec and sample count.
func (s *Scan) Stop() {
	s.Lock()
	if !s.enabled {
		s.Unlock()
		return
	}
	s.enabled = false
	s.Unlock()

	s.controller.removeScan(s.id)
	event := common.EventScanComplete{Count: s.Count()}
	if spec, err := s.ColorSpec(); err == nil {
		event.Spec = spec
	}
	s.controller.publish(event)
}

// disable flips the flag without publishing, for controller teardown.
func (s *Scan) disable() {
	s.Lock()
	s.enabled = false
	s.Unlock()
}

// ColorSpec derives the tolerance region from the extrema observed so far.
// It may be called while the scan runs or after it stops, and is idempotent
// between ticks.  A scan that never accumulated a usable sample returns
// common.ErrNoSamples rather than inventing bounds from the inverted
// initial state.
func (s *Scan) ColorSpec() (common.ColorSpec, error) {
	s.RLock()
	defer s.RUnlock()
	if s.count == 0 {
		return common.ColorSpec{}, common.ErrNoSamples
	}
	return common.ColorSpec{
		R: s.r.channel(),
		G: s.g.channel(),
		B: s.b.channel(),
	}, nil
}

// Count returns the number of non-off samples accumulated so far, valid
// while the scan runs and after it stops.
func (s *Scan) Count() int {
	s.RLock()
	defer s.RUnlock()
	return s.count
}
