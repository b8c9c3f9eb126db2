package gochroma

import (
	"sync"
	"time"

	uuid "github.com/satori/go.uuid"

	"github.com/pdf/gochroma/common"
)

// Config carries the tunables for a Controller.  Stability is the rolling
// window length: the number of samples whose running averages must be
// low-variance before a new stable value is accepted.  SampleFrequency is
// the autonomous sampling rate in Hz; zero means sample only on demand.
type Config struct {
	Stability       int
	SampleFrequency float64
}

// Controller converts the raw readings of a SampleSource into a debounced
// stable color, evaluates registered specs against it, and runs calibration
// scans.  Controller can not be instantiated manually or it will not
// function - always use NewController() to obtain a Controller instance.
//
// Controller is a common.SubscriptionTarget: subscribers receive a
// common.EventUpdateColor for every stable-color change, and a
// common.EventScanComplete for every stopped scan.
type Controller struct {
	source        common.SampleSource
	stab          *stabilizer
	reg           *registry
	scans         map[string]*Scan
	frequency     float64
	subscriptions map[string]*common.Subscription
	quitChan      chan bool
	closed        bool
	sync.RWMutex
}

// Configure applies config and (re)starts the autonomous sampling loop.
// Accumulated windows survive reconfiguration; a reduced Stability is
// absorbed on the next stabilization decision.  A loop tick already in
// flight completes before the restart takes effect.
func (c *Controller) Configure(config Config) error {
	if config.Stability < 1 {
		return common.ErrInvalidStability
	}
	if config.SampleFrequency < 0 {
		return common.ErrInvalidFrequency
	}
	c.Lock()
	if c.closed {
		c.Unlock()
		return common.ErrClosed
	}
	if c.frequency != 0 {
		c.quitChan <- true
	}
	c.frequency = config.SampleFrequency
	c.stab.setStability(config.Stability)
	c.Unlock()

	if config.SampleFrequency == 0 {
		common.Log.Debugf(`sample frequency is zero, sampling on demand only`)
		return nil
	}
	common.Log.Infof(`starting autonomous sampling at %vHz`, config.SampleFrequency)
	c.sampleLoop(config.SampleFrequency)
	return nil
}

func (c *Controller) sampleLoop(frequency float64) {
	go func() {
		tick := time.Tick(period(frequency))
		for {
			select {
			case <-c.quitChan:
				common.Log.Debugf(`quitting sampling loop`)
				return
			case <-tick:
				c.sample()
			}
		}
	}()
}

// sample pulls one reading, runs the stabilizer transition rule and, when
// the stable color changed, publishes the change and dispatches eligible
// handlers.
func (c *Controller) sample() common.Color {
	raw := c.source.Sample()

	c.Lock()
	changed := c.stab.process(raw)
	stable := c.stab.stable
	var pending []invocation
	if changed {
		pending = c.reg.collect(stable)
	}
	c.Unlock()

	if changed {
		common.Log.Debugf(`stable color changed to %v`, stable)
		c.publish(common.EventUpdateColor{Color: stable})
		c.invoke(pending, stable)
	}
	return stable
}

// invoke runs the collected handlers in registration order.  The done token
// is the only re-arming mechanism; a handler that never calls it stays
// suppressed.
func (c *Controller) invoke(pending []invocation, color common.Color) {
	for _, inv := range pending {
		rec := inv.record
		done := func() {
			c.Lock()
			rec.running = false
			c.Unlock()
		}
		rec.callback(done, color, inv.spec)
	}
}

// GetColor returns the current stable color.  When autonomous sampling is
// disabled the call first pulls one sample through the stabilizer, so
// polling GetColor is what advances the window; with a running sampling
// loop it returns the last published value without side effects.
func (c *Controller) GetColor() (common.Color, error) {
	c.RLock()
	closed := c.closed
	frequency := c.frequency
	c.RUnlock()
	if closed {
		return common.Color{}, common.ErrClosed
	}
	if frequency == 0 {
		return c.sample(), nil
	}
	c.RLock()
	defer c.RUnlock()
	return c.stab.stable, nil
}

// SetStabilityThreshold overrides common.DefaultStabilityThreshold for this
// controller.  The threshold is the per-channel standard deviation, over
// the window of running averages, below which a channel is considered
// settled.
func (c *Controller) SetStabilityThreshold(threshold float64) {
	c.Lock()
	c.stab.threshold = threshold
	c.Unlock()
}

// NewSpec returns a handle for the supplied tolerance region.  The handle
// carries its own identity - registering through two handles over identical
// regions yields two registrations.
func (c *Controller) NewSpec(region common.ColorSpec) *Spec {
	return &Spec{
		id:         uuid.NewV4(),
		region:     region,
		controller: c,
	}
}

// IsMatching reports whether the current stable color falls within spec's
// region.  With on-demand sampling this pulls a fresh sample first.
func (c *Controller) IsMatching(spec *Spec) (bool, error) {
	return spec.IsMatch()
}

// StartScan begins a calibration scan at frequency Hz; zero selects
// common.DefaultScanFrequency.  The scan reads the controller's stable
// color on its own timer and accumulates per-channel extrema until stopped.
func (c *Controller) StartScan(frequency float64) (*Scan, error) {
	if frequency < 0 {
		return nil, common.ErrInvalidFrequency
	}
	if frequency == 0 {
		frequency = common.DefaultScanFrequency
	}
	c.Lock()
	if c.closed {
		c.Unlock()
		return nil, common.ErrClosed
	}
	s := newScan(c, frequency)
	c.scans[s.id] = s
	c.Unlock()

	common.Log.Debugf(`starting scan %s at %vHz`, s.id, frequency)
	s.run()
	return s, nil
}

func (c *Controller) removeScan(id string) {
	c.Lock()
	delete(c.scans, id)
	c.Unlock()
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this controller.
func (c *Controller) NewSubscription() (*common.Subscription, error) {
	c.RLock()
	closed := c.closed
	c.RUnlock()
	if closed {
		return nil, common.ErrClosed
	}
	sub := common.NewSubscription(c)
	c.Lock()
	c.subscriptions[sub.ID()] = sub
	c.Unlock()
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of
// subscriptions.
func (c *Controller) CloseSubscription(sub *common.Subscription) error {
	c.RLock()
	_, ok := c.subscriptions[sub.ID()]
	c.RUnlock()
	if !ok {
		return common.ErrNotFound
	}
	c.Lock()
	delete(c.subscriptions, sub.ID())
	c.Unlock()
	return nil
}

func (c *Controller) publish(event interface{}) {
	c.RLock()
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.RUnlock()
	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf(`failed publishing event: %v`, err)
		}
	}
}

// Close signals the termination of this controller, stopping the sampling
// loop and any running scans.  A closed controller rejects further
// operations with common.ErrClosed.
func (c *Controller) Close() error {
	c.Lock()
	if c.closed {
		c.Unlock()
		return common.ErrClosed
	}
	c.closed = true
	if c.frequency != 0 {
		c.quitChan <- true
		c.frequency = 0
	}
	scans := make([]*Scan, 0, len(c.scans))
	for _, s := range c.scans {
		scans = append(scans, s)
	}
	c.scans = make(map[string]*Scan)
	c.Unlock()

	for _, s := range scans {
		s.disable()
	}
	return nil
}

func period(frequency float64) time.Duration {
	return time.Duration(1000 / frequency * float64(time.Millisecond))
}
