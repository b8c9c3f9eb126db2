package gochroma

import (
	uuid "github.com/satori/go.uuid"

	"github.com/pdf/gochroma/common"
)

// Spec is an opaque handle over an immutable tolerance region, obtained
// from Controller.NewSpec.  Handles are how regions are registered and
// deregistered: two handles over identical regions are distinct
// registrations.
type Spec struct {
	id         uuid.UUID
	region     common.ColorSpec
	controller *Controller
}

// ID returns the unique ID for this spec handle.
func (s *Spec) ID() string {
	return s.id.String()
}

// Region returns the tolerance region this handle was created with.
func (s *Spec) Region() common.ColorSpec {
	return s.region
}

// IsMatch reports whether color falls within the spec's region on every
// channel, bounds inclusive.  With no color supplied it is evaluated
// against the controller's current stable color, which with on-demand
// sampling pulls a fresh sample first.
func (s *Spec) IsMatch(color ...common.Color) (bool, error) {
	if len(color) > 0 {
		return s.region.Matches(color[0]), nil
	}
	current, err := s.controller.GetColor()
	if err != nil {
		return false, err
	}
	return s.region.Matches(current), nil
}

// WhenMatches registers handler to fire whenever a stable-color change
// lands inside the spec's region.  Handlers fire in registration order and
// are suppressed while in flight; see common.Handler.
//
// Passing a nil handler deregisters the spec and all of its handlers.  This
// is the documented deregistration signal, not an error.
func (s *Spec) WhenMatches(handler common.Handler) {
	c := s.controller
	c.Lock()
	defer c.Unlock()
	if handler == nil {
		c.reg.deregister(s)
		return
	}
	c.reg.register(s, handler)
}
