package gochroma

import (
	"github.com/pdf/gochroma/common"
)

// handlerRecord pairs a callback with its in-flight flag.  While running is
// true, further matches against the owning spec are suppressed for this
// handler.
type handlerRecord struct {
	callback common.Handler
	running  bool
}

// registry associates spec handles with ordered handler lists.  Owned by a
// Controller and mutated only under the controller's lock; the running
// flags are additionally cleared by the done tokens handed to handlers,
// which re-acquire that lock.
type registry struct {
	order    []string
	specs    map[string]*Spec
	handlers map[string][]*handlerRecord
}

func newRegistry() *registry {
	return &registry{
		specs:    make(map[string]*Spec),
		handlers: make(map[string][]*handlerRecord),
	}
}

// register appends a handler for spec.  Registration order is preserved and
// is the invocation order, for specs and for handlers within a spec.
func (r *registry) register(spec *Spec, handler common.Handler) {
	id := spec.ID()
	if _, ok := r.specs[id]; !ok {
		r.order = append(r.order, id)
		r.specs[id] = spec
	}
	r.handlers[id] = append(r.handlers[id], &handlerRecord{callback: handler})
}

// deregister removes spec and all of its handlers.
func (r *registry) deregister(spec *Spec) {
	id := spec.ID()
	if _, ok := r.specs[id]; !ok {
		return
	}
	delete(r.specs, id)
	delete(r.handlers, id)
	for i, o := range r.order {
		if o == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// invocation is a handler selected for dispatch, carrying the region of the
// spec that matched.
type invocation struct {
	record *handlerRecord
	spec   common.ColorSpec
}

// collect marks and returns the handlers eligible for color, in
// registration order.  Marking happens here, under the controller's lock;
// the callbacks themselves run after the lock is released so handler bodies
// may call back into the controller.
func (r *registry) collect(color common.Color) []invocation {
	var out []invocation
	for _, id := range r.order {
		spec := r.specs[id]
		if !spec.Region().Matches(color) {
			continue
		}
		for _, rec := range r.handlers[id] {
			if rec.running {
				continue
			}
			rec.running = true
			out = append(out, invocation{record: rec, spec: spec.Region()})
		}
	}
	return out
}
