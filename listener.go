package statem

import (
	"github.com/enetx/g"
	"go.uber.org/zap"
)

type (
	// TransitionFunc is a listener callback, invoked after a transition with
	// the state that was left and the state that was entered.
	TransitionFunc func(from, to *State)

	// signature identifies one listener bucket. A nil side is a wildcard:
	// dispatch probes exactly the four signatures a transition can match,
	// there is no partial matching across buckets.
	signature struct {
		from *State
		to   *State
	}

	listener struct {
		fn     TransitionFunc
		active bool
	}

	bucket struct {
		records g.Slice[*listener]
	}

	// Registration is the handle returned by the On* methods.
	Registration struct {
		rec *listener
	}
)

// Cancel deactivates the listener so it is never invoked again. Idempotent.
// The record itself is dropped lazily the next time its bucket is dispatched.
func (r *Registration) Cancel() { r.rec.active = false }

// OnLeave registers fn for every transition out of 'from'.
func (m *Machine) OnLeave(from *State, fn TransitionFunc) *Registration {
	return m.addListener(fn, from, nil)
}

// OnTransition registers fn for the exact 'from' -> 'to' transition.
func (m *Machine) OnTransition(from, to *State, fn TransitionFunc) *Registration {
	return m.addListener(fn, from, to)
}

// OnEnter registers fn for every transition into 'to'.
func (m *Machine) OnEnter(to *State, fn TransitionFunc) *Registration {
	return m.addListener(fn, nil, to)
}

// OnAny registers fn for every transition.
func (m *Machine) OnAny(fn TransitionFunc) *Registration {
	return m.addListener(fn, nil, nil)
}

// addListener is the single primitive behind the four On* entry points. It
// appends an active record to the bucket for the exact (from, to) signature
// and returns its cancellation handle.
func (m *Machine) addListener(fn TransitionFunc, from, to *State) *Registration {
	sig := signature{from: from, to: to}

	bk := m.listeners[sig]
	if bk == nil {
		bk = &bucket{}
		m.listeners[sig] = bk
	}

	rec := &listener{fn: fn, active: true}
	bk.records.Push(rec)

	return &Registration{rec: rec}
}

// dispatch runs the four listener phases for a completed from -> to
// transition, in this fixed order: leave-from, exact pair, enter-to,
// catch-all. Within a phase, listeners run in registration order.
func (m *Machine) dispatch(from, to *State) {
	m.fire(signature{from: from}, from, to)
	m.fire(signature{from: from, to: to}, from, to)
	m.fire(signature{to: to}, from, to)
	m.fire(signature{}, from, to)
}

// fire iterates one bucket's live record list. Cancelled records are
// compacted in place instead of invoked, which is how Cancel takes effect
// between dispatches and keeps future dispatches cheap. The list stays live
// during iteration: a callback may cancel later records, or transition again
// and re-enter this bucket depth-first.
func (m *Machine) fire(sig signature, from, to *State) {
	bk := m.listeners[sig]
	if bk == nil {
		return
	}

	i := 0
	for i < len(bk.records) {
		rec := bk.records[i]
		if !rec.active {
			bk.records = append(bk.records[:i], bk.records[i+1:]...)
			continue
		}

		m.invoke(rec, from, to)
		i++
	}
}

// invoke recovers a panicking callback so one misbehaving listener cannot
// corrupt the machine or starve its siblings and the remaining phases.
func (m *Machine) invoke(rec *listener, from, to *State) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Warn("listener panicked",
				zap.Stringer("from", from),
				zap.Stringer("to", to),
				zap.Any("panic", r),
			)
		}
	}()

	rec.fn(from, to)
}

// hasListeners reports whether a bucket holds at least one active record.
func (m *Machine) hasListeners(sig signature) bool {
	bk := m.listeners[sig]
	if bk == nil {
		return false
	}

	for rec := range bk.records.Iter() {
		if rec.active {
			return true
		}
	}

	return false
}
