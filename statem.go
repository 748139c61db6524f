// Package statem provides a table-driven finite state machine with
// identity-keyed states, ordered transition listeners, and one-shot waiting
// primitives. It is built with types and utilities from the
// github.com/enetx/g library.
package statem

import (
	"github.com/enetx/g"
	"go.uber.org/zap"
)

type (
	// Table maps a state to the ordered set of states directly reachable
	// from it. Keys are state identities, not labels: distinct states with
	// equal labels never share a table entry. A state missing from the table
	// simply has no outgoing transitions; attempting to leave it fails at
	// SetState time, not at construction.
	Table map[*State]g.Slice[*State]

	// Option configures a Machine at construction time.
	Option func(*Machine)

	// Machine is the transition engine. It owns the current state, the
	// transition table, and the listener registry. A plain Machine assumes a
	// single logical actor mutates it at a time; wrap it with Sync for
	// multi-goroutine use.
	Machine struct {
		initial   *State
		current   *State
		states    g.Slice[*State]
		valid     Table
		listeners g.Map[signature, *bucket]
		log       *zap.Logger
	}
)

// Interface compliance check.
var _ StateMachine = (*Machine)(nil)

// WithLogger injects a logger for the transition debug trace and for
// warnings about misbehaving listeners. Without it the machine stays silent;
// control flow never depends on logging.
func WithLogger(log *zap.Logger) Option {
	return func(m *Machine) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a machine from the declared state universe, a transition table
// and an initial state. Labels must be unique across the declared states so
// that display output is unambiguous; collisions fail with ErrLabelCollision
// rather than silently aliasing. Table completeness is not validated here.
func New(initial *State, states g.Slice[*State], valid Table, opts ...Option) (*Machine, error) {
	labels := g.NewSet[g.String]()
	declared := g.NewSet[*State]()

	for s := range states.Iter() {
		if labels.Contains(s.label) {
			return nil, &ErrLabelCollision{Label: s.label}
		}

		labels.Insert(s.label)
		declared.Insert(s)
	}

	if !declared.Contains(initial) {
		return nil, &ErrUnknownState{Label: initial.label}
	}

	m := &Machine{
		initial:   initial,
		current:   initial,
		states:    states.Clone(),
		valid:     valid,
		listeners: g.NewMap[signature, *bucket](),
		log:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Current returns the machine's current state.
func (m *Machine) Current() *State { return m.current }

// States returns a copy of the declared state universe.
func (m *Machine) States() g.Slice[*State] { return m.states.Clone() }

// StateOf looks up a declared state by its label.
func (m *Machine) StateOf(label g.String) g.Option[*State] {
	for s := range m.states.Iter() {
		if s.label == label {
			return g.Some(s)
		}
	}

	return g.None[*State]()
}

// SetState attempts the transition from the current state to 'to'. If the
// transition table does not sanction it, the call fails with
// ErrInvalidTransition and the machine is left unchanged. On success the
// current state is reassigned and all matching listeners run synchronously,
// in the four-phase order described in dispatch, before SetState returns.
// Listeners may themselves call SetState; nested transitions run their own
// full dispatch depth-first.
func (m *Machine) SetState(to *State) error {
	if !m.CanGoTo(to) {
		return &ErrInvalidTransition{From: m.current, To: to}
	}

	from := m.current
	m.current = to

	m.log.Debug("state transition",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
	)

	m.dispatch(from, to)

	return nil
}

// CanGoTo reports whether 'to' is directly reachable from the current state.
func (m *Machine) CanGoTo(to *State) bool {
	targets, ok := m.valid[m.current]
	if !ok {
		return false
	}

	for t := range targets.Iter() {
		if t == to {
			return true
		}
	}

	return false
}

// In reports whether the machine is currently in s.
func (m *Machine) In(s *State) bool { return m.current == s }

// InAny reports whether the machine is currently in any of the given states.
func (m *Machine) InAny(states ...*State) bool {
	for _, s := range states {
		if m.current == s {
			return true
		}
	}

	return false
}

// CheckIn asserts that the machine is currently in s, failing with
// ErrStateAssertion otherwise. An optional message overrides the generated one.
func (m *Machine) CheckIn(s *State, msg ...g.String) error {
	if m.In(s) {
		return nil
	}

	return assertionError(g.SliceOf(s), m.current, msg)
}

// CheckInAny asserts that the machine is currently in one of the given
// states, failing with ErrStateAssertion otherwise.
func (m *Machine) CheckInAny(states g.Slice[*State], msg ...g.String) error {
	if m.InAny(states...) {
		return nil
	}

	return assertionError(states.Clone(), m.current, msg)
}

func assertionError(expected g.Slice[*State], actual *State, msg []g.String) error {
	e := &ErrStateAssertion{Expected: expected, Actual: actual}
	if len(msg) > 0 {
		e.Msg = msg[0]
	}

	return e
}
