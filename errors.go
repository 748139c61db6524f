package statem

import (
	"fmt"

	"github.com/enetx/g"
)

// ErrInvalidTransition is returned by SetState when the target state is not
// directly reachable from the current state per the transition table,
// including when the current state has no table entry at all. The machine is
// left unchanged.
type ErrInvalidTransition struct {
	From *State
	To   *State
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("statem: invalid transition %q --> %q", e.From, e.To)
}

// ErrStateAssertion is returned by CheckIn and CheckInAny when the machine is
// not in the expected state(s). Msg, when set, replaces the generated message.
type ErrStateAssertion struct {
	Expected g.Slice[*State]
	Actual   *State
	Msg      g.String
}

func (e *ErrStateAssertion) Error() string {
	if e.Msg != "" {
		return string(e.Msg)
	}

	return fmt.Sprintf("statem: expected state %s, got %q", renderStates(e.Expected), e.Actual)
}

// ErrGuardViolation is returned by the CheckState* guard wrappers when the
// guarded operation is invoked outside its required state(s). The AssumeState*
// wrappers never produce it; they skip and log instead.
type ErrGuardViolation struct {
	Op       g.String
	Expected g.Slice[*State]
	Actual   *State
	Negated  bool
	Msg      g.String
}

func (e *ErrGuardViolation) Error() string {
	if e.Msg != "" {
		return string(e.Msg)
	}

	if e.Negated {
		return fmt.Sprintf("statem: %s must not run in state %s, currently %q", e.Op, renderStates(e.Expected), e.Actual)
	}

	return fmt.Sprintf("statem: %s requires state %s, got %q", e.Op, renderStates(e.Expected), e.Actual)
}

// ErrLabelCollision is returned at configuration time when two distinct
// states share a label. Labels are display-only, but a collision would make
// rendered output ambiguous, so it is rejected instead of silently merged.
type ErrLabelCollision struct {
	Label g.String
}

func (e *ErrLabelCollision) Error() string {
	return fmt.Sprintf("statem: duplicate state label %q", e.Label)
}

// ErrUnknownState is returned when a configuration references a state that
// was never declared.
type ErrUnknownState struct {
	Label g.String
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("statem: unknown state %q", e.Label)
}

func renderStates(states g.Slice[*State]) string {
	if states.Len() == 1 {
		return fmt.Sprintf("%q", states[0])
	}

	var labels g.Slice[g.String]
	for s := range states.Iter() {
		labels.Push(g.String(s.String()))
	}

	return "[" + string(labels.Join(", ")) + "]"
}
