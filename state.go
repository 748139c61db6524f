package statem

import "github.com/enetx/g"

// State is an immutable named node in a machine's state graph. Two *State
// values denote the same state only if they are the same pointer; labels are
// display-only and never consulted by transition logic. The optional parent
// is likewise display-only nesting.
type State struct {
	label  g.String
	parent *State
}

// NewState creates a state with the given label and an optional display parent.
func NewState(label g.String, parent ...*State) *State {
	s := &State{label: label}
	if len(parent) > 0 {
		s.parent = parent[0]
	}

	return s
}

// Label returns the state's display label.
func (s *State) Label() g.String { return s.label }

// Parent returns the state's display parent, or nil.
func (s *State) Parent() *State { return s.parent }

// String renders the full display path, outermost parent first,
// e.g. "pipeline/worker/IDLE".
func (s *State) String() string {
	if s == nil {
		return "<nil>"
	}

	if s.parent != nil {
		return s.parent.String() + "/" + string(s.label)
	}

	return string(s.label)
}

// Description returns the label alone, without the parent path.
func (s *State) Description() g.String { return s.label }
