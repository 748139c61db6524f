package statem

import (
	"encoding/json"

	"github.com/enetx/g"
)

// Snapshot is a display-oriented serializable view of a machine, keyed by
// rendered state paths. It exists for inspection and debugging; there is no
// UnmarshalJSON counterpart, machines are rebuilt from configuration.
type Snapshot struct {
	Initial     g.String                           `json:"initial"`
	Current     g.String                           `json:"current"`
	States      g.Slice[g.String]                  `json:"states"`
	Transitions g.Map[g.String, g.Slice[g.String]] `json:"transitions"`
}

// MarshalJSON implements the json.Marshaler interface.
func (m *Machine) MarshalJSON() ([]byte, error) {
	snap := Snapshot{
		Initial:     g.String(m.initial.String()),
		Current:     g.String(m.current.String()),
		Transitions: g.NewMap[g.String, g.Slice[g.String]](),
	}

	for s := range m.states.Iter() {
		snap.States.Push(g.String(s.String()))

		targets, ok := m.valid[s]
		if !ok {
			continue
		}

		rendered := g.NewSlice[g.String]()
		for t := range targets.Iter() {
			rendered.Push(g.String(t.String()))
		}

		snap.Transitions[g.String(s.String())] = rendered
	}

	return json.Marshal(snap)
}
