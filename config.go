package statem

import (
	"fmt"

	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

type (
	// StateDef declares one state in a Definition. Parent, when set, names
	// another declared state used for display nesting only.
	StateDef struct {
		Label  g.String `yaml:"label"`
		Parent g.String `yaml:"parent,omitempty"`
	}

	// Definition is a declarative machine description, typically loaded from
	// YAML:
	//
	//	initial: INIT
	//	states:
	//	  - label: INIT
	//	  - label: IDLE
	//	  - label: WORKING
	//	  - label: DONE
	//	transitions:
	//	  INIT: [IDLE, WORKING]
	//	  IDLE: [WORKING]
	//	  WORKING: [DONE]
	//	  DONE: []
	Definition struct {
		Initial     g.String                `yaml:"initial"`
		States      []StateDef              `yaml:"states"`
		Transitions map[g.String][]g.String `yaml:"transitions"`
	}
)

// FromYAML parses a YAML machine definition and builds the machine.
func FromYAML(data []byte, opts ...Option) (*Machine, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("statem: failed to parse definition: %w", err)
	}

	return def.Build(opts...)
}

// Build interns one *State per declared label and assembles the machine.
// Within a definition labels double as identities, which is sound exactly
// because duplicates are rejected with ErrLabelCollision. References to
// undeclared labels fail with ErrUnknownState.
func (d *Definition) Build(opts ...Option) (*Machine, error) {
	byLabel := g.NewMap[g.String, *State]()

	var states g.Slice[*State]

	for _, sd := range d.States {
		if byLabel.Contains(sd.Label) {
			return nil, &ErrLabelCollision{Label: sd.Label}
		}

		s := NewState(sd.Label)
		byLabel[sd.Label] = s
		states.Push(s)
	}

	// parents may be declared after their children, so resolve in a second pass
	for i, sd := range d.States {
		if sd.Parent == "" {
			continue
		}

		parent := byLabel[sd.Parent]
		if parent == nil {
			return nil, &ErrUnknownState{Label: sd.Parent}
		}

		states[i].parent = parent
	}

	table := Table{}

	for from, targets := range d.Transitions {
		fs := byLabel[from]
		if fs == nil {
			return nil, &ErrUnknownState{Label: from}
		}

		out := g.NewSlice[*State]()
		for _, t := range targets {
			ts := byLabel[t]
			if ts == nil {
				return nil, &ErrUnknownState{Label: t}
			}

			out.Push(ts)
		}

		table[fs] = out
	}

	initial := byLabel[d.Initial]
	if initial == nil {
		return nil, &ErrUnknownState{Label: d.Initial}
	}

	return New(initial, states, table, opts...)
}
