package statem

import (
	"github.com/enetx/g"
	"github.com/enetx/g/cmp"
)

// ToDOT generates a DOT language string representation of the machine for
// visualization. The current state is highlighted, terminal states (no
// outgoing transitions) are greyed out, and states carrying enter or leave
// listeners get a tooltip.
func (m *Machine) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph statem {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> \"{}\" [label=\" initial\"];\n\n", m.initial))

	states := m.states.Clone()
	states.SortBy(func(a, b *State) cmp.Ordering { return cmp.Cmp(a.String(), b.String()) })

	outgoing := g.NewSet[*State]()
	for from, targets := range m.valid {
		if targets.NotEmpty() {
			outgoing.Insert(from)
		}
	}

	for state := range states.Iter() {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label=\"{}\"", state))

		switch {
		case state == m.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !outgoing.Contains(state):
			attrs.Push("fillcolor=\"#d3d3d3\"", "shape=doublecircle")
		}

		var hooks g.Slice[g.String]

		if m.hasListeners(signature{from: state}) {
			hooks.Push("OnLeave")
		}

		if m.hasListeners(signature{to: state}) {
			hooks.Push("OnEnter")
		}

		if hooks.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", hooks.Join("\\n")))
		}

		b.WriteString(g.Format("  \"{}\" [{}];\n", state, attrs.Join(", ")))
	}

	b.WriteByte('\n')

	for from := range states.Iter() {
		targets, ok := m.valid[from]
		if !ok {
			continue
		}

		for to := range targets.Iter() {
			b.WriteString(g.Format("  \"{}\" -> \"{}\";\n", from, to))
		}
	}

	b.WriteString("}\n")

	return b.String()
}
