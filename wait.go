package statem

import "github.com/enetx/g"

// The waiting primitives return one-shot futures realised as buffered
// channels of capacity one: resolving never blocks the dispatch loop, and
// the consumer observes the resolution whenever it gets around to receiving.
// They resolve exactly once, never fail, and carry no timeout; a caller that
// loses interest simply stops receiving.

// WaitUntilLeft resolves with the entered state the first time the machine
// leaves s. If the machine is already in a different state it resolves
// immediately with the current state. The backing listener cancels itself
// right after firing.
func (m *Machine) WaitUntilLeft(s *State) <-chan *State {
	done := make(chan *State, 1)

	if m.current != s {
		done <- m.current
		return done
	}

	var reg *Registration

	reg = m.OnLeave(s, func(_, to *State) {
		reg.Cancel()
		done <- to
	})

	return done
}

// WaitUntilEntered is WaitUntilEnteredAny for a single state.
func (m *Machine) WaitUntilEntered(s *State) <-chan *State {
	return m.WaitUntilEnteredAny(s)
}

// WaitUntilEnteredAny resolves with the entered state the first time the
// machine enters any of the given states. If the machine is already in one
// of them it resolves immediately with the current state. Otherwise one
// enter-listener is registered per candidate, in argument order; the first
// to fire cancels itself and all siblings, so exactly one resolution ever
// occurs no matter how the machine moves afterwards.
func (m *Machine) WaitUntilEnteredAny(states ...*State) <-chan *State {
	done := make(chan *State, 1)

	if m.InAny(states...) {
		done <- m.current
		return done
	}

	var (
		resolved bool
		regs     g.Slice[*Registration]
	)

	for _, s := range states {
		if resolved {
			break
		}

		regs.Push(m.OnEnter(s, func(_, to *State) {
			if resolved {
				return
			}

			resolved = true

			for reg := range regs.Iter() {
				reg.Cancel()
			}

			done <- to
		}))
	}

	return done
}
