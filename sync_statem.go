package statem

import (
	"sync"

	"github.com/enetx/g"
)

// SyncMachine is a thread-safe wrapper around a Machine. It protects all
// state-mutating and state-reading operations with a sync.RWMutex, making it
// safe for use across multiple goroutines. Listeners run while the lock is
// held: a listener must not call back into the SyncMachine, or it will
// deadlock. Use the plain Machine (and its reentrancy guarantees) when
// listeners need to drive further transitions.
type SyncMachine struct {
	m  *Machine
	mu sync.RWMutex
}

// Interface compliance check.
var _ StateMachine = (*SyncMachine)(nil)

// Sync wraps the machine for multi-goroutine use.
func (m *Machine) Sync() *SyncMachine { return &SyncMachine{m: m} }

// SetState is the thread-safe version of Machine.SetState.
// It atomically validates and executes the transition, including listener dispatch.
func (sm *SyncMachine) SetState(to *State) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.SetState(to)
}

// Current is the thread-safe version of Machine.Current.
func (sm *SyncMachine) Current() *State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.Current()
}

// CanGoTo is the thread-safe version of Machine.CanGoTo.
func (sm *SyncMachine) CanGoTo(to *State) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.CanGoTo(to)
}

// In is the thread-safe version of Machine.In.
func (sm *SyncMachine) In(s *State) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.In(s)
}

// InAny is the thread-safe version of Machine.InAny.
func (sm *SyncMachine) InAny(states ...*State) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.InAny(states...)
}

// CheckIn is the thread-safe version of Machine.CheckIn.
func (sm *SyncMachine) CheckIn(s *State, msg ...g.String) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.CheckIn(s, msg...)
}

// CheckInAny is the thread-safe version of Machine.CheckInAny.
func (sm *SyncMachine) CheckInAny(states g.Slice[*State], msg ...g.String) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.CheckInAny(states, msg...)
}

// OnEnter is the thread-safe version of Machine.OnEnter.
func (sm *SyncMachine) OnEnter(to *State, fn TransitionFunc) *Registration {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.OnEnter(to, fn)
}

// OnLeave is the thread-safe version of Machine.OnLeave.
func (sm *SyncMachine) OnLeave(from *State, fn TransitionFunc) *Registration {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.OnLeave(from, fn)
}

// OnTransition is the thread-safe version of Machine.OnTransition.
func (sm *SyncMachine) OnTransition(from, to *State, fn TransitionFunc) *Registration {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.OnTransition(from, to, fn)
}

// OnAny is the thread-safe version of Machine.OnAny.
func (sm *SyncMachine) OnAny(fn TransitionFunc) *Registration {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.OnAny(fn)
}

// WaitUntilLeft is the thread-safe version of Machine.WaitUntilLeft.
func (sm *SyncMachine) WaitUntilLeft(s *State) <-chan *State {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.WaitUntilLeft(s)
}

// WaitUntilEntered is the thread-safe version of Machine.WaitUntilEntered.
func (sm *SyncMachine) WaitUntilEntered(s *State) <-chan *State {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.WaitUntilEntered(s)
}

// WaitUntilEnteredAny is the thread-safe version of Machine.WaitUntilEnteredAny.
func (sm *SyncMachine) WaitUntilEnteredAny(states ...*State) <-chan *State {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.m.WaitUntilEnteredAny(states...)
}

// States is the thread-safe version of Machine.States.
func (sm *SyncMachine) States() g.Slice[*State] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.States()
}

// StateOf is the thread-safe version of Machine.StateOf.
func (sm *SyncMachine) StateOf(label g.String) g.Option[*State] {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.StateOf(label)
}

// ToDOT is the thread-safe version of Machine.ToDOT.
func (sm *SyncMachine) ToDOT() g.String {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the machine's snapshot.
func (sm *SyncMachine) MarshalJSON() ([]byte, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.m.MarshalJSON()
}
