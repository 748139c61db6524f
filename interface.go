package statem

import "github.com/enetx/g"

// StateMachine is the surface shared by Machine and SyncMachine.
type StateMachine interface {
	Current() *State
	SetState(*State) error
	CanGoTo(*State) bool
	In(*State) bool
	InAny(...*State) bool
	CheckIn(*State, ...g.String) error
	CheckInAny(g.Slice[*State], ...g.String) error
	OnEnter(*State, TransitionFunc) *Registration
	OnLeave(*State, TransitionFunc) *Registration
	OnTransition(*State, *State, TransitionFunc) *Registration
	OnAny(TransitionFunc) *Registration
	WaitUntilLeft(*State) <-chan *State
	WaitUntilEntered(*State) <-chan *State
	WaitUntilEnteredAny(...*State) <-chan *State
	States() g.Slice[*State]
	StateOf(g.String) g.Option[*State]
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
}
