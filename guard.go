package statem

import (
	"github.com/enetx/g"
	"go.uber.org/zap"
)

// Stater is the read capability the guard wrappers consume: any host that
// exposes its current state. Both *Machine and *SyncMachine satisfy it.
type Stater interface {
	Current() *State
}

// The guard layer wraps an operation with a state precondition. The
// CheckState* family fails the wrapped call with ErrGuardViolation on
// mismatch; the AssumeState* family skips the operation, returns the zero
// value, and logs a warning instead. Guards hold no state of their own and
// compose only with the Stater capability and the logger. The 'op' argument
// names the operation in generated messages and logs.

// CheckStateIs wraps fn so it runs only while host is in want.
func CheckStateIs[T any](host Stater, op g.String, want *State, fn func() (T, error), msg ...g.String) func() (T, error) {
	return checkState(host, op, g.SliceOf(want), false, fn, msg)
}

// CheckStateIn wraps fn so it runs only while host is in one of want.
func CheckStateIn[T any](host Stater, op g.String, want g.Slice[*State], fn func() (T, error), msg ...g.String) func() (T, error) {
	return checkState(host, op, want, false, fn, msg)
}

// CheckStateNotIn wraps fn so it runs only while host is in none of forbidden.
func CheckStateNotIn[T any](host Stater, op g.String, forbidden g.Slice[*State], fn func() (T, error), msg ...g.String) func() (T, error) {
	return checkState(host, op, forbidden, true, fn, msg)
}

// AssumeStateIs wraps fn so it is silently skipped unless host is in want.
func AssumeStateIs[T any](host Stater, op g.String, want *State, log *zap.Logger, fn func() (T, error)) func() (T, error) {
	return assumeState(host, op, g.SliceOf(want), false, log, fn)
}

// AssumeStateIsNot wraps fn so it is silently skipped while host is in forbidden.
func AssumeStateIsNot[T any](host Stater, op g.String, forbidden *State, log *zap.Logger, fn func() (T, error)) func() (T, error) {
	return assumeState(host, op, g.SliceOf(forbidden), true, log, fn)
}

// AssumeStateIsIn wraps fn so it is silently skipped unless host is in one of want.
func AssumeStateIsIn[T any](host Stater, op g.String, want g.Slice[*State], log *zap.Logger, fn func() (T, error)) func() (T, error) {
	return assumeState(host, op, want, false, log, fn)
}

// AssumeStateIsNotIn wraps fn so it is silently skipped while host is in any of forbidden.
func AssumeStateIsNotIn[T any](host Stater, op g.String, forbidden g.Slice[*State], log *zap.Logger, fn func() (T, error)) func() (T, error) {
	return assumeState(host, op, forbidden, true, log, fn)
}

func checkState[T any](host Stater, op g.String, states g.Slice[*State], negate bool, fn func() (T, error), msg []g.String) func() (T, error) {
	return func() (T, error) {
		if stateMatches(host.Current(), states) != negate {
			return fn()
		}

		e := &ErrGuardViolation{Op: op, Expected: states, Actual: host.Current(), Negated: negate}
		if len(msg) > 0 {
			e.Msg = msg[0]
		}

		var zero T
		return zero, e
	}
}

func assumeState[T any](host Stater, op g.String, states g.Slice[*State], negate bool, log *zap.Logger, fn func() (T, error)) func() (T, error) {
	if log == nil {
		log = zap.NewNop()
	}

	return func() (T, error) {
		if stateMatches(host.Current(), states) != negate {
			return fn()
		}

		log.Warn("operation skipped, state precondition not met",
			zap.String("op", string(op)),
			zap.Stringer("state", host.Current()),
		)

		var zero T
		return zero, nil
	}
}

func stateMatches(current *State, states g.Slice[*State]) bool {
	for s := range states.Iter() {
		if s == current {
			return true
		}
	}

	return false
}
