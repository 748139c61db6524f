package statem_test

import (
	"sync"
	"testing"
	"time"

	. "github.com/enetx/statem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncMachine_Transitions(t *testing.T) {
	m, _, idle, working, done := canonicalMachine(t)
	sm := m.Sync()

	require.NoError(t, sm.SetState(idle))
	assert.Same(t, idle, sm.Current())
	assert.True(t, sm.CanGoTo(working))

	err := sm.SetState(done)
	var invalid *ErrInvalidTransition
	require.ErrorAs(t, err, &invalid)
	assert.Same(t, idle, sm.Current())
}

func TestSyncMachine_WaitAcrossGoroutines(t *testing.T) {
	m, _, idle, working, done := canonicalMachine(t)
	sm := m.Sync()

	ch := sm.WaitUntilEntered(done)

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		for _, step := range []*State{idle, working, done} {
			_ = sm.SetState(step)
		}
	}()

	select {
	case s := <-ch:
		assert.Same(t, done, s)
	case <-time.After(5 * time.Second):
		t.Fatal("wait future never resolved")
	}

	wg.Wait()
}

func TestSyncMachine_ConcurrentReaders(t *testing.T) {
	m, init, idle, working, done := canonicalMachine(t)
	sm := m.Sync()

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = sm.Current()
				_ = sm.CanGoTo(working)
				_ = sm.InAny(init, idle, working, done)
				_ = sm.ToDOT()
			}
		}()
	}

	for _, step := range []*State{idle, working, done} {
		require.NoError(t, sm.SetState(step))
	}

	wg.Wait()
	assert.Same(t, done, sm.Current())
}
