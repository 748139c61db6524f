package statem_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachine_MarshalJSON(t *testing.T) {
	m, _, idle, _, _ := canonicalMachine(t)
	require.NoError(t, m.SetState(idle))

	data, err := json.Marshal(m)
	require.NoError(t, err)

	var snap struct {
		Initial     string              `json:"initial"`
		Current     string              `json:"current"`
		States      []string            `json:"states"`
		Transitions map[string][]string `json:"transitions"`
	}
	require.NoError(t, json.Unmarshal(data, &snap))

	assert.Equal(t, "INIT", snap.Initial)
	assert.Equal(t, "IDLE", snap.Current)
	assert.Equal(t, []string{"INIT", "IDLE", "WORKING", "DONE"}, snap.States)
	assert.Equal(t, []string{"IDLE", "WORKING"}, snap.Transitions["INIT"])
	assert.Empty(t, snap.Transitions["DONE"])
}
