package statem_test

import (
	"testing"

	. "github.com/enetx/statem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonicalYAML = `
initial: INIT
states:
  - label: INIT
  - label: IDLE
  - label: WORKING
  - label: DONE
transitions:
  INIT: [IDLE, WORKING]
  IDLE: [WORKING]
  WORKING: [DONE]
  DONE: []
`

func TestFromYAML(t *testing.T) {
	m, err := FromYAML([]byte(canonicalYAML))
	require.NoError(t, err)

	assert.Equal(t, "INIT", m.Current().String())
	assert.Equal(t, 4, int(m.States().Len()))

	idle := m.StateOf("IDLE").Unwrap()
	done := m.StateOf("DONE").Unwrap()

	assert.True(t, m.CanGoTo(idle))
	assert.False(t, m.CanGoTo(done))

	require.NoError(t, m.SetState(idle))
	assert.Same(t, idle, m.Current())
}

func TestFromYAML_ParentRendering(t *testing.T) {
	m, err := FromYAML([]byte(`
initial: IDLE
states:
  - label: worker
  - label: IDLE
    parent: worker
transitions:
  IDLE: []
`))
	require.NoError(t, err)

	assert.Equal(t, "worker/IDLE", m.Current().String())
	assert.Equal(t, "IDLE", string(m.Current().Description()))
}

func TestFromYAML_DuplicateLabel(t *testing.T) {
	_, err := FromYAML([]byte(`
initial: A
states:
  - label: A
  - label: A
transitions:
  A: []
`))

	var collision *ErrLabelCollision
	require.ErrorAs(t, err, &collision)
	assert.Equal(t, "A", string(collision.Label))
}

func TestFromYAML_UnknownReferences(t *testing.T) {
	for name, doc := range map[string]string{
		"initial": `
initial: GHOST
states:
  - label: A
transitions:
  A: []
`,
		"transition source": `
initial: A
states:
  - label: A
transitions:
  GHOST: [A]
`,
		"transition target": `
initial: A
states:
  - label: A
transitions:
  A: [GHOST]
`,
		"parent": `
initial: A
states:
  - label: A
    parent: GHOST
transitions:
  A: []
`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromYAML([]byte(doc))

			var unknown *ErrUnknownState
			require.ErrorAs(t, err, &unknown)
			assert.Equal(t, "GHOST", string(unknown.Label))
		})
	}
}

func TestFromYAML_Malformed(t *testing.T) {
	_, err := FromYAML([]byte(`{not yaml: [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse definition")
}
