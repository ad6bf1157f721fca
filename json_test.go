package statefsm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/enetx/statefsm"
)

func TestFSM_Snapshot(t *testing.T) {
	m, _, _ := newMachine(t, "a", "b")

	s := m.Snapshot()
	assert.Nil(t, s.Current)
	assert.Nil(t, s.Previous)

	require.NoError(t, m.TransitionTo("a"))
	require.NoError(t, m.TransitionTo("b"))

	s = m.Snapshot()
	require.NotNil(t, s.Current)
	require.NotNil(t, s.Previous)
	assert.Equal(t, "b", *s.Current)
	assert.Equal(t, "a", *s.Previous)
}

func TestFSM_Serialization(t *testing.T) {
	m, _, _ := newMachine(t, "a", "b", "c")
	require.NoError(t, m.TransitionTo("a"))
	require.NoError(t, m.TransitionTo("c"))

	// Marshal the FSM to JSON.
	jsonData, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":"c","previous":"a"}`, string(jsonData))

	// Create a new FSM with the same states and unmarshal the slots into it.
	restored, states, trace := newMachine(t, "a", "b", "c")
	require.NoError(t, json.Unmarshal(jsonData, restored))

	assertSlots(t, restored, "c", "a")
	assert.Empty(t, *trace)
	assert.Equal(t, 0, states["c"].entered)
}

func TestFSM_SerializationYAML(t *testing.T) {
	m, _, _ := newMachine(t, "a", "b")
	require.NoError(t, m.SetCurrentState("b"))

	yamlData, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "current: b\n", string(yamlData))

	restored, _, trace := newMachine(t, "a", "b")
	require.NoError(t, restored.SetCurrentState("a"))
	require.NoError(t, yaml.Unmarshal(yamlData, restored))

	assertSlots(t, restored, "b", "")
	assert.Empty(t, *trace)
}

func TestFSM_SerializationEmpty(t *testing.T) {
	m, _, _ := newMachine(t, "a")

	jsonData, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(jsonData))

	other, _, _ := newMachine(t, "a")
	require.NoError(t, other.SetCurrentState("a"))
	require.NoError(t, json.Unmarshal(jsonData, other))
	assertSlots(t, other, "", "")
}

func TestFSM_SerializationUnknownState(t *testing.T) {
	m, _, _ := newMachine(t, "a", "b")
	require.NoError(t, m.SetCurrentState("a"))

	err := json.Unmarshal([]byte(`{"current": "unknown_state", "previous": "a"}`), m)
	require.Error(t, err)

	var unknown *statefsm.ErrUnknownState
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown_state", unknown.ID)
	assert.Contains(t, err.Error(), "unknown state")

	err = yaml.Unmarshal([]byte("current: a\nprevious: gone\n"), m)
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "gone", unknown.ID)

	// Nothing changed.
	assertSlots(t, m, "a", "")
}

func TestFSM_SerializationInvalid(t *testing.T) {
	m, _, _ := newMachine(t, "a")

	err := json.Unmarshal([]byte(`{"previous": "a"}`), m)
	assert.ErrorIs(t, err, statefsm.ErrInvalidSnapshot)

	assert.Error(t, json.Unmarshal([]byte(`{"current": 1}`), m))
	assertSlots(t, m, "", "")
}

func TestFSM_RestoreIntegerIDs(t *testing.T) {
	m := statefsm.New[int, float64]()
	m.AddState(10, statefsm.UpdateFunc[float64](func(float64) {}))
	m.AddState(20, statefsm.UpdateFunc[float64](func(float64) {}))

	cur, prev := 20, 10
	require.NoError(t, m.Restore(statefsm.Snapshot[int]{Current: &cur, Previous: &prev}))
	assert.Equal(t, 20, m.CurrentID().Unwrap())
	assert.Equal(t, 10, m.PreviousID().Unwrap())

	jsonData, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"current":20,"previous":10}`, string(jsonData))
}
