package statefsm

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Snapshot is a serializable representation of the FSM's reference slots.
// States themselves are behavior and are not serialized; a snapshot can only be
// restored into a machine that already holds the referenced states.
type Snapshot[ID any] struct {
	Current  *ID `json:"current,omitempty"  yaml:"current,omitempty"`
	Previous *ID `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// Snapshot captures the current and previous identifiers.
func (f *FSM[ID, D]) Snapshot() Snapshot[ID] {
	var s Snapshot[ID]

	if f.current != nil {
		id := f.current.id
		s.Current = &id
	}

	if f.previous != nil {
		id := f.previous.id
		s.Previous = &id
	}

	return s
}

// Restore sets the slots from s without calling any hook.
// Every referenced identifier must be stored in f, otherwise *ErrUnknownState is
// returned and nothing changes.
func (f *FSM[ID, D]) Restore(s Snapshot[ID]) error {
	if s.Current == nil && s.Previous != nil {
		return ErrInvalidSnapshot
	}

	var current, previous *entry[ID, D]

	if s.Current != nil {
		e, ok := f.states[*s.Current]
		if !ok {
			return &ErrUnknownState{ID: *s.Current}
		}

		current = e
	}

	if s.Previous != nil {
		e, ok := f.states[*s.Previous]
		if !ok {
			return &ErrUnknownState{ID: *s.Previous}
		}

		previous = e
	}

	f.current, f.previous = current, previous
	f.logger.Debug("statefsm: slots restored", "current", slotID(current), "previous", slotID(previous))

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (f *FSM[ID, D]) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Snapshot())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (f *FSM[ID, D]) UnmarshalJSON(data []byte) error {
	var s Snapshot[ID]
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal fsm snapshot: %w", err)
	}

	return f.Restore(s)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (f *FSM[ID, D]) MarshalYAML() (any, error) {
	return f.Snapshot(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (f *FSM[ID, D]) UnmarshalYAML(value *yaml.Node) error {
	var s Snapshot[ID]
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("failed to unmarshal fsm snapshot: %w", err)
	}

	return f.Restore(s)
}
