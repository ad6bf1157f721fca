package statefsm

import (
	"github.com/enetx/g"
	"gopkg.in/yaml.v3"
)

// AddState is the thread-safe version of FSM.AddState.
func (sf *SyncFSM[ID, D]) AddState(id ID, state State[D]) bool {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.AddState(id, state)
}

// RemoveState is the thread-safe version of FSM.RemoveState.
func (sf *SyncFSM[ID, D]) RemoveState(id ID) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.RemoveState(id)
}

// SetCurrentState is the thread-safe version of FSM.SetCurrentState.
func (sf *SyncFSM[ID, D]) SetCurrentState(id ID) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.SetCurrentState(id)
}

// TransitionTo is the thread-safe version of FSM.TransitionTo.
// It atomically executes the whole exit/enter sequence.
func (sf *SyncFSM[ID, D]) TransitionTo(id ID) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.TransitionTo(id)
}

// TransitionToPreviousState is the thread-safe version of FSM.TransitionToPreviousState.
func (sf *SyncFSM[ID, D]) TransitionToPreviousState() error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.TransitionToPreviousState()
}

// Update is the thread-safe version of FSM.Update.
// It takes the write lock because the current state may mutate itself.
func (sf *SyncFSM[ID, D]) Update(data D) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Update(data)
}

// Reset is the thread-safe version of FSM.Reset.
func (sf *SyncFSM[ID, D]) Reset() {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.Reset()
}

// OnTransition is the thread-safe version of FSM.OnTransition.
func (sf *SyncFSM[ID, D]) OnTransition(hook TransitionHook[ID]) *SyncFSM[ID, D] {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.fsm.OnTransition(hook)

	return sf
}

// Has is the thread-safe version of FSM.Has.
func (sf *SyncFSM[ID, D]) Has(id ID) bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Has(id)
}

// Get is the thread-safe version of FSM.Get.
// The returned state itself is not protected by the lock.
func (sf *SyncFSM[ID, D]) Get(id ID) g.Option[State[D]] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Get(id)
}

// Len is the thread-safe version of FSM.Len.
func (sf *SyncFSM[ID, D]) Len() int {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Len()
}

// IDs is the thread-safe version of FSM.IDs.
func (sf *SyncFSM[ID, D]) IDs() g.Slice[ID] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.IDs()
}

// States is the thread-safe version of FSM.States.
func (sf *SyncFSM[ID, D]) States() g.Slice[State[D]] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.States()
}

// HasCurrentState is the thread-safe version of FSM.HasCurrentState.
func (sf *SyncFSM[ID, D]) HasCurrentState() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.HasCurrentState()
}

// HasPreviousState is the thread-safe version of FSM.HasPreviousState.
func (sf *SyncFSM[ID, D]) HasPreviousState() bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.HasPreviousState()
}

// CurrentID is the thread-safe version of FSM.CurrentID.
func (sf *SyncFSM[ID, D]) CurrentID() g.Option[ID] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.CurrentID()
}

// Current is the thread-safe version of FSM.Current.
func (sf *SyncFSM[ID, D]) Current() g.Option[State[D]] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Current()
}

// PreviousID is the thread-safe version of FSM.PreviousID.
func (sf *SyncFSM[ID, D]) PreviousID() g.Option[ID] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.PreviousID()
}

// Previous is the thread-safe version of FSM.Previous.
func (sf *SyncFSM[ID, D]) Previous() g.Option[State[D]] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Previous()
}

// Snapshot is the thread-safe version of FSM.Snapshot.
func (sf *SyncFSM[ID, D]) Snapshot() Snapshot[ID] {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.Snapshot()
}

// Restore is the thread-safe version of FSM.Restore.
func (sf *SyncFSM[ID, D]) Restore(s Snapshot[ID]) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.Restore(s)
}

// ToDOT is the thread-safe version of FSM.ToDOT.
// It generates a DOT language string representation of the FSM for visualization.
func (sf *SyncFSM[ID, D]) ToDOT() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.ToDOT()
}

// MarshalJSON implements the json.Marshaler interface for thread-safe
// serialization of the FSM's slots to JSON.
func (sf *SyncFSM[ID, D]) MarshalJSON() ([]byte, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for thread-safe
// deserialization of the FSM's slots from JSON.
func (sf *SyncFSM[ID, D]) UnmarshalJSON(data []byte) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.UnmarshalJSON(data)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (sf *SyncFSM[ID, D]) MarshalYAML() (any, error) {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.fsm.MarshalYAML()
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (sf *SyncFSM[ID, D]) UnmarshalYAML(value *yaml.Node) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.fsm.UnmarshalYAML(value)
}
