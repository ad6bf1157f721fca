// Package statefsm provides a generic finite state machine container that owns a
// set of polymorphic states, tracks the current and previous one, and invokes their
// enter, exit and update hooks across transitions. It is built with types and
// utilities from the github.com/enetx/g library.
//
// The machine is passive: nothing happens until the host calls Update,
// TransitionTo and friends. Operations that reference an unknown identifier, or
// need a current or previous state that is not set, return an error and leave the
// machine unchanged. Queries return g.Option values instead.
package statefsm

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/enetx/g"
	gcmp "github.com/enetx/g/cmp"
)

// New creates an empty FSM. Adding states does not select a current one;
// use SetCurrentState or TransitionTo for that.
func New[ID cmp.Ordered, D any](opts ...Option) *FSM[ID, D] {
	o := options{logger: Logger}
	for _, opt := range opts {
		opt(&o)
	}

	return &FSM[ID, D]{
		states: g.NewMap[ID, *entry[ID, D]](),
		logger: o.logger,
	}
}

// Sync returns a thread-safe wrapper around f.
// The wrapper takes over f; callers should not keep using f directly.
func (f *FSM[ID, D]) Sync() *SyncFSM[ID, D] { return &SyncFSM[ID, D]{fsm: f} }

// AddState stores state under id. The machine takes ownership of the state.
// If id is already present, or state is nil, the call does nothing and returns false.
func (f *FSM[ID, D]) AddState(id ID, state State[D]) bool {
	if state == nil {
		return false
	}

	if _, ok := f.states[id]; ok {
		return false
	}

	f.states[id] = &entry[ID, D]{id: id, state: state}

	return true
}

// RemoveState removes the state stored under id.
//
// If id is the current state and a different previous state exists, the machine
// transitions to the previous state first and both slots end up on it. If id is
// both current and previous, OnExit is called once and both slots are cleared.
// If id is current with no previous state, OnExit is called and current is cleared.
// If id is only the previous state, previous is cleared without any hook.
//
// Returns *ErrNotFound if id is not stored. A non-nil *ErrCallback means the state
// was removed but one of the hooks failed.
func (f *FSM[ID, D]) RemoveState(id ID) error {
	e, ok := f.states[id]
	if !ok {
		return &ErrNotFound{ID: id}
	}

	var err error

	switch {
	case f.current == e:
		switch {
		case f.previous != nil && f.previous != e:
			err = f.transition(f.previous)
			f.previous = f.current
		case f.previous != nil:
			err = f.call("OnExit", e, e.state.OnExit)
			f.current, f.previous = nil, nil
		default:
			err = f.call("OnExit", e, e.state.OnExit)
			f.current = nil
		}
	case f.previous == e:
		f.previous = nil
	}

	delete(f.states, id)
	f.logger.Debug("statefsm: state removed", "id", id, "current", slotID(f.current))

	return err
}

// SetCurrentState makes id the current state without calling any hook.
// The former current state, if any, becomes the previous state.
// It is meant for setting the initial state or re-initializing the machine.
func (f *FSM[ID, D]) SetCurrentState(id ID) error {
	next, ok := f.states[id]
	if !ok {
		return &ErrNotFound{ID: id}
	}

	if f.current != nil {
		f.previous = f.current
	}

	f.current = next
	f.logger.Debug("statefsm: current state set", "id", id, "previous", slotID(f.previous))

	return nil
}

// TransitionTo moves the machine to id. The order of operations is: OnExit on the
// current state (if any), previous set to that state, transition hooks, current set
// to id, OnEnter on the new current state.
//
// Transitioning to the current state is allowed and repeats the exit/enter sequence.
func (f *FSM[ID, D]) TransitionTo(id ID) error {
	next, ok := f.states[id]
	if !ok {
		return &ErrNotFound{ID: id}
	}

	return f.transition(next)
}

// TransitionToPreviousState transitions to the previous state, which swaps
// current and previous. Returns ErrNoPreviousState if there is none.
func (f *FSM[ID, D]) TransitionToPreviousState() error {
	if f.previous == nil {
		return ErrNoPreviousState
	}

	return f.transition(f.previous)
}

// Update forwards data to the current state's Update hook.
// Returns ErrNoCurrentState if no state is current.
func (f *FSM[ID, D]) Update(data D) (err error) {
	cur := f.current
	if cur == nil {
		return ErrNoCurrentState
	}

	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{HookType: "Update", ID: cur.id, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	cur.state.Update(data)

	return nil
}

// Reset clears the current and previous states without calling any hook.
// Stored states are kept.
func (f *FSM[ID, D]) Reset() {
	f.current, f.previous = nil, nil
	f.logger.Debug("statefsm: reset")
}

// OnTransition registers a global transition hook.
func (f *FSM[ID, D]) OnTransition(hook TransitionHook[ID]) *FSM[ID, D] {
	if hook != nil {
		f.onTransition.Push(hook)
	}

	return f
}

// transition runs exit, slot bookkeeping, hooks and enter for a move to next.
// Every step runs even when an earlier hook failed, so the slots never end up half-updated.
func (f *FSM[ID, D]) transition(next *entry[ID, D]) error {
	var errs []error

	from := g.None[ID]()

	if cur := f.current; cur != nil {
		from = g.Some(cur.id)

		if err := f.call("OnExit", cur, cur.state.OnExit); err != nil {
			errs = append(errs, err)
		}

		f.previous = cur
	}

	for _, hook := range f.onTransition {
		if err := f.runHook(hook, from, next.id); err != nil {
			errs = append(errs, err)
		}
	}

	f.current = next

	if err := f.call("OnEnter", next, next.state.OnEnter); err != nil {
		errs = append(errs, err)
	}

	f.logger.Debug("statefsm: transition", "from", slotID(f.previous), "to", next.id)

	return errors.Join(errs...)
}

// call safely executes a state hook, recovering from panics.
func (f *FSM[ID, D]) call(hookType string, e *entry[ID, D], hook func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{HookType: hookType, ID: e.id, Err: fmt.Errorf("panic: %v", r)}
			f.logger.Warn("statefsm: hook panicked", "hook", hookType, "id", e.id, "panic", r)
		}
	}()

	hook()

	return nil
}

// runHook safely executes a transition hook, recovering from panics.
func (f *FSM[ID, D]) runHook(hook TransitionHook[ID], from g.Option[ID], to ID) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ErrCallback{HookType: "OnTransition", ID: to, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	if hookErr := hook(from, to); hookErr != nil {
		err = &ErrCallback{HookType: "OnTransition", ID: to, Err: hookErr}
	}

	return err
}

// Has reports whether a state is stored under id.
func (f *FSM[ID, D]) Has(id ID) bool {
	_, ok := f.states[id]
	return ok
}

// Get returns the state stored under id.
func (f *FSM[ID, D]) Get(id ID) g.Option[State[D]] {
	if e, ok := f.states[id]; ok {
		return g.Some(e.state)
	}

	return g.None[State[D]]()
}

// Len returns the number of stored states.
func (f *FSM[ID, D]) Len() int { return len(f.states) }

// IDs returns the identifiers of all stored states in ascending order.
func (f *FSM[ID, D]) IDs() g.Slice[ID] {
	ids := f.states.Keys()
	ids.SortBy(gcmp.Cmp[ID])

	return ids
}

// States returns all stored states, ordered by identifier.
func (f *FSM[ID, D]) States() g.Slice[State[D]] {
	states := make(g.Slice[State[D]], 0, len(f.states))
	for id := range f.IDs().Iter() {
		states = append(states, f.states[id].state)
	}

	return states
}

// HasCurrentState reports whether the machine has a current state.
func (f *FSM[ID, D]) HasCurrentState() bool { return f.current != nil }

// HasPreviousState reports whether the machine has a previous state.
func (f *FSM[ID, D]) HasPreviousState() bool { return f.previous != nil }

// CurrentID returns the identifier of the current state.
func (f *FSM[ID, D]) CurrentID() g.Option[ID] {
	return slotOption(f.current, func(e *entry[ID, D]) ID { return e.id })
}

// Current returns the current state.
func (f *FSM[ID, D]) Current() g.Option[State[D]] {
	return slotOption(f.current, func(e *entry[ID, D]) State[D] { return e.state })
}

// PreviousID returns the identifier of the previous state.
func (f *FSM[ID, D]) PreviousID() g.Option[ID] {
	return slotOption(f.previous, func(e *entry[ID, D]) ID { return e.id })
}

// Previous returns the previous state.
func (f *FSM[ID, D]) Previous() g.Option[State[D]] {
	return slotOption(f.previous, func(e *entry[ID, D]) State[D] { return e.state })
}

func slotOption[ID cmp.Ordered, D, T any](e *entry[ID, D], get func(*entry[ID, D]) T) g.Option[T] {
	if e == nil {
		return g.None[T]()
	}

	return g.Some(get(e))
}

// slotID is used for log attributes only.
func slotID[ID cmp.Ordered, D any](e *entry[ID, D]) any {
	if e == nil {
		return nil
	}

	return e.id
}
