package statefsm

import (
	"cmp"
	"log/slog"
	"sync"

	"github.com/enetx/g"
)

type (
	// State is a unit of behavior managed by an FSM.
	// D is the payload type passed to Update.
	State[D any] interface {
		// OnEnter is called when the state becomes current through a transition.
		OnEnter()
		// OnExit is called when the state stops being current through a transition or removal.
		OnExit()
		// Update receives the payload given to FSM.Update while the state is current.
		Update(data D)
	}

	// TransitionHook is a global callback called on every behavioral transition.
	// It runs after OnExit and before OnEnter. from is None when the machine had no current state.
	TransitionHook[ID cmp.Ordered] func(from g.Option[ID], to ID) error

	// entry is a stored state together with its identifier.
	// Entries are allocated once on AddState and never copied, so slots may point at them.
	entry[ID cmp.Ordered, D any] struct {
		id    ID
		state State[D]
	}

	// FSM is the state container. It owns every added state and tracks the
	// current and previous ones. FSM is not safe for concurrent use; see Sync.
	FSM[ID cmp.Ordered, D any] struct {
		states       g.Map[ID, *entry[ID, D]]
		current      *entry[ID, D]
		previous     *entry[ID, D]
		onTransition g.Slice[TransitionHook[ID]]

		logger *slog.Logger
	}

	// SyncFSM is a thread-safe wrapper around an FSM.
	// It protects all state-mutating and state-reading operations with a sync.RWMutex,
	// making it safe for use across multiple goroutines.
	// All methods on SyncFSM are the thread-safe counterparts to the methods on the base FSM.
	//
	// State hooks and transition hooks run while the lock is held, so a hook must not
	// call back into the same SyncFSM: that call would deadlock.
	SyncFSM[ID cmp.Ordered, D any] struct {
		fsm *FSM[ID, D]
		mu  sync.RWMutex
	}
)

// BaseState provides no-op OnEnter and OnExit. Embed it in states that only care about Update.
type BaseState struct{}

func (BaseState) OnEnter() {}
func (BaseState) OnExit()  {}

// UpdateFunc adapts an ordinary function to a State with no-op enter and exit hooks.
type UpdateFunc[D any] func(data D)

func (UpdateFunc[D]) OnEnter()        {}
func (UpdateFunc[D]) OnExit()         {}
func (f UpdateFunc[D]) Update(data D) { f(data) }

// Funcs builds a State from optional functions. Nil fields are skipped.
type Funcs[D any] struct {
	Enter func()
	Exit  func()
	Tick  func(data D)
}

func (f *Funcs[D]) OnEnter() {
	if f.Enter != nil {
		f.Enter()
	}
}

func (f *Funcs[D]) OnExit() {
	if f.Exit != nil {
		f.Exit()
	}
}

func (f *Funcs[D]) Update(data D) {
	if f.Tick != nil {
		f.Tick(data)
	}
}
