package statefsm

import (
	"cmp"

	"github.com/enetx/g"
)

// Machine is the operation set shared by FSM and SyncFSM.
type Machine[ID cmp.Ordered, D any] interface {
	AddState(ID, State[D]) bool
	RemoveState(ID) error
	SetCurrentState(ID) error
	TransitionTo(ID) error
	TransitionToPreviousState() error
	Update(D) error
	Reset()

	Has(ID) bool
	Get(ID) g.Option[State[D]]
	Len() int
	IDs() g.Slice[ID]
	States() g.Slice[State[D]]

	HasCurrentState() bool
	HasPreviousState() bool
	CurrentID() g.Option[ID]
	Current() g.Option[State[D]]
	PreviousID() g.Option[ID]
	Previous() g.Option[State[D]]

	Snapshot() Snapshot[ID]
	Restore(Snapshot[ID]) error
	ToDOT() g.String
	MarshalJSON() ([]byte, error)
	UnmarshalJSON(data []byte) error
}

// Interface compliance checks.
var (
	_ Machine[string, float64] = (*FSM[string, float64])(nil)
	_ Machine[string, float64] = (*SyncFSM[string, float64])(nil)
)
