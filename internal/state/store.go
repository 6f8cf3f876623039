// Package state holds the canonical roster and the status of the operations
// that mutate it. It knows nothing about rendering; the UI feeds it events
// and reads snapshots back.
package state

import "staffdeck/internal/model"

type Op int

const (
	OpLoad Op = iota
	OpAdd
	OpEdit
	OpDelete
	opCount
)

func (o Op) String() string {
	switch o {
	case OpLoad:
		return "load"
	case OpAdd:
		return "add"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

type OpStatus int

const (
	StatusIdle OpStatus = iota
	StatusPending
	StatusFailed
)

// OpSlot tracks the latest outcome of one operation kind. Err is only set
// while Status is StatusFailed.
type OpSlot struct {
	Status OpStatus
	Err    string
}

// Event is a completed fact about the roster or an operation. Events are
// produced by the Coordinator and applied by Store.Apply; nothing mutates
// the Store any other way.
type Event interface{ isEvent() }

type OpStarted struct{ Op Op }

type OpFailed struct {
	Op  Op
	Err error
}

type LoadDone struct{ Users []model.User }

type AddDone struct{ User model.User }

type EditDone struct{ User model.User }

type DeleteDone struct{ ID string }

func (OpStarted) isEvent()  {}
func (OpFailed) isEvent()   {}
func (LoadDone) isEvent()   {}
func (AddDone) isEvent()    {}
func (EditDone) isEvent()   {}
func (DeleteDone) isEvent() {}

// Store is the single owner of the canonical user list. It is not
// goroutine safe; all events arrive on the UI event loop.
type Store struct {
	users []model.User
	slots [opCount]OpSlot
}

func NewStore() *Store {
	return &Store{}
}

// Users returns the canonical list. Callers must treat it as read only;
// every view derives its own copies from it.
func (s *Store) Users() []model.User { return s.users }

func (s *Store) Len() int { return len(s.users) }

func (s *Store) Slot(op Op) OpSlot { return s.slots[op] }

func (s *Store) Busy(op Op) bool { return s.slots[op].Status == StatusPending }

func (s *Store) AnyBusy() bool {
	for _, sl := range s.slots {
		if sl.Status == StatusPending {
			return true
		}
	}
	return false
}

// Apply folds one event into the store. Unknown ids in EditDone and
// DeleteDone are ignored so a stale completion cannot corrupt the list.
func (s *Store) Apply(ev Event) {
	switch e := ev.(type) {
	case OpStarted:
		s.slots[e.Op] = OpSlot{Status: StatusPending}
	case OpFailed:
		s.slots[e.Op] = OpSlot{Status: StatusFailed, Err: e.Err.Error()}
	case LoadDone:
		s.users = make([]model.User, len(e.Users))
		copy(s.users, e.Users)
		s.slots[OpLoad] = OpSlot{}
	case AddDone:
		s.users = append(s.users, e.User)
		s.slots[OpAdd] = OpSlot{}
	case EditDone:
		for i := range s.users {
			if s.users[i].ID == e.User.ID {
				s.users[i] = e.User
				break
			}
		}
		s.slots[OpEdit] = OpSlot{}
	case DeleteDone:
		for i := range s.users {
			if s.users[i].ID == e.ID {
				s.users = append(s.users[:i], s.users[i+1:]...)
				break
			}
		}
		s.slots[OpDelete] = OpSlot{}
	}
}
