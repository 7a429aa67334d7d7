// Package guard holds the unsaved-changes confirmation state machine that sits
// in front of destructive document actions.
package guard

// Action is a destructive request waiting on the user.
type Action int

const (
	ActionNone Action = iota
	ActionNew
	ActionOpen
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNew:
		return "new"
	case ActionOpen:
		return "open"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// State is the guard's phase.
type State int

const (
	StateIdle State = iota
	StateConfirming
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateConfirming:
		return "confirming"
	case StateSaving:
		return "saving"
	default:
		return "idle"
	}
}

// Guard is Idle, Confirming(action) or Saving(action). The action is only
// meaningful outside Idle.
//
// Every transition returns the action the caller must run now, or
// ActionNone.
type Guard struct {
	state  State
	action Action
}

// New returns an idle guard.
func New() *Guard {
	return &Guard{}
}

// State returns the current phase.
func (g *Guard) State() State {
	return g.state
}

// Pending returns the action awaiting confirmation.
func (g *Guard) Pending() Action {
	if g.state == StateIdle {
		return ActionNone
	}
	return g.action
}

// ConfirmVisible reports whether the confirmation dialog is shown.
func (g *Guard) ConfirmVisible() bool {
	return g.state != StateIdle
}

// Busy reports whether a chosen save is in flight.
func (g *Guard) Busy() bool {
	return g.state == StateSaving
}

// Request asks to run a. A clean document runs it immediately; a dirty one
// opens the confirmation. Requests made while a confirmation is open are
// dropped.
func (g *Guard) Request(a Action, dirty bool) Action {
	if g.state != StateIdle || a == ActionNone {
		return ActionNone
	}
	if !dirty {
		return a
	}
	g.state = StateConfirming
	g.action = a
	return ActionNone
}

// ChooseSave moves Confirming to Saving. It returns false when the choice is
// ignored, in which case the caller must not start a save.
func (g *Guard) ChooseSave() bool {
	if g.state != StateConfirming {
		return false
	}
	g.state = StateSaving
	return true
}

// SaveSucceeded finishes a save started by ChooseSave and releases the
// pending action.
func (g *Guard) SaveSucceeded() Action {
	if g.state != StateSaving {
		return ActionNone
	}
	return g.finish()
}

// SaveFailed returns to Confirming after a cancelled or failed save.
func (g *Guard) SaveFailed() {
	if g.state != StateSaving {
		return
	}
	g.state = StateConfirming
}

// ChooseDiscard drops the unsaved edits and releases the pending action.
func (g *Guard) ChooseDiscard() Action {
	if g.state != StateConfirming {
		return ActionNone
	}
	return g.finish()
}

// ChooseCancel closes the confirmation without running anything. It is
// ignored while a save is in flight.
func (g *Guard) ChooseCancel() {
	if g.state != StateConfirming {
		return
	}
	g.state = StateIdle
	g.action = ActionNone
}

func (g *Guard) finish() Action {
	a := g.action
	g.state = StateIdle
	g.action = ActionNone
	return a
}
