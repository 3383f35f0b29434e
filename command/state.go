package command

import "fmt"

// State is the lifecycle state of a command, held in the low four bits
// of the header word. Values match the device's numbering.
type State uint32

const (
	StateInvalid    State = 0
	StateNew        State = 1
	StateQueued     State = 2
	StateRunning    State = 3
	StateCompleted  State = 4
	StateError      State = 5
	StateAbort      State = 6
	StateSubmitted  State = 7
	StateTimeout    State = 8
	StateNoResponse State = 9
)

var stateNames = map[State]string{
	StateInvalid:    "invalid",
	StateNew:        "new",
	StateQueued:     "queued",
	StateRunning:    "running",
	StateCompleted:  "completed",
	StateError:      "error",
	StateAbort:      "abort",
	StateSubmitted:  "submitted",
	StateTimeout:    "timeout",
	StateNoResponse: "noresponse",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", uint32(s))
}

// ParseState parses the lower-case name of a state.
func ParseState(s string) (State, error) {
	for st, name := range stateNames {
		if name == s {
			return st, nil
		}
	}
	return StateInvalid, fmt.Errorf("unknown command state %q", s)
}

// Terminal reports whether no further transition may leave s.
func (s State) Terminal() bool {
	switch s {
	case StateCompleted, StateError, StateAbort, StateTimeout, StateNoResponse:
		return true
	}
	return false
}

// transitions lists the legal successors of each non-terminal state.
// ABORT is reachable from every non-terminal state and is added by
// CanTransition. QUEUED -> TIMEOUT covers a waiter whose timer fires
// before the dispatcher has accepted the job; RUNNING -> SUBMITTED is a
// requeue across suspend.
var transitions = map[State][]State{
	StateNew:       {StateQueued},
	StateQueued:    {StateSubmitted, StateError, StateTimeout},
	StateSubmitted: {StateRunning, StateCompleted, StateError, StateTimeout, StateNoResponse},
	StateRunning:   {StateSubmitted, StateCompleted, StateError, StateTimeout, StateNoResponse},
}

// CanTransition reports whether the state machine permits from -> to.
func CanTransition(from, to State) bool {
	if from.Terminal() || from == StateInvalid {
		return false
	}
	if to == StateAbort {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
