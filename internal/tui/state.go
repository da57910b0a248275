package tui

import "github.com/spotdemo4/tamil-insight/internal/render"

type StateKind int

const (
	StateIdle StateKind = iota
	StateLoading
	StateResult
	StateError
)

var stateName = map[StateKind]string{
	StateIdle:    "idle",
	StateLoading: "loading",
	StateResult:  "result",
	StateError:   "error",
}

func (sk StateKind) String() string {
	return stateName[sk]
}

// ViewState is the one region currently shown below the input. View is set
// only for StateResult and Message only for StateError.
type ViewState struct {
	Kind    StateKind
	View    render.View
	Message string
}

func Idle() ViewState {
	return ViewState{Kind: StateIdle}
}

func Loading() ViewState {
	return ViewState{Kind: StateLoading}
}

func Result(v render.View) ViewState {
	return ViewState{Kind: StateResult, View: v}
}

func Failed(message string) ViewState {
	return ViewState{Kind: StateError, Message: message}
}
