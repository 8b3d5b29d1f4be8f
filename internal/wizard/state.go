package wizard

import "fmt"

// State is a step of the component wizard.
type State int

const (
	StateFolder State = iota
	StateComponentName
	StateHasProps
	StateProps
	StateFileConvention
	StateCreateFile
	StateAborted
	StateDone
)

func (s State) String() string {
	names := [...]string{
		"folder",
		"component_name",
		"has_props",
		"props",
		"file_convention",
		"create_file",
		"aborted",
		"done",
	}
	if s < 0 || int(s) >= len(names) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return names[s]
}

// Terminal reports whether the machine stops in s.
func (s State) Terminal() bool {
	return s == StateCreateFile || s == StateAborted || s == StateDone
}

// Event is the outcome of running one step.
type Event int

const (
	// EventSubmit means the step produced its value.
	EventSubmit Event = iota
	// EventBack means the user cancelled or asked to go back.
	EventBack
	// EventRetry repeats the current step.
	EventRetry
)

func (e Event) String() string {
	switch e {
	case EventSubmit:
		return "submit"
	case EventBack:
		return "back"
	case EventRetry:
		return "retry"
	}
	return fmt.Sprintf("event(%d)", int(e))
}

// Transition returns the state following s on ev. The only side effect is
// on the answers: leaving the props step backwards drops the collected props.
// Terminal states are absorbing.
func Transition(s State, ev Event, a *Answers) State {
	if s.Terminal() || ev == EventRetry {
		return s
	}
	switch s {
	case StateFolder:
		if ev == EventBack {
			return StateAborted
		}
		return StateComponentName
	case StateComponentName:
		if ev == EventBack {
			return StateFolder
		}
		return StateHasProps
	case StateHasProps:
		if ev == EventBack {
			return StateComponentName
		}
		if a.HasProps {
			return StateProps
		}
		return StateFileConvention
	case StateProps:
		if ev == EventBack {
			a.Props = nil
			return StateHasProps
		}
		return StateFileConvention
	case StateFileConvention:
		if ev == EventBack {
			if a.HasProps {
				return StateProps
			}
			return StateHasProps
		}
		return StateCreateFile
	}
	return s
}
