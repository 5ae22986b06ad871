package model

// State is a human-friendly commitment state for a period.
// Keep these values stable; they are intended for CSV output.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

func StateFromOperating(operating bool) State {
	if operating {
		return StateOn
	}
	return StateOff
}

// Event marks a commitment transition attributed to a period.
type Event string

const (
	EventStartUp  Event = "START_UP"
	EventShutDown Event = "SHUT_DOWN"
	EventNone     Event = ""
)
