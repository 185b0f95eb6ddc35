package core

import "github.com/Winch-Team/WinchCLI/display"

// Event carries every argument matched by one dispatch, in scan order,
// duplicates included. Handlers must treat it as read-only.
type Event struct {
	ArgumentsPassed []Argument
}

// Handler receives the event produced by a dispatch.
type Handler func(*Event)

// Len returns the number of matched entries.
func (e *Event) Len() int { return len(e.ArgumentsPassed) }

func (e *Event) String() string {
	items := make([]string, len(e.ArgumentsPassed))
	for i, a := range e.ArgumentsPassed {
		items[i] = a.String()
	}
	return display.FormatEvent(items)
}
