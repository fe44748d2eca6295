package input

import (
	"fmt"

	"github.com/ushitora-anqou/palwin/util"
	"github.com/ushitora-anqou/palwin/window"
)

type Kind int

// The numeric values are part of the external call surface.
const (
	None Kind = iota
	KeyDown
	KeyUp
	ButtonDown
	Quit
)

func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case KeyDown:
		return "KeyDown"
	case KeyUp:
		return "KeyUp"
	case ButtonDown:
		return "ButtonDown"
	case Quit:
		return "Quit"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a host-neutral input record. Code is the key symbol or button
// number; X and Y are framebuffer coordinates and only meaningful for
// ButtonDown.
type Event struct {
	Kind Kind
	Code int
	X, Y int
}

func (ev Event) Tuple() (kind, code, x, y int) {
	return int(ev.Kind), ev.Code, ev.X, ev.Y
}

// Translate converts a host notification. ok is false for notifications
// that have no neutral form.
func Translate(ev window.HostEvent, scale int) (Event, bool) {
	if scale < 1 {
		scale = 1
	}
	switch ev.Type {
	case window.HostKeyPress:
		return Event{Kind: KeyDown, Code: ev.Code}, true
	case window.HostKeyRelease:
		return Event{Kind: KeyUp, Code: ev.Code}, true
	case window.HostButtonPress:
		return Event{Kind: ButtonDown, Code: ev.Code, X: ev.X / scale, Y: ev.Y / scale}, true
	case window.HostClose:
		return Event{Kind: Quit}, true
	}
	return Event{}, false
}

// Poll consumes queued notifications until one translates and returns it,
// leaving the rest queued. It never blocks; an empty queue gives None.
func Poll(wind window.Window, scale int) Event {
	if wind == nil {
		return Event{}
	}
	for {
		hev, ok := wind.PollEvent()
		if !ok {
			return Event{}
		}
		if ev, ok := Translate(hev, scale); ok {
			return ev
		}
		util.Trace("input: skipped host event type %d", hev.Type)
	}
}
