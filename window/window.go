package window

import "github.com/pkg/errors"

var (
	ErrUnavailable    = errors.New("host display unavailable")
	ErrUnknownBackend = errors.New("unknown window backend")
)

type HostEventType int

const (
	HostNone HostEventType = iota
	HostKeyPress
	HostKeyRelease
	HostButtonPress
	HostMotion
	HostExpose
	HostClose
	HostOther
)

// HostEvent is a host notification with coordinates in window pixels.
type HostEvent struct {
	Type HostEventType
	Code int
	X, Y int
}

// Window is an on-screen window plus its drawing context. Width and height
// passed to an Opener are in window pixels.
type Window interface {
	SetColor(rgb uint32)
	FillRect(x, y, w, h int)
	// Flush pushes every queued drawing command to the host and returns
	// once the host has processed them.
	Flush() error
	// PollEvent never blocks. ok is false if nothing is queued.
	PollEvent() (ev HostEvent, ok bool)
	Close() error
}

type Opener func(width, height int, title string) (Window, error)
