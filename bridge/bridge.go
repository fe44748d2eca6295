// Package bridge exposes a display session through plain integers and
// byte buffers for callers on the far side of a foreign-call boundary.
package bridge

import (
	"github.com/ushitora-anqou/palwin/display"
	"github.com/ushitora-anqou/palwin/util"
	"github.com/ushitora-anqou/palwin/window"
)

// Bridge holds at most one open session. It is not safe for concurrent
// use.
type Bridge struct {
	opener  window.Opener
	session *display.Session
}

func New(opener window.Opener) *Bridge {
	return &Bridge{opener: opener}
}

// Open returns 1 on success and 0 on failure. Opening while a session is
// already open fails and leaves that session untouched.
func (b *Bridge) Open(width, height int, title string) int {
	if b.session.IsOpen() {
		util.Trace("bridge: open refused, a session is already open")
		return 0
	}
	if b.opener == nil {
		opener, err := window.FromEnv()
		if err != nil {
			util.Trace("bridge: %v", err)
			return 0
		}
		b.opener = opener
	}

	s, err := display.Open(b.opener, width, height, title)
	if err != nil {
		util.Infof("cannot open window: %v", err)
		return 0
	}
	b.session = s
	return util.BoolToInt(s.IsOpen())
}

func (b *Bridge) Close() {
	b.session.Close()
	b.session = nil
}

func (b *Bridge) SetPalette(buf []byte) {
	b.session.SetPalette(buf)
}

func (b *Bridge) DrawPixel(x, y, color int) {
	b.session.DrawPixel(x, y, uint8(color))
}

func (b *Bridge) Refresh() {
	b.session.Refresh()
}

func (b *Bridge) Clear(color int) {
	b.session.Clear(uint8(color))
}

func (b *Bridge) GetPixel(x, y int) int {
	return int(b.session.GetPixel(x, y))
}

// PollEvent returns kind (0 None, 1 KeyDown, 2 KeyUp, 3 ButtonDown,
// 4 Quit), code and position.
func (b *Bridge) PollEvent() (kind, code, x, y int) {
	return b.session.PollEvent().Tuple()
}
