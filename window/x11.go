package window

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
	"github.com/ushitora-anqou/palwin/util"
)

const x11EventMask = xproto.EventMaskExposure |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskStructureNotify

type X11Window struct {
	conn *xgb.Conn
	win  xproto.Window
	gc   xproto.Gcontext

	wmProtocols, wmDeleteWindow xproto.Atom

	minKeycode        xproto.Keycode
	keysymsPerKeycode int
	keysyms           []xproto.Keysym

	fg      uint32
	fgValid bool
}

// OpenX11 connects to $DISPLAY and maps a window of the given size.
func OpenX11(width, height int, title string) (Window, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	wind := &X11Window{conn: conn}
	if err := wind.setup(width, height, title); err != nil {
		wind.Close()
		return nil, err
	}
	return wind, nil
}

func (wind *X11Window) setup(width, height int, title string) error {
	if width <= 0 || height <= 0 || width > 0xffff || height > 0xffff {
		return errors.Errorf("x11: invalid window size %dx%d", width, height)
	}

	setup := xproto.Setup(wind.conn)
	screen := setup.DefaultScreen(wind.conn)

	win, err := xproto.NewWindowId(wind.conn)
	if err != nil {
		return errors.Wrap(err, "x11: allocate window id")
	}
	err = xproto.CreateWindowChecked(
		wind.conn,
		screen.RootDepth,
		win,
		screen.Root,
		0, 0,
		uint16(width), uint16(height),
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{screen.BlackPixel, x11EventMask},
	).Check()
	if err != nil {
		return errors.Wrap(err, "x11: create window")
	}
	wind.win = win
	util.Trace("x11: created window 0x%x (%dx%d)", uint32(win), width, height)

	xproto.ChangeProperty(wind.conn, xproto.PropModeReplace, win,
		xproto.AtomWmName, xproto.AtomString, 8, uint32(len(title)), []byte(title))

	// Ask the window manager for a ClientMessage instead of killing the
	// connection when the window is closed.
	if wind.wmProtocols, err = internAtom(wind.conn, "WM_PROTOCOLS"); err != nil {
		return err
	}
	if wind.wmDeleteWindow, err = internAtom(wind.conn, "WM_DELETE_WINDOW"); err != nil {
		return err
	}
	data := make([]byte, 4)
	xgb.Put32(data, uint32(wind.wmDeleteWindow))
	xproto.ChangeProperty(wind.conn, xproto.PropModeReplace, win,
		wind.wmProtocols, xproto.AtomAtom, 32, 1, data)

	gc, err := xproto.NewGcontextId(wind.conn)
	if err != nil {
		return errors.Wrap(err, "x11: allocate gc id")
	}
	err = xproto.CreateGCChecked(
		wind.conn,
		gc,
		xproto.Drawable(win),
		xproto.GcForeground|xproto.GcGraphicsExposures,
		[]uint32{screen.BlackPixel, 0},
	).Check()
	if err != nil {
		return errors.Wrap(err, "x11: create gc")
	}
	wind.gc = gc

	count := int(setup.MaxKeycode) - int(setup.MinKeycode) + 1
	km, err := xproto.GetKeyboardMapping(wind.conn, setup.MinKeycode, byte(count)).Reply()
	if err != nil {
		return errors.Wrap(err, "x11: keyboard mapping")
	}
	wind.minKeycode = setup.MinKeycode
	wind.keysymsPerKeycode = int(km.KeysymsPerKeycode)
	wind.keysyms = km.Keysyms

	return xproto.MapWindowChecked(wind.conn, win).Check()
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, errors.Wrapf(err, "x11: intern %s", name)
	}
	return reply.Atom, nil
}

func (wind *X11Window) SetColor(rgb uint32) {
	if wind.fgValid && wind.fg == rgb {
		return
	}
	xproto.ChangeGC(wind.conn, wind.gc, xproto.GcForeground, []uint32{rgb})
	wind.fg = rgb
	wind.fgValid = true
}

func (wind *X11Window) FillRect(x, y, w, h int) {
	xproto.PolyFillRectangle(wind.conn, xproto.Drawable(wind.win), wind.gc, []xproto.Rectangle{
		{X: int16(x), Y: int16(y), Width: uint16(w), Height: uint16(h)},
	})
}

// Flush waits for a round trip so every earlier request has been handled.
func (wind *X11Window) Flush() error {
	_, err := xproto.GetInputFocus(wind.conn).Reply()
	return errors.Wrap(err, "x11: flush")
}

func (wind *X11Window) PollEvent() (HostEvent, bool) {
	for {
		ev, xerr := wind.conn.PollForEvent()
		if ev == nil && xerr == nil {
			return HostEvent{}, false
		}
		if xerr != nil {
			util.Trace("x11: %v", xerr)
			continue
		}
		return wind.translate(ev), true
	}
}

func (wind *X11Window) translate(ev xgb.Event) HostEvent {
	switch e := ev.(type) {
	case xproto.KeyPressEvent:
		return HostEvent{Type: HostKeyPress, Code: wind.keysym(e.Detail)}
	case xproto.KeyReleaseEvent:
		return HostEvent{Type: HostKeyRelease, Code: wind.keysym(e.Detail)}
	case xproto.ButtonPressEvent:
		return HostEvent{Type: HostButtonPress, Code: int(e.Detail), X: int(e.EventX), Y: int(e.EventY)}
	case xproto.MotionNotifyEvent:
		return HostEvent{Type: HostMotion, X: int(e.EventX), Y: int(e.EventY)}
	case xproto.ExposeEvent:
		return HostEvent{Type: HostExpose}
	case xproto.ClientMessageEvent:
		if e.Type == wind.wmProtocols && len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == wind.wmDeleteWindow {
			return HostEvent{Type: HostClose}
		}
	case xproto.DestroyNotifyEvent:
		return HostEvent{Type: HostClose}
	}
	return HostEvent{Type: HostOther}
}

// keysym resolves the unshifted keysym, or 0 (NoSymbol).
func (wind *X11Window) keysym(code xproto.Keycode) int {
	if code < wind.minKeycode || wind.keysymsPerKeycode == 0 {
		return 0
	}
	i := int(code-wind.minKeycode) * wind.keysymsPerKeycode
	if i >= len(wind.keysyms) {
		return 0
	}
	return int(wind.keysyms[i])
}

// Close releases the gc, the window and the connection, skipping whatever
// was never created.
func (wind *X11Window) Close() error {
	if wind.conn == nil {
		return nil
	}
	if wind.gc != 0 {
		xproto.FreeGC(wind.conn, wind.gc)
		wind.gc = 0
	}
	if wind.win != 0 {
		xproto.DestroyWindow(wind.conn, wind.win)
		wind.win = 0
	}
	wind.conn.Close()
	wind.conn = nil
	return nil
}
