package window

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
	"github.com/pkg/errors"
)

func TestHeadlessFillAndFlush(t *testing.T) {
	h := NewHeadless()
	w, err := h.Open(8, 8, "t")
	if err != nil {
		t.Fatal(err)
	}
	wind := w.(*HeadlessWindow)

	wind.SetColor(0x123456)
	wind.FillRect(4, 4, 4, 4)
	wind.FillRect(6, 6, 100, 100) // clipped
	if err := wind.Flush(); err != nil {
		t.Fatal(err)
	}

	if got := wind.Image().RGBAAt(5, 5); got != (color.RGBA{0x12, 0x34, 0x56, 0xff}) {
		t.Fatalf("pixel (5, 5): (got: %v)", got)
	}
	if got := wind.Image().RGBAAt(3, 3); got != (color.RGBA{}) {
		t.Fatalf("pixel (3, 3) should be untouched: (got: %v)", got)
	}
	if wind.Fills() != 2 || wind.Flushes() != 1 {
		t.Fatalf("counters: (got: %d fills, %d flushes) (expected: 2, 1)", wind.Fills(), wind.Flushes())
	}
}

func TestHeadlessEventsAreFIFO(t *testing.T) {
	h := NewHeadless()
	w, _ := h.Open(4, 4, "t")
	wind := w.(*HeadlessWindow)

	if _, ok := wind.PollEvent(); ok {
		t.Fatalf("fresh window should have no events")
	}
	wind.Inject(HostEvent{Type: HostKeyPress, Code: 1}, HostEvent{Type: HostKeyRelease, Code: 2})
	for _, expected := range []HostEventType{HostKeyPress, HostKeyRelease} {
		ev, ok := wind.PollEvent()
		if !ok || ev.Type != expected {
			t.Fatalf("PollEvent: (got: %v, %v) (expected: %v)", ev, ok, expected)
		}
	}
	if _, ok := wind.PollEvent(); ok {
		t.Fatalf("queue should be drained")
	}
}

func TestHeadlessLifecycle(t *testing.T) {
	h := NewHeadless()
	h.FailConnect = true
	if _, err := h.Open(4, 4, "t"); errors.Cause(err) != ErrUnavailable {
		t.Fatalf("Open: (got: %v) (expected: %v)", err, ErrUnavailable)
	}
	if h.Live() != 0 {
		t.Fatalf("Live: (got: %d) (expected: 0)", h.Live())
	}

	h.FailConnect = false
	w, err := h.Open(4, 4, "t")
	if err != nil {
		t.Fatal(err)
	}
	if h.Live() != 1 {
		t.Fatalf("Live: (got: %d) (expected: 1)", h.Live())
	}
	w.Close()
	w.Close()
	if h.Live() != 0 {
		t.Fatalf("Live after double close: (got: %d) (expected: 0)", h.Live())
	}
}

func TestLookup(t *testing.T) {
	if _, err := Lookup("headless"); err != nil {
		t.Fatal(err)
	}
	if _, err := Lookup(" X11 "); err != nil {
		t.Fatal(err)
	}
	if _, err := Lookup("wayland"); errors.Cause(err) != ErrUnknownBackend {
		t.Fatalf("Lookup(wayland): (got: %v) (expected: %v)", err, ErrUnknownBackend)
	}
}

func TestAutoName(t *testing.T) {
	table := []struct {
		display, terminal bool
		expected          string
	}{
		{true, true, BACKEND_X11},
		{true, false, BACKEND_X11},
		{false, true, BACKEND_TERMINAL},
		{false, false, BACKEND_X11},
	}
	for _, entry := range table {
		if got := autoName(entry.display, entry.terminal); got != entry.expected {
			t.Fatalf("autoName(%v, %v): (got: %s) (expected: %s)", entry.display, entry.terminal, got, entry.expected)
		}
	}
}

func TestTimeSynchronizer(t *testing.T) {
	var now int64
	var slept []int64
	ts := newTimeSynchronizer(100, func() int64 { return now }, func(us int64) { slept = append(slept, us) })

	now = 2000
	ts.MaySleep()
	now = 20500 // 500us behind
	ts.MaySleep()

	if len(slept) != 1 || slept[0] != 8000 {
		t.Fatalf("slept: (got: %v) (expected: [8000])", slept)
	}
}

func TestTerminalTranslate(t *testing.T) {
	wind := &TerminalWindow{cell: 4}

	table := []struct {
		ev       tcell.Event
		expected HostEvent
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), HostEvent{Type: HostKeyPress, Code: 'a'}},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), HostEvent{Type: HostKeyPress, Code: int(tcell.KeyEscape)}},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), HostEvent{Type: HostClose}},
		{tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone), HostEvent{Type: HostButtonPress, Code: 1, X: 40, Y: 40}},
		{tcell.NewEventMouse(11, 10, tcell.Button1, tcell.ModNone), HostEvent{Type: HostMotion, X: 44, Y: 40}},
		{tcell.NewEventMouse(11, 10, tcell.ButtonNone, tcell.ModNone), HostEvent{Type: HostMotion, X: 44, Y: 40}},
		{tcell.NewEventMouse(2, 3, tcell.Button2, tcell.ModNone), HostEvent{Type: HostButtonPress, Code: 3, X: 8, Y: 12}},
		{tcell.NewEventResize(80, 24), HostEvent{Type: HostExpose}},
	}

	for i, entry := range table {
		if got := wind.translate(entry.ev); got != entry.expected {
			t.Fatalf("translate #%d: (got: %+v) (expected: %+v)", i, got, entry.expected)
		}
	}
}

func TestX11Translate(t *testing.T) {
	wind := &X11Window{
		wmProtocols:       100,
		wmDeleteWindow:    101,
		minKeycode:        8,
		keysymsPerKeycode: 2,
		keysyms:           []xproto.Keysym{0xff1b, 0, 0x61, 0x41},
	}

	table := []struct {
		ev       xgb.Event
		expected HostEvent
	}{
		{xproto.KeyPressEvent{Detail: 8}, HostEvent{Type: HostKeyPress, Code: 0xff1b}},
		{xproto.KeyReleaseEvent{Detail: 9}, HostEvent{Type: HostKeyRelease, Code: 0x61}},
		{xproto.KeyPressEvent{Detail: 200}, HostEvent{Type: HostKeyPress, Code: 0}},
		{xproto.ButtonPressEvent{Detail: 1, EventX: 40, EventY: 41}, HostEvent{Type: HostButtonPress, Code: 1, X: 40, Y: 41}},
		{xproto.MotionNotifyEvent{EventX: 3, EventY: 4}, HostEvent{Type: HostMotion, X: 3, Y: 4}},
		{xproto.ExposeEvent{}, HostEvent{Type: HostExpose}},
		{
			xproto.ClientMessageEvent{Format: 32, Type: 100, Data: xproto.ClientMessageDataUnionData32New([]uint32{101, 0, 0, 0, 0})},
			HostEvent{Type: HostClose},
		},
		{
			xproto.ClientMessageEvent{Format: 32, Type: 55, Data: xproto.ClientMessageDataUnionData32New([]uint32{101, 0, 0, 0, 0})},
			HostEvent{Type: HostOther},
		},
		{xproto.ConfigureNotifyEvent{}, HostEvent{Type: HostOther}},
	}

	for i, entry := range table {
		if got := wind.translate(entry.ev); got != entry.expected {
			t.Fatalf("translate #%d: (got: %+v) (expected: %+v)", i, got, entry.expected)
		}
	}
}
