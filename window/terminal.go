package window

import (
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/ushitora-anqou/palwin/constant"
	"github.com/ushitora-anqou/palwin/util"
)

// TerminalWindow draws into a terminal, one character cell per cell x cell
// block of window pixels. Ctrl-C is reported as a close request.
type TerminalWindow struct {
	screen  tcell.Screen
	cell    int
	style   tcell.Style
	buttons tcell.ButtonMask
}

func OpenTerminal(width, height int, title string) (Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}
	return NewTerminal(screen, constant.SCALE)(width, height, title)
}

// NewTerminal returns an opener drawing into screen, which must not be
// initialized yet.
func NewTerminal(screen tcell.Screen, cell int) Opener {
	return func(width, height int, title string) (Window, error) {
		if cell < 1 {
			cell = 1
		}
		if err := screen.Init(); err != nil {
			return nil, errors.Wrap(ErrUnavailable, err.Error())
		}
		screen.EnableMouse()
		screen.Clear()

		cols, rows := screen.Size()
		if cols*cell < width || rows*cell < height {
			util.Trace("terminal: %dx%d cells cannot show %dx%d pixels at %d px/cell; clipping",
				cols, rows, width, height, cell)
		}
		util.Trace("terminal: opened %q", title)

		return &TerminalWindow{
			screen: screen,
			cell:   cell,
			style:  tcell.StyleDefault,
		}, nil
	}
}

func (wind *TerminalWindow) SetColor(rgb uint32) {
	c := tcell.NewHexColor(int32(rgb))
	wind.style = tcell.StyleDefault.Background(c).Foreground(c)
}

func (wind *TerminalWindow) FillRect(x, y, w, h int) {
	x0, y0 := x/wind.cell, y/wind.cell
	x1 := (x + w + wind.cell - 1) / wind.cell
	y1 := (y + h + wind.cell - 1) / wind.cell
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			wind.screen.SetContent(col, row, ' ', nil, wind.style)
		}
	}
}

func (wind *TerminalWindow) Flush() error {
	wind.screen.Show()
	return nil
}

func (wind *TerminalWindow) PollEvent() (HostEvent, bool) {
	if !wind.screen.HasPendingEvent() {
		return HostEvent{}, false
	}
	return wind.translate(wind.screen.PollEvent()), true
}

func (wind *TerminalWindow) translate(ev tcell.Event) HostEvent {
	switch e := ev.(type) {
	case *tcell.EventKey:
		switch e.Key() {
		case tcell.KeyCtrlC:
			return HostEvent{Type: HostClose}
		case tcell.KeyRune:
			return HostEvent{Type: HostKeyPress, Code: int(e.Rune())}
		}
		return HostEvent{Type: HostKeyPress, Code: int(e.Key())}

	case *tcell.EventMouse:
		col, row := e.Position()
		x, y := col*wind.cell, row*wind.cell
		buttons := e.Buttons()
		pressed := buttons &^ wind.buttons
		wind.buttons = buttons
		if button := buttonNumber(pressed); button != 0 {
			return HostEvent{Type: HostButtonPress, Code: button, X: x, Y: y}
		}
		return HostEvent{Type: HostMotion, X: x, Y: y}

	case *tcell.EventResize:
		return HostEvent{Type: HostExpose}
	}
	return HostEvent{Type: HostOther}
}

// buttonNumber uses X11 numbering: 1 left, 2 middle, 3 right, 4/5 wheel.
func buttonNumber(mask tcell.ButtonMask) int {
	switch {
	case mask&tcell.Button1 != 0:
		return 1
	case mask&tcell.Button3 != 0:
		return 2
	case mask&tcell.Button2 != 0:
		return 3
	case mask&tcell.WheelUp != 0:
		return 4
	case mask&tcell.WheelDown != 0:
		return 5
	}
	return 0
}

func (wind *TerminalWindow) Close() error {
	if wind.screen != nil {
		wind.screen.Fini()
		wind.screen = nil
	}
	return nil
}
