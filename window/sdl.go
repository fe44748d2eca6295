//go:build sdl2

package window

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	register(BACKEND_SDL2, OpenSDL)
}

type SDLWindow struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	video    bool
}

func OpenSDL(width, height int, title string) (Window, error) {
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(ErrUnavailable, err.Error())
	}

	wind := &SDLWindow{video: true}
	window, err := sdl.CreateWindow(
		title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		wind.Close()
		return nil, errors.Wrap(err, "sdl: create window")
	}
	wind.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		wind.Close()
		return nil, errors.Wrap(err, "sdl: create renderer")
	}
	wind.renderer = renderer

	return wind, nil
}

func (wind *SDLWindow) SetColor(rgb uint32) {
	wind.renderer.SetDrawColor(uint8(rgb>>16), uint8(rgb>>8), uint8(rgb), 0xff)
}

func (wind *SDLWindow) FillRect(x, y, w, h int) {
	wind.renderer.FillRect(&sdl.Rect{X: int32(x), Y: int32(y), W: int32(w), H: int32(h)})
}

func (wind *SDLWindow) Flush() error {
	wind.renderer.Present()
	return nil
}

func (wind *SDLWindow) PollEvent() (HostEvent, bool) {
	event := sdl.PollEvent()
	if event == nil {
		return HostEvent{}, false
	}

	switch e := event.(type) {
	case *sdl.QuitEvent:
		return HostEvent{Type: HostClose}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return HostEvent{Type: HostClose}, true
		case sdl.WINDOWEVENT_EXPOSED:
			return HostEvent{Type: HostExpose}, true
		}

	case *sdl.KeyboardEvent:
		switch e.Type {
		case sdl.KEYDOWN:
			return HostEvent{Type: HostKeyPress, Code: int(e.Keysym.Sym)}, true
		case sdl.KEYUP:
			return HostEvent{Type: HostKeyRelease, Code: int(e.Keysym.Sym)}, true
		}

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return HostEvent{Type: HostButtonPress, Code: int(e.Button), X: int(e.X), Y: int(e.Y)}, true
		}

	case *sdl.MouseMotionEvent:
		return HostEvent{Type: HostMotion, X: int(e.X), Y: int(e.Y)}, true
	}

	return HostEvent{Type: HostOther}, true
}

func (wind *SDLWindow) Close() error {
	if wind.renderer != nil {
		wind.renderer.Destroy()
		wind.renderer = nil
	}
	if wind.window != nil {
		wind.window.Destroy()
		wind.window = nil
	}
	if wind.video {
		sdl.QuitSubSystem(sdl.INIT_VIDEO)
		wind.video = false
	}
	return nil
}
