package window

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ushitora-anqou/palwin/util"
	"golang.org/x/term"
)

const (
	BACKEND_AUTO     = "auto"
	BACKEND_X11      = "x11"
	BACKEND_SDL2     = "sdl2"
	BACKEND_TERMINAL = "terminal"
	BACKEND_HEADLESS = "headless"
)

var openers = map[string]Opener{
	BACKEND_X11:      OpenX11,
	BACKEND_TERMINAL: OpenTerminal,
	BACKEND_HEADLESS: NewHeadless().Open,
}

func register(name string, opener Opener) {
	openers[name] = opener
}

// Lookup returns the opener registered under name. An empty name or "auto"
// picks one from the environment.
func Lookup(name string) (Opener, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == BACKEND_AUTO {
		return Auto(), nil
	}
	opener, ok := openers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownBackend, "%q", name)
	}
	return opener, nil
}

// FromEnv reads PALWIN_BACKEND.
func FromEnv() (Opener, error) {
	return Lookup(os.Getenv("PALWIN_BACKEND"))
}

// Auto prefers X11 when DISPLAY is set, then the terminal when stdout is a
// tty, and otherwise falls back to X11 so that Open reports the missing
// display.
func Auto() Opener {
	name := autoName(os.Getenv("DISPLAY") != "", term.IsTerminal(int(os.Stdout.Fd())))
	util.Trace("window: auto-selected backend %s", name)
	return openers[name]
}

func autoName(haveDisplay, haveTerminal bool) string {
	switch {
	case haveDisplay:
		return BACKEND_X11
	case haveTerminal:
		return BACKEND_TERMINAL
	}
	return BACKEND_X11
}
