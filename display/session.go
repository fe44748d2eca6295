package display

import (
	"github.com/pkg/errors"
	"github.com/ushitora-anqou/palwin/constant"
	"github.com/ushitora-anqou/palwin/framebuffer"
	"github.com/ushitora-anqou/palwin/input"
	"github.com/ushitora-anqou/palwin/palette"
	"github.com/ushitora-anqou/palwin/util"
	"github.com/ushitora-anqou/palwin/window"
)

var (
	ErrInvalidSize  = errors.New("invalid framebuffer size")
	ErrInvalidScale = errors.New("invalid scale")
)

type Config struct {
	Scale int
	Title string
}

func DefaultConfig() Config {
	return Config{
		Scale: constant.SCALE,
		Title: constant.DEFAULT_TITLE,
	}
}

// Session binds one host window to a framebuffer and a palette. A Session
// is not safe for concurrent use; every method on a closed Session is a
// no-op or returns a zero value.
type Session struct {
	wind  window.Window
	fb    *framebuffer.Framebuffer
	pal   *palette.Palette
	image []uint32 // packed RGB of each cell, rebuilt by Refresh
	scale int
}

func Open(opener window.Opener, width, height int, title string) (*Session, error) {
	cfg := DefaultConfig()
	cfg.Title = title
	return OpenConfig(opener, width, height, cfg)
}

// OpenConfig creates the window, the framebuffer, the palette and the
// composition buffer, then shows the window. On failure everything
// acquired so far is released.
func OpenConfig(opener window.Opener, width, height int, cfg Config) (*Session, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "%dx%d", width, height)
	}
	if cfg.Scale < 1 {
		return nil, errors.Wrapf(ErrInvalidScale, "%d", cfg.Scale)
	}

	s := &Session{scale: cfg.Scale}

	wind, err := opener(width*cfg.Scale, height*cfg.Scale, cfg.Title)
	if err != nil {
		return nil, errors.Wrap(err, "open window")
	}
	s.wind = wind

	s.fb = framebuffer.New(width, height)
	s.pal = palette.Grayscale()
	s.image = make([]uint32, width*height)

	if err := s.wind.Flush(); err != nil {
		util.Trace("display: rolling back after failed show: %v", err)
		s.release()
		return nil, errors.Wrap(err, "show window")
	}

	util.Infof("window opened: %dx%d '%s'", width, height, cfg.Title)
	return s, nil
}

// Close releases the composition buffer, the framebuffer and the window.
// It may be called any number of times.
func (s *Session) Close() {
	if s == nil {
		return
	}
	if s.release() {
		util.Infof("window closed")
	}
}

// release drops every held resource in reverse order of acquisition and
// reports whether a window was held.
func (s *Session) release() bool {
	held := s.wind != nil

	s.image = nil
	s.fb = nil
	s.pal = nil
	if s.wind != nil {
		if err := s.wind.Close(); err != nil {
			util.Trace("display: close window: %v", err)
		}
		s.wind = nil
	}
	return held
}

func (s *Session) IsOpen() bool {
	return s != nil && s.wind != nil
}

// Size returns the framebuffer dimensions, or 0, 0 when closed.
func (s *Session) Size() (width, height int) {
	if s == nil || s.fb == nil {
		return 0, 0
	}
	return s.fb.Width(), s.fb.Height()
}

func (s *Session) Scale() int {
	if s == nil {
		return 0
	}
	return s.scale
}

// SetPalette replaces all 256 entries from 768 bytes of RGB triples. A nil
// or malformed buffer leaves the palette untouched.
func (s *Session) SetPalette(buf []byte) {
	if s == nil || s.pal == nil || buf == nil {
		return
	}
	p, err := palette.FromBytes(buf)
	if err != nil {
		util.Trace("display: SetPalette ignored: %v", err)
		return
	}
	s.pal.Set(p)
}

// SetPaletteTable is SetPalette for an already decoded table.
func (s *Session) SetPaletteTable(p *palette.Palette) {
	if s == nil || s.pal == nil || p == nil {
		return
	}
	s.pal.Set(p)
}

// Palette returns a copy of the current palette, or nil when closed.
func (s *Session) Palette() *palette.Palette {
	if s == nil || s.pal == nil {
		return nil
	}
	p := *s.pal
	return &p
}

func (s *Session) DrawPixel(x, y int, index uint8) {
	if s == nil || s.fb == nil {
		return
	}
	s.fb.Set(x, y, index)
}

func (s *Session) FillRect(x, y, w, h int, index uint8) {
	if s == nil || s.fb == nil {
		return
	}
	s.fb.Fill(x, y, w, h, index)
}

func (s *Session) Clear(index uint8) {
	if s == nil || s.fb == nil {
		return
	}
	s.fb.Clear(index)
}

func (s *Session) GetPixel(x, y int) uint8 {
	if s == nil || s.fb == nil {
		return 0
	}
	return s.fb.Get(x, y)
}

// PollEvent returns the oldest translatable host event without blocking.
func (s *Session) PollEvent() input.Event {
	if s == nil || s.wind == nil {
		return input.Event{}
	}
	return input.Poll(s.wind, s.scale)
}
