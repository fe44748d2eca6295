package window

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Headless opens in-memory windows. It stands in for a host display in
// tests and in environments without one.
type Headless struct {
	FailConnect bool
	FailFlush   bool

	live  int
	last  *HeadlessWindow
	total int
}

func NewHeadless() *Headless {
	return &Headless{}
}

func (h *Headless) Open(width, height int, title string) (Window, error) {
	if h.FailConnect {
		return nil, errors.Wrap(ErrUnavailable, "headless: connection refused")
	}
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("headless: invalid window size %dx%d", width, height)
	}

	wind := &HeadlessWindow{
		owner: h,
		title: title,
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		fg:    color.RGBA{0, 0, 0, 0xff},
	}
	h.live++
	h.total++
	h.last = wind
	return wind, nil
}

// Live returns the number of windows opened and not yet closed.
func (h *Headless) Live() int {
	return h.live
}

func (h *Headless) Opened() int {
	return h.total
}

func (h *Headless) Last() *HeadlessWindow {
	return h.last
}

type HeadlessWindow struct {
	owner   *Headless
	title   string
	img     *image.RGBA
	fg      color.RGBA
	queue   []HostEvent
	fills   int
	flushes int
	closed  bool
}

func (wind *HeadlessWindow) SetColor(rgb uint32) {
	wind.fg = color.RGBA{uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb), 0xff}
}

func (wind *HeadlessWindow) FillRect(x, y, w, h int) {
	if wind.closed {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(wind.img.Bounds())
	draw.Draw(wind.img, r, image.NewUniform(wind.fg), image.Point{}, draw.Src)
	wind.fills++
}

func (wind *HeadlessWindow) Flush() error {
	if wind.owner.FailFlush {
		return errors.New("headless: flush failed")
	}
	wind.flushes++
	return nil
}

func (wind *HeadlessWindow) PollEvent() (HostEvent, bool) {
	if len(wind.queue) == 0 {
		return HostEvent{}, false
	}
	ev := wind.queue[0]
	wind.queue = wind.queue[1:]
	return ev, true
}

func (wind *HeadlessWindow) Close() error {
	if wind.closed {
		return nil
	}
	wind.closed = true
	wind.owner.live--
	return nil
}

// Inject queues host notifications for PollEvent.
func (wind *HeadlessWindow) Inject(evs ...HostEvent) {
	wind.queue = append(wind.queue, evs...)
}

func (wind *HeadlessWindow) Pending() int {
	return len(wind.queue)
}

func (wind *HeadlessWindow) Title() string {
	return wind.title
}

func (wind *HeadlessWindow) Image() *image.RGBA {
	return wind.img
}

func (wind *HeadlessWindow) Fills() int {
	return wind.fills
}

func (wind *HeadlessWindow) Flushes() int {
	return wind.flushes
}

func (wind *HeadlessWindow) Closed() bool {
	return wind.closed
}
