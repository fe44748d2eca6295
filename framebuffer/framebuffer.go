package framebuffer

import "github.com/ushitora-anqou/palwin/util"

// Framebuffer is a fixed-size grid of palette indices. Out-of-range writes
// are dropped and out-of-range reads return 0.
type Framebuffer struct {
	width, height int
	pix           []uint8
}

func New(width, height int) *Framebuffer {
	if width <= 0 || height <= 0 {
		return nil
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height),
	}
}

func (fb *Framebuffer) Width() int {
	return fb.width
}

func (fb *Framebuffer) Height() int {
	return fb.height
}

// Pix exposes the row-major backing store.
func (fb *Framebuffer) Pix() []uint8 {
	return fb.pix
}

func (fb *Framebuffer) inside(x, y int) bool {
	return util.InRange(x, fb.width) && util.InRange(y, fb.height)
}

func (fb *Framebuffer) Set(x, y int, index uint8) {
	if !fb.inside(x, y) {
		return
	}
	fb.pix[y*fb.width+x] = index
}

func (fb *Framebuffer) Get(x, y int) uint8 {
	if !fb.inside(x, y) {
		return 0
	}
	return fb.pix[y*fb.width+x]
}

func (fb *Framebuffer) Clear(index uint8) {
	for i := range fb.pix {
		fb.pix[i] = index
	}
}

// Fill sets a rectangle clipped to the buffer.
func (fb *Framebuffer) Fill(x, y, w, h int, index uint8) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, fb.width), min(y+h, fb.height)
	for row := y0; row < y1; row++ {
		line := fb.pix[row*fb.width : (row+1)*fb.width]
		for col := x0; col < x1; col++ {
			line[col] = index
		}
	}
}
