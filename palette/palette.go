package palette

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"github.com/ushitora-anqou/palwin/constant"
)

var ErrLength = errors.New("palette must be exactly 768 bytes")

type RGB struct {
	R, G, B uint8
}

// Packed returns the color as 0x00RRGGBB.
func (c RGB) Packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Palette maps a palette index to a color. It always holds exactly 256
// entries; updates replace every entry at once.
type Palette [constant.PALETTE_ENTRIES]RGB

func Grayscale() *Palette {
	p := &Palette{}
	for i := range p {
		v := uint8(i)
		p[i] = RGB{v, v, v}
	}
	return p
}

// FromBytes decodes 256 consecutive red-green-blue triples.
func FromBytes(buf []byte) (*Palette, error) {
	if len(buf) != constant.PALETTE_BYTES {
		return nil, errors.Wrapf(ErrLength, "got %d bytes", len(buf))
	}
	p := &Palette{}
	for i := range p {
		p[i] = RGB{buf[i*3+0], buf[i*3+1], buf[i*3+2]}
	}
	return p, nil
}

func (p *Palette) Set(other *Palette) {
	*p = *other
}

func (p *Palette) Lookup(index uint8) uint32 {
	return p[index].Packed()
}

func (p *Palette) Bytes() []byte {
	buf := make([]byte, constant.PALETTE_BYTES)
	for i, c := range p {
		buf[i*3+0] = c.R
		buf[i*3+1] = c.G
		buf[i*3+2] = c.B
	}
	return buf
}

func (p *Palette) ColorPalette() color.Palette {
	cp := make(color.Palette, len(p))
	for i, c := range p {
		cp[i] = color.RGBA{c.R, c.G, c.B, 0xff}
	}
	return cp
}

// Stop pins a color to a palette index for Gradient.
type Stop struct {
	Index uint8
	Color color.Color
}

// Gradient builds a palette by blending linearly in RGB between stops.
// Entries before the first stop and after the last take the nearest stop's
// color. With no stops the grayscale ramp is returned.
func Gradient(stops ...Stop) *Palette {
	if len(stops) == 0 {
		return Grayscale()
	}

	p := &Palette{}
	cs := make([]colorful.Color, len(stops))
	for i, s := range stops {
		c, _ := colorful.MakeColor(s.Color)
		cs[i] = c
	}

	for i := range p {
		idx := uint8(i)
		var c colorful.Color
		switch {
		case idx <= stops[0].Index:
			c = cs[0]
		case idx >= stops[len(stops)-1].Index:
			c = cs[len(cs)-1]
		default:
			for k := 1; k < len(stops); k++ {
				if idx > stops[k].Index {
					continue
				}
				lo, hi := stops[k-1].Index, stops[k].Index
				t := float64(idx-lo) / float64(hi-lo)
				c = cs[k-1].BlendRgb(cs[k], t)
				break
			}
		}
		r, g, b := c.Clamped().RGB255()
		p[i] = RGB{r, g, b}
	}
	return p
}
