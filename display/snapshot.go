package display

import (
	"image"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"
)

// Snapshot copies the framebuffer into a paletted image carrying the
// current palette. It returns nil when the session is closed.
func (s *Session) Snapshot() *image.Paletted {
	if s == nil || s.fb == nil || s.pal == nil {
		return nil
	}
	img := image.NewPaletted(image.Rect(0, 0, s.fb.Width(), s.fb.Height()), s.pal.ColorPalette())
	copy(img.Pix, s.fb.Pix())
	return img
}

// SnapshotScaled is Snapshot magnified to window size.
func (s *Session) SnapshotScaled() *image.RGBA {
	src := s.Snapshot()
	if src == nil {
		return nil
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*s.scale, b.Dy()*s.scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func (s *Session) WritePNG(w io.Writer) error {
	img := s.SnapshotScaled()
	if img == nil {
		return errors.New("snapshot of a closed session")
	}
	return errors.Wrap(png.Encode(w, img), "encode png")
}
