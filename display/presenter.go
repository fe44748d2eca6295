package display

import "github.com/ushitora-anqou/palwin/util"

// Refresh resolves every cell through the palette and paints it as a
// scale x scale block, then flushes so the frame is on screen before
// returning. Cells are painted straight into the window, so a slow host
// may show a partly drawn frame.
func (s *Session) Refresh() {
	if s == nil || s.wind == nil || s.fb == nil || s.image == nil {
		return
	}

	pix := s.fb.Pix()
	for i, index := range pix {
		s.image[i] = s.pal.Lookup(index)
	}

	width, height := s.fb.Width(), s.fb.Height()
	scale := s.scale
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			s.wind.SetColor(s.image[row*width+col])
			s.wind.FillRect(col*scale, row*scale, scale, scale)
		}
	}

	if err := s.wind.Flush(); err != nil {
		util.Trace("display: flush: %v", err)
	}
}
