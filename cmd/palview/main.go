package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"runtime/pprof"

	"github.com/ushitora-anqou/palwin/constant"
	"github.com/ushitora-anqou/palwin/display"
	"github.com/ushitora-anqou/palwin/input"
	"github.com/ushitora-anqou/palwin/palette"
	"github.com/ushitora-anqou/palwin/util"
	"github.com/ushitora-anqou/palwin/window"
)

const (
	keyEscapeX11 = 0xff1b
	keyEscape    = 27
)

var gradient = palette.Gradient(
	palette.Stop{Index: 0, Color: color.RGBA{0x00, 0x00, 0x20, 0xff}},
	palette.Stop{Index: 96, Color: color.RGBA{0x20, 0x60, 0xd0, 0xff}},
	palette.Stop{Index: 192, Color: color.RGBA{0xf0, 0xc0, 0x40, 0xff}},
	palette.Stop{Index: 255, Color: color.RGBA{0xff, 0xff, 0xff, 0xff}},
)

func drawSwatches(s *display.Session) {
	width, height := s.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.DrawPixel(x, y, swatchIndex(x, y, width, height))
		}
	}
}

// swatchIndex lays the 256 entries out as a 16x16 grid.
func swatchIndex(x, y, width, height int) uint8 {
	return uint8((y*16/height)*16 + x*16/width)
}

func run() error {
	backend := flag.String("backend", os.Getenv("PALWIN_BACKEND"), "x11, sdl2, terminal, headless or auto")
	palPath := flag.String("pal", "", "768-byte RGB palette file")
	width := flag.Int("w", 64, "framebuffer width")
	height := flag.Int("h", 64, "framebuffer height")
	fps := flag.Float64("fps", constant.TARGET_FPS, "target frames per second")
	pngPath := flag.String("png", "", "write a snapshot here on exit")
	trace := flag.Bool("trace", false, "enable tracing")
	flag.Parse()

	if *trace {
		util.EnableTrace()
	}
	if filename := os.Getenv("PALWIN_CPUPROFILE"); filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := pprof.StartCPUProfile(file); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	var loaded []byte
	if *palPath != "" {
		buf, err := os.ReadFile(*palPath)
		if err != nil {
			return err
		}
		if _, err := palette.FromBytes(buf); err != nil {
			return fmt.Errorf("%s: %v", *palPath, err)
		}
		loaded = buf
	}

	opener, err := window.Lookup(*backend)
	if err != nil {
		return err
	}
	s, err := display.Open(opener, *width, *height, "palview")
	if err != nil {
		return err
	}
	defer s.Close()

	if loaded != nil {
		s.SetPalette(loaded)
	}
	drawSwatches(s)

	synchronizer := window.NewTimeSynchronizer(*fps)
	for running := true; running; {
		for ev := s.PollEvent(); ev.Kind != input.None; ev = s.PollEvent() {
			switch ev.Kind {
			case input.Quit:
				running = false
			case input.KeyDown:
				switch ev.Code {
				case keyEscape, keyEscapeX11, 'q':
					running = false
				case 'g':
					s.SetPaletteTable(gradient)
				case 'r':
					if loaded != nil {
						s.SetPalette(loaded)
					} else {
						s.SetPaletteTable(palette.Grayscale())
					}
				}
			case input.ButtonDown:
				index := s.GetPixel(ev.X, ev.Y)
				c := s.Palette()[index]
				log.Printf("(%d, %d): index %d = #%02x%02x%02x", ev.X, ev.Y, index, c.R, c.G, c.B)
			}
		}

		s.Refresh()
		synchronizer.MaySleep()
	}

	if *pngPath != "" {
		file, err := os.Create(*pngPath)
		if err != nil {
			return err
		}
		defer file.Close()
		return s.WritePNG(file)
	}
	return nil
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
