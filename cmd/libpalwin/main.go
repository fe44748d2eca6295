// Command libpalwin builds the bridge as a C shared library:
//
//	go build -buildmode=c-shared -o libpalwin.so ./cmd/libpalwin
//
// Every function takes the opaque handle returned by palwin_new.
package main

/*
typedef struct {
	int kind; // 0=none, 1=keydown, 2=keyup, 3=button, 4=quit
	int code;
	int x, y;
} palwin_event_t;
*/
import "C"
import (
	"unsafe"

	"github.com/mattn/go-pointer"
	"github.com/ushitora-anqou/palwin/bridge"
)

func restore(h unsafe.Pointer) *bridge.Bridge {
	if h == nil {
		return nil
	}
	b, _ := pointer.Restore(h).(*bridge.Bridge)
	return b
}

//export palwin_new
func palwin_new() unsafe.Pointer {
	return pointer.Save(bridge.New(nil))
}

//export palwin_free
func palwin_free(h unsafe.Pointer) {
	if b := restore(h); b != nil {
		b.Close()
		pointer.Unref(h)
	}
}

//export palwin_window_open
func palwin_window_open(h unsafe.Pointer, width, height C.int, title *C.char) C.int {
	b := restore(h)
	if b == nil {
		return 0
	}
	t := ""
	if title != nil {
		t = C.GoString(title)
	}
	return C.int(b.Open(int(width), int(height), t))
}

//export palwin_window_close
func palwin_window_close(h unsafe.Pointer) {
	if b := restore(h); b != nil {
		b.Close()
	}
}

//export palwin_palette_set
func palwin_palette_set(h unsafe.Pointer, pal *C.uchar, length C.int) {
	b := restore(h)
	if b == nil || pal == nil || length < 0 {
		return
	}
	b.SetPalette(C.GoBytes(unsafe.Pointer(pal), length))
}

//export palwin_pixel_draw
func palwin_pixel_draw(h unsafe.Pointer, x, y, color C.int) {
	if b := restore(h); b != nil {
		b.DrawPixel(int(x), int(y), int(color))
	}
}

//export palwin_screen_refresh
func palwin_screen_refresh(h unsafe.Pointer) {
	if b := restore(h); b != nil {
		b.Refresh()
	}
}

//export palwin_screen_clear
func palwin_screen_clear(h unsafe.Pointer, color C.int) {
	if b := restore(h); b != nil {
		b.Clear(int(color))
	}
}

//export palwin_framebuffer_get
func palwin_framebuffer_get(h unsafe.Pointer, x, y C.int) C.int {
	b := restore(h)
	if b == nil {
		return 0
	}
	return C.int(b.GetPixel(int(x), int(y)))
}

//export palwin_event_poll
func palwin_event_poll(h unsafe.Pointer) C.palwin_event_t {
	var ev C.palwin_event_t
	b := restore(h)
	if b == nil {
		return ev
	}
	kind, code, x, y := b.PollEvent()
	ev.kind = C.int(kind)
	ev.code = C.int(code)
	ev.x = C.int(x)
	ev.y = C.int(y)
	return ev
}

func main() {}
