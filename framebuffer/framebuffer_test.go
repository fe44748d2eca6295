package framebuffer

import "testing"

func TestSetGet(t *testing.T) {
	fb := New(64, 48)
	table := []struct {
		x, y  int
		index uint8
	}{
		{0, 0, 5},
		{63, 0, 6},
		{0, 47, 7},
		{63, 47, 255},
		{31, 20, 1},
	}

	for _, entry := range table {
		fb.Set(entry.x, entry.y, entry.index)
		if got := fb.Get(entry.x, entry.y); got != entry.index {
			t.Fatalf("Get(%d, %d): (got: %d) (expected: %d)", entry.x, entry.y, got, entry.index)
		}
	}
}

func TestOutOfRange(t *testing.T) {
	fb := New(64, 48)
	fb.Clear(0)
	table := [][2]int{
		{-1, 0}, {0, -1}, {64, 0}, {0, 48}, {64, 48}, {-100, 1000},
	}

	for _, entry := range table {
		fb.Set(entry[0], entry[1], 9)
		if got := fb.Get(entry[0], entry[1]); got != 0 {
			t.Fatalf("Get(%d, %d): (got: %d) (expected: 0)", entry[0], entry[1], got)
		}
	}
	for i, v := range fb.Pix() {
		if v != 0 {
			t.Fatalf("out-of-range Set leaked into cell %d", i)
		}
	}
}

func TestClear(t *testing.T) {
	fb := New(7, 3)
	fb.Set(2, 2, 1)
	fb.Clear(9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			if got := fb.Get(x, y); got != 9 {
				t.Fatalf("Get(%d, %d): (got: %d) (expected: 9)", x, y, got)
			}
		}
	}
}

func TestFillClipped(t *testing.T) {
	fb := New(4, 4)
	fb.Fill(-2, 2, 4, 10, 3)

	expected := []uint8{
		0, 0, 0, 0,
		0, 0, 0, 0,
		3, 3, 0, 0,
		3, 3, 0, 0,
	}
	for i, v := range fb.Pix() {
		if v != expected[i] {
			t.Fatalf("cell %d: (got: %d) (expected: %d)", i, v, expected[i])
		}
	}
}

func TestNewInvalid(t *testing.T) {
	if New(0, 10) != nil || New(10, -1) != nil {
		t.Fatalf("New should refuse non-positive dimensions")
	}
}
