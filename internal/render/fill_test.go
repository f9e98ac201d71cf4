package render

import (
	"testing"
)

func expectedWord(x, y, xOffset, yOffset int) uint32 {
	mod := func(v int) uint32 { return uint32(((v % 256) + 256) % 256) }
	red := mod((xOffset + yOffset) / 2)
	green := mod(y + yOffset)
	blue := mod(x + xOffset)
	return 0<<24 | red<<16 | green<<8 | blue
}

func TestFillMatchesFormula(t *testing.T) {
	offsets := [][2]int{{0, 0}, {1, 0}, {255, 1}, {300, 10}, {-1, -1}, {-7, 3}, {1 << 20, -(1 << 19)}}
	s := NewSurface(0)
	if err := s.Resize(17, 9); err != nil {
		t.Fatal(err)
	}
	for _, off := range offsets {
		Fill(s, off[0], off[1])
		for y := 0; y < 9; y++ {
			for x := 0; x < 17; x++ {
				want := expectedWord(x, y, off[0], off[1])
				if got := s.At(x, y); got != want {
					t.Fatalf("offsets %v pixel (%d,%d): got %#08x want %#08x", off, x, y, got, want)
				}
			}
		}
	}
}

func TestFillScenarioPixelAtOneOne(t *testing.T) {
	s := NewSurface(0)
	if err := s.Resize(4, 2); err != nil {
		t.Fatal(err)
	}
	Fill(s, 0, 0)
	if got := s.At(1, 1); got != 0x00000101 {
		t.Fatalf("pixel (1,1): got %#08x want 0x00000101", got)
	}
}

func TestFillRedChannelUniform(t *testing.T) {
	s := NewSurface(0)
	if err := s.Resize(2, 2); err != nil {
		t.Fatal(err)
	}
	Fill(s, 300, 10)
	for i, word := range s.Pixels() {
		r, _, _ := Unpack(word)
		if r != 155 {
			t.Fatalf("pixel %d red: got %d want 155", i, r)
		}
		if word>>24 != 0 {
			t.Fatalf("pixel %d pad byte set: %#08x", i, word)
		}
	}
}

func TestFillIsIdempotent(t *testing.T) {
	s := NewSurface(0)
	if err := s.Resize(33, 21); err != nil {
		t.Fatal(err)
	}
	Fill(s, 41, -12)
	first := append([]uint32(nil), s.Pixels()...)
	Fill(s, 41, -12)
	for i := range first {
		if first[i] != s.Pixels()[i] {
			t.Fatalf("pixel %d differs between fills: %#08x vs %#08x", i, first[i], s.Pixels()[i])
		}
	}
}

func TestFillEmptySurfaceIsSafe(t *testing.T) {
	var s Surface
	Fill(&s, 5, 5)
	Fill(nil, 5, 5)
	if s.Usable() {
		t.Fatal("fill must not allocate a buffer")
	}
}

func TestFillDoesNotAllocate(t *testing.T) {
	s := NewSurface(0)
	if err := s.Resize(64, 64); err != nil {
		t.Fatal(err)
	}
	allocs := testing.AllocsPerRun(20, func() { Fill(s, 3, 4) })
	if allocs != 0 {
		t.Fatalf("fill allocated %.0f times per run", allocs)
	}
}

func BenchmarkFill1280x720(b *testing.B) {
	s := NewSurface(0)
	if err := s.Resize(1280, 720); err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Fill(s, i, i/2)
	}
}
