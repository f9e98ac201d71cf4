package render

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"
)

type countingSink struct {
	calls int
	err   error
	src   []uint32
	dstW  int
	dstH  int
}

func (c *countingSink) Blit(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error {
	c.calls++
	c.src = src
	c.dstW = dstWidth
	c.dstH = dstHeight
	return c.err
}

func filledSurface(t *testing.T, w, h, xOffset, yOffset int) *Surface {
	t.Helper()
	s := NewSurface(0)
	if err := s.Resize(w, h); err != nil {
		t.Fatal(err)
	}
	Fill(s, xOffset, yOffset)
	return s
}

func TestPresentZeroDestinationIsNoop(t *testing.T) {
	s := filledSurface(t, 4, 4, 0, 0)
	sink := &countingSink{}
	p := NewPresenter(sink)
	for _, d := range [][2]int{{0, 10}, {10, 0}, {0, 0}, {-3, 4}} {
		ok, err := p.Present(s, d[0], d[1])
		if err != nil || ok {
			t.Fatalf("present %v: got (%v, %v), want (false, nil)", d, ok, err)
		}
	}
	if sink.calls != 0 {
		t.Fatalf("sink called %d times for zero-sized destination", sink.calls)
	}
}

func TestPresentPassesFullSurface(t *testing.T) {
	s := filledSurface(t, 3, 2, 1, 1)
	sink := &countingSink{}
	p := NewPresenter(sink)
	ok, err := p.Present(s, 300, 200)
	if err != nil || !ok {
		t.Fatalf("present failed: %v", err)
	}
	if sink.calls != 1 || len(sink.src) != 6 || sink.dstW != 300 || sink.dstH != 200 {
		t.Fatalf("unexpected sink call: %+v", sink)
	}
	if p.Presented() != 1 {
		t.Fatalf("presented count: got %d want 1", p.Presented())
	}
}

func TestPresentSinkFailureIsReported(t *testing.T) {
	s := filledSurface(t, 2, 2, 0, 0)
	boom := errors.New("device lost")
	p := NewPresenter(&countingSink{err: boom})
	ok, err := p.Present(s, 2, 2)
	if ok {
		t.Fatal("present reported success on sink failure")
	}
	if !errors.Is(err, ErrPresentSkipped) || !errors.Is(err, boom) {
		t.Fatalf("unexpected error chain: %v", err)
	}
	if p.Skipped() != 1 {
		t.Fatalf("skipped count: got %d want 1", p.Skipped())
	}
}

func TestPresentUnusableSurface(t *testing.T) {
	sink := &countingSink{}
	p := NewPresenter(sink)
	_, err := p.Present(NewSurface(0), 8, 8)
	if !errors.Is(err, ErrSurfaceUnusable) {
		t.Fatalf("expected ErrSurfaceUnusable, got %v", err)
	}
	if sink.calls != 0 {
		t.Fatal("sink called for empty surface")
	}
}

func TestImageSinkStretchKeepsTopDown(t *testing.T) {
	s := NewSurface(0)
	if err := s.Resize(2, 2); err != nil {
		t.Fatal(err)
	}
	px := s.Pixels()
	px[0] = Pack(0xFF, 0, 0) // top-left
	px[1] = Pack(0, 0xFF, 0) // top-right
	px[2] = Pack(0, 0, 0xFF) // bottom-left
	px[3] = Pack(0x10, 0x20, 0x30)
	before := append([]uint32(nil), px...)

	sink := NewImageSink()
	p := NewPresenter(sink)
	if _, err := p.Present(s, 4, 6); err != nil {
		t.Fatal(err)
	}
	dst := sink.Dst
	if dst.Rect.Dx() != 4 || dst.Rect.Dy() != 6 {
		t.Fatalf("destination size: got %v", dst.Rect)
	}
	checks := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{0xFF, 0, 0, 0xFF}},
		{3, 0, color.RGBA{0, 0xFF, 0, 0xFF}},
		{0, 5, color.RGBA{0, 0, 0xFF, 0xFF}},
		{3, 5, color.RGBA{0x10, 0x20, 0x30, 0xFF}},
	}
	for _, c := range checks {
		if got := dst.RGBAAt(c.x, c.y); got != c.want {
			t.Fatalf("dst (%d,%d): got %v want %v", c.x, c.y, got, c.want)
		}
	}
	for i := range before {
		if before[i] != px[i] {
			t.Fatal("present mutated the source surface")
		}
	}
}

func TestImageSinkFollowsDestinationResize(t *testing.T) {
	s := filledSurface(t, 8, 8, 0, 0)
	sink := NewImageSink()
	p := NewPresenter(sink)
	for _, d := range [][2]int{{8, 8}, {16, 4}, {3, 3}} {
		if _, err := p.Present(s, d[0], d[1]); err != nil {
			t.Fatal(err)
		}
		if sink.Dst.Rect.Dx() != d[0] || sink.Dst.Rect.Dy() != d[1] {
			t.Fatalf("destination size: got %v want %v", sink.Dst.Rect, d)
		}
	}
	if sink.Blits() != 3 {
		t.Fatalf("blit count: got %d want 3", sink.Blits())
	}
}

func TestConvertRGBAHonorsStride(t *testing.T) {
	// two rows of 2 pixels, each row padded to 3 words
	src := []uint32{0x00010203, 0x00040506, 0xDEADBEEF, 0x00070809, 0x000A0B0C, 0xDEADBEEF}
	got := ConvertRGBA(nil, src, 2, 2, 12)
	want := []byte{
		1, 2, 3, 0xFF, 4, 5, 6, 0xFF,
		7, 8, 9, 0xFF, 10, 11, 12, 0xFF,
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("unexpected conversion:\n got %v\nwant %v", got, want)
	}
}

func TestDigestTracksContents(t *testing.T) {
	a := filledSurface(t, 16, 16, 3, 4)
	b := filledSurface(t, 16, 16, 3, 4)
	if Digest(a) != Digest(b) {
		t.Fatal("equal surfaces produced different digests")
	}
	Fill(b, 4, 4)
	if Digest(a) == Digest(b) {
		t.Fatal("different surfaces produced the same digest")
	}
	c := filledSurface(t, 8, 32, 3, 4)
	if Digest(a) == Digest(c) {
		t.Fatal("digest ignores dimensions")
	}
}

func TestEncodePNG(t *testing.T) {
	s := filledSurface(t, 5, 3, 10, 20)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, s); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 5 || img.Bounds().Dy() != 3 {
		t.Fatalf("unexpected bounds: %v", img.Bounds())
	}
	r, g, b, _ := img.At(2, 1).RGBA()
	wr, wg, wb := Unpack(s.At(2, 1))
	if uint8(r>>8) != wr || uint8(g>>8) != wg || uint8(b>>8) != wb {
		t.Fatalf("pixel mismatch: got %d,%d,%d want %d,%d,%d", r>>8, g>>8, b>>8, wr, wg, wb)
	}

	if err := EncodePNG(&buf, NewSurface(0)); err != ErrSurfaceUnusable {
		t.Fatalf("expected ErrSurfaceUnusable, got %v", err)
	}
}
