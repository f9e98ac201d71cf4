package render

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the size of one packed pixel word.
const BytesPerPixel = 4

// DefaultMaxPixels bounds a single allocation when no explicit limit is set.
const DefaultMaxPixels = 1 << 26

var (
	ErrInvalidSize     = errors.New("render: surface dimensions must be positive")
	ErrAllocation      = errors.New("render: surface allocation failed")
	ErrSurfaceUnusable = errors.New("render: surface has no backing buffer")
)

// Surface is a CPU-side pixel buffer. Each pixel is one little-endian 32-bit
// word laid out as [blue, green, red, pad] from the low byte up, so the
// packed value reads 0xPPRRGGBB. Rows are top-down with no padding.
//
// The zero value is an empty surface with no backing memory.
type Surface struct {
	// MaxPixels caps width*height for Resize. Zero means DefaultMaxPixels.
	MaxPixels int

	w      int
	h      int
	stride int
	pixels []uint32
}

func NewSurface(maxPixels int) *Surface {
	return &Surface{MaxPixels: maxPixels}
}

// allocWords is swapped out in tests to simulate allocation failure.
var allocWords = func(n int) []uint32 { return make([]uint32, n) }

// Resize drops the current buffer and allocates a fresh zeroed one of
// width*height words. Non-positive dimensions are rejected and leave the
// surface untouched. If the allocation fails the surface is left empty.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s.Release()

	limit := s.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	if width > limit/height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, width, height, limit)
	}

	pixels, err := allocate(width * height)
	if err != nil {
		return fmt.Errorf("%w: %dx%d: %v", ErrAllocation, width, height, err)
	}
	s.w = width
	s.h = height
	s.stride = width * BytesPerPixel
	s.pixels = pixels
	return nil
}

func allocate(n int) (pixels []uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			pixels = nil
			err = fmt.Errorf("%v", r)
		}
	}()
	pixels = allocWords(n)
	if len(pixels) != n {
		return nil, fmt.Errorf("allocator returned %d words, want %d", len(pixels), n)
	}
	return pixels, nil
}

// Release frees the buffer. The surface reports 0x0 until the next Resize.
func (s *Surface) Release() {
	s.pixels = nil
	s.w = 0
	s.h = 0
	s.stride = 0
}

func (s *Surface) Usable() bool {
	return s != nil && len(s.pixels) > 0
}

func (s *Surface) Dimensions() (int, int) {
	if s == nil {
		return 0, 0
	}
	return s.w, s.h
}

// Stride is the distance in bytes between the starts of consecutive rows.
func (s *Surface) Stride() int { return s.stride }

// Pixels exposes the backing words in row-major order. The slice is only
// valid until the next Resize or Release.
func (s *Surface) Pixels() []uint32 { return s.pixels }

// At returns the packed word at (x, y), or 0 when out of range.
func (s *Surface) At(x, y int) uint32 {
	if !s.Usable() || x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0
	}
	return s.pixels[y*(s.stride/BytesPerPixel)+x]
}

// Pack builds a pixel word with a zero pad byte.
func Pack(red, green, blue uint8) uint32 {
	return uint32(red)<<16 | uint32(green)<<8 | uint32(blue)
}

// Unpack splits a pixel word into its colour channels.
func Unpack(word uint32) (red, green, blue uint8) {
	return uint8(word >> 16), uint8(word >> 8), uint8(word)
}
