package render

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/crypto/blake2b"
)

// Digest hashes the visible pixels of s row by row as little-endian words.
// Two surfaces with equal dimensions and contents share a digest.
func Digest(s *Surface) [blake2b.Size256]byte {
	var sum [blake2b.Size256]byte
	h, err := blake2b.New256(nil)
	if err != nil {
		return sum
	}
	w, height := s.Dimensions()
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:4], uint32(w))
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(height))
	h.Write(hdr[:])

	if s.Usable() {
		row := make([]byte, w*BytesPerPixel)
		pitch := s.stride / BytesPerPixel
		for y := 0; y < height; y++ {
			for x, word := range s.pixels[y*pitch : y*pitch+w] {
				binary.LittleEndian.PutUint32(row[x*4:], word)
			}
			h.Write(row)
		}
	}
	copy(sum[:], h.Sum(nil))
	return sum
}

// EncodePNG writes the surface as an opaque PNG image.
func EncodePNG(w io.Writer, s *Surface) error {
	if !s.Usable() {
		return ErrSurfaceUnusable
	}
	img := image.NewRGBA(image.Rect(0, 0, s.w, s.h))
	img.Pix = ToRGBA(img.Pix, s)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
