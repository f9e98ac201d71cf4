package app

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

type fontBank struct {
	mono  *opentype.Font
	cache map[int]font.Face
}

func newFontBank() fontBank {
	bank := fontBank{cache: map[int]font.Face{}}
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return bank
	}
	bank.mono = f
	return bank
}

// face returns a cached monospace face at size points, falling back to the
// built-in bitmap face when the TTF could not be parsed.
func (b *fontBank) face(size int) font.Face {
	if b.mono == nil || size <= 0 {
		return basicfont.Face7x13
	}
	if f, ok := b.cache[size]; ok {
		return f
	}
	f, err := opentype.NewFace(b.mono, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[size] = f
	return f
}
