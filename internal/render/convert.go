package render

// ConvertRGBA expands packed pixel words into R, G, B, A byte quadruples
// with opaque alpha, dropping any row padding. dst is reused when it has
// room and grown otherwise; the filled slice is returned.
func ConvertRGBA(dst []byte, src []uint32, width, height, stride int) []byte {
	n := width * height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	pitch := stride / BytesPerPixel
	i := 0
	for y := 0; y < height; y++ {
		row := src[y*pitch : y*pitch+width]
		for _, word := range row {
			dst[i+0] = uint8(word >> 16)
			dst[i+1] = uint8(word >> 8)
			dst[i+2] = uint8(word)
			dst[i+3] = 0xFF
			i += 4
		}
	}
	return dst
}

// ToRGBA converts the whole surface. It returns dst unchanged and empty when
// the surface is unusable.
func ToRGBA(dst []byte, s *Surface) []byte {
	if !s.Usable() {
		return dst[:0]
	}
	return ConvertRGBA(dst, s.pixels, s.w, s.h, s.stride)
}
