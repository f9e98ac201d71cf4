package render

// Fill writes the offset gradient into every pixel of s:
//
//	blue  = (x + xOffset) mod 256
//	green = (y + yOffset) mod 256
//	red   = ((xOffset + yOffset) / 2) mod 256
//
// The division truncates toward zero and every mod is taken on the low
// byte, so negative offsets wrap the same way they would in a uint8.
// Fill does nothing on an unusable surface and never allocates.
func Fill(s *Surface, xOffset, yOffset int) {
	if !s.Usable() {
		return
	}
	red := uint32(uint8((xOffset+yOffset)/2)) << 16
	pitch := s.stride / BytesPerPixel
	for y := 0; y < s.h; y++ {
		start := y * pitch
		row := s.pixels[start : start+s.w]
		green := uint32(uint8(y+yOffset)) << 8
		for x := range row {
			row[x] = red | green | uint32(uint8(x+xOffset))
		}
	}
}
