package render

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageSink is a software Sink that scales into an in-memory RGBA image
// with nearest-neighbor sampling. Dst is reallocated whenever the
// destination size changes.
type ImageSink struct {
	Dst *image.RGBA

	staging *image.RGBA
	blits   int
}

func NewImageSink() *ImageSink {
	return &ImageSink{}
}

func (k *ImageSink) Blit(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error {
	if k.staging == nil || k.staging.Rect.Dx() != srcWidth || k.staging.Rect.Dy() != srcHeight {
		k.staging = image.NewRGBA(image.Rect(0, 0, srcWidth, srcHeight))
	}
	k.staging.Pix = ConvertRGBA(k.staging.Pix, src, srcWidth, srcHeight, srcStride)

	if k.Dst == nil || k.Dst.Rect.Dx() != dstWidth || k.Dst.Rect.Dy() != dstHeight {
		k.Dst = image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	}
	draw.NearestNeighbor.Scale(k.Dst, k.Dst.Bounds(), k.staging, k.staging.Bounds(), draw.Src, nil)
	k.blits++
	return nil
}

// Blits counts successful Blit calls.
func (k *ImageSink) Blits() int { return k.blits }
