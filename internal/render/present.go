package render

import (
	"errors"
	"fmt"
)

var ErrPresentSkipped = errors.New("render: present skipped")

// Sink performs the actual stretch-copy of a source buffer onto the visible
// surface. src holds srcHeight rows of srcStride bytes, top row first. A sink
// must not modify src.
type Sink interface {
	Blit(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error
}

type SinkFunc func(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error

func (f SinkFunc) Blit(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error {
	return f(src, srcWidth, srcHeight, srcStride, dstWidth, dstHeight)
}

// Presenter hands the whole surface to a Sink, scaled to the destination.
type Presenter struct {
	sink      Sink
	presented uint64
	skipped   uint64
}

func NewPresenter(sink Sink) *Presenter {
	return &Presenter{sink: sink}
}

// Present blits s onto a dstWidth x dstHeight destination. A zero-sized
// destination is a no-op. It reports whether the sink accepted the frame;
// a sink failure comes back wrapped in ErrPresentSkipped.
func (p *Presenter) Present(s *Surface, dstWidth, dstHeight int) (bool, error) {
	if dstWidth <= 0 || dstHeight <= 0 {
		return false, nil
	}
	if !s.Usable() {
		p.skipped++
		return false, ErrSurfaceUnusable
	}
	if err := p.sink.Blit(s.pixels, s.w, s.h, s.stride, dstWidth, dstHeight); err != nil {
		p.skipped++
		return false, fmt.Errorf("%w: %w", ErrPresentSkipped, err)
	}
	p.presented++
	return true, nil
}

func (p *Presenter) Presented() uint64 { return p.presented }
func (p *Presenter) Skipped() uint64   { return p.skipped }
