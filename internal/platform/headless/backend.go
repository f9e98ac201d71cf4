package headless

import (
	"errors"

	"jinogame/internal/input"
	"jinogame/internal/platform"
	"jinogame/internal/render"
)

var ErrPresentFailed = errors.New("headless: present failed")

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "headless" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	return NewWindow(cfg), nil
}

// Window is an in-memory host. Frames land in an ImageSink; events and
// input are scripted by the caller.
type Window struct {
	Sink *render.ImageSink

	w      int
	h      int
	events []platform.Event
	inputs []input.Snapshot
	failed bool
	closed bool
}

// NewWindow creates a window and queues its first size report.
func NewWindow(cfg platform.WindowConfig) *Window {
	w := &Window{
		Sink: render.NewImageSink(),
		w:    cfg.WidthPx,
		h:    cfg.HeightPx,
	}
	w.Push(platform.Event{Type: platform.EventResize, Width: cfg.WidthPx, Height: cfg.HeightPx})
	return w
}

func (w *Window) Push(events ...platform.Event) {
	w.events = append(w.events, events...)
}

// Resize changes the drawing area and reports it.
func (w *Window) Resize(width, height int) {
	w.SetSize(width, height)
	w.Push(platform.Event{Type: platform.EventResize, Width: width, Height: height})
}

// SetSize changes the drawing area without queuing an event.
func (w *Window) SetSize(width, height int) {
	w.w = width
	w.h = height
}

// FailPresent makes subsequent blits fail until cleared.
func (w *Window) FailPresent(fail bool) { w.failed = fail }

// QueueInput appends snapshots returned by Sample, one per call.
func (w *Window) QueueInput(snaps ...input.Snapshot) {
	w.inputs = append(w.inputs, snaps...)
}

func (w *Window) PollEvents() []platform.Event {
	out := w.events
	w.events = nil
	return out
}

func (w *Window) SizePx() (int, int) { return w.w, w.h }

func (w *Window) Blit(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error {
	if w.failed {
		return ErrPresentFailed
	}
	return w.Sink.Blit(src, srcWidth, srcHeight, srcStride, dstWidth, dstHeight)
}

func (w *Window) Available() bool { return len(w.inputs) > 0 }

func (w *Window) Sample() input.Snapshot {
	if len(w.inputs) == 0 {
		return input.Snapshot{}
	}
	s := w.inputs[0]
	w.inputs = w.inputs[1:]
	return s
}

// Close queues a close request. The frame loop picks it up on its next drain.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.Push(platform.Event{Type: platform.EventClose})
}
