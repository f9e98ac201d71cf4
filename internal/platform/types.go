package platform

import "jinogame/internal/render"

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
	Resizable   bool
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:       "Jino Game",
		WidthPx:     1280,
		HeightPx:    720,
		MinWidthPx:  160,
		MinHeightPx: 90,
		Resizable:   true,
	}
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventDestroy
	EventResize
	EventActivate
)

func (t EventType) String() string {
	switch t {
	case EventClose:
		return "close"
	case EventDestroy:
		return "destroy"
	case EventResize:
		return "resize"
	case EventActivate:
		return "activate"
	}
	return "unknown"
}

type Event struct {
	Type   EventType
	Width  int
	Height int
	Active bool
}

type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig) (Window, error)
}

// Window is the host side of the frame loop. PollEvents drains whatever is
// queued without blocking. SizePx reports the current drawing area and may
// change between calls. The embedded Sink is the raw present primitive.
//
// A Window that can also deliver input implements input.Source.
type Window interface {
	render.Sink
	PollEvents() []Event
	SizePx() (int, int)
	Close()
}
