package headless

import (
	"errors"
	"testing"

	"jinogame/internal/input"
	"jinogame/internal/platform"
	"jinogame/internal/render"
)

func TestCreateWindowReportsInitialSize(t *testing.T) {
	cfg := platform.DefaultWindowConfig()
	cfg.WidthPx, cfg.HeightPx = 320, 200
	win, err := New().CreateWindow(cfg)
	if err != nil {
		t.Fatal(err)
	}
	events := win.PollEvents()
	if len(events) != 1 || events[0].Type != platform.EventResize || events[0].Width != 320 || events[0].Height != 200 {
		t.Fatalf("unexpected initial events: %+v", events)
	}
	if more := win.PollEvents(); len(more) != 0 {
		t.Fatalf("queue not drained: %+v", more)
	}
}

func TestCloseQueuesSingleEvent(t *testing.T) {
	w := NewWindow(platform.DefaultWindowConfig())
	w.PollEvents()
	w.Close()
	w.Close()
	events := w.PollEvents()
	if len(events) != 1 || events[0].Type != platform.EventClose {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestBlitFailure(t *testing.T) {
	w := NewWindow(platform.DefaultWindowConfig())
	w.FailPresent(true)
	s := render.NewSurface(0)
	if err := s.Resize(2, 2); err != nil {
		t.Fatal(err)
	}
	if err := w.Blit(s.Pixels(), 2, 2, s.Stride(), 4, 4); !errors.Is(err, ErrPresentFailed) {
		t.Fatalf("expected ErrPresentFailed, got %v", err)
	}
	w.FailPresent(false)
	if err := w.Blit(s.Pixels(), 2, 2, s.Stride(), 4, 4); err != nil {
		t.Fatal(err)
	}
	if w.Sink.Blits() != 1 {
		t.Fatalf("blit count: got %d want 1", w.Sink.Blits())
	}
}

func TestScriptedInput(t *testing.T) {
	w := NewWindow(platform.DefaultWindowConfig())
	if w.Available() {
		t.Fatal("window without scripted input reported available")
	}
	first := input.Snapshot{Held: input.KeySet(0).With(input.KeyRight)}
	w.QueueInput(first)
	if got := input.Sample(w); got != first {
		t.Fatalf("got %+v want %+v", got, first)
	}
	if got := input.Sample(w); got != (input.Snapshot{}) {
		t.Fatalf("expected neutral snapshot once script ran out, got %+v", got)
	}
}
