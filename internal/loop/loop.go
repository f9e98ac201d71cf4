package loop

import (
	"context"
	"errors"
	"log/slog"

	"jinogame/internal/input"
	"jinogame/internal/platform"
	"jinogame/internal/render"
)

var ErrTerminated = errors.New("loop: terminated")

type State int

const (
	Initializing State = iota
	Running
	Stopping
	Terminated
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

type Config struct {
	// Surface size used until the host reports its own.
	Width  int
	Height int
	// MaxPixels caps surface allocations. Zero uses render.DefaultMaxPixels.
	MaxPixels int
	Policy    Policy
}

func DefaultConfig() Config {
	return Config{
		Width:  1280,
		Height: 720,
		Policy: FixedIncrement,
	}
}

// Loop owns one surface and drives it through drain, sample, advance, fill
// and present on every Tick. It is not safe for concurrent use.
type Loop struct {
	cfg       Config
	win       platform.Window
	input     input.Source
	surface   *render.Surface
	presenter *render.Presenter
	offsets   Offsets
	state     State
	ticks     uint64
	last      input.Snapshot
}

// New wires a loop to its host. src may be nil when the host has no input.
func New(win platform.Window, src input.Source, cfg Config) *Loop {
	if cfg.Policy == nil {
		cfg.Policy = FixedIncrement
	}
	return &Loop{
		cfg:       cfg,
		win:       win,
		input:     src,
		surface:   render.NewSurface(cfg.MaxPixels),
		presenter: render.NewPresenter(win),
	}
}

func (l *Loop) State() State                 { return l.state }
func (l *Loop) Offsets() Offsets             { return l.offsets }
func (l *Loop) Surface() *render.Surface     { return l.surface }
func (l *Loop) Presenter() *render.Presenter { return l.presenter }
func (l *Loop) Ticks() uint64                { return l.ticks }

// LastInput is the snapshot sampled by the most recent tick.
func (l *Loop) LastInput() input.Snapshot { return l.last }

// Stop asks the loop to tear down at the top of the next tick.
func (l *Loop) Stop() {
	if l.state == Initializing || l.state == Running {
		l.setState(Stopping)
	}
}

// Tick runs one frame. A tick that finds the loop stopping releases the
// surface and terminates without filling or presenting. Ticking a
// terminated loop returns ErrTerminated.
func (l *Loop) Tick() error {
	switch l.state {
	case Terminated:
		return ErrTerminated
	case Stopping:
		l.shutdown()
		return nil
	case Initializing:
		l.initialize()
	}
	l.ticks++

	for _, ev := range l.win.PollEvents() {
		l.handle(ev)
	}

	l.last = input.Sample(l.input)
	if l.last.WentDown.Has(input.KeyEscape) || l.last.Gamepad.Pressed(input.ButtonBack) {
		l.Stop()
	}
	l.offsets = l.cfg.Policy.Advance(l.offsets, l.last)

	if !l.surface.Usable() {
		return nil
	}
	render.Fill(l.surface, l.offsets.X, l.offsets.Y)

	w, h := l.win.SizePx()
	if _, err := l.presenter.Present(l.surface, w, h); err != nil {
		Logger().Warn("present skipped", slog.Uint64("tick", l.ticks), slog.Any("err", err))
	}
	return nil
}

// Run ticks until the loop terminates. Cancelling ctx acts as a stop
// signal and is observed between ticks.
func (l *Loop) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			l.Stop()
		}
		if err := l.Tick(); err != nil {
			return err
		}
		if l.state == Terminated {
			return nil
		}
	}
}

func (l *Loop) initialize() {
	l.offsets = Offsets{}
	if err := l.surface.Resize(l.cfg.Width, l.cfg.Height); err != nil {
		Logger().Warn("allocate default surface", slog.Any("err", err))
	}
	l.setState(Running)
}

func (l *Loop) handle(ev platform.Event) {
	switch ev.Type {
	case platform.EventResize:
		if ev.Width <= 0 || ev.Height <= 0 {
			Logger().Debug("ignore resize", slog.Int("width", ev.Width), slog.Int("height", ev.Height))
			return
		}
		Logger().Debug("resize surface", slog.Int("width", ev.Width), slog.Int("height", ev.Height))
		if err := l.surface.Resize(ev.Width, ev.Height); err != nil {
			Logger().Warn("resize surface", slog.Any("err", err))
		}
	case platform.EventClose, platform.EventDestroy:
		Logger().Debug("stop requested", slog.String("event", ev.Type.String()))
		l.Stop()
	case platform.EventActivate:
		Logger().Debug("activate", slog.Bool("active", ev.Active))
	}
}

func (l *Loop) shutdown() {
	l.surface.Release()
	l.setState(Terminated)
}

func (l *Loop) setState(s State) {
	if l.state == s {
		return
	}
	Logger().Info("frame loop state", slog.String("from", l.state.String()), slog.String("to", s.String()))
	l.state = s
}
