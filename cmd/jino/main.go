package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"jinogame/internal/app"
	"jinogame/internal/input"
	"jinogame/internal/loop"
	"jinogame/internal/platform"
	"jinogame/internal/platform/headless"
	"jinogame/internal/render"

	"github.com/pkg/profile"
	"github.com/sqweek/dialog"
	"golang.org/x/crypto/blake2b"
)

type options struct {
	backend string
	width   int
	height  int
	policy  string
	frames  int
	tps     int
	profile string
	verbose bool
}

func main() {
	var opts options
	flag.StringVar(&opts.backend, "backend", "ebiten", "host backend: ebiten, sdl or headless")
	flag.IntVar(&opts.width, "width", 1280, "initial window width in pixels")
	flag.IntVar(&opts.height, "height", 720, "initial window height in pixels")
	flag.StringVar(&opts.policy, "policy", "fixed", "offset advance policy: fixed, dual or stick")
	flag.IntVar(&opts.frames, "frames", 120, "headless only: ticks to run before closing")
	flag.IntVar(&opts.tps, "tps", 0, "ebiten only: ticks per second (0 default, -1 sync with display)")
	flag.StringVar(&opts.profile, "profile", "", "write a cpu or mem profile to the working directory")
	flag.BoolVar(&opts.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	loop.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "jino failed: %v\n", err)
		if opts.backend != "headless" {
			dialog.Message("%v", err).Title("Jino Game").Error()
		}
		os.Exit(1)
	}
}

func run(opts options) error {
	switch opts.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile kind %q", opts.profile)
	}

	policy, err := loop.PolicyByName(opts.policy)
	if err != nil {
		return err
	}
	winCfg := platform.DefaultWindowConfig()
	winCfg.WidthPx = opts.width
	winCfg.HeightPx = opts.height
	loopCfg := loop.DefaultConfig()
	loopCfg.Width = opts.width
	loopCfg.Height = opts.height
	loopCfg.Policy = policy

	switch opts.backend {
	case "ebiten":
		return app.New(winCfg, loopCfg, opts.tps).Run()
	case "headless":
		return runHeadless(winCfg, loopCfg, opts.frames)
	case "sdl":
		backend, err := sdlBackend()
		if err != nil {
			return err
		}
		return runPlatform(backend, winCfg, loopCfg)
	}
	return fmt.Errorf("unknown backend %q", opts.backend)
}

// runPlatform drives a Platform window until it closes or the process is
// interrupted.
func runPlatform(p platform.Platform, winCfg platform.WindowConfig, loopCfg loop.Config) error {
	win, err := p.CreateWindow(winCfg)
	if err != nil {
		return fmt.Errorf("create %s window: %w", p.Name(), err)
	}
	defer win.Close()

	src, _ := win.(input.Source)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return loop.New(win, src, loopCfg).Run(ctx)
}

// runHeadless ticks an offscreen window for the given number of frames and
// prints the digest of the last presented surface. The close is queued
// before the final frame; that frame still presents and the tick after it
// tears the loop down.
func runHeadless(winCfg platform.WindowConfig, loopCfg loop.Config, frames int) error {
	if frames <= 0 {
		return errors.New("headless mode needs -frames > 0")
	}
	win := headless.NewWindow(winCfg)
	l := loop.New(win, win, loopCfg)
	sum, err := tickHeadless(l, win, frames)
	if err != nil {
		return err
	}
	w, h := win.SizePx()
	off := l.Offsets()
	fmt.Printf("frames=%d target=%dx%d offset=%d,%d presented=%d digest=%x\n",
		l.Ticks(), w, h, off.X, off.Y, l.Presenter().Presented(), sum)
	return nil
}

// tickHeadless runs frames ticks with the close landing on the last one,
// digests the final surface, then finishes the loop.
func tickHeadless(l *loop.Loop, win *headless.Window, frames int) ([blake2b.Size256]byte, error) {
	var sum [blake2b.Size256]byte
	for i := 0; i < frames; i++ {
		if i == frames-1 {
			win.Close()
		}
		if err := l.Tick(); err != nil {
			return sum, err
		}
	}
	sum = render.Digest(l.Surface())
	if err := l.Run(context.Background()); err != nil {
		return sum, err
	}
	return sum, nil
}
