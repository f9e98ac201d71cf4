package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"jinogame/internal/input"
	"jinogame/internal/loop"
	"jinogame/internal/platform"
	"jinogame/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// statusTicks is how long a status message stays on the HUD.
const statusTicks = 180

// App hosts the frame loop inside ebiten's game loop. Each Update runs one
// loop tick; Draw puts the presented frame and the HUD on screen.
type App struct {
	cfg   platform.WindowConfig
	tps   int
	theme ui.Theme
	fonts fontBank

	win     *window
	devices *devices
	loop    *loop.Loop

	hudScales   []float32
	hudScaleIdx int
	showHUD     bool
	status      string
	statusAge   int

	clipOnce sync.Once
	clipErr  error
}

// New builds the host. tps caps Update calls per second; zero keeps
// ebiten's default and a negative value syncs with the display.
func New(cfg platform.WindowConfig, loopCfg loop.Config, tps int) *App {
	win := &window{}
	dev := &devices{}
	return &App{
		cfg:       cfg,
		tps:       tps,
		theme:     ui.DefaultTheme(),
		fonts:     newFontBank(),
		win:       win,
		devices:   dev,
		loop:      loop.New(win, dev, loopCfg),
		hudScales: []float32{1.0, 1.25, 1.5, 2.0},
		showHUD:   true,
	}
}

func (a *App) Run() error {
	ebiten.SetWindowTitle(a.cfg.Title)
	ebiten.SetWindowSize(a.cfg.WidthPx, a.cfg.HeightPx)
	if a.cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSizeLimits(a.cfg.MinWidthPx, a.cfg.MinHeightPx, -1, -1)
	ebiten.SetWindowClosingHandled(true)
	switch {
	case a.tps < 0:
		ebiten.SetTPS(ebiten.SyncWithFPS)
	case a.tps > 0:
		ebiten.SetTPS(a.tps)
	}
	loop.Logger().Info("ebiten host starting", slog.String("title", a.cfg.Title),
		slog.Int("width", a.cfg.WidthPx), slog.Int("height", a.cfg.HeightPx))
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	a.win.poll()
	a.devices.capture()
	a.applySnapshot(a.devices.Sample())
	a.handleShortcuts()
	a.ageStatus()

	err := a.loop.Tick()
	if errors.Is(err, loop.ErrTerminated) || a.loop.State() == loop.Terminated {
		a.win.release()
		return ebiten.Termination
	}
	return err
}

// applySnapshot handles the host-level keys carried in the frame's input.
func (a *App) applySnapshot(s input.Snapshot) {
	if s.WentDown.Has(input.KeyF1) {
		a.showHUD = !a.showHUD
	}
}

func (a *App) handleShortcuts() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if shift {
			a.copyStatus()
		} else {
			a.copyFrame()
		}
	}
	if ctrl && (inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd)) {
		a.bumpHUDScale(1)
	}
	if ctrl && (inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract)) {
		a.bumpHUDScale(-1)
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	a.win.draw(screen)
	if a.showHUD {
		a.drawHUD(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	a.win.layout(outsideWidth, outsideHeight)
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}

func (a *App) stats() ui.HUDStats {
	sw, sh := a.loop.Surface().Dimensions()
	tw, th := a.win.SizePx()
	p := a.loop.Presenter()
	return ui.HUDStats{
		Offsets:       a.loop.Offsets(),
		SurfaceW:      sw,
		SurfaceH:      sh,
		TargetW:       tw,
		TargetH:       th,
		TPS:           ebiten.ActualTPS(),
		Presented:     p.Presented(),
		Skipped:       p.Skipped(),
		GamepadActive: a.loop.LastInput().Gamepad.Connected,
		Status:        a.status,
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	scale := a.hudScales[a.hudScaleIdx]
	lines := ui.HUDLines(a.stats())
	layout := ui.ComputeHUD(screen.Bounds().Dx(), screen.Bounds().Dy(), len(lines), a.theme, scale)
	if !layout.Visible {
		return
	}

	vector.DrawFilledRect(screen, float32(layout.X), float32(layout.Y), float32(layout.W), float32(layout.H), a.theme.HUDBackground, false)
	accentW := float32(2 * scale)
	vector.DrawFilledRect(screen, float32(layout.X), float32(layout.Y), accentW, float32(layout.H), a.theme.HUDAccent, false)

	face := a.fonts.face(int(11 * scale))
	for i, line := range lines {
		clr := a.theme.HUDText
		if a.status != "" && i == len(lines)-1 {
			clr = a.theme.HUDWarning
		}
		baseline := layout.TextY + (i+1)*layout.LineH - layout.LineH/4
		text.Draw(screen, line, face, layout.TextX, baseline, clr)
	}
}

func (a *App) bumpHUDScale(delta int) {
	if len(a.hudScales) == 0 {
		return
	}
	idx := a.hudScaleIdx + delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(a.hudScales) {
		idx = len(a.hudScales) - 1
	}
	a.hudScaleIdx = idx
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusAge = 0
}

func (a *App) ageStatus() {
	if a.status == "" {
		return
	}
	a.statusAge++
	if a.statusAge > statusTicks {
		a.status = ""
	}
}
