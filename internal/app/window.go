package app

import (
	"jinogame/internal/platform"
	"jinogame/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// window adapts ebiten's single window to platform.Window. Blit uploads the
// surface into an offscreen image during Update; draw stretches that image
// onto the screen during Draw.
type window struct {
	w       int
	h       int
	events  []platform.Event
	focused bool
	closing bool

	canvas   *ebiten.Image
	staging  []byte
	srcW     int
	srcH     int
	dstW     int
	dstH     int
	drawOpts ebiten.DrawImageOptions
}

// layout records the outside size ebiten reports and queues a resize
// whenever it changes.
func (w *window) layout(outsideWidth, outsideHeight int) {
	if outsideWidth == w.w && outsideHeight == w.h {
		return
	}
	w.w = outsideWidth
	w.h = outsideHeight
	w.events = append(w.events, platform.Event{Type: platform.EventResize, Width: outsideWidth, Height: outsideHeight})
}

// poll turns ebiten's window state into close and activate events.
func (w *window) poll() {
	if ebiten.IsWindowBeingClosed() && !w.closing {
		w.Close()
	}
	if focused := ebiten.IsFocused(); focused != w.focused {
		w.focused = focused
		w.events = append(w.events, platform.Event{Type: platform.EventActivate, Active: focused})
	}
}

func (w *window) PollEvents() []platform.Event {
	out := w.events
	w.events = nil
	return out
}

func (w *window) SizePx() (int, int) { return w.w, w.h }

func (w *window) Close() {
	if w.closing {
		return
	}
	w.closing = true
	w.events = append(w.events, platform.Event{Type: platform.EventClose})
}

func (w *window) Blit(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error {
	w.staging = render.ConvertRGBA(w.staging, src, srcWidth, srcHeight, srcStride)
	if w.canvas == nil || w.srcW != srcWidth || w.srcH != srcHeight {
		if w.canvas != nil {
			w.canvas.Deallocate()
		}
		w.canvas = ebiten.NewImage(srcWidth, srcHeight)
	}
	w.canvas.WritePixels(w.staging)
	w.srcW = srcWidth
	w.srcH = srcHeight
	w.dstW = dstWidth
	w.dstH = dstHeight
	return nil
}

func (w *window) draw(screen *ebiten.Image) {
	if w.canvas == nil || w.dstW <= 0 || w.dstH <= 0 {
		return
	}
	w.drawOpts = ebiten.DrawImageOptions{}
	w.drawOpts.GeoM.Scale(float64(w.dstW)/float64(w.srcW), float64(w.dstH)/float64(w.srcH))
	w.drawOpts.Filter = ebiten.FilterNearest
	screen.DrawImage(w.canvas, &w.drawOpts)
}

func (w *window) release() {
	if w.canvas != nil {
		w.canvas.Deallocate()
		w.canvas = nil
	}
	w.staging = nil
}
