package app

import (
	"bytes"
	"log/slog"

	"jinogame/internal/loop"
	"jinogame/internal/render"
	"jinogame/internal/ui"

	"github.com/atotto/clipboard"
	imgclip "golang.design/x/clipboard"
)

// copyFrame puts the last filled surface on the clipboard as a PNG.
func (a *App) copyFrame() {
	a.clipOnce.Do(func() { a.clipErr = imgclip.Init() })
	if a.clipErr != nil {
		a.setStatus("Copy frame failed: " + a.clipErr.Error())
		return
	}
	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, a.loop.Surface()); err != nil {
		a.setStatus("Copy frame failed: " + err.Error())
		return
	}
	imgclip.Write(imgclip.FmtImage, buf.Bytes())
	w, h := a.loop.Surface().Dimensions()
	loop.Logger().Debug("frame copied", slog.Int("width", w), slog.Int("height", h), slog.Int("bytes", buf.Len()))
	a.setStatus("Frame copied")
}

// copyStatus puts the HUD summary line on the clipboard as text.
func (a *App) copyStatus() {
	if err := clipboard.WriteAll(ui.StatusLine(a.stats())); err != nil {
		a.setStatus("Copy status failed: " + err.Error())
		return
	}
	a.setStatus("Status copied")
}
