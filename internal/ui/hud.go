package ui

import (
	"fmt"

	"jinogame/internal/loop"
)

type HUDLayout struct {
	X       int
	Y       int
	W       int
	H       int
	TextX   int
	TextY   int
	LineH   int
	Visible bool
}

// ComputeHUD places the overlay panel in the top-left corner of a w x h
// screen. The panel is hidden when the screen is too small to hold it.
func ComputeHUD(w, h, lines int, theme Theme, scale float32) HUDLayout {
	if scale <= 0 {
		scale = 1
	}

	dp := func(v int) int { return int(float32(v) * scale) }

	margin := dp(theme.HUDMarginDp)
	pad := dp(theme.HUDPaddingDp)
	lineH := dp(theme.HUDLineHeightDp)
	if lineH < 1 {
		lineH = 1
	}

	panelW := dp(theme.HUDWidthDp)
	if maxW := w - margin*2; panelW > maxW {
		panelW = maxW
	}
	panelH := pad*2 + lineH*lines

	layout := HUDLayout{
		X:     margin,
		Y:     margin,
		W:     panelW,
		H:     panelH,
		TextX: margin + pad,
		TextY: margin + pad,
		LineH: lineH,
	}
	layout.Visible = lines > 0 && panelW > pad*2 && margin+panelH <= h
	return layout
}

// HUDStats is what the overlay reports for one frame.
type HUDStats struct {
	Offsets       loop.Offsets
	SurfaceW      int
	SurfaceH      int
	TargetW       int
	TargetH       int
	TPS           float64
	Presented     uint64
	Skipped       uint64
	GamepadActive bool
	Status        string
}

// HUDLines renders the stats as overlay text, one entry per line.
func HUDLines(s HUDStats) []string {
	lines := []string{
		fmt.Sprintf("offset  x=%d y=%d", s.Offsets.X, s.Offsets.Y),
		fmt.Sprintf("surface %dx%d -> %dx%d", s.SurfaceW, s.SurfaceH, s.TargetW, s.TargetH),
		fmt.Sprintf("tps %.1f  frames %d  skipped %d", s.TPS, s.Presented, s.Skipped),
	}
	if s.GamepadActive {
		lines = append(lines, "gamepad connected")
	}
	if s.Status != "" {
		lines = append(lines, s.Status)
	}
	return lines
}

// StatusLine is the one-line summary copied to the clipboard.
func StatusLine(s HUDStats) string {
	return fmt.Sprintf("x=%d y=%d surface=%dx%d target=%dx%d",
		s.Offsets.X, s.Offsets.Y, s.SurfaceW, s.SurfaceH, s.TargetW, s.TargetH)
}
