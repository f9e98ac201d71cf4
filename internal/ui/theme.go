package ui

import "image/color"

type Theme struct {
	HUDBackground   color.RGBA
	HUDText         color.RGBA
	HUDAccent       color.RGBA
	HUDWarning      color.RGBA
	HUDMarginDp     int
	HUDPaddingDp    int
	HUDLineHeightDp int
	HUDWidthDp      int
}

func DefaultTheme() Theme {
	return Theme{
		HUDBackground:   color.RGBA{0x10, 0x14, 0x1C, 0xC0},
		HUDText:         color.RGBA{0xE2, 0xE7, 0xEF, 0xFF},
		HUDAccent:       color.RGBA{0x5B, 0x9B, 0xE6, 0xFF},
		HUDWarning:      color.RGBA{0xE6, 0x7E, 0x22, 0xFF},
		HUDMarginDp:     8,
		HUDPaddingDp:    6,
		HUDLineHeightDp: 14,
		HUDWidthDp:      260,
	}
}
