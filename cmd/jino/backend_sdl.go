//go:build sdl

package main

import (
	"jinogame/internal/platform"
	"jinogame/internal/platform/sdlhost"
)

func sdlBackend() (platform.Platform, error) {
	return sdlhost.New(), nil
}
