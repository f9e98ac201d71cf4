//go:build !sdl

package main

import (
	"errors"

	"jinogame/internal/platform"
)

func sdlBackend() (platform.Platform, error) {
	return nil, errors.New("sdl backend not built; rebuild with -tags sdl")
}
