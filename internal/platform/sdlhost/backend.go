//go:build sdl

package sdlhost

import (
	"fmt"
	"unsafe"

	"jinogame/internal/input"
	"jinogame/internal/platform"

	"github.com/veandco/go-sdl2/sdl"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "sdl" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER); err != nil {
		return nil, fmt.Errorf("init sdl: %w", err)
	}
	sdl.SetHint(sdl.HINT_RENDER_SCALE_QUALITY, "nearest")

	flags := uint32(sdl.WINDOW_SHOWN)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	win, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.WidthPx), int32(cfg.HeightPx), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.SetMinimumSize(int32(cfg.MinWidthPx), int32(cfg.MinHeightPx))

	renderer, err := sdl.CreateRenderer(win, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	w := &window{win: win, renderer: renderer}
	w.openFirstController()
	w.resized(int32(cfg.WidthPx), int32(cfg.HeightPx))
	return w, nil
}

// window drives an SDL window. The surface layout matches
// SDL_PIXELFORMAT_ARGB8888, so frames upload into a streaming texture
// without conversion and SDL_RenderCopy does the stretch.
type window struct {
	win        *sdl.Window
	renderer   *sdl.Renderer
	texture    *sdl.Texture
	texW       int
	texH       int
	controller *sdl.GameController
	keys       input.Tracker
	events     []platform.Event
	closed     bool
}

func (w *window) resized(width, height int32) {
	w.events = append(w.events, platform.Event{Type: platform.EventResize, Width: int(width), Height: int(height)})
}

func (w *window) PollEvents() []platform.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			w.events = append(w.events, platform.Event{Type: platform.EventClose})
		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				w.resized(e.Data1, e.Data2)
			case sdl.WINDOWEVENT_CLOSE:
				w.events = append(w.events, platform.Event{Type: platform.EventClose})
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				w.events = append(w.events, platform.Event{Type: platform.EventActivate, Active: true})
			case sdl.WINDOWEVENT_FOCUS_LOST:
				w.events = append(w.events, platform.Event{Type: platform.EventActivate, Active: false})
			}
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			key := keyFor(e.Keysym.Sym)
			if e.Type == sdl.KEYDOWN {
				w.keys.Press(key)
			} else {
				w.keys.Release(key)
			}
		case *sdl.ControllerDeviceEvent:
			switch e.Type {
			case sdl.CONTROLLERDEVICEADDED:
				if w.controller == nil {
					w.controller = sdl.GameControllerOpen(int(e.Which))
				}
			case sdl.CONTROLLERDEVICEREMOVED:
				if w.controller != nil && !w.controller.Attached() {
					w.controller.Close()
					w.controller = nil
					w.openFirstController()
				}
			}
		}
	}
	out := w.events
	w.events = nil
	return out
}

func (w *window) SizePx() (int, int) {
	width, height, err := w.renderer.GetOutputSize()
	if err != nil {
		return 0, 0
	}
	return int(width), int(height)
}

func (w *window) Blit(src []uint32, srcWidth, srcHeight, srcStride, dstWidth, dstHeight int) error {
	if w.texture == nil || w.texW != srcWidth || w.texH != srcHeight {
		if w.texture != nil {
			w.texture.Destroy()
			w.texture = nil
		}
		tex, err := w.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888), sdl.TEXTUREACCESS_STREAMING,
			int32(srcWidth), int32(srcHeight))
		if err != nil {
			return fmt.Errorf("create texture: %w", err)
		}
		w.texture = tex
		w.texW = srcWidth
		w.texH = srcHeight
	}
	if err := w.texture.Update(nil, unsafe.Pointer(&src[0]), srcStride); err != nil {
		return fmt.Errorf("update texture: %w", err)
	}
	dst := sdl.Rect{X: 0, Y: 0, W: int32(dstWidth), H: int32(dstHeight)}
	if err := w.renderer.Copy(w.texture, nil, &dst); err != nil {
		return fmt.Errorf("copy texture: %w", err)
	}
	w.renderer.Present()
	return nil
}

func (w *window) Available() bool { return true }

func (w *window) Sample() input.Snapshot {
	s := w.keys.Snapshot()
	s.Gamepad = w.gamepad()
	return s
}

func (w *window) gamepad() input.Gamepad {
	c := w.controller
	if c == nil {
		return input.Gamepad{}
	}
	g := input.Gamepad{
		Connected: true,
		StickX:    c.Axis(sdl.CONTROLLER_AXIS_LEFTX),
		// SDL reports down as positive
		StickY: input.InvertAxis(c.Axis(sdl.CONTROLLER_AXIS_LEFTY)),
	}
	for _, m := range buttonMap {
		if c.Button(m.button) != 0 {
			g.Press(m.id)
		}
	}
	return g
}

func (w *window) openFirstController() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		if sdl.IsGameController(i) {
			if c := sdl.GameControllerOpen(i); c != nil {
				w.controller = c
				return
			}
		}
	}
}

func (w *window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	if w.controller != nil {
		w.controller.Close()
	}
	if w.texture != nil {
		w.texture.Destroy()
	}
	w.renderer.Destroy()
	w.win.Destroy()
	sdl.Quit()
}

var buttonMap = []struct {
	button sdl.GameControllerButton
	id     input.Button
}{
	{sdl.CONTROLLER_BUTTON_A, input.ButtonA},
	{sdl.CONTROLLER_BUTTON_B, input.ButtonB},
	{sdl.CONTROLLER_BUTTON_X, input.ButtonX},
	{sdl.CONTROLLER_BUTTON_Y, input.ButtonY},
	{sdl.CONTROLLER_BUTTON_BACK, input.ButtonBack},
	{sdl.CONTROLLER_BUTTON_START, input.ButtonStart},
	{sdl.CONTROLLER_BUTTON_LEFTSHOULDER, input.ButtonLeftShoulder},
	{sdl.CONTROLLER_BUTTON_RIGHTSHOULDER, input.ButtonRightShoulder},
	{sdl.CONTROLLER_BUTTON_DPAD_UP, input.ButtonDPadUp},
	{sdl.CONTROLLER_BUTTON_DPAD_DOWN, input.ButtonDPadDown},
	{sdl.CONTROLLER_BUTTON_DPAD_LEFT, input.ButtonDPadLeft},
	{sdl.CONTROLLER_BUTTON_DPAD_RIGHT, input.ButtonDPadRight},
}

func keyFor(sym sdl.Keycode) input.Key {
	switch sym {
	case sdl.K_UP:
		return input.KeyUp
	case sdl.K_DOWN:
		return input.KeyDown
	case sdl.K_LEFT:
		return input.KeyLeft
	case sdl.K_RIGHT:
		return input.KeyRight
	case sdl.K_ESCAPE:
		return input.KeyEscape
	case sdl.K_F1:
		return input.KeyF1
	case sdl.K_w:
		return input.KeyW
	case sdl.K_a:
		return input.KeyA
	case sdl.K_s:
		return input.KeyS
	case sdl.K_d:
		return input.KeyD
	}
	return input.KeyUnknown
}
