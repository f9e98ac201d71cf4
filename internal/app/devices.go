package app

import (
	"jinogame/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = []struct {
	key ebiten.Key
	id  input.Key
}{
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyEscape, input.KeyEscape},
	{ebiten.KeyF1, input.KeyF1},
	{ebiten.KeyW, input.KeyW},
	{ebiten.KeyA, input.KeyA},
	{ebiten.KeyS, input.KeyS},
	{ebiten.KeyD, input.KeyD},
}

var buttonMap = []struct {
	button ebiten.StandardGamepadButton
	id     input.Button
}{
	{ebiten.StandardGamepadButtonRightBottom, input.ButtonA},
	{ebiten.StandardGamepadButtonRightRight, input.ButtonB},
	{ebiten.StandardGamepadButtonRightLeft, input.ButtonX},
	{ebiten.StandardGamepadButtonRightTop, input.ButtonY},
	{ebiten.StandardGamepadButtonCenterLeft, input.ButtonBack},
	{ebiten.StandardGamepadButtonCenterRight, input.ButtonStart},
	{ebiten.StandardGamepadButtonFrontTopLeft, input.ButtonLeftShoulder},
	{ebiten.StandardGamepadButtonFrontTopRight, input.ButtonRightShoulder},
	{ebiten.StandardGamepadButtonLeftTop, input.ButtonDPadUp},
	{ebiten.StandardGamepadButtonLeftBottom, input.ButtonDPadDown},
	{ebiten.StandardGamepadButtonLeftLeft, input.ButtonDPadLeft},
	{ebiten.StandardGamepadButtonLeftRight, input.ButtonDPadRight},
}

// devices samples ebiten's keyboard and the first standard-layout gamepad.
// capture runs once per Update; Sample hands the result to the frame loop.
type devices struct {
	snap       input.Snapshot
	gamepadIDs []ebiten.GamepadID
}

func (d *devices) Available() bool        { return true }
func (d *devices) Sample() input.Snapshot { return d.snap }

func (d *devices) capture() {
	var s input.Snapshot
	for _, m := range keyMap {
		if inpututil.IsKeyJustPressed(m.key) {
			s.WentDown = s.WentDown.With(m.id)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			s.WentUp = s.WentUp.With(m.id)
		}
		if ebiten.IsKeyPressed(m.key) {
			s.Held = s.Held.With(m.id)
		}
	}
	s.Gamepad = d.gamepad()
	d.snap = s
}

func (d *devices) gamepad() input.Gamepad {
	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])
	for _, id := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		g := input.Gamepad{Connected: true}
		g.StickX = input.AxisFromUnit(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal))
		// ebiten reports down as positive
		g.StickY = input.InvertAxis(input.AxisFromUnit(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)))
		for _, m := range buttonMap {
			if ebiten.IsStandardGamepadButtonPressed(id, m.button) {
				g.Press(m.id)
			}
		}
		return g
	}
	return input.Gamepad{}
}
