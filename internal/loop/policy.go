package loop

import (
	"fmt"

	"jinogame/internal/input"
)

// Offsets is the animation state fed to the fill each frame.
type Offsets struct {
	X int
	Y int
}

// Policy advances the offsets once per tick. Implementations must be pure:
// the result depends only on the previous offsets and the snapshot.
type Policy interface {
	Advance(prev Offsets, in input.Snapshot) Offsets
}

type PolicyFunc func(prev Offsets, in input.Snapshot) Offsets

func (f PolicyFunc) Advance(prev Offsets, in input.Snapshot) Offsets { return f(prev, in) }

// FixedIncrement scrolls the pattern one pixel per frame along x.
var FixedIncrement = PolicyFunc(func(prev Offsets, _ input.Snapshot) Offsets {
	return Offsets{X: prev.X + 1, Y: prev.Y}
})

// DualIncrement scrolls diagonally, twice as fast along y.
var DualIncrement = PolicyFunc(func(prev Offsets, _ input.Snapshot) Offsets {
	return Offsets{X: prev.X + 1, Y: prev.Y + 2}
})

// stickStep scales a full 16-bit stick deflection down to +-8 px per frame.
// Division truncates toward zero, so readings within +-4095 of center are
// a dead zone on both sides.
const stickStep = 1 << 12

// StickDriven moves the pattern by the left stick. With the stick centered,
// arrow keys, WASD and the d-pad nudge it one pixel per frame instead.
var StickDriven = PolicyFunc(func(prev Offsets, in input.Snapshot) Offsets {
	pad := in.Gamepad
	dx := int(pad.StickX) / stickStep
	dy := int(pad.StickY) / stickStep
	if dx == 0 && dy == 0 {
		dx, dy = digitalDirection(in)
	}
	return Offsets{X: prev.X + dx, Y: prev.Y + dy}
})

func digitalDirection(in input.Snapshot) (int, int) {
	held := in.Held
	pad := in.Gamepad
	dx, dy := 0, 0
	if held.Has(input.KeyLeft) || held.Has(input.KeyA) || pad.Pressed(input.ButtonDPadLeft) {
		dx--
	}
	if held.Has(input.KeyRight) || held.Has(input.KeyD) || pad.Pressed(input.ButtonDPadRight) {
		dx++
	}
	if held.Has(input.KeyUp) || held.Has(input.KeyW) || pad.Pressed(input.ButtonDPadUp) {
		dy++
	}
	if held.Has(input.KeyDown) || held.Has(input.KeyS) || pad.Pressed(input.ButtonDPadDown) {
		dy--
	}
	return dx, dy
}

var policies = map[string]Policy{
	"fixed": FixedIncrement,
	"dual":  DualIncrement,
	"stick": StickDriven,
}

// PolicyByName resolves the names accepted on the command line.
func PolicyByName(name string) (Policy, error) {
	if p, ok := policies[name]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("unknown advance policy %q (want fixed, dual or stick)", name)
}
