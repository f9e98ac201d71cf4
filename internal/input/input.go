package input

// Key identifies the keyboard keys the frame loop and its hosts care about.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEscape
	KeyF1
	KeyW
	KeyA
	KeyS
	KeyD
)

var keyNames = [...]string{
	KeyUnknown: "unknown",
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyEscape:  "escape",
	KeyF1:      "f1",
	KeyW:       "w",
	KeyA:       "a",
	KeyS:       "s",
	KeyD:       "d",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "unknown"
}

// KeySet is a fixed-size set of keys.
type KeySet uint32

func (s KeySet) Has(k Key) bool { return s&(1<<k) != 0 }

func (s KeySet) With(k Key) KeySet { return s | 1<<k }

func (s KeySet) Without(k Key) KeySet { return s &^ (1 << k) }

func (s KeySet) Empty() bool { return s == 0 }

// Button identifies a gamepad button in the standard layout.
type Button uint8

const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonBack
	ButtonStart
	ButtonLeftShoulder
	ButtonRightShoulder
	ButtonDPadUp
	ButtonDPadDown
	ButtonDPadLeft
	ButtonDPadRight
)

// Gamepad holds raw axis and button values of the first connected pad.
// Stick axes use the signed 16-bit range with up and right positive.
type Gamepad struct {
	Connected bool
	StickX    int16
	StickY    int16
	Buttons   uint16
}

func (g Gamepad) Pressed(b Button) bool { return g.Buttons&(1<<b) != 0 }

func (g *Gamepad) Press(b Button) { g.Buttons |= 1 << b }

// Snapshot is the input state for one frame. WentDown and WentUp hold the
// key transitions since the previous snapshot; Held holds keys that are
// down right now.
type Snapshot struct {
	WentDown KeySet
	WentUp   KeySet
	Held     KeySet
	Gamepad  Gamepad
}

// Source provides one Snapshot per frame. Available reports whether the
// host can deliver input at all.
type Source interface {
	Available() bool
	Sample() Snapshot
}

// Unavailable is the Source for hosts without input devices. It always
// yields a neutral snapshot.
type Unavailable struct{}

func (Unavailable) Available() bool  { return false }
func (Unavailable) Sample() Snapshot { return Snapshot{} }

// Sample reads src once, substituting a neutral snapshot when src is nil
// or reports itself unavailable.
func Sample(src Source) Snapshot {
	if src == nil || !src.Available() {
		return Snapshot{}
	}
	return src.Sample()
}

// AxisFromUnit maps a [-1, 1] axis value onto the signed 16-bit range.
func AxisFromUnit(v float64) int16 {
	switch {
	case v >= 1:
		return 32767
	case v <= -1:
		return -32768
	case v >= 0:
		return int16(v * 32767)
	default:
		return int16(v * 32768)
	}
}

// InvertAxis flips an axis direction without overflowing on -32768.
func InvertAxis(v int16) int16 {
	if v == -32768 {
		return 32767
	}
	return -v
}

// Tracker turns raw key-down/key-up reports into Snapshot edges. Hosts that
// receive discrete key events feed them in and call Snapshot once per frame.
type Tracker struct {
	held     KeySet
	wentDown KeySet
	wentUp   KeySet
}

func (t *Tracker) Press(k Key) {
	if k == KeyUnknown || t.held.Has(k) {
		return
	}
	t.held = t.held.With(k)
	t.wentDown = t.wentDown.With(k)
}

func (t *Tracker) Release(k Key) {
	if k == KeyUnknown || !t.held.Has(k) {
		return
	}
	t.held = t.held.Without(k)
	t.wentUp = t.wentUp.With(k)
}

// Snapshot returns the current key state and clears the edge sets.
func (t *Tracker) Snapshot() Snapshot {
	s := Snapshot{WentDown: t.wentDown, WentUp: t.wentUp, Held: t.held}
	t.wentDown = 0
	t.wentUp = 0
	return s
}
