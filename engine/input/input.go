// Package input describes the pressed-key table the camera reads each tick.
// Key names follow DOM KeyboardEvent.key values.
package input

// Key names understood by the camera.
const (
	KeyForward   = "w"
	KeyLeft      = "a"
	KeyBack      = "s"
	KeyRight     = "d"
	KeyAscend    = " "
	KeyDescend   = "Shift"
	KeyYawLeft   = "ArrowLeft"
	KeyYawRight  = "ArrowRight"
	KeyPitchUp   = "ArrowUp"
	KeyPitchDown = "ArrowDown"
)

// Keys lists every name the camera reacts to.
var Keys = []string{
	KeyForward, KeyLeft, KeyBack, KeyRight,
	KeyAscend, KeyDescend,
	KeyYawLeft, KeyYawRight, KeyPitchUp, KeyPitchDown,
}

// Snapshot reports whether a key is held down.
type Snapshot interface {
	IsPressed(key string) bool
}

// KeyState is a Snapshot backed by a map. Missing keys read as released.
type KeyState map[string]bool

func NewKeyState(pressed ...string) KeyState {
	ks := make(KeyState, len(pressed))
	for _, k := range pressed {
		ks[k] = true
	}
	return ks
}

func (ks KeyState) IsPressed(key string) bool { return ks[key] }

func (ks KeyState) Press(key string)   { ks[key] = true }
func (ks KeyState) Release(key string) { ks[key] = false }

// Clone returns an independent copy, so a tick can work on a frozen view
// while the event source keeps writing to the original.
func (ks KeyState) Clone() KeyState {
	c := make(KeyState, len(ks))
	for k, v := range ks {
		c[k] = v
	}
	return c
}
