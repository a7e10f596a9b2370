// Package keyboard feeds an input.KeyState from ebiten's keyboard state.
package keyboard

import (
	"log"

	"github.com/1siamBot/wireview/engine/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings maps each camera key name to the physical key that drives it.
var Bindings = map[string]ebiten.Key{
	input.KeyForward:   ebiten.KeyW,
	input.KeyLeft:      ebiten.KeyA,
	input.KeyBack:      ebiten.KeyS,
	input.KeyRight:     ebiten.KeyD,
	input.KeyAscend:    ebiten.KeySpace,
	input.KeyDescend:   ebiten.KeyShift,
	input.KeyYawLeft:   ebiten.KeyArrowLeft,
	input.KeyYawRight:  ebiten.KeyArrowRight,
	input.KeyPitchUp:   ebiten.KeyArrowUp,
	input.KeyPitchDown: ebiten.KeyArrowDown,
}

// Poller tracks keyboard state per frame
type Poller struct {
	Keys input.KeyState

	// LogKeys echoes every newly pressed key name.
	LogKeys bool
}

func NewPoller(logKeys bool) *Poller {
	return &Poller{
		Keys:    make(input.KeyState, len(Bindings)),
		LogKeys: logKeys,
	}
}

// Update should be called once per frame, before Snapshot
func (p *Poller) Update() {
	for name, k := range Bindings {
		if p.LogKeys && inpututil.IsKeyJustPressed(k) {
			log.Printf("key down: %q", name)
		}
		p.Keys[name] = ebiten.IsKeyPressed(k)
	}
}

// Snapshot returns a copy of the current key table.
func (p *Poller) Snapshot() input.KeyState {
	return p.Keys.Clone()
}
