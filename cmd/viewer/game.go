package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/1siamBot/wireview/engine/core"
	"github.com/1siamBot/wireview/engine/render/canvas"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game implements ebiten.Game interface. Each Update is one viewer tick;
// Draw only presents the canvas the tick painted.
type Game struct {
	ctx    context.Context
	tick   core.TickFunc
	viewer *core.Viewer
	canvas *canvas.Canvas

	showHUD bool
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	// Toggle HUD
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if err := g.tick(); err != nil {
		if errors.Is(err, core.ErrStop) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})
	g.canvas.DrawTo(screen)

	if g.showHUD {
		s := g.viewer.State()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"Tick: %d | TPS: %.0f\n"+
				"Pos: (%.2f, %.2f, %.2f) Yaw: %.0f Pitch: %.0f\n"+
				"[WASD] Move [Space/Shift] Up/Down [Arrows] Look [H] HUD",
			g.viewer.TickCount, ebiten.ActualTPS(),
			s.X, s.Y, s.Z, s.RZ, s.RX,
		))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// ebitenDriver is a core.Driver that lets ebiten's fixed-rate Update
// schedule the ticks.
type ebitenDriver struct {
	game *Game
	tps  int
}

func (d *ebitenDriver) Run(ctx context.Context, tick core.TickFunc) error {
	d.game.ctx = ctx
	d.game.tick = tick
	ebiten.SetTPS(d.tps)
	return ebiten.RunGame(d.game)
}
