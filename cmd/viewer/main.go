package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/1siamBot/wireview/engine/core"
	"github.com/1siamBot/wireview/engine/input"
	"github.com/1siamBot/wireview/engine/input/keyboard"
	"github.com/1siamBot/wireview/engine/render/canvas"
	"github.com/1siamBot/wireview/engine/scene"
	"github.com/hajimehoshi/ebiten/v2"
)

const windowScale = 4

func main() {
	cfg := core.DefaultConfig()

	viewer, err := core.NewViewer(cfg, scene.Cuboid())
	if err != nil {
		log.Fatal(err)
	}
	w, h := cfg.CanvasSize()
	cv, err := canvas.New(w, h, cfg.Background)
	if err != nil {
		log.Fatal(err)
	}
	kb := keyboard.NewPoller(cfg.LogKeys)

	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle("wireview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	game := &Game{viewer: viewer, canvas: cv, showHUD: true}
	tick := viewer.TickFunc(func() input.Snapshot {
		kb.Update()
		return kb.Snapshot()
	}, cv)

	var driver core.Driver = &ebitenDriver{game: game, tps: cfg.TPS()}
	if err := driver.Run(ctx, tick); err != nil {
		log.Fatal(err)
	}
}
