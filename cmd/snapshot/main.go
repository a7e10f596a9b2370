// Command snapshot renders the viewer headless and writes the final frame
// as a PNG.
//
//	snapshot -ticks 30 -keys ArrowRight,w -out frame.png
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/1siamBot/wireview/engine/core"
	"github.com/1siamBot/wireview/engine/input"
	"github.com/1siamBot/wireview/engine/render"
	"github.com/1siamBot/wireview/engine/scene"
)

func main() {
	out := flag.String("out", "frame.png", "output PNG path")
	ticks := flag.Uint64("ticks", 1, "ticks to run before capturing")
	keys := flag.String("keys", "", "comma-separated keys held for every tick (w,a,s,d,Space,Shift,ArrowLeft,...)")
	scale := flag.Int("scale", 4, "integer upscale factor")
	flag.Parse()

	cfg := core.DefaultConfig()
	viewer, err := core.NewViewer(cfg, scene.Cuboid())
	if err != nil {
		log.Fatal(err)
	}
	w, h := cfg.CanvasSize()
	raster, err := render.NewRaster(w, h, cfg.Background)
	if err != nil {
		log.Fatal(err)
	}

	held := parseKeys(*keys)
	tick := viewer.TickFunc(func() input.Snapshot { return held }, raster)
	if err := (core.ImmediateDriver{Ticks: *ticks}).Run(context.Background(), tick); err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	if err := raster.WritePNG(f, *scale); err != nil {
		f.Close()
		log.Fatal(err)
	}
	if err := f.Close(); err != nil {
		log.Fatal(err)
	}

	s := viewer.State()
	log.Printf("Wrote %s after %d ticks: pos (%.3f, %.3f, %.3f) yaw %.0f pitch %.0f",
		*out, viewer.TickCount, s.X, s.Y, s.Z, s.RZ, s.RX)
}

// parseKeys accepts camera key names; "Space" stands for " " since a bare
// space is awkward on a command line.
func parseKeys(list string) input.KeyState {
	ks := input.NewKeyState()
	for _, k := range strings.Split(list, ",") {
		k = strings.TrimSpace(k)
		switch {
		case k == "":
			continue
		case strings.EqualFold(k, "space"):
			k = input.KeyAscend
		}
		ks.Press(k)
	}
	return ks
}
