// mapshot renders the world map to a PNG after simulating a number of ticks.
package main

import (
	"flag"
	"log/slog"
	"os"

	"tidelands/internal/world"

	"github.com/fogleman/gg"
)

func main() {
	width := flag.Int("w", 128, "map width")
	height := flag.Int("h", 128, "map height")
	seed := flag.Int64("seed", 1007, "world seed")
	steps := flag.Int("steps", 256, "ticks to simulate before the shot")
	cell := flag.Int("cell", 6, "pixel size per tile")
	out := flag.String("out", "mapshot.png", "output PNG path")
	configFile := flag.String("config", "", "optional YAML world config")
	markDocking := flag.Bool("docking", true, "mark docking tiles")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := world.DefaultConfig()
	if *configFile != "" {
		loaded, err := world.LoadConfig(*configFile)
		if err != nil {
			logger.Error("config load failed", "err", err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg.Width = *width
		cfg.Height = *height
	}

	w := world.NewWithConfig(cfg)
	w.Reset(*seed)
	for i := 0; i < *steps; i++ {
		w.Step()
	}

	size := w.Size()
	cells := w.Cells()
	palette := w.Palette()

	dc := gg.NewContext(size.W**cell, size.H**cell)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := palette[cells[y*size.W+x]]
			dc.SetRGBA255(int(c.R), int(c.G), int(c.B), int(c.A))
			dc.DrawRectangle(float64(x**cell), float64(y**cell), float64(*cell), float64(*cell))
			dc.Fill()
		}
	}

	if *markDocking {
		dc.SetRGBA255(255, 220, 60, 255)
		for i, docked := range w.DockingCells() {
			if !docked {
				continue
			}
			x, y := i%size.W, i/size.W
			cx := float64(x**cell) + float64(*cell)/2
			cy := float64(y**cell) + float64(*cell)/2
			dc.DrawCircle(cx, cy, float64(*cell)/4)
			dc.Fill()
		}
	}

	if err := dc.SavePNG(*out); err != nil {
		logger.Error("write failed", "path", *out, "err", err)
		os.Exit(1)
	}

	st := w.Stats()
	logger.Info("shot written",
		"path", *out, "seed", *seed, "steps", *steps,
		"sea", st.Sea, "coast", st.Coast, "land", st.Land)
}
