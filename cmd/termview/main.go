// termview runs the flood simulation in the terminal. Each tile maps to one
// cell painted with the world palette; the bottom line shows live stats.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"tidelands/internal/core"
	"tidelands/internal/world"

	"github.com/gdamore/tcell/v2"
)

func main() {
	width := flag.Int("w", 80, "map width")
	height := flag.Int("h", 48, "map height")
	seed := flag.Int64("seed", 1007, "world seed")
	tps := flag.Int("tps", 30, "ticks per second")
	configFile := flag.String("config", "", "optional YAML world config")
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

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("screen init failed", "err", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		logger.Error("screen init failed", "err", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	styles := paletteStyles(w)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	timer := core.NewFixedStep(*tps)
	paused := false

	ticker := time.NewTicker(time.Second / 120)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
					return
				case ev.Rune() == ' ':
					paused = !paused
				case ev.Rune() == 'n':
					w.Step()
				case ev.Rune() == 'r':
					w.Reset(*seed)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			if !paused && timer.ShouldStep() {
				w.Step()
			}
			draw(screen, w, styles, paused)
		}
	}
}

func paletteStyles(w *world.World) []tcell.Style {
	palette := w.Palette()
	styles := make([]tcell.Style, len(palette))
	for i, c := range palette {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		styles[i] = tcell.StyleDefault.Background(bg)
	}
	return styles
}

func draw(screen tcell.Screen, w *world.World, styles []tcell.Style, paused bool) {
	size := w.Size()
	cells := w.Cells()
	sw, sh := screen.Size()

	maxY := size.H
	if maxY > sh-1 {
		maxY = sh - 1
	}
	maxX := size.W
	if maxX > sw {
		maxX = sw
	}
	for y := 0; y < maxY; y++ {
		for x := 0; x < maxX; x++ {
			screen.SetContent(x, y, ' ', nil, styles[cells[y*size.W+x]])
		}
	}

	st := w.Stats()
	status := fmt.Sprintf(" tick %d  sea %d  coast %d  land %d  flooded rail %d ",
		w.Tick(), st.Sea, st.Coast, st.Land, st.FloodedRail)
	if paused {
		status += "[paused] "
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for x := 0; x < sw; x++ {
		r := ' '
		if x < len(status) {
			r = rune(status[x])
		}
		screen.SetContent(x, sh-1, r, nil, style)
	}
	screen.Show()
}
