package world

import (
	"image/color"

	"tidelands/internal/tile"
	"tidelands/internal/tilecmd"
)

var worldPalette = buildWorldPalette()

// Palette exposes the color palette used for rendering the world.
func (w *World) Palette() []color.RGBA {
	return worldPalette
}

func buildWorldPalette() []color.RGBA {
	palette := make([]color.RGBA, tilecmd.NumCells)
	palette[tilecmd.CellVoid] = color.RGBA{R: 10, G: 10, B: 14, A: 255}
	palette[tilecmd.CellGrass] = color.RGBA{R: 88, G: 150, B: 76, A: 255}
	palette[tilecmd.CellRough] = color.RGBA{R: 120, G: 140, B: 90, A: 255}
	palette[tilecmd.CellRocks] = color.RGBA{R: 135, G: 135, B: 135, A: 255}
	palette[tilecmd.CellFields] = color.RGBA{R: 190, G: 170, B: 80, A: 255}
	palette[tilecmd.CellTrees] = color.RGBA{R: 42, G: 105, B: 58, A: 255}
	palette[tilecmd.CellShoreTrees] = color.RGBA{R: 70, G: 115, B: 95, A: 255}
	palette[tilecmd.CellRail] = color.RGBA{R: 110, G: 95, B: 80, A: 255}
	palette[tilecmd.CellRailFlooded] = color.RGBA{R: 80, G: 105, B: 130, A: 255}
	palette[tilecmd.CellSea] = color.RGBA{R: 30, G: 80, B: 160, A: 255}
	palette[tilecmd.CellCoast] = color.RGBA{R: 150, G: 160, B: 120, A: 255}
	palette[tilecmd.CellCanal] = color.RGBA{R: 50, G: 110, B: 170, A: 255}
	palette[tilecmd.CellRiver] = color.RGBA{R: 60, G: 130, B: 190, A: 255}
	palette[tilecmd.CellLock] = color.RGBA{R: 160, G: 150, B: 130, A: 255}
	palette[tilecmd.CellDepot] = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	palette[tilecmd.CellStation] = color.RGBA{R: 200, G: 200, B: 90, A: 255}
	palette[tilecmd.CellIndustry] = color.RGBA{R: 170, G: 110, B: 60, A: 255}
	palette[tilecmd.CellObject] = color.RGBA{R: 180, G: 180, B: 180, A: 255}
	return palette
}

func (w *World) rebuildDisplay() {
	cells := w.display.Cells()
	for i := range cells {
		cells[i] = tilecmd.DrawTile(w.state, tile.Index(i))
	}
}
