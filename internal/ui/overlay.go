//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"tidelands/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type behaviourProvider interface {
	BehaviourCells() []uint8
}

type elevationFieldProvider interface {
	ElevationField() []int16
}

type dockingProvider interface {
	DockingCells() []bool
}

// Overlay draws optional debugging visuals on top of the base simulation:
// the flood behaviour classification, the corner height field and the
// docking tile markers.
type Overlay struct {
	sim   core.Sim
	scale int

	showBehaviour bool
	showElev      bool
	showDocking   bool

	maskImg *ebiten.Image
	maskBuf []byte

	elevationImg *ebiten.Image
	elevationBuf []byte

	scratch []float32
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles overlay layers from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBehaviour = !o.showBehaviour
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showElev = !o.showElev
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showDocking = !o.showDocking
	}
}

// Draw renders the enabled overlay layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	total := size.W * size.H
	if total <= 0 {
		return
	}

	if o.showElev {
		if provider, ok := o.sim.(elevationFieldProvider); ok {
			o.drawElevation(screen, provider.ElevationField(), size)
		}
	}

	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
		o.scratch = make([]float32, total)
	}

	if o.showBehaviour {
		if provider, ok := o.sim.(behaviourProvider); ok {
			cells := provider.BehaviourCells()
			if len(cells) == total {
				for i, b := range cells {
					switch b {
					case 1: // active
						o.scratch[i] = 1
					case 2: // drying up
						o.scratch[i] = 0.55
					default:
						o.scratch[i] = 0
					}
				}
				o.drawMask(screen, o.scratch, color.RGBA{R: 70, G: 170, B: 255, A: 0})
			}
		}
	}

	if o.showDocking {
		if provider, ok := o.sim.(dockingProvider); ok {
			docking := provider.DockingCells()
			if len(docking) == total {
				for i, d := range docking {
					if d {
						o.scratch[i] = 1
					} else {
						o.scratch[i] = 0
					}
				}
				o.drawMask(screen, o.scratch, color.RGBA{R: 255, G: 210, B: 60, A: 0})
			}
		}
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []float32, tint color.RGBA) {
	size := o.sim.Size()
	total := size.W * size.H
	if len(mask) != total {
		return
	}
	const (
		maxAlpha      = 140.0
		glowBase      = 0.35
		glowRange     = 0.65
		intensityBias = 0.75
	)

	for i := 0; i < total; i++ {
		base := i * 4
		intensity := clamp01(float64(mask[i]))
		if intensity == 0 {
			o.maskBuf[base+0] = 0
			o.maskBuf[base+1] = 0
			o.maskBuf[base+2] = 0
			o.maskBuf[base+3] = 0
			continue
		}

		alpha := uint8(math.Round(maxAlpha * math.Pow(intensity, intensityBias)))
		glow := glowBase + glowRange*math.Sqrt(intensity)

		o.maskBuf[base+0] = scaleColorComponent(tint.R, glow)
		o.maskBuf[base+1] = scaleColorComponent(tint.G, glow)
		o.maskBuf[base+2] = scaleColorComponent(tint.B, glow)
		o.maskBuf[base+3] = alpha
	}
	o.maskImg.WritePixels(o.maskBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

func (o *Overlay) drawElevation(screen *ebiten.Image, field []int16, size core.Size) {
	total := size.W * size.H
	if len(field) != total || total == 0 {
		return
	}
	if o.elevationImg == nil || o.elevationImg.Bounds().Dx() != size.W || o.elevationImg.Bounds().Dy() != size.H {
		o.elevationImg = ebiten.NewImage(size.W, size.H)
		o.elevationBuf = make([]byte, 4*total)
	}

	minVal := field[0]
	maxVal := field[0]
	for _, v := range field {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rangeVal := float64(maxVal - minVal)
	if rangeVal == 0 {
		rangeVal = 1
	}

	for i := 0; i < total; i++ {
		base := i * 4
		normalized := clamp01(float64(field[i]-minVal) / rangeVal)
		col := elevationColor(normalized)
		o.elevationBuf[base+0] = col.R
		o.elevationBuf[base+1] = col.G
		o.elevationBuf[base+2] = col.B
		o.elevationBuf[base+3] = col.A
	}

	o.elevationImg.WritePixels(o.elevationBuf)
	op := &ebiten.DrawImageOptions{}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.elevationImg, op)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func scaleColorComponent(value uint8, factor float64) uint8 {
	scaled := math.Round(float64(value) * factor)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 40, G: 60, B: 120, A: 150}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 165}},
		{0.5, color.RGBA{R: 90, G: 150, B: 100, A: 185}},
		{0.75, color.RGBA{R: 190, G: 160, B: 80, A: 205}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 215}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
