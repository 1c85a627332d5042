package cursorfx

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// Background fills the screen before Draw is called.
	Background Color
	// Draw renders the frame. May be nil.
	Draw func(screen *ebiten.Image)
}

// Run opens a window and calls r.Update once per tick until the window closes.
//
// For full control, implement ebiten.Game yourself and call Remapper.Update
// from its Update method.
func Run(r *Remapper, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 640, 480
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(&game{r: r, cfg: cfg})
}

type game struct {
	r   *Remapper
	cfg RunConfig
}

func (g *game) Update() error {
	g.r.Update()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background.toRGBA())
	if g.cfg.Draw != nil {
		g.cfg.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// toRGBA converts to a premultiplied 8-bit color.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}
