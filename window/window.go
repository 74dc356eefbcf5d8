//go:build cgo

package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hherman1/aspectratio/demo"
)

// RunWindow opens a desktop window and drives the demo from ebiten's game loop. It blocks until the window closes.
// src is the quad shader; a failure to compile it is returned before the window opens.
func RunWindow(cfg Config, src []byte, logger *log.Logger) error {
	r, err := newRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	a := demo.NewApp(r, src, logger)
	defer a.Dispose()
	if err := a.Create(); err != nil {
		return fmt.Errorf("create: %w", err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	g := &game{a: a, r: r, in: newInput()}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Adapts the demo lifecycle to ebiten.Game.
type game struct {
	a  *demo.App
	r  *renderer
	in *input

	evs []demo.Event

	// width / height of screen
	w, h int
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.evs = g.in.poll(g.evs[:0])
	for _, ev := range g.evs {
		g.a.Dispatch(ev)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.r.screen = screen
	g.a.Render()
	g.r.screen = nil
}

func (g *game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.a.Dispatch(demo.Event{Kind: demo.EventResize, X: g.w, Y: g.h})
	}
	return outsideWidth, outsideHeight
}
