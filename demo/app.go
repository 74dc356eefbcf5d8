package demo

import (
	"fmt"
	"image/color"
	"log"
)

// Where the instructions are drawn, in pixels from the bottom left corner of the screen.
const (
	TextX = 10
	TextY = 20
)

const Message = "Hit space and/or resize baby!"

// FromBottomLeft converts a point measured up from the bottom left of a screen of height sh into screen pixels
// measured down from the top left.
func FromBottomLeft(sh, x, y int) (sx, sy float64) {
	return float64(x), float64(sh - y)
}

// The thin adapter over the rendering engine.
type Renderer interface {
	Compiler
	Clear(c color.RGBA)
	// Draws the mesh through the program, placing vertices with the given world to screen transformation.
	DrawMesh(p Program, m *Mesh, proj Affine)
	// Draws text with the top of its first line x, y pixels from the bottom left of the screen.
	DrawText(s string, x, y int)
	// Releases text and any other engine resources.
	Dispose()
}

// What to draw on the current frame.
type Selection struct {
	Extent CameraExtent
	Mesh   *Mesh

	// Set when part of the mesh falls outside the camera's view.
	Cropped bool
}

// The demo application. The host drives it through Create, Resize, Render and Dispose, and feeds it input events.
// Not thread safe, all calls must come from one goroutine.
type App struct {
	r      Renderer
	logger *log.Logger
	src    []byte

	mode DisplayMode

	// fit, stretch, pixel
	extents [3]CameraExtent

	// screen size from the last resize
	sw, sh int
	sized  bool

	unit, pixel *Mesh
	program     Program
	disposed    bool

	// mesh name of the last selection reported as cropped, empty if it fit
	cropped string
}

// Creates an application that renders through r, using src as the quad shader source.
func NewApp(r Renderer, src []byte, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		r:      r,
		logger: logger,
		src:    src,
		mode:   ModeFit,
	}
}

func (a *App) Mode() DisplayMode {
	return a.mode
}

func (a *App) Extents() [3]CameraExtent {
	return a.extents
}

// Builds the static geometry and compiles the quad shader. A compilation failure is fatal to the demo.
func (a *App) Create() error {
	a.unit = UnitQuad()
	a.pixel = PixelQuad()
	p, err := LoadProgram(a.r, "quad", a.src, a.logger)
	if err != nil {
		return fmt.Errorf("create quad shader: %w", err)
	}
	a.program = p
	return nil
}

// Recomputes every camera for the new screen size.
func (a *App) Resize(width, height int) {
	a.extents = Extents(width, height)
	a.sw, a.sh = width, height
	a.sized = true
}

// Cycles to the next display mode.
func (a *App) Advance() {
	a.mode = a.mode.Next()
}

// Picks the camera and geometry for the current mode. Returns false if nothing should be drawn.
func (a *App) Select() (Selection, bool) {
	var s Selection
	switch a.mode {
	case ModeFit:
		s = Selection{Extent: a.extents[0], Mesh: a.unit}
	case ModeStretch:
		s = Selection{Extent: a.extents[1], Mesh: a.unit}
	case ModePixel:
		s = Selection{Extent: a.extents[2], Mesh: a.pixel}
	default:
		return Selection{}, false
	}
	if s.Mesh != nil {
		s.Cropped = !s.Extent.Contains(s.Mesh.Bounds())
	}
	return s, true
}

func (a *App) Render() {
	a.r.Clear(color.RGBA{A: 0xff})
	if s, ok := a.Select(); ok && a.sized && a.program != nil && s.Mesh != nil {
		a.reportCrop(s)
		a.r.DrawMesh(a.program, s.Mesh, s.Extent.Projection(a.sw, a.sh))
	}
	a.r.DrawText(Message, TextX, TextY)
}

// Logs when the drawn mesh starts or stops overflowing the view.
func (a *App) reportCrop(s Selection) {
	name := ""
	if s.Cropped {
		name = s.Mesh.Name
	}
	if name == a.cropped {
		return
	}
	if name != "" {
		a.logger.Printf("%v does not fit the %v camera %v at %dx%d", name, a.mode, s.Extent, a.sw, a.sh)
	} else {
		a.logger.Printf("%v fits the %v camera again", a.cropped, a.mode)
	}
	a.cropped = name
}

// Releases the shader and renderer resources. Safe to call more than once.
func (a *App) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	if a.program != nil {
		a.program.Dispose()
		a.program = nil
	}
	a.r.Dispose()
}

func (a *App) KeyDown(k Key) bool {
	return false
}

func (a *App) KeyUp(k Key) bool {
	if k == AdvanceKey {
		a.Advance()
		return true
	}
	return false
}

func (a *App) KeyTyped(r rune) bool {
	return false
}

func (a *App) TouchDown(x, y, pointer, button int) bool {
	return false
}

func (a *App) TouchUp(x, y, pointer, button int) bool {
	return false
}

func (a *App) TouchDragged(x, y, pointer int) bool {
	return false
}

func (a *App) MouseMoved(x, y int) bool {
	return false
}

func (a *App) Scrolled(amount float64) bool {
	return false
}

// Dispatch routes a host event to the matching callback and reports whether it was handled.
func (a *App) Dispatch(ev Event) bool {
	switch ev.Kind {
	case EventKeyDown:
		return a.KeyDown(ev.Key)
	case EventKeyUp:
		return a.KeyUp(ev.Key)
	case EventKeyTyped:
		return a.KeyTyped(ev.Char)
	case EventTouchDown:
		return a.TouchDown(ev.X, ev.Y, ev.Pointer, ev.Button)
	case EventTouchUp:
		return a.TouchUp(ev.X, ev.Y, ev.Pointer, ev.Button)
	case EventTouchDragged:
		return a.TouchDragged(ev.X, ev.Y, ev.Pointer)
	case EventMouseMoved:
		return a.MouseMoved(ev.X, ev.Y)
	case EventScrolled:
		return a.Scrolled(ev.Amount)
	case EventResize:
		a.Resize(ev.X, ev.Y)
		return true
	}
	return false
}
