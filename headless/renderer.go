// Package headless renders the demo without a GPU. Draw submissions are logged instead of rasterized, and shaders are
// checked with the Go parser since Kage shares Go's syntax.
package headless

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"image/color"
	"log"
	"strings"

	"github.com/hherman1/aspectratio/demo"
)

type program struct {
	id       int
	disposed bool
}

func (p *program) Dispose() {
	p.disposed = true
}

// Renderer implements demo.Renderer by logging what would have been drawn.
type Renderer struct {
	logger *log.Logger

	programs int
	frames   int
	draws    int

	// last submission, so only changes get logged
	last string
}

func NewRenderer(logger *log.Logger) *Renderer {
	if logger == nil {
		logger = log.Default()
	}
	return &Renderer{logger: logger}
}

// Compile parses the Kage source and checks it declares a Fragment entry point. A missing unit directive is reported
// as a diagnostic, not a failure.
func (r *Renderer) Compile(src []byte) (demo.Program, string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "shader", src, parser.ParseComments|parser.AllErrors)
	if err != nil {
		return nil, "", &demo.ShaderError{Log: err.Error()}
	}
	if !hasFragment(f) {
		return nil, "", &demo.ShaderError{Log: "shader: Fragment function not found"}
	}
	var diagnostics []string
	if !hasUnit(f) {
		diagnostics = append(diagnostics, "shader: no //kage:unit directive, texels assumed")
	}
	r.programs++
	return &program{id: r.programs}, strings.Join(diagnostics, "\n"), nil
}

func hasFragment(f *ast.File) bool {
	for _, d := range f.Decls {
		fn, ok := d.(*ast.FuncDecl)
		if ok && fn.Recv == nil && fn.Name.Name == "Fragment" {
			return true
		}
	}
	return false
}

func hasUnit(f *ast.File) bool {
	for _, g := range f.Comments {
		for _, c := range g.List {
			if strings.HasPrefix(c.Text, "//kage:unit ") {
				return true
			}
		}
	}
	return false
}

func (r *Renderer) Clear(c color.RGBA) {
	r.frames++
}

func (r *Renderer) DrawMesh(p demo.Program, m *demo.Mesh, proj demo.Affine) {
	r.draws++
	bb := m.Bounds()
	x0, y0 := proj.Apply(bb.LowerBound)
	x1, y1 := proj.Apply(bb.UpperBound)
	s := fmt.Sprintf("draw %v at (%.0f, %.0f)-(%.0f, %.0f)", m.Name, x0, y1, x1, y0)
	if s != r.last {
		r.logger.Printf("frame %d: %v", r.frames, s)
		r.last = s
	}
}

func (r *Renderer) DrawText(s string, x, y int) {
}

// Frames and Draws report how many frames were cleared and meshes submitted.
func (r *Renderer) Frames() int { return r.frames }

func (r *Renderer) Draws() int { return r.draws }

func (r *Renderer) Dispose() {
	r.logger.Printf("rendered %d frames, %d mesh draws", r.frames, r.draws)
}
