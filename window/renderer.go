//go:build cgo

package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/hherman1/aspectratio/demo"
)

// Size of the overlay text in pixels
const fontSize = 15

type shader struct {
	s *ebiten.Shader
}

func (p *shader) Dispose() {
	p.s.Dispose()
}

// Implements demo.Renderer on top of ebiten. The screen is only valid during Draw.
type renderer struct {
	screen *ebiten.Image
	face   *text.GoTextFace

	// reused between draws
	vs []ebiten.Vertex
}

func newRenderer() (*renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	return &renderer{face: &text.GoTextFace{Source: src, Size: fontSize}}, nil
}

func (r *renderer) Compile(src []byte) (demo.Program, string, error) {
	s, err := ebiten.NewShader(src)
	if err != nil {
		return nil, "", &demo.ShaderError{Log: err.Error()}
	}
	return &shader{s}, "", nil
}

func (r *renderer) Clear(c color.RGBA) {
	r.screen.Fill(c)
}

// Converts a world to screen transformation into an ebiten matrix.
func toGeoM(a demo.Affine) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.SetElement(0, 0, a.A)
	geo.SetElement(0, 1, a.B)
	geo.SetElement(0, 2, a.Tx)
	geo.SetElement(1, 0, a.C)
	geo.SetElement(1, 1, a.D)
	geo.SetElement(1, 2, a.Ty)
	return geo
}

func (r *renderer) DrawMesh(p demo.Program, m *demo.Mesh, proj demo.Affine) {
	s, ok := p.(*shader)
	if !ok {
		return
	}
	geo := toGeoM(proj)
	r.vs = r.vs[:0]
	for _, v := range m.Vertices {
		sx, sy := geo.Apply(v.Pos.X, v.Pos.Y)
		cr, cg, cb, ca := v.Color.Floats()
		r.vs = append(r.vs, ebiten.Vertex{
			DstX:   float32(sx),
			DstY:   float32(sy),
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.screen.DrawTrianglesShader(r.vs, m.Indices, s.s, &ebiten.DrawTrianglesShaderOptions{})
}

func (r *renderer) DrawText(s string, x, y int) {
	// text.Draw places the top of the line at the origin by default
	op := &text.DrawOptions{}
	op.GeoM.Translate(demo.FromBottomLeft(r.screen.Bounds().Dy(), x, y))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(r.screen, s, r.face, op)
}

func (r *renderer) Dispose() {
	r.face = nil
	r.vs = nil
}
