package demo

import (
	"errors"
	"image/color"
)

type fakeProgram struct {
	disposed int
}

func (p *fakeProgram) Dispose() {
	p.disposed++
}

type drawCall struct {
	p    Program
	m    *Mesh
	proj Affine
}

type textCall struct {
	s    string
	x, y int
}

// Records everything the app asks of the renderer.
type fakeRenderer struct {
	// returned by Compile
	diagnostics string
	fail        string

	compiled []*fakeProgram
	clears   []color.RGBA
	draws    []drawCall
	texts    []textCall
	disposed int
}

func (r *fakeRenderer) Compile(src []byte) (Program, string, error) {
	if r.fail != "" {
		return nil, "", errors.New(r.fail)
	}
	p := &fakeProgram{}
	r.compiled = append(r.compiled, p)
	return p, r.diagnostics, nil
}

func (r *fakeRenderer) Clear(c color.RGBA) {
	r.clears = append(r.clears, c)
}

func (r *fakeRenderer) DrawMesh(p Program, m *Mesh, proj Affine) {
	r.draws = append(r.draws, drawCall{p, m, proj})
}

func (r *fakeRenderer) DrawText(s string, x, y int) {
	r.texts = append(r.texts, textCall{s, x, y})
}

func (r *fakeRenderer) Dispose() {
	r.disposed++
}
