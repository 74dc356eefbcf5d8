package demo

import (
	"image/color"
	"math"

	"github.com/ByteArena/box2d"
)

// A color packed into 32 bits as ABGR, the layout used for vertex colors.
type PackedColor uint32

func Pack(r, g, b, a uint8) PackedColor {
	return PackedColor(uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r))
}

func PackColor(c color.RGBA) PackedColor {
	return Pack(c.R, c.G, c.B, c.A)
}

func (p PackedColor) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// Floats returns the color channels scaled to [0, 1].
func (p PackedColor) Floats() (r, g, b, a float32) {
	c := p.RGBA()
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}

type Vertex struct {
	// position in world units
	Pos   box2d.B2Vec2
	Color PackedColor
}

// Immutable geometry uploaded once at startup.
type Mesh struct {
	Name     string
	Vertices []Vertex

	// Triangle list indices into Vertices
	Indices []uint16
}

// Bounds of the mesh in world units.
func (m *Mesh) Bounds() box2d.B2AABB {
	var bb box2d.B2AABB
	for i, v := range m.Vertices {
		if i == 0 {
			bb.LowerBound, bb.UpperBound = v.Pos, v.Pos
			continue
		}
		bb.LowerBound = box2d.MakeB2Vec2(math.Min(bb.LowerBound.X, v.Pos.X), math.Min(bb.LowerBound.Y, v.Pos.Y))
		bb.UpperBound = box2d.MakeB2Vec2(math.Max(bb.UpperBound.X, v.Pos.X), math.Max(bb.UpperBound.Y, v.Pos.Y))
	}
	return bb
}

var (
	white = Pack(255, 255, 255, 255)
	red   = Pack(255, 0, 0, 255)
	green = Pack(0, 255, 0, 255)
)

// Builds a square centered at the origin with half side hs, shading from bottom at the bottom edge to top at the top
// edge. The vertex order is that of a triangle strip: bottom left, bottom right, top left, top right.
func Quad(name string, hs float64, bottom, top PackedColor) *Mesh {
	return &Mesh{
		Name: name,
		Vertices: []Vertex{
			{Pos: box2d.MakeB2Vec2(-hs, -hs), Color: bottom},
			{Pos: box2d.MakeB2Vec2(hs, -hs), Color: bottom},
			{Pos: box2d.MakeB2Vec2(-hs, hs), Color: top},
			{Pos: box2d.MakeB2Vec2(hs, hs), Color: top},
		},
		Indices: []uint16{0, 1, 2, 1, 2, 3},
	}
}

// A unit quad, red on top and white on the bottom.
func UnitQuad() *Mesh {
	return Quad("unit-quad", 0.5, white, red)
}

// A 240 pixel quad, green on top and white on the bottom.
func PixelQuad() *Mesh {
	return Quad("pixel-quad", 120, white, green)
}
