package demo

import (
	"math"
	"testing"

	"github.com/ByteArena/box2d"
)

func TestExtents(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          [3]CameraExtent
	}{
		{
			name:  "wide",
			width: 200, height: 100,
			want: [3]CameraExtent{{HW: 2, HH: 1}, {HW: 1, HH: 1}, {HW: 200, HH: 100, Viewport: true}},
		},
		{
			name:  "tall",
			width: 100, height: 200,
			want: [3]CameraExtent{{HW: 1, HH: 2}, {HW: 1, HH: 2}, {HW: 100, HH: 200, Viewport: true}},
		},
		{
			name:  "square",
			width: 300, height: 300,
			want: [3]CameraExtent{{HW: 1, HH: 1}, {HW: 1, HH: 1}, {HW: 300, HH: 300, Viewport: true}},
		},
		{
			name:  "minimized",
			width: 0, height: 0,
			want: [3]CameraExtent{{HW: 1, HH: 1}, {HW: 1, HH: 1}, {HW: 1, HH: 1, Viewport: true}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extents(tt.width, tt.height)
			if got != tt.want {
				t.Fatalf("Extents(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

// ratio of screen pixels per world unit horizontally to vertically; 1 means the quad stays square
func pixelAspect(e CameraExtent, w, h int) float64 {
	p := e.Projection(w, h)
	return p.A / -p.D
}

func TestExtentsSquarePixels(t *testing.T) {
	for _, size := range [][2]int{{640, 480}, {480, 640}, {1920, 1080}, {333, 777}} {
		w, h := size[0], size[1]
		ext := Extents(w, h)
		for _, i := range []int{0, 2} {
			if got := pixelAspect(ext[i], w, h); math.Abs(got-1) > 1e-9 {
				t.Fatalf("%dx%d extent %d pixel aspect=%v, want 1", w, h, i, got)
			}
		}
	}
}

func TestStretchExtentDistortsWideWindows(t *testing.T) {
	w, h := 640, 480
	got := pixelAspect(Extents(w, h)[1], w, h)
	if want := float64(w) / float64(h); math.Abs(got-want) > 1e-9 {
		t.Fatalf("stretch pixel aspect=%v, want %v", got, want)
	}
	// tall windows are corrected in both unit views
	if got := pixelAspect(Extents(h, w)[1], h, w); math.Abs(got-1) > 1e-9 {
		t.Fatalf("tall stretch pixel aspect=%v, want 1", got)
	}
}

func TestPixelExtentIsOneToOne(t *testing.T) {
	quad := PixelQuad().Bounds()
	for _, size := range [][2]int{{200, 100}, {800, 480}, {480, 800}, {1920, 1080}, {1, 1}} {
		w, h := size[0], size[1]
		p := Extents(w, h)[2].Projection(w, h)
		x0, y0 := p.Apply(quad.LowerBound)
		x1, y1 := p.Apply(quad.UpperBound)
		if x1-x0 != 240 || y0-y1 != 240 {
			t.Fatalf("%dx%d: pixel quad spans %vx%v screen pixels, want 240x240", w, h, x1-x0, y0-y1)
		}
		cx, cy := p.Apply(box2d.MakeB2Vec2(0, 0))
		if cx != float64(w)/2 || cy != float64(h)/2 {
			t.Fatalf("%dx%d: origin at (%v, %v)", w, h, cx, cy)
		}
	}
}

func TestProjectionMapsExtentToScreen(t *testing.T) {
	p := CameraExtent{HW: 2, HH: 1}.Projection(200, 100)
	corners := []struct {
		world  box2d.B2Vec2
		sx, sy float64
	}{
		{box2d.MakeB2Vec2(-2, -1), 0, 100},
		{box2d.MakeB2Vec2(2, 1), 200, 0},
		{box2d.MakeB2Vec2(0, 0), 100, 50},
		{box2d.MakeB2Vec2(-2, 1), 0, 0},
	}
	for _, c := range corners {
		x, y := p.Apply(c.world)
		if x != c.sx || y != c.sy {
			t.Fatalf("Apply(%v) = (%v, %v), want (%v, %v)", c.world, x, y, c.sx, c.sy)
		}
	}
}

func TestExtentBounds(t *testing.T) {
	bb := CameraExtent{HW: 3, HH: 4}.Bounds()
	if bb.LowerBound.X != -3 || bb.LowerBound.Y != -4 || bb.UpperBound.X != 3 || bb.UpperBound.Y != 4 {
		t.Fatalf("bounds=%+v", bb)
	}
	bb = CameraExtent{HW: 300, HH: 200, Viewport: true}.Bounds()
	if bb.LowerBound.X != -150 || bb.LowerBound.Y != -100 || bb.UpperBound.X != 150 || bb.UpperBound.Y != 100 {
		t.Fatalf("viewport bounds=%+v", bb)
	}
}

func TestExtentContains(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		mode          int
		mesh          *Mesh
		want          bool
	}{
		{"fit wide", 200, 100, 0, UnitQuad(), true},
		{"stretch wide", 200, 100, 1, UnitQuad(), true},
		{"fit tall", 100, 200, 0, UnitQuad(), true},
		{"pixel large window", 800, 480, 2, PixelQuad(), true},
		{"pixel exact window", 240, 240, 2, PixelQuad(), true},
		{"pixel short window", 800, 200, 2, PixelQuad(), false},
		{"pixel narrow window", 200, 800, 2, PixelQuad(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Extents(tt.width, tt.height)[tt.mode]
			if got := e.Contains(tt.mesh.Bounds()); got != tt.want {
				t.Fatalf("%v contains %v = %v, want %v", e, tt.mesh.Name, got, tt.want)
			}
		})
	}
}
