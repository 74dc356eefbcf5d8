package demo

import (
	"fmt"

	"github.com/ByteArena/box2d"
)

// The visible world of a camera centered at the origin.
type CameraExtent struct {
	// Half width/height of the view, or the full width/height when Viewport is set.
	HW, HH float64

	// Set for pixel cameras, which are sized like the window itself.
	Viewport bool
}

func (e CameraExtent) String() string {
	if e.Viewport {
		return fmt.Sprintf("viewport(%.2f, %.2f)", e.HW, e.HH)
	}
	return fmt.Sprintf("(%.2f, %.2f)", e.HW, e.HH)
}

// Half returns the half width/height of the view in world units.
func (e CameraExtent) Half() (hw, hh float64) {
	if e.Viewport {
		return e.HW / 2, e.HH / 2
	}
	return e.HW, e.HH
}

// Bounds of the visible world in world units.
func (e CameraExtent) Bounds() box2d.B2AABB {
	hw, hh := e.Half()
	return box2d.B2AABB{
		LowerBound: box2d.MakeB2Vec2(-hw, -hh),
		UpperBound: box2d.MakeB2Vec2(hw, hh),
	}
}

// Reports whether the whole of bb is in view.
func (e CameraExtent) Contains(bb box2d.B2AABB) bool {
	return e.Bounds().Contains(bb)
}

// Projection returns the transformation from world units (increasing Y is up) to screen pixels (increasing Y is
// down) for a screen of the given size.
func (e CameraExtent) Projection(sw, sh int) Affine {
	hw, hh := e.Half()
	return Affine{
		A:  float64(sw) / (2 * hw),
		D:  -float64(sh) / (2 * hh),
		Tx: float64(sw) / 2,
		Ty: float64(sh) / 2,
	}
}

// A 2D affine transformation:
//
//	x' = A*x + B*y + Tx
//	y' = C*x + D*y + Ty
type Affine struct {
	A, B, C, D float64
	Tx, Ty     float64
}

func (a Affine) Apply(v box2d.B2Vec2) (x, y float64) {
	return a.A*v.X + a.B*v.Y + a.Tx, a.C*v.X + a.D*v.Y + a.Ty
}

// Extents computes the three demo cameras for a window of the given size.
//
// The first corrects for the window shape, so the unit square stays square. The second ignores the aspect ratio of
// wide windows and stretches the square with them; tall windows get the same correction as the first. The third is
// a viewport the size of the window, so one world unit is one pixel and no correction is needed.
func Extents(width, height int) [3]CameraExtent {
	// a minimized window reports zero sizes
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	w, h := float64(width), float64(height)

	var fit, stretch CameraExtent
	if width > height {
		aspectRatio := w / h
		fit = CameraExtent{HW: aspectRatio, HH: 1}
		stretch = CameraExtent{HW: 1, HH: 1}
	} else {
		correction := h / w
		fit = CameraExtent{HW: 1, HH: correction}
		stretch = fit
	}
	return [3]CameraExtent{fit, stretch, {HW: w, HH: h, Viewport: true}}
}
