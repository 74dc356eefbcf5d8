//go:build cgo

package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/hherman1/aspectratio/demo"
)

var keys = map[ebiten.Key]demo.Key{
	ebiten.KeySpace:  demo.KeySpace,
	ebiten.KeyEnter:  demo.KeyEnter,
	ebiten.KeyEscape: demo.KeyEscape,
}

func toKey(k ebiten.Key) demo.Key {
	if dk, ok := keys[k]; ok {
		return dk
	}
	return demo.KeyOther
}

var buttons = []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle, ebiten.MouseButtonRight}

// Turns ebiten's polled input state into discrete events. Single threaded.
type input struct {
	// Frame on which each held key or button started to be pressed
	kdown  map[ebiten.Key]int
	mdown  map[ebiten.MouseButton]int
	iframe int

	cx, cy  int
	pressed []ebiten.Key
	chars   []rune
}

func newInput() *input {
	return &input{
		kdown: make(map[ebiten.Key]int),
		mdown: make(map[ebiten.MouseButton]int),
	}
}

// Appends the events since the last poll to evs.
func (in *input) poll(evs []demo.Event) []demo.Event {
	in.iframe++

	in.pressed = inpututil.AppendPressedKeys(in.pressed[:0])
	for _, k := range in.pressed {
		if _, ok := in.kdown[k]; !ok {
			in.kdown[k] = in.iframe
			evs = append(evs, demo.Event{Kind: demo.EventKeyDown, Key: toKey(k)})
		}
	}
	for k := range in.kdown {
		if !ebiten.IsKeyPressed(k) {
			delete(in.kdown, k)
			evs = append(evs, demo.Event{Kind: demo.EventKeyUp, Key: toKey(k)})
		}
	}
	in.chars = ebiten.AppendInputChars(in.chars[:0])
	for _, r := range in.chars {
		evs = append(evs, demo.Event{Kind: demo.EventKeyTyped, Char: r})
	}

	x, y := ebiten.CursorPosition()
	moved := x != in.cx || y != in.cy
	in.cx, in.cy = x, y
	dragging := false
	for i, m := range buttons {
		_, held := in.mdown[m]
		switch {
		case ebiten.IsMouseButtonPressed(m) && !held:
			in.mdown[m] = in.iframe
			evs = append(evs, demo.Event{Kind: demo.EventTouchDown, X: x, Y: y, Button: i})
		case !ebiten.IsMouseButtonPressed(m) && held:
			delete(in.mdown, m)
			evs = append(evs, demo.Event{Kind: demo.EventTouchUp, X: x, Y: y, Button: i})
		case held:
			dragging = true
		}
	}
	if moved {
		kind := demo.EventMouseMoved
		if dragging {
			kind = demo.EventTouchDragged
		}
		evs = append(evs, demo.Event{Kind: kind, X: x, Y: y})
	}
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		evs = append(evs, demo.Event{Kind: demo.EventScrolled, Amount: yoff})
	}
	return evs
}
