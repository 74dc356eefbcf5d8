package demo

import "fmt"

// Engine independent key identifiers. Hosts map their own key codes onto these.
type Key int

const (
	KeyUnknown Key = iota
	KeySpace
	KeyEnter
	KeyEscape
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "Space"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyOther:
		return "Other"
	}
	return "Unknown"
}

// The key whose release cycles the display mode.
const AdvanceKey = KeySpace

type EventKind int

const (
	EventKeyDown EventKind = iota
	EventKeyUp
	EventKeyTyped
	EventTouchDown
	EventTouchUp
	EventTouchDragged
	EventMouseMoved
	EventScrolled
	EventResize
)

var eventNames = [...]string{
	EventKeyDown:      "key-down",
	EventKeyUp:        "key-up",
	EventKeyTyped:     "key-typed",
	EventTouchDown:    "touch-down",
	EventTouchUp:      "touch-up",
	EventTouchDragged: "touch-dragged",
	EventMouseMoved:   "mouse-moved",
	EventScrolled:     "scrolled",
	EventResize:       "resize",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// Something a host observed, to be routed to the application by Dispatch.
type Event struct {
	Kind EventKind
	Key  Key
	Char rune

	// Screen coordinates for pointer events, or the new size for resizes.
	X, Y int

	// Pointer id and button for touch events
	Pointer, Button int

	// Wheel offset for scroll events
	Amount float64
}
