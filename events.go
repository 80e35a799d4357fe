package mosaic

// Event is a raw input event delivered to the engine by the embedding
// program's terminal layer. The engine never reads the terminal itself.
type Event interface {
	isEvent()
}

// KeyEvent is a raw keyboard event.
type KeyEvent struct {
	Key  Key
	Rune rune // set when Key == KeyRune
	Mods Modifier
	Kind KeyKind
}

func (KeyEvent) isEvent() {}

// MouseButton identifies a pointer button or wheel direction.
type MouseButton int

const (
	// MouseNone means no button (pointer motion).
	MouseNone MouseButton = iota
	// MouseLeft is the primary button.
	MouseLeft
	// MouseMiddle is the middle button.
	MouseMiddle
	// MouseRight is the secondary button.
	MouseRight
	// WheelUp is a wheel tick away from the user.
	WheelUp
	// WheelDown is a wheel tick toward the user.
	WheelDown
	// WheelLeft is a horizontal wheel tick left.
	WheelLeft
	// WheelRight is a horizontal wheel tick right.
	WheelRight
)

// MouseAction identifies what the pointer did.
type MouseAction int

const (
	// MousePress is a button press (or wheel tick).
	MousePress MouseAction = iota
	// MouseReleaseAction is a button release.
	MouseReleaseAction
	// MouseDrag is motion with a button held.
	MouseDrag
	// MouseMotion is motion with no button held.
	MouseMotion
)

// MouseEvent is a raw pointer event in screen cell coordinates.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Mods   Modifier
}

func (MouseEvent) isEvent() {}

// ResizeEvent reports a new screen size.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) isEvent() {}

// SemanticEvent is an engine-produced event carrying UI meaning: which
// element was clicked, which gained focus, what scrolled. The embedding
// program consumes these instead of re-deriving targets from raw input.
type SemanticEvent interface {
	// TargetID returns the ID of the element the event concerns, or "" when
	// the event has no element target.
	TargetID() string
}

// Focus reports that an element gained keyboard focus.
type Focus struct {
	ID string
}

// TargetID returns the focused element's ID.
func (e Focus) TargetID() string { return e.ID }

// Blur reports that an element lost keyboard focus.
type Blur struct {
	ID string
}

// TargetID returns the blurred element's ID.
func (e Blur) TargetID() string { return e.ID }

// Click reports a pointer press on a clickable element.
type Click struct {
	ID     string
	X, Y   int // screen cell of the press
	Button MouseButton
}

// TargetID returns the clicked element's ID.
func (e Click) TargetID() string { return e.ID }

// Drag reports pointer motion with a button held over a draggable element.
type Drag struct {
	ID     string
	X, Y   int
	Button MouseButton
}

// TargetID returns the dragged element's ID.
func (e Drag) TargetID() string { return e.ID }

// Release reports a pointer button release. ID is the element under the
// pointer at release time, or "" over nothing.
type Release struct {
	ID     string
	X, Y   int
	Button MouseButton
}

// TargetID returns the element under the release, if any.
func (e Release) TargetID() string { return e.ID }

// Scroll reports that an element's scroll offset changed, by wheel,
// scrollbar gesture, or keyboard paging.
type Scroll struct {
	ID     string
	Delta  Point // applied change, after clamping
	Offset Point // resulting offset
}

// TargetID returns the scrolled element's ID.
func (e Scroll) TargetID() string { return e.ID }

// KeyPress delivers a key to the focused element. ID is "" when nothing
// is focused; the embedding program treats those as global keys.
type KeyPress struct {
	ID   string
	Key  Key
	Rune rune
	Mods Modifier
}

// TargetID returns the focused element's ID, or "".
func (e KeyPress) TargetID() string { return e.ID }

// MouseMove reports pointer motion, with the topmost element under the
// pointer (or "").
type MouseMove struct {
	ID   string
	X, Y int
}

// TargetID returns the hovered element's ID, or "".
func (e MouseMove) TargetID() string { return e.ID }

// Resized reports a new screen size. The embedding program re-runs layout
// in response.
type Resized struct {
	Width, Height int
}

// TargetID returns "".
func (Resized) TargetID() string { return "" }
