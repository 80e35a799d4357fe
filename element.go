package mosaic

import "time"

// PositionMode specifies how an element's offsets are interpreted by the
// external layout solver and by the animation engine.
type PositionMode int

const (
	// PositionStatic places the element in normal flow; offsets are ignored.
	PositionStatic PositionMode = iota
	// PositionRelative shifts the element by its offsets from its flow position.
	PositionRelative
	// PositionAbsolute places the element by its offsets, out of flow.
	PositionAbsolute
)

// Overflow specifies how content exceeding an element's bounds is handled,
// independently per axis.
type Overflow int

const (
	// OverflowVisible lets content paint outside the element (default).
	OverflowVisible Overflow = iota
	// OverflowHidden clips descendants to the element's inner content rect.
	OverflowHidden
	// OverflowScroll clips and always shows a scrollbar on this axis.
	OverflowScroll
	// OverflowAuto clips and shows a scrollbar only when content overflows.
	OverflowAuto
)

// clips returns true if this overflow mode establishes a clip for descendants.
func (o Overflow) clips() bool {
	return o != OverflowVisible
}

// WrapMode specifies how text content is broken into lines.
type WrapMode int

const (
	// WrapNone splits only on embedded newlines.
	WrapNone WrapMode = iota
	// WrapWord wraps at word boundaries, breaking long words as needed.
	WrapWord
	// WrapChar wraps at any grapheme boundary.
	WrapChar
	// WrapTruncate renders a single line cut at the content width.
	WrapTruncate
)

// TextAlign specifies how text is aligned within its content area.
// Alignment is computed against each wrapped line's display width.
type TextAlign int

const (
	// TextAlignLeft aligns text to the left edge (default).
	TextAlignLeft TextAlign = iota
	// TextAlignCenter centers text horizontally.
	TextAlignCenter
	// TextAlignRight aligns text to the right edge.
	TextAlignRight
)

// ContentKind identifies an element's content variant. Children is the only
// branching variant; all others are leaves.
type ContentKind int

const (
	// ContentNone has no content of its own.
	ContentNone ContentKind = iota
	// ContentText holds a styled text block.
	ContentText
	// ContentChildren holds child elements.
	ContentChildren
	// ContentCustom delegates painting to a Painter.
	ContentCustom
	// ContentInput holds editable text with a cursor.
	ContentInput
	// ContentFrames cycles through frames on a timer (spinners, etc.).
	ContentFrames
)

// Painter is the capability interface for custom-painted content.
// Implementations receive the element's resolved screen rect and the target
// buffer, and are responsible for their own clipping.
type Painter interface {
	Paint(rect Rect, buf *Buffer)
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func(rect Rect, buf *Buffer)

// Paint calls f.
func (f PainterFunc) Paint(rect Rect, buf *Buffer) {
	f(rect, buf)
}

// TextInput is the data for the text-input content variant. Editing state
// machines live in the caller's widget layer; the engine only paints the
// value and cursor.
type TextInput struct {
	Value  string
	Cursor int // grapheme index of the cursor within Value
}

// Backdrop is a whole-buffer effect applied immediately before the bearing
// element paints: every cell painted so far is dimmed and/or desaturated,
// then the element (e.g. a modal) lands on top undimmed.
type Backdrop struct {
	Dim        float64 // 0 = untouched, 1 = fully dark
	Desaturate float64 // 0 = untouched, 1 = grayscale
}

// Transition configures animation of one property: how long a committed value
// change takes to play out and with which easing curve. A zero duration means
// "complete instantly".
type Transition struct {
	Duration time.Duration
	Easing   Easing
}

// StyleOverride holds state-conditional style overrides (focused, disabled).
// Unset colors and a nil border leave the base style untouched.
type StyleOverride struct {
	Background Color
	Foreground Color
	Border     *BorderStyle
}

// Element is one box in the UI tree: pure data plus tree invariants.
// It has no behavior of its own; the compositor, animation engine, focus
// navigator, and scroll interaction consume it through its stable ID.
type Element struct {
	id       string
	children []*Element
	parent   *Element

	// Content variant
	content       ContentKind
	text          string
	painter       Painter
	input         *TextInput
	frames        []string
	frameInterval time.Duration

	// Box-model inputs, consumed by the external layout solver.
	width, height       int
	widthSet, heightSet bool
	padding             Edges
	margin              Edges

	// Position
	position                 PositionMode
	left, top, right, bottom int
	zIndex                   int

	// Overflow, per axis
	overflowX, overflowY Overflow

	// Style
	background  Color
	foreground  Color
	border      BorderStyle
	borderColor Color
	attrs       Attr
	wrap        WrapMode
	align       TextAlign

	// Animation
	transitions map[Property]Transition

	// Backdrop effect
	backdrop *Backdrop

	// Interaction
	focusable     bool
	clickable     bool
	draggable     bool
	capturesInput bool
	disabled      bool
	focused       bool

	focusedStyle  *StyleOverride
	disabledStyle *StyleOverride

	// Opaque caller data
	data map[string]string
}

// New creates a new Element with the given stable ID and options.
// The ID is the join key for layout, animation, scroll, and focus state and
// must be unique within a tree and stable across rebuilds of the same
// logical element.
func New(id string, opts ...Option) *Element {
	e := &Element{id: id}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the element's stable identity.
func (e *Element) ID() string {
	return e.id
}

// Parent returns the element's parent, or nil for the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the element's children. The returned slice is owned by
// the element and must not be mutated directly.
func (e *Element) Children() []*Element {
	return e.children
}

// AppendChild adds a child to this element, detaching it from any previous
// parent. Appending switches the element's content variant to children.
func (e *Element) AppendChild(child *Element) {
	if child == nil || child == e {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
	e.content = ContentChildren
}

// RemoveChild detaches a child from this element.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

// Walk visits the element and its descendants in pre-order.
// Returning false from fn stops the walk.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, child := range e.children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByID returns the descendant (or self) with the given ID, or nil.
func (e *Element) FindByID(id string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if el.id == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// Content returns the element's content variant.
func (e *Element) Content() ContentKind {
	return e.content
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// SetText updates the element's text content.
func (e *Element) SetText(s string) {
	e.text = s
	e.content = ContentText
}

// Input returns the text-input state, or nil for other content variants.
func (e *Element) Input() *TextInput {
	return e.input
}

// Position returns the element's position mode.
func (e *Element) Position() PositionMode {
	return e.position
}

// Offsets returns the element's left, top, right, and bottom offsets.
func (e *Element) Offsets() (left, top, right, bottom int) {
	return e.left, e.top, e.right, e.bottom
}

// SetOffsets updates the element's position offsets. With a transition
// configured for the matching properties, the animation engine picks the
// change up on the next Update.
func (e *Element) SetOffsets(left, top, right, bottom int) {
	e.left, e.top, e.right, e.bottom = left, top, right, bottom
}

// ZIndex returns the element's own z-index (before inheritance).
func (e *Element) ZIndex() int {
	return e.zIndex
}

// OverflowAxes returns the horizontal and vertical overflow modes.
func (e *Element) OverflowAxes() (x, y Overflow) {
	return e.overflowX, e.overflowY
}

// Scrollable returns true if the element can scroll on the given axis.
func (e *Element) Scrollable(axis Axis) bool {
	o := e.overflowX
	if axis == AxisVertical {
		o = e.overflowY
	}
	return o == OverflowScroll || o == OverflowAuto
}

// IsScrollable returns true if the element can scroll on either axis.
func (e *Element) IsScrollable() bool {
	return e.Scrollable(AxisHorizontal) || e.Scrollable(AxisVertical)
}

// Padding returns the element's padding edges.
func (e *Element) Padding() Edges {
	return e.padding
}

// Margin returns the element's margin edges.
func (e *Element) Margin() Edges {
	return e.margin
}

// FixedSize reports the explicitly set width/height, with flags indicating
// whether each was set. Auto-computed sizes are never animated.
func (e *Element) FixedSize() (width, height int, widthSet, heightSet bool) {
	return e.width, e.height, e.widthSet, e.heightSet
}

// Border returns the effective border kind, honoring state overrides.
func (e *Element) Border() BorderStyle {
	if o := e.activeOverride(); o != nil && o.Border != nil {
		return *o.Border
	}
	return e.border
}

// Background returns the effective background color, honoring state overrides.
func (e *Element) Background() Color {
	if o := e.activeOverride(); o != nil && !o.Background.IsUnset() {
		return o.Background
	}
	return e.background
}

// Foreground returns the effective foreground color, honoring state overrides.
func (e *Element) Foreground() Color {
	if o := e.activeOverride(); o != nil && !o.Foreground.IsUnset() {
		return o.Foreground
	}
	return e.foreground
}

// activeOverride returns the style override for the element's current state.
// Disabled wins over focused.
func (e *Element) activeOverride() *StyleOverride {
	if e.disabled && e.disabledStyle != nil {
		return e.disabledStyle
	}
	if e.focused && e.focusedStyle != nil {
		return e.focusedStyle
	}
	return nil
}

// Transitions returns the element's per-property transition configs.
func (e *Element) Transitions() map[Property]Transition {
	return e.transitions
}

// TransitionFor returns the transition config for a property, if any.
func (e *Element) TransitionFor(p Property) (Transition, bool) {
	t, ok := e.transitions[p]
	return t, ok
}

// Backdrop returns the element's backdrop effect, or nil.
func (e *Element) Backdrop() *Backdrop {
	return e.backdrop
}

// Focusable returns true if the element can receive keyboard focus.
// Disabled elements are never focusable.
func (e *Element) Focusable() bool {
	return e.focusable && !e.disabled
}

// Focused returns true if the element currently has keyboard focus.
func (e *Element) Focused() bool {
	return e.focused
}

// setFocused updates the focused state flag. Called by the focus navigator.
func (e *Element) setFocused(v bool) {
	e.focused = v
}

// Disabled returns true if the element is disabled.
func (e *Element) Disabled() bool {
	return e.disabled
}

// SetDisabled updates the disabled state.
func (e *Element) SetDisabled(v bool) {
	e.disabled = v
}

// Clickable returns true if the element accepts click events.
func (e *Element) Clickable() bool {
	return e.clickable
}

// Draggable returns true if the element accepts drag events.
func (e *Element) Draggable() bool {
	return e.draggable
}

// CapturesInput returns true if the element consumes raw key events itself
// (e.g. text cursor movement) rather than ceding them to focus navigation.
func (e *Element) CapturesInput() bool {
	return e.capturesInput
}

// Data returns the opaque string value stored under key.
func (e *Element) Data(key string) string {
	return e.data[key]
}

// SetData stores an opaque string value under key.
func (e *Element) SetData(key, value string) {
	if e.data == nil {
		e.data = make(map[string]string)
	}
	e.data[key] = value
}
