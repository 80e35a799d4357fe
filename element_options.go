package mosaic

import "time"

// Option configures an Element during construction.
type Option func(*Element)

// WithText sets text content.
func WithText(s string) Option {
	return func(e *Element) {
		e.content = ContentText
		e.text = s
	}
}

// WithChildren appends child elements.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		for _, c := range children {
			e.AppendChild(c)
		}
	}
}

// WithPainter sets a custom painter as the element's content.
func WithPainter(p Painter) Option {
	return func(e *Element) {
		e.content = ContentCustom
		e.painter = p
	}
}

// WithInput sets text-input content. Input elements capture raw key events
// by default so arrow keys move the cursor instead of focus.
func WithInput(value string, cursor int) Option {
	return func(e *Element) {
		e.content = ContentInput
		e.input = &TextInput{Value: value, Cursor: cursor}
		e.capturesInput = true
	}
}

// WithFrames sets timed frame-cycle content (e.g. a spinner). The compositor
// picks the frame from the current time and interval.
func WithFrames(interval time.Duration, frames ...string) Option {
	return func(e *Element) {
		e.content = ContentFrames
		e.frames = frames
		e.frameInterval = interval
	}
}

// WithWidth sets an explicit width. Only explicitly sized dimensions are
// animatable.
func WithWidth(w int) Option {
	return func(e *Element) {
		e.width = w
		e.widthSet = true
	}
}

// WithHeight sets an explicit height.
func WithHeight(h int) Option {
	return func(e *Element) {
		e.height = h
		e.heightSet = true
	}
}

// WithPadding sets padding on all four sides.
func WithPadding(edges Edges) Option {
	return func(e *Element) {
		e.padding = edges
	}
}

// WithMargin sets margin on all four sides.
func WithMargin(edges Edges) Option {
	return func(e *Element) {
		e.margin = edges
	}
}

// WithPosition sets the position mode and offsets.
func WithPosition(mode PositionMode, left, top, right, bottom int) Option {
	return func(e *Element) {
		e.position = mode
		e.left, e.top, e.right, e.bottom = left, top, right, bottom
	}
}

// WithZIndex sets the element's own z-index. The effective z-index during
// compositing is the maximum of this and the ancestors' effective values.
func WithZIndex(z int) Option {
	return func(e *Element) {
		e.zIndex = z
	}
}

// WithOverflow sets the overflow mode per axis.
func WithOverflow(x, y Overflow) Option {
	return func(e *Element) {
		e.overflowX = x
		e.overflowY = y
	}
}

// WithBackground sets the background color.
func WithBackground(c Color) Option {
	return func(e *Element) {
		e.background = c
	}
}

// WithForeground sets the foreground (text) color.
func WithForeground(c Color) Option {
	return func(e *Element) {
		e.foreground = c
	}
}

// WithBorder sets the border kind and color.
func WithBorder(kind BorderStyle, color Color) Option {
	return func(e *Element) {
		e.border = kind
		e.borderColor = color
	}
}

// WithAttrs sets text attributes.
func WithAttrs(a Attr) Option {
	return func(e *Element) {
		e.attrs = a
	}
}

// WithWrap sets the text wrap mode.
func WithWrap(w WrapMode) Option {
	return func(e *Element) {
		e.wrap = w
	}
}

// WithAlign sets the horizontal text alignment.
func WithAlign(a TextAlign) Option {
	return func(e *Element) {
		e.align = a
	}
}

// WithTransition attaches a transition config to a property.
func WithTransition(p Property, d time.Duration, easing Easing) Option {
	return func(e *Element) {
		if e.transitions == nil {
			e.transitions = make(map[Property]Transition)
		}
		e.transitions[p] = Transition{Duration: d, Easing: easing}
	}
}

// WithBackdrop sets a whole-buffer dim/desaturate effect applied just before
// this element paints (modal/overlay dimming).
func WithBackdrop(dim, desaturate float64) Option {
	return func(e *Element) {
		e.backdrop = &Backdrop{Dim: dim, Desaturate: desaturate}
	}
}

// WithFocusable marks the element as able to receive keyboard focus.
func WithFocusable() Option {
	return func(e *Element) {
		e.focusable = true
	}
}

// WithClickable marks the element as a click target.
func WithClickable() Option {
	return func(e *Element) {
		e.clickable = true
	}
}

// WithDraggable marks the element as a drag target.
func WithDraggable() Option {
	return func(e *Element) {
		e.draggable = true
	}
}

// WithCapturesInput marks the element as consuming raw key events itself.
func WithCapturesInput() Option {
	return func(e *Element) {
		e.capturesInput = true
	}
}

// WithDisabled marks the element as disabled.
func WithDisabled() Option {
	return func(e *Element) {
		e.disabled = true
	}
}

// WithFocusedStyle sets style overrides applied while the element has focus.
func WithFocusedStyle(o StyleOverride) Option {
	return func(e *Element) {
		e.focusedStyle = &o
	}
}

// WithDisabledStyle sets style overrides applied while the element is disabled.
func WithDisabledStyle(o StyleOverride) Option {
	return func(e *Element) {
		e.disabledStyle = &o
	}
}

// WithData stores an opaque key/value pair on the element.
func WithData(key, value string) Option {
	return func(e *Element) {
		e.SetData(key, value)
	}
}
