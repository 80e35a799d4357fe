package mosaic

import (
	"time"

	"github.com/mosaicui/mosaic/internal/debug"
)

// wheelStep is how many cells one wheel tick scrolls.
const wheelStep = 3

// Engine ties the pieces together for one UI session: it owns the animation,
// focus, and scroll state, translates raw input into semantic events, and
// composites frames. All methods must be called from the single UI goroutine.
//
// The engine never talks to a terminal and never computes layout; the
// embedding program feeds it raw events and a LayoutResult and hands it a
// Buffer to paint into.
type Engine struct {
	anim     *AnimationState
	focus    *FocusState
	scroll   *ScrollState
	comp     *Compositor
	resolver Resolver

	// Active pointer press on a draggable element (not a scrollbar grab).
	dragTarget string
	dragButton MouseButton
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithResolver installs the theme resolver used for Var and Derived colors.
func WithResolver(r Resolver) EngineOption {
	return func(e *Engine) {
		e.resolver = r
	}
}

// WithReducedMotion starts the engine with reduced motion enabled.
func WithReducedMotion(v bool) EngineOption {
	return func(e *Engine) {
		e.anim.SetReducedMotion(v)
	}
}

// WithClock overrides the time source for animation and frame-cycle content.
// Intended for tests.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.anim.SetClock(now)
		e.comp.SetClock(now)
	}
}

// NewEngine creates an engine with empty state.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		anim:   NewAnimationState(),
		focus:  NewFocusState(),
		scroll: NewScrollState(),
	}
	e.comp = NewCompositor(e.anim, e.scroll, nil)
	for _, opt := range opts {
		opt(e)
	}
	e.anim.SetResolver(e.resolver)
	e.comp.resolver = e.resolver
	return e
}

// Animation exposes the engine's animation state.
func (e *Engine) Animation() *AnimationState {
	return e.anim
}

// Focus exposes the engine's focus state.
func (e *Engine) Focus() *FocusState {
	return e.focus
}

// Scroll exposes the engine's scroll state.
func (e *Engine) Scroll() *ScrollState {
	return e.scroll
}

// Animating returns true while any transition is in flight. Callers keep
// ticking Render frames while this is true, even with no input pending.
func (e *Engine) Animating() bool {
	return e.anim.Animating()
}

// Render advances animations one frame and paints the tree into buf.
func (e *Engine) Render(root *Element, layout LayoutResult, buf *Buffer) {
	e.anim.Update(root)
	e.comp.Render(root, layout, buf)
}

// Cleanup discards state for elements no longer in the tree. Call after
// structural tree rebuilds.
func (e *Engine) Cleanup(root *Element) {
	e.anim.Cleanup(root)
	e.scroll.Cleanup(root)
	e.focus.Cleanup(root)
	if e.dragTarget != "" && (root == nil || root.FindByID(e.dragTarget) == nil) {
		e.dragTarget = ""
	}
}

// HandleEvent translates one raw input event into zero or more semantic
// events, updating interaction state along the way.
func (e *Engine) HandleEvent(root *Element, layout LayoutResult, ev Event) []SemanticEvent {
	switch ev := ev.(type) {
	case ResizeEvent:
		return []SemanticEvent{Resized{Width: ev.Width, Height: ev.Height}}
	case KeyEvent:
		return e.handleKey(root, layout, ev)
	case MouseEvent:
		return e.handleMouse(root, layout, ev)
	}
	return nil
}

// handleKey routes keyboard input: Tab cycles focus, bare arrows move focus
// spatially, paging keys scroll, everything else goes to the focused element.
// A focused element that captures input receives arrows and paging keys as
// ordinary key presses instead.
func (e *Engine) handleKey(root *Element, layout LayoutResult, ev KeyEvent) []SemanticEvent {
	if ev.Kind == KeyKindRelease {
		return nil
	}

	var focused *Element
	if id := e.focus.Current(); id != "" && root != nil {
		focused = root.FindByID(id)
	}
	captures := focused != nil && focused.CapturesInput()

	switch {
	case ev.Key == KeyTab:
		if ev.Mods.Has(ModShift) {
			return focusEvents(e.focus.Prev(root))
		}
		return focusEvents(e.focus.Next(root))

	case isArrowKey(ev.Key) && ev.Mods == 0 && !captures:
		return focusEvents(e.focus.Move(root, layout, arrowDirection(ev.Key)))

	case isPagingKey(ev.Key) && !captures:
		return e.handlePagingKey(root, layout, ev.Key)
	}

	return []SemanticEvent{KeyPress{
		ID:   e.focus.Current(),
		Key:  ev.Key,
		Rune: ev.Rune,
		Mods: ev.Mods,
	}}
}

// handlePagingKey routes PageUp/PageDown/Home/End to the nearest scrollable
// ancestor of the focused element, or the scrollable under the last pointer
// position when nothing is focused.
func (e *Engine) handlePagingKey(root *Element, layout LayoutResult, key Key) []SemanticEvent {
	var target *Element
	if id := e.focus.Current(); id != "" && root != nil {
		target = NearestScrollable(root.FindByID(id))
	}
	if target == nil {
		p := e.scroll.LastPointer()
		target = ScrollableAt(root, layout, p.X, p.Y)
	}
	if target == nil {
		return nil
	}

	id := target.ID()
	before := e.scroll.Offset(id)
	var after Point
	var ok bool
	switch key {
	case KeyPageUp:
		after, ok = e.scroll.PageUp(id, layout)
	case KeyPageDown:
		after, ok = e.scroll.PageDown(id, layout)
	case KeyHome:
		after, ok = e.scroll.ScrollHome(id, layout)
	case KeyEnd:
		after, ok = e.scroll.ScrollEnd(id, layout)
	}
	if !ok || after == before {
		return nil
	}
	return []SemanticEvent{Scroll{
		ID:     id,
		Delta:  Point{X: after.X - before.X, Y: after.Y - before.Y},
		Offset: after,
	}}
}

// handleMouse routes pointer input. Scrollbar gestures are consumed before
// click dispatch; everything else resolves through the hit tester.
func (e *Engine) handleMouse(root *Element, layout LayoutResult, ev MouseEvent) []SemanticEvent {
	if dx, dy, isWheel := wheelDelta(ev.Button); isWheel {
		id, applied, ok := e.scroll.HandleWheel(root, layout, ev.X, ev.Y, dx, dy)
		if !ok || applied == (Point{}) {
			return nil
		}
		return []SemanticEvent{Scroll{ID: id, Delta: applied, Offset: e.scroll.Offset(id)}}
	}

	e.scroll.RecordPointer(ev.X, ev.Y)

	switch ev.Action {
	case MousePress:
		return e.handlePress(root, layout, ev)
	case MouseDrag:
		return e.handleDragMotion(root, layout, ev)
	case MouseReleaseAction:
		return e.handleRelease(root, layout, ev)
	case MouseMotion:
		return e.handleMotion(root, layout, ev)
	}
	return nil
}

func (e *Engine) handlePress(root *Element, layout LayoutResult, ev MouseEvent) []SemanticEvent {
	if id, jump, consumed := e.scroll.HandleMouseDown(root, layout, ev.X, ev.Y); consumed {
		if jump == (Point{}) {
			return nil
		}
		return []SemanticEvent{Scroll{ID: id, Delta: jump, Offset: e.scroll.Offset(id)}}
	}

	hit := HitTest(root, layout, ev.X, ev.Y)

	var out []SemanticEvent
	if f := focusableAncestor(hit); f != nil && f.ID() != e.focus.Current() {
		out = append(out, focusEvents(e.focus.Focus(root, f.ID()))...)
	}
	if d := draggableAncestor(hit); d != nil {
		e.dragTarget = d.ID()
		e.dragButton = ev.Button
	}
	if c := clickableAncestor(hit); c != nil {
		debug.Log("engine: click %s at %d,%d", c.ID(), ev.X, ev.Y)
		out = append(out, Click{ID: c.ID(), X: ev.X, Y: ev.Y, Button: ev.Button})
	}
	return out
}

func (e *Engine) handleDragMotion(root *Element, layout LayoutResult, ev MouseEvent) []SemanticEvent {
	if e.scroll.DragActive() {
		before := e.scroll.Offset(e.scroll.GrabTarget())
		id, ok := e.scroll.HandleMouseDrag(root, layout, ev.X, ev.Y)
		if !ok {
			return nil
		}
		after := e.scroll.Offset(id)
		if after == before {
			return nil
		}
		return []SemanticEvent{Scroll{
			ID:     id,
			Delta:  Point{X: after.X - before.X, Y: after.Y - before.Y},
			Offset: after,
		}}
	}

	if e.dragTarget != "" {
		return []SemanticEvent{Drag{ID: e.dragTarget, X: ev.X, Y: ev.Y, Button: e.dragButton}}
	}
	return nil
}

func (e *Engine) handleRelease(root *Element, layout LayoutResult, ev MouseEvent) []SemanticEvent {
	e.scroll.HandleMouseUp()
	e.dragTarget = ""

	id := ""
	if hit := HitTest(root, layout, ev.X, ev.Y); hit != nil {
		id = hit.ID()
	}
	return []SemanticEvent{Release{ID: id, X: ev.X, Y: ev.Y, Button: ev.Button}}
}

func (e *Engine) handleMotion(root *Element, layout LayoutResult, ev MouseEvent) []SemanticEvent {
	var out []SemanticEvent

	// Focus follows the mouse: moving over a focusable element focuses it.
	// Moving over nothing focusable leaves focus where it is.
	if f := HitTestFocusable(root, layout, ev.X, ev.Y); f != nil && f.ID() != e.focus.Current() {
		out = append(out, focusEvents(e.focus.Focus(root, f.ID()))...)
	}

	id := ""
	if hit := HitTest(root, layout, ev.X, ev.Y); hit != nil {
		id = hit.ID()
	}
	return append(out, MouseMove{ID: id, X: ev.X, Y: ev.Y})
}

// focusEvents turns a focus transition into Blur+Focus semantic events.
func focusEvents(prev, next string, ok bool) []SemanticEvent {
	if !ok || prev == next {
		return nil
	}
	debug.Log("focus: %q -> %q", prev, next)
	var out []SemanticEvent
	if prev != "" {
		out = append(out, Blur{ID: prev})
	}
	if next != "" {
		out = append(out, Focus{ID: next})
	}
	return out
}

func isArrowKey(k Key) bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}

func arrowDirection(k Key) Direction {
	switch k {
	case KeyUp:
		return DirUp
	case KeyDown:
		return DirDown
	case KeyLeft:
		return DirLeft
	default:
		return DirRight
	}
}

func isPagingKey(k Key) bool {
	return k == KeyPageUp || k == KeyPageDown || k == KeyHome || k == KeyEnd
}

// wheelDelta maps wheel buttons to scroll deltas in cells.
func wheelDelta(b MouseButton) (dx, dy int, ok bool) {
	switch b {
	case WheelUp:
		return 0, -wheelStep, true
	case WheelDown:
		return 0, wheelStep, true
	case WheelLeft:
		return -wheelStep, 0, true
	case WheelRight:
		return wheelStep, 0, true
	}
	return 0, 0, false
}
