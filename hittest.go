package mosaic

import "math"

// hitBounds is the clip seed for hit testing: effectively unbounded, so
// overflow-visible content outside the buffer still participates the same
// way it would paint on a larger screen.
var hitBounds = NewRect(math.MinInt32/2, math.MinInt32/2, math.MaxInt32, math.MaxInt32)

// HitTest returns the topmost element whose painted area contains (x, y):
// the last entry in paint order whose rect intersected with its inherited
// clip contains the point. An element clipped away by a scrolling ancestor
// is not hittable; the point falls through to the ancestor itself.
//
// Returns nil if nothing is under the point.
func HitTest(root *Element, layout LayoutResult, x, y int) *Element {
	return hitTest(root, layout, x, y, func(*Element) bool { return true })
}

// HitTestInteractive returns the topmost element under (x, y) that accepts
// pointer interaction (clickable or draggable), skipping decorative elements
// painted above it.
func HitTestInteractive(root *Element, layout LayoutResult, x, y int) *Element {
	return hitTest(root, layout, x, y, func(el *Element) bool {
		return (el.Clickable() || el.Draggable()) && !el.Disabled()
	})
}

// HitTestFocusable returns the topmost focusable element under (x, y).
// Used for focus-follows-mouse.
func HitTestFocusable(root *Element, layout LayoutResult, x, y int) *Element {
	return hitTest(root, layout, x, y, (*Element).Focusable)
}

// focusableAncestor returns el or its closest focusable ancestor, or nil.
// A press on a button's text child still focuses the button.
func focusableAncestor(el *Element) *Element {
	for e := el; e != nil; e = e.Parent() {
		if e.Focusable() {
			return e
		}
	}
	return nil
}

// clickableAncestor returns el or its closest clickable, enabled ancestor.
func clickableAncestor(el *Element) *Element {
	for e := el; e != nil; e = e.Parent() {
		if e.Clickable() && !e.Disabled() {
			return e
		}
	}
	return nil
}

// draggableAncestor returns el or its closest draggable, enabled ancestor.
func draggableAncestor(el *Element) *Element {
	for e := el; e != nil; e = e.Parent() {
		if e.Draggable() && !e.Disabled() {
			return e
		}
	}
	return nil
}

// hitTest walks the flattened paint order backwards, so the element painted
// last (highest effective z, latest in document order) wins.
func hitTest(root *Element, layout LayoutResult, x, y int, accept func(*Element) bool) *Element {
	items := flattenTree(root, layout, hitBounds)
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		if !item.entry.Rect.Contains(x, y) || !item.clip.Contains(x, y) {
			continue
		}
		if accept(item.el) {
			return item.el
		}
	}
	return nil
}
