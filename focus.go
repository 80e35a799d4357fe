package mosaic

import "math"

// Direction is a spatial focus-movement direction.
type Direction int

const (
	// DirUp moves focus upward.
	DirUp Direction = iota
	// DirDown moves focus downward.
	DirDown
	// DirLeft moves focus left.
	DirLeft
	// DirRight moves focus right.
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "right"
	}
}

// FocusState tracks which element currently has keyboard focus for one UI
// session. At most one element is focused at a time; focus refers to
// elements by stable ID so it survives tree rebuilds.
type FocusState struct {
	current string
}

// NewFocusState creates focus state with nothing focused.
func NewFocusState() *FocusState {
	return &FocusState{}
}

// Current returns the focused element's ID, or "".
func (f *FocusState) Current() string {
	return f.current
}

// CollectFocusable returns every focusable element in pre-order document
// order. Disabled elements are excluded.
func CollectFocusable(root *Element) []*Element {
	var out []*Element
	if root == nil {
		return out
	}
	root.Walk(func(el *Element) bool {
		if el.Focusable() {
			out = append(out, el)
		}
		return true
	})
	return out
}

// Focus moves focus to the element with the given ID. It returns the
// previous and new focused IDs; ok is false (and nothing changes) when the
// target is missing or not focusable. Focusing "" clears focus.
func (f *FocusState) Focus(root *Element, id string) (prev, next string, ok bool) {
	prev = f.current
	if id == "" {
		f.apply(root, "")
		return prev, "", true
	}
	target := root.FindByID(id)
	if target == nil || !target.Focusable() {
		return prev, prev, false
	}
	f.apply(root, id)
	return prev, id, true
}

// Clear removes focus from whatever holds it. Returns the previously
// focused ID.
func (f *FocusState) Clear(root *Element) string {
	prev := f.current
	f.apply(root, "")
	return prev
}

// Next moves focus to the next focusable element in document order, wrapping
// at the end. With nothing focused (or the focused element gone), the first
// focusable element is chosen. Returns the previous and new IDs; ok is false
// when the tree has no focusable elements.
func (f *FocusState) Next(root *Element) (prev, next string, ok bool) {
	return f.cycle(root, 1)
}

// Prev moves focus to the previous focusable element in document order,
// wrapping at the start.
func (f *FocusState) Prev(root *Element) (prev, next string, ok bool) {
	return f.cycle(root, -1)
}

func (f *FocusState) cycle(root *Element, step int) (prev, next string, ok bool) {
	prev = f.current
	list := CollectFocusable(root)
	if len(list) == 0 {
		return prev, prev, false
	}

	idx := -1
	for i, el := range list {
		if el.ID() == f.current {
			idx = i
			break
		}
	}
	if idx < 0 {
		// Nothing focused, or the focused element left the tree.
		idx = 0
		if step < 0 {
			idx = len(list) - 1
		}
	} else {
		idx = (idx + step + len(list)) % len(list)
	}

	next = list[idx].ID()
	f.apply(root, next)
	return prev, next, true
}

// Move moves focus spatially: among focusable elements whose center lies
// strictly beyond the focused element's center in the given direction, the
// one with the lowest distance score wins. The score weights distance along
// the movement axis fully and distance across it by half, so the nearest
// roughly-in-line element beats a closer but badly misaligned one.
//
// With nothing focused, Move behaves like Next. Candidates without layout
// are skipped. Returns ok=false when no candidate exists in that direction;
// focus then stays put.
func (f *FocusState) Move(root *Element, layout LayoutResult, dir Direction) (prev, next string, ok bool) {
	prev = f.current
	if f.current == "" {
		return f.Next(root)
	}
	entry, found := layout.Lookup(f.current)
	if !found {
		return f.Next(root)
	}
	curX, curY := entry.Rect.Center()

	best := ""
	bestScore := math.Inf(1)
	for _, el := range CollectFocusable(root) {
		if el.ID() == f.current {
			continue
		}
		cand, ok := layout.Lookup(el.ID())
		if !ok {
			continue
		}
		cx, cy := cand.Rect.Center()

		var primary, secondary float64
		switch dir {
		case DirUp:
			primary, secondary = curY-cy, math.Abs(cx-curX)
		case DirDown:
			primary, secondary = cy-curY, math.Abs(cx-curX)
		case DirLeft:
			primary, secondary = curX-cx, math.Abs(cy-curY)
		case DirRight:
			primary, secondary = cx-curX, math.Abs(cy-curY)
		}
		if primary <= 0 {
			continue
		}
		score := primary + 0.5*secondary
		if score < bestScore {
			bestScore = score
			best = el.ID()
		}
	}

	if best == "" {
		return prev, prev, false
	}
	f.apply(root, best)
	return prev, best, true
}

// Cleanup clears focus if the focused element no longer exists or is no
// longer focusable (e.g. became disabled). Returns the cleared ID, or "".
func (f *FocusState) Cleanup(root *Element) string {
	if f.current == "" {
		return ""
	}
	if root != nil {
		if el := root.FindByID(f.current); el != nil && el.Focusable() {
			return ""
		}
	}
	prev := f.current
	f.apply(root, "")
	return prev
}

// apply updates the state and the focused flags on the tree.
func (f *FocusState) apply(root *Element, id string) {
	if root != nil {
		root.Walk(func(el *Element) bool {
			el.setFocused(el.ID() == id)
			return true
		})
	}
	f.current = id
}
