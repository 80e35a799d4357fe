package mosaic

import (
	"math"

	"github.com/mosaicui/mosaic/internal/debug"
)

// Axis identifies a scroll axis.
type Axis int

const (
	// AxisHorizontal is the x axis.
	AxisHorizontal Axis = iota
	// AxisVertical is the y axis.
	AxisVertical
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// scrollGrab records an active scrollbar drag: which element and axis own
// the gesture, where inside the thumb the grab began (preserved for smooth
// relative motion), and the border inset of the track at grab time.
type scrollGrab struct {
	id          string
	axis        Axis
	thumbOffset int
	border      int
}

// ScrollState holds per-element scroll positions for one UI session, plus
// the transient pointer state needed for wheel routing and scrollbar drags.
// Offsets are always clamped to [0, content-size - viewport-size] per axis.
type ScrollState struct {
	offsets      map[string]Point
	contentSizes map[string]Size
	lastPointer  Point
	grab         *scrollGrab
}

// NewScrollState creates empty scroll state.
func NewScrollState() *ScrollState {
	return &ScrollState{
		offsets:      make(map[string]Point),
		contentSizes: make(map[string]Size),
	}
}

// Offset returns the scroll offset for an element (zero if never scrolled).
func (s *ScrollState) Offset(id string) Point {
	return s.offsets[id]
}

// RecordPointer stores the last known pointer position. Keyboard paging
// with nothing focused routes to the scrollable under this position.
func (s *ScrollState) RecordPointer(x, y int) {
	s.lastPointer = Point{X: x, Y: y}
}

// LastPointer returns the last recorded pointer position.
func (s *ScrollState) LastPointer() Point {
	return s.lastPointer
}

// DragActive returns true while a scrollbar grab is in progress.
func (s *ScrollState) DragActive() bool {
	return s.grab != nil
}

// GrabTarget returns the ID of the element whose scrollbar is grabbed, or "".
func (s *ScrollState) GrabTarget() string {
	if s.grab == nil {
		return ""
	}
	return s.grab.id
}

// maxOffset returns the scrollable range per axis for an element, from the
// external layout's content and viewport sizes.
func maxOffset(entry LayoutEntry) Point {
	return Point{
		X: max(0, entry.ContentSize.Width-entry.ViewportSize.Width),
		Y: max(0, entry.ContentSize.Height-entry.ViewportSize.Height),
	}
}

// setOffset stores a clamped scroll offset and caches the content size.
// Returns the applied offset.
func (s *ScrollState) setOffset(id string, entry LayoutEntry, x, y int) Point {
	limit := maxOffset(entry)
	p := Point{
		X: min(max(x, 0), limit.X),
		Y: min(max(y, 0), limit.Y),
	}
	s.offsets[id] = p
	s.contentSizes[id] = entry.ContentSize
	return p
}

// ScrollBy scrolls an element by a delta, clamped to the valid range.
// Returns the applied offset and false if the element has no layout yet.
func (s *ScrollState) ScrollBy(id string, layout LayoutResult, dx, dy int) (Point, bool) {
	entry, ok := layout.Lookup(id)
	if !ok {
		return Point{}, false
	}
	cur := s.offsets[id]
	return s.setOffset(id, entry, cur.X+dx, cur.Y+dy), true
}

// PageUp scrolls an element up by one viewport height.
func (s *ScrollState) PageUp(id string, layout LayoutResult) (Point, bool) {
	entry, ok := layout.Lookup(id)
	if !ok {
		return Point{}, false
	}
	return s.ScrollBy(id, layout, 0, -entry.ViewportSize.Height)
}

// PageDown scrolls an element down by one viewport height.
func (s *ScrollState) PageDown(id string, layout LayoutResult) (Point, bool) {
	entry, ok := layout.Lookup(id)
	if !ok {
		return Point{}, false
	}
	return s.ScrollBy(id, layout, 0, entry.ViewportSize.Height)
}

// ScrollHome scrolls an element to the top.
func (s *ScrollState) ScrollHome(id string, layout LayoutResult) (Point, bool) {
	entry, ok := layout.Lookup(id)
	if !ok {
		return Point{}, false
	}
	cur := s.offsets[id]
	return s.setOffset(id, entry, cur.X, 0), true
}

// ScrollEnd scrolls an element to the bottom.
func (s *ScrollState) ScrollEnd(id string, layout LayoutResult) (Point, bool) {
	entry, ok := layout.Lookup(id)
	if !ok {
		return Point{}, false
	}
	cur := s.offsets[id]
	return s.setOffset(id, entry, cur.X, maxOffset(entry).Y), true
}

// Cleanup discards offsets and cached sizes for elements no longer in the
// tree, and cancels a grab whose element disappeared.
func (s *ScrollState) Cleanup(root *Element) {
	live := make(map[string]struct{})
	if root != nil {
		root.Walk(func(el *Element) bool {
			live[el.ID()] = struct{}{}
			return true
		})
	}
	for id := range s.offsets {
		if _, ok := live[id]; !ok {
			delete(s.offsets, id)
		}
	}
	for id := range s.contentSizes {
		if _, ok := live[id]; !ok {
			delete(s.contentSizes, id)
		}
	}
	if s.grab != nil {
		if _, ok := live[s.grab.id]; !ok {
			s.grab = nil
		}
	}
}

// Proportional scrollbar mapping, shared by paint and hit/drag. Given track
// length L, content size C, viewport size V, and offset O:
//
//	thumb size   S = clamp(round(V/C * L), 1, L)
//	scroll range R = L - S
//	thumb pos    P = R > 0 ? round(O/(C-V) * R) : 0
//
// The inverse recovers an offset from a pointer coordinate during drags.

// thumbSpan computes the thumb size S for a track of length track.
func thumbSpan(track, content, viewport int) int {
	if track <= 0 || content <= 0 {
		return 0
	}
	s := int(math.Round(float64(viewport) / float64(content) * float64(track)))
	return min(max(s, 1), track)
}

// thumbPosition computes the thumb offset P within the track.
func thumbPosition(track, thumb, content, viewport, offset int) int {
	scrollRange := track - thumb
	maxOff := content - viewport
	if scrollRange <= 0 || maxOff <= 0 {
		return 0
	}
	return int(math.Round(float64(offset) / float64(maxOff) * float64(scrollRange)))
}

// invertThumb recovers the scroll offset for a pointer coordinate within a
// track: O' = round((coord - thumbOffset - trackStart) / R * (C-V)),
// clamped to the valid range. thumbOffset is where inside the thumb the
// grab began.
func invertThumb(coord, trackStart, thumbOffset, track, thumb, content, viewport int) int {
	scrollRange := track - thumb
	maxOff := content - viewport
	if scrollRange <= 0 || maxOff <= 0 {
		return 0
	}
	o := int(math.Round(float64(coord-thumbOffset-trackStart) / float64(scrollRange) * float64(maxOff)))
	return min(max(o, 0), maxOff)
}

// scrollbarGeom is the painted geometry of one scrollbar.
type scrollbarGeom struct {
	axis  Axis
	track Rect
	thumb Rect
}

// showScrollbar reports whether an element shows a scrollbar on an axis:
// always for OverflowScroll, only on actual overflow for OverflowAuto.
func showScrollbar(el *Element, axis Axis, entry LayoutEntry) bool {
	ox, oy := el.OverflowAxes()
	o := ox
	content, viewport := entry.ContentSize.Width, entry.ViewportSize.Width
	if axis == AxisVertical {
		o = oy
		content, viewport = entry.ContentSize.Height, entry.ViewportSize.Height
	}
	switch o {
	case OverflowScroll:
		return true
	case OverflowAuto:
		return content > viewport
	default:
		return false
	}
}

// borderInset returns the track inset caused by the element's border.
func borderInset(el *Element) int {
	if el.Border() != BorderNone {
		return 1
	}
	return 0
}

// scrollbarGeoms computes the track and thumb rects for every scrollbar the
// element currently shows: a 1-cell-wide vertical track on the inner-right
// edge and a 1-cell-tall horizontal track on the inner-bottom edge, the
// latter shortened by one cell when both are shown.
func scrollbarGeoms(el *Element, entry LayoutEntry, offset Point) []scrollbarGeom {
	inner := entry.Rect.InsetUniform(borderInset(el))
	if inner.IsEmpty() {
		return nil
	}

	showV := showScrollbar(el, AxisVertical, entry)
	showH := showScrollbar(el, AxisHorizontal, entry)

	var geoms []scrollbarGeom
	if showV {
		track := NewRect(inner.Right()-1, inner.Y, 1, inner.Height)
		span := thumbSpan(track.Height, entry.ContentSize.Height, entry.ViewportSize.Height)
		pos := thumbPosition(track.Height, span, entry.ContentSize.Height, entry.ViewportSize.Height, offset.Y)
		geoms = append(geoms, scrollbarGeom{
			axis:  AxisVertical,
			track: track,
			thumb: NewRect(track.X, track.Y+pos, 1, span),
		})
	}
	if showH {
		length := inner.Width
		if showV {
			// Avoid colliding with the vertical track in the corner.
			length--
		}
		track := NewRect(inner.X, inner.Bottom()-1, length, 1)
		span := thumbSpan(track.Width, entry.ContentSize.Width, entry.ViewportSize.Width)
		pos := thumbPosition(track.Width, span, entry.ContentSize.Width, entry.ViewportSize.Width, offset.X)
		geoms = append(geoms, scrollbarGeom{
			axis:  AxisHorizontal,
			track: track,
			thumb: NewRect(track.X+pos, track.Y, span, 1),
		})
	}
	return geoms
}

// scrollables returns every scrollable element in pre-order.
func scrollables(root *Element) []*Element {
	var out []*Element
	root.Walk(func(el *Element) bool {
		if el.IsScrollable() {
			out = append(out, el)
		}
		return true
	})
	return out
}

// ScrollableAt returns the innermost scrollable element containing the
// point. Deeper elements appear later in a pre-order traversal, so the list
// is scanned in reverse document order.
func ScrollableAt(root *Element, layout LayoutResult, x, y int) *Element {
	if root == nil {
		return nil
	}
	list := scrollables(root)
	for i := len(list) - 1; i >= 0; i-- {
		el := list[i]
		entry, ok := layout.Lookup(el.ID())
		if !ok {
			continue
		}
		if entry.Rect.Contains(x, y) {
			return el
		}
	}
	return nil
}

// NearestScrollable returns the closest scrollable ancestor of el,
// including el itself, or nil.
func NearestScrollable(el *Element) *Element {
	for e := el; e != nil; e = e.Parent() {
		if e.IsScrollable() {
			return e
		}
	}
	return nil
}

// HandleWheel routes a wheel event to the innermost scrollable element
// containing the pointer. Only axes whose delta is non-zero and whose
// content actually overflows are moved. Returns the target ID and the
// applied delta; ok is false when nothing scrollable was under the pointer.
func (s *ScrollState) HandleWheel(root *Element, layout LayoutResult, x, y, dx, dy int) (id string, applied Point, ok bool) {
	el := ScrollableAt(root, layout, x, y)
	if el == nil {
		return "", Point{}, false
	}
	entry, found := layout.Lookup(el.ID())
	if !found {
		return "", Point{}, false
	}

	limit := maxOffset(entry)
	if dx != 0 && (limit.X == 0 || !el.Scrollable(AxisHorizontal)) {
		dx = 0
	}
	if dy != 0 && (limit.Y == 0 || !el.Scrollable(AxisVertical)) {
		dy = 0
	}
	if dx == 0 && dy == 0 {
		return el.ID(), Point{}, true
	}

	before := s.offsets[el.ID()]
	after := s.setOffset(el.ID(), entry, before.X+dx, before.Y+dy)
	return el.ID(), Point{X: after.X - before.X, Y: after.Y - before.Y}, true
}

// HandleMouseDown performs the scrollbar hit test for a pointer press.
// A hit on a thumb records a grab preserving the in-thumb offset; a hit on
// the track centers the thumb on the click point and jumps immediately,
// then records a grab so the gesture continues as a drag. consumed reports
// whether the press landed on a scrollbar (and must not be treated as an
// ordinary click); jump is the offset change a track click applied.
func (s *ScrollState) HandleMouseDown(root *Element, layout LayoutResult, x, y int) (id string, jump Point, consumed bool) {
	if root == nil {
		return "", Point{}, false
	}
	list := scrollables(root)
	for i := len(list) - 1; i >= 0; i-- {
		el := list[i]
		entry, ok := layout.Lookup(el.ID())
		if !ok {
			continue
		}
		offset := s.offsets[el.ID()]
		for _, g := range scrollbarGeoms(el, entry, offset) {
			if !g.track.Contains(x, y) {
				continue
			}

			coord, thumbStart, trackStart, track, span := y, g.thumb.Y, g.track.Y, g.track.Height, g.thumb.Height
			content, viewport := entry.ContentSize.Height, entry.ViewportSize.Height
			if g.axis == AxisHorizontal {
				coord, thumbStart, trackStart, track, span = x, g.thumb.X, g.track.X, g.track.Width, g.thumb.Width
				content, viewport = entry.ContentSize.Width, entry.ViewportSize.Width
			}

			grab := &scrollGrab{id: el.ID(), axis: g.axis, border: borderInset(el)}
			if g.thumb.Contains(x, y) {
				grab.thumbOffset = coord - thumbStart
			} else {
				// Track click: center the thumb on the click point and jump.
				grab.thumbOffset = span / 2
				o := invertThumb(coord, trackStart, grab.thumbOffset, track, span, content, viewport)
				var after Point
				if g.axis == AxisVertical {
					after = s.setOffset(el.ID(), entry, offset.X, o)
				} else {
					after = s.setOffset(el.ID(), entry, o, offset.Y)
				}
				jump = Point{X: after.X - offset.X, Y: after.Y - offset.Y}
			}
			s.grab = grab
			debug.Log("scroll: grab %s %s thumbOffset=%d", grab.id, grab.axis, grab.thumbOffset)
			return el.ID(), jump, true
		}
	}
	return "", Point{}, false
}

// HandleMouseDrag applies the inverted mapping for an active grab.
// Track geometry is recomputed from the border size recorded at grab time,
// so a style change mid-drag cannot skew the gesture.
// Returns the grabbed element's ID and true when an offset was applied.
func (s *ScrollState) HandleMouseDrag(root *Element, layout LayoutResult, x, y int) (string, bool) {
	if s.grab == nil {
		return "", false
	}
	entry, ok := layout.Lookup(s.grab.id)
	if !ok {
		return "", false
	}

	inner := entry.Rect.InsetUniform(s.grab.border)
	if inner.IsEmpty() {
		return "", false
	}

	offset := s.offsets[s.grab.id]
	if s.grab.axis == AxisVertical {
		track := inner.Height
		span := thumbSpan(track, entry.ContentSize.Height, entry.ViewportSize.Height)
		o := invertThumb(y, inner.Y, s.grab.thumbOffset, track, span, entry.ContentSize.Height, entry.ViewportSize.Height)
		s.setOffset(s.grab.id, entry, offset.X, o)
	} else {
		track := inner.Width
		if el := root.FindByID(s.grab.id); el != nil && showScrollbar(el, AxisVertical, entry) {
			track--
		}
		span := thumbSpan(track, entry.ContentSize.Width, entry.ViewportSize.Width)
		o := invertThumb(x, inner.X, s.grab.thumbOffset, track, span, entry.ContentSize.Width, entry.ViewportSize.Width)
		s.setOffset(s.grab.id, entry, o, offset.Y)
	}
	return s.grab.id, true
}

// HandleMouseUp clears an active grab. Returns true if one was active.
func (s *ScrollState) HandleMouseUp() bool {
	if s.grab == nil {
		return false
	}
	debug.Log("scroll: release grab %s", s.grab.id)
	s.grab = nil
	return true
}
