package mosaic

// LayoutEntry is the external layout solver's output for one element:
// the resolved screen rectangle, the natural extent of the element's content
// (for scrollable elements), and the visible inner area excluding border,
// padding, and scrollbar reservations. The engine treats all three as
// authoritative and read-only.
type LayoutEntry struct {
	Rect         Rect
	ContentSize  Size
	ViewportSize Size
}

// LayoutResult maps element IDs to their solved layout. An element without
// an entry has not been laid out yet and is skipped by every operation that
// needs geometry; that is never an error.
type LayoutResult map[string]LayoutEntry

// Lookup returns the layout entry for an element ID.
func (lr LayoutResult) Lookup(id string) (LayoutEntry, bool) {
	entry, ok := lr[id]
	return entry, ok
}
