package mosaic

import "testing"

// scrollLayout builds a single-entry layout for scroll tests.
func scrollLayout(id string, rect Rect, content, viewport Size) LayoutResult {
	return LayoutResult{id: LayoutEntry{Rect: rect, ContentSize: content, ViewportSize: viewport}}
}

func TestThumbMapping(t *testing.T) {
	// content=500, viewport=100, track=10.
	const track, content, viewport = 10, 500, 100

	span := thumbSpan(track, content, viewport)
	if span != 2 {
		t.Fatalf("thumbSpan = %d, want 2", span)
	}

	type tc struct {
		offset  int
		wantPos int
	}

	tests := map[string]tc{
		"top":      {offset: 0, wantPos: 0},
		"quarter":  {offset: 100, wantPos: 2},
		"half":     {offset: 200, wantPos: 4},
		"bottom":   {offset: 400, wantPos: 8},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pos := thumbPosition(track, span, content, viewport, tt.offset)
			if pos != tt.wantPos {
				t.Errorf("thumbPosition(offset=%d) = %d, want %d", tt.offset, pos, tt.wantPos)
			}

			// Inverting the thumb position recovers the offset.
			got := invertThumb(pos, 0, 0, track, span, content, viewport)
			if got != tt.offset {
				t.Errorf("invertThumb(%d) = %d, want %d", pos, got, tt.offset)
			}
		})
	}
}

func TestThumbSpanMinimum(t *testing.T) {
	// Tiny viewport against huge content still yields a grabbable thumb.
	if got := thumbSpan(10, 100000, 5); got != 1 {
		t.Errorf("thumbSpan = %d, want 1", got)
	}
	// Content smaller than the viewport fills the whole track.
	if got := thumbSpan(10, 50, 100); got != 10 {
		t.Errorf("thumbSpan = %d, want 10", got)
	}
}

func TestScrollByClamping(t *testing.T) {
	s := NewScrollState()
	layout := scrollLayout("list", NewRect(0, 0, 100, 100), Size{100, 500}, Size{100, 100})

	type tc struct {
		dx, dy int
		want   Point
	}

	tests := map[string]tc{
		"within range":       {dy: 50, want: Point{Y: 50}},
		"clamps at max":      {dy: 10000, want: Point{Y: 400}},
		"clamps at zero":     {dy: -10000, want: Point{Y: 0}},
		"no horizontal room": {dx: 50, want: Point{Y: 0}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := NewScrollState()
			got, ok := s.ScrollBy("list", layout, tt.dx, tt.dy)
			if !ok {
				t.Fatal("ScrollBy ok = false")
			}
			if got != tt.want {
				t.Errorf("ScrollBy(%d, %d) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}

	if _, ok := s.ScrollBy("missing", layout, 0, 1); ok {
		t.Error("ScrollBy on missing layout ok = true, want false")
	}
}

func TestScrollPagingAndEnds(t *testing.T) {
	s := NewScrollState()
	layout := scrollLayout("list", NewRect(0, 0, 100, 100), Size{100, 500}, Size{100, 100})

	if got, _ := s.PageDown("list", layout); got.Y != 100 {
		t.Errorf("PageDown offset = %d, want 100", got.Y)
	}
	if got, _ := s.PageUp("list", layout); got.Y != 0 {
		t.Errorf("PageUp offset = %d, want 0", got.Y)
	}
	if got, _ := s.ScrollEnd("list", layout); got.Y != 400 {
		t.Errorf("ScrollEnd offset = %d, want 400", got.Y)
	}
	if got, _ := s.ScrollHome("list", layout); got.Y != 0 {
		t.Errorf("ScrollHome offset = %d, want 0", got.Y)
	}
}

func TestHandleWheelInnermost(t *testing.T) {
	outer := New("outer", WithOverflow(OverflowVisible, OverflowScroll))
	inner := New("inner", WithOverflow(OverflowVisible, OverflowScroll))
	outer.AppendChild(inner)

	layout := LayoutResult{
		"outer": {Rect: NewRect(0, 0, 50, 50), ContentSize: Size{50, 200}, ViewportSize: Size{50, 50}},
		"inner": {Rect: NewRect(10, 10, 20, 20), ContentSize: Size{20, 80}, ViewportSize: Size{20, 20}},
	}

	s := NewScrollState()

	id, applied, ok := s.HandleWheel(outer, layout, 15, 15, 0, 5)
	if !ok || id != "inner" || applied.Y != 5 {
		t.Errorf("wheel over inner = (%q, %+v, %v), want (inner, {0 5}, true)", id, applied, ok)
	}

	id, applied, ok = s.HandleWheel(outer, layout, 45, 45, 0, 5)
	if !ok || id != "outer" || applied.Y != 5 {
		t.Errorf("wheel over outer = (%q, %+v, %v), want (outer, {0 5}, true)", id, applied, ok)
	}

	if _, _, ok := s.HandleWheel(outer, layout, 200, 200, 0, 5); ok {
		t.Error("wheel outside everything ok = true, want false")
	}

	// The horizontal axis does not overflow: its delta is dropped.
	id, applied, ok = s.HandleWheel(outer, layout, 15, 15, 5, 0)
	if !ok || id != "inner" || applied != (Point{}) {
		t.Errorf("horizontal wheel = (%q, %+v, %v), want (inner, zero, true)", id, applied, ok)
	}
}

func TestScrollbarGeoms(t *testing.T) {
	el := New("list", WithOverflow(OverflowVisible, OverflowScroll))
	entry := LayoutEntry{
		Rect:         NewRect(0, 0, 10, 10),
		ContentSize:  Size{10, 50},
		ViewportSize: Size{10, 10},
	}

	geoms := scrollbarGeoms(el, entry, Point{})
	if len(geoms) != 1 {
		t.Fatalf("len(geoms) = %d, want 1", len(geoms))
	}
	g := geoms[0]
	if g.axis != AxisVertical {
		t.Errorf("axis = %v, want vertical", g.axis)
	}
	if g.track != NewRect(9, 0, 1, 10) {
		t.Errorf("track = %+v, want inner-right column", g.track)
	}
	if g.thumb != NewRect(9, 0, 1, 2) {
		t.Errorf("thumb = %+v, want 2 cells at top", g.thumb)
	}
}

func TestScrollbarAutoVisibility(t *testing.T) {
	el := New("list", WithOverflow(OverflowVisible, OverflowAuto))

	fits := LayoutEntry{Rect: NewRect(0, 0, 10, 10), ContentSize: Size{10, 8}, ViewportSize: Size{10, 10}}
	if showScrollbar(el, AxisVertical, fits) {
		t.Error("auto scrollbar shown with content that fits")
	}

	overflows := LayoutEntry{Rect: NewRect(0, 0, 10, 10), ContentSize: Size{10, 30}, ViewportSize: Size{10, 10}}
	if !showScrollbar(el, AxisVertical, overflows) {
		t.Error("auto scrollbar hidden with overflowing content")
	}
}

func TestScrollbarDragGesture(t *testing.T) {
	el := New("list", WithOverflow(OverflowVisible, OverflowScroll))
	layout := scrollLayout("list", NewRect(0, 0, 10, 10), Size{10, 50}, Size{10, 10})

	s := NewScrollState()

	// Grab the thumb (track x=9, thumb rows 0-1 at offset 0).
	id, jump, consumed := s.HandleMouseDown(el, layout, 9, 1)
	if !consumed || id != "list" || jump != (Point{}) {
		t.Fatalf("thumb grab = (%q, %+v, %v), want (list, zero, true)", id, jump, consumed)
	}
	if !s.DragActive() {
		t.Fatal("DragActive() = false after grab")
	}

	// Drag to the bottom of the track: offset reaches the maximum.
	// thumbOffset=1, track=10, span=2: O' = round((9-1)/8 * 40) = 40.
	if id, ok := s.HandleMouseDrag(el, layout, 9, 9); !ok || id != "list" {
		t.Fatalf("drag = (%q, %v), want (list, true)", id, ok)
	}
	if got := s.Offset("list"); got.Y != 40 {
		t.Errorf("offset after drag = %d, want 40", got.Y)
	}

	if !s.HandleMouseUp() {
		t.Error("HandleMouseUp() = false, want true")
	}
	if s.DragActive() {
		t.Error("DragActive() = true after release")
	}
}

func TestScrollbarTrackClickJumps(t *testing.T) {
	el := New("list", WithOverflow(OverflowVisible, OverflowScroll))
	layout := scrollLayout("list", NewRect(0, 0, 10, 10), Size{10, 50}, Size{10, 10})

	s := NewScrollState()

	// Click the track at row 5: thumb centers there (thumbOffset = span/2 = 1)
	// and the offset jumps to round((5-1)/8 * 40) = 20.
	id, jump, consumed := s.HandleMouseDown(el, layout, 9, 5)
	if !consumed || id != "list" {
		t.Fatalf("track click = (%q, %v), want (list, true)", id, consumed)
	}
	if jump.Y != 20 {
		t.Errorf("jump = %+v, want Y=20", jump)
	}
	if got := s.Offset("list"); got.Y != 20 {
		t.Errorf("offset after track click = %d, want 20", got.Y)
	}
	// The gesture continues as a drag.
	if !s.DragActive() {
		t.Error("DragActive() = false after track click")
	}
}

func TestScrollMissesAreNotConsumed(t *testing.T) {
	el := New("list", WithOverflow(OverflowVisible, OverflowScroll))
	layout := scrollLayout("list", NewRect(0, 0, 10, 10), Size{10, 50}, Size{10, 10})

	s := NewScrollState()
	if _, _, consumed := s.HandleMouseDown(el, layout, 4, 4); consumed {
		t.Error("press inside content consumed as a scrollbar hit")
	}
	if _, ok := s.HandleMouseDrag(el, layout, 4, 5); ok {
		t.Error("drag without a grab reported ok")
	}
	if s.HandleMouseUp() {
		t.Error("release without a grab reported a cleared grab")
	}
}

func TestScrollCleanup(t *testing.T) {
	el := New("list", WithOverflow(OverflowVisible, OverflowScroll))
	layout := scrollLayout("list", NewRect(0, 0, 10, 10), Size{10, 50}, Size{10, 10})

	s := NewScrollState()
	s.ScrollBy("list", layout, 0, 10)
	s.HandleMouseDown(el, layout, 9, 0)

	s.Cleanup(New("other-root"))
	if got := s.Offset("list"); got != (Point{}) {
		t.Errorf("offset after Cleanup = %+v, want zero", got)
	}
	if s.DragActive() {
		t.Error("grab survived Cleanup of its element")
	}
}
