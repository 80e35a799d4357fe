package mosaic

import (
	"sort"
	"time"

	"github.com/rivo/uniseg"
)

// paintItem is one flattened entry of the element tree: the element, its
// committed layout, its effective z-index, and the clip inherited from
// clipping ancestors.
type paintItem struct {
	el    *Element
	entry LayoutEntry
	order int  // pre-order tree index, the z tie-breaker
	z     int  // effective z-index
	clip  Rect // inherited clip rectangle
}

// innerContentRect returns an element's rect inside border and padding.
// This is the rect descendants are clipped to when overflow is not visible.
func innerContentRect(el *Element, entry LayoutEntry) Rect {
	return entry.Rect.InsetUniform(borderInset(el)).Inset(el.Padding())
}

// flattenTree flattens the tree in pre-order into paint order. Effective
// z-index is the maximum of an element's own z-index and its ancestors'
// effective values, so a child never silently paints below an ancestor's
// stacking context but may explicitly paint above it. Clip rectangles only
// ever shrink going down the tree. Elements without a layout entry produce
// no item, but their subtrees are still visited.
//
// The returned slice is stably sorted by (effective z, pre-order index), so
// siblings at equal z paint in document order. The hit tester walks the same
// slice backwards.
func flattenTree(root *Element, layout LayoutResult, bounds Rect) []paintItem {
	if root == nil {
		return nil
	}
	var items []paintItem
	order := 0

	var walk func(el *Element, parentZ int, clip Rect)
	walk = func(el *Element, parentZ int, clip Rect) {
		z := max(el.ZIndex(), parentZ)
		idx := order
		order++

		childClip := clip
		if entry, ok := layout.Lookup(el.ID()); ok {
			items = append(items, paintItem{
				el:    el,
				entry: entry,
				order: idx,
				z:     z,
				clip:  clip,
			})
			ox, oy := el.OverflowAxes()
			if ox.clips() || oy.clips() {
				childClip = clip.Intersect(innerContentRect(el, entry))
			}
		}

		for _, child := range el.Children() {
			walk(child, z, childClip)
		}
	}
	walk(root, root.ZIndex(), bounds)

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].z < items[j].z
	})
	return items
}

// Compositor flattens an element tree into paint order and paints it into a
// cell buffer, consulting the animation engine for in-flight property values
// and the scroll state for content offsets and scrollbar thumbs.
type Compositor struct {
	anim     *AnimationState
	scroll   *ScrollState
	resolver Resolver
	cache    colorCache
	now      func() time.Time
}

// NewCompositor creates a compositor. anim and scroll may be nil, in which
// case committed values and zero offsets are painted.
func NewCompositor(anim *AnimationState, scroll *ScrollState, resolver Resolver) *Compositor {
	return &Compositor{
		anim:     anim,
		scroll:   scroll,
		resolver: resolver,
		now:      time.Now,
	}
}

// SetClock overrides the time source used for frame-cycle content.
// Intended for tests.
func (c *Compositor) SetClock(now func() time.Time) {
	c.now = now
}

// Render paints the tree into the buffer in stacking order. It is a
// best-effort pure function over whatever layout state currently exists:
// elements without a layout entry are skipped, never an error.
func (c *Compositor) Render(root *Element, layout LayoutResult, buf *Buffer) {
	c.cache.invalidate()
	c.cache.reset()

	for _, item := range flattenTree(root, layout, buf.Rect()) {
		c.paintElement(buf, item)
	}
}

// paintElement paints one flattened entry: backdrop, background, border,
// content, scrollbars.
func (c *Compositor) paintElement(buf *Buffer, item paintItem) {
	el := item.el

	// The backdrop applies to everything painted so far, before this
	// element lands on top of it.
	if bd := el.Backdrop(); bd != nil {
		c.applyBackdrop(buf, *bd)
	}

	rect := c.animatedRect(el, item.entry.Rect)
	visible := rect.Intersect(item.clip)
	if visible.IsEmpty() {
		return
	}

	bg := c.animatedColor(el, PropBackground, el.Background())
	fg := c.animatedColor(el, PropForeground, el.Foreground())

	if !bg.IsUnset() {
		c.fillBackground(buf, visible, bg)
	}

	if border := el.Border(); border != BorderNone {
		style := Style{Fg: c.resolve(el.borderColor), Bg: bg}
		DrawBoxClipped(buf, rect, border, style, item.clip)
	}

	c.paintContent(buf, item, rect, fg, bg)
	c.paintScrollbars(buf, item, rect, fg, bg)
}

// animatedRect shifts the committed layout rect by the difference between
// interpolated and committed offsets and sizes, so in-flight move and
// resize transitions visibly slide.
func (c *Compositor) animatedRect(el *Element, rect Rect) Rect {
	if c.anim == nil {
		return rect
	}
	id := el.ID()

	if el.Position() != PositionStatic {
		left, top, right, bottom := el.Offsets()
		if v, ok := c.anim.Scalar(id, PropLeft); ok {
			rect.X += v - left
		}
		if v, ok := c.anim.Scalar(id, PropRight); ok {
			rect.X -= v - right
		}
		if v, ok := c.anim.Scalar(id, PropTop); ok {
			rect.Y += v - top
		}
		if v, ok := c.anim.Scalar(id, PropBottom); ok {
			rect.Y -= v - bottom
		}
	}

	if w, h, wSet, hSet := el.FixedSize(); wSet || hSet {
		if v, ok := c.anim.Scalar(id, PropWidth); ok && wSet {
			rect.Width += v - w
		}
		if v, ok := c.anim.Scalar(id, PropHeight); ok && hSet {
			rect.Height += v - h
		}
	}
	return rect
}

// animatedColor prefers an active color transition's interpolated value over
// the committed style value.
func (c *Compositor) animatedColor(el *Element, prop Property, committed Color) Color {
	if c.anim != nil {
		if col, ok := c.anim.Color(el.ID(), prop); ok {
			return col
		}
	}
	return c.resolve(committed)
}

// resolve turns symbolic colors into literals via the configured resolver.
// Colors that remain unresolved are treated as unset.
func (c *Compositor) resolve(col Color) Color {
	col = resolveColor(c.resolver, col)
	if !col.IsUnset() && !col.IsLiteral() {
		return Color{}
	}
	return col
}

// fillBackground fills the visible rect with the background color, skipping
// cells that already match.
func (c *Compositor) fillBackground(buf *Buffer, rect Rect, bg Color) {
	style := NewStyle().Background(bg)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			cur := buf.Cell(x, y)
			if cur.Rune == ' ' && cur.Comb == "" && cur.Style.Equal(style) {
				continue
			}
			buf.SetRune(x, y, ' ', style)
		}
	}
}

// contentArea returns the rect available to an element's content: inside
// border and padding, minus any scrollbar reservations.
func (c *Compositor) contentArea(item paintItem, rect Rect) Rect {
	el := item.el
	area := rect.InsetUniform(borderInset(el)).Inset(el.Padding())
	if showScrollbar(el, AxisVertical, item.entry) {
		area.Width--
	}
	if showScrollbar(el, AxisHorizontal, item.entry) {
		area.Height--
	}
	return area
}

// paintContent paints the element's content variant.
func (c *Compositor) paintContent(buf *Buffer, item paintItem, rect Rect, fg, bg Color) {
	el := item.el

	switch el.Content() {
	case ContentText:
		content := c.contentArea(item, rect)
		style := Style{Fg: fg, Bg: bg, Attrs: el.attrs}
		lines := wrapText(el.Text(), content.Width, el.wrap)
		paintText(buf, content, item.clip, lines, style, el.align, c.scrollOffset(el))

	case ContentInput:
		c.paintInput(buf, item, rect, fg, bg)

	case ContentFrames:
		if len(el.frames) == 0 {
			return
		}
		content := c.contentArea(item, rect)
		style := Style{Fg: fg, Bg: bg, Attrs: el.attrs}
		frame := el.frames[c.frameIndex(el)]
		paintText(buf, content, item.clip, []string{frame}, style, el.align, Point{})

	case ContentCustom:
		if el.painter != nil {
			// Custom painters receive the resolved rect and are
			// responsible for their own clipping.
			el.painter.Paint(rect, buf)
		}
	}
}

// frameIndex picks the current frame of timed frame-cycle content.
func (c *Compositor) frameIndex(el *Element) int {
	if el.frameInterval <= 0 || len(el.frames) == 0 {
		return 0
	}
	ticks := c.now().UnixNano() / int64(el.frameInterval)
	return int(ticks % int64(len(el.frames)))
}

// paintInput paints text-input content: a single line plus a reverse-video
// cursor cell at the input's grapheme cursor.
func (c *Compositor) paintInput(buf *Buffer, item paintItem, rect Rect, fg, bg Color) {
	el := item.el
	input := el.Input()
	if input == nil {
		return
	}
	content := c.contentArea(item, rect)
	if content.IsEmpty() {
		return
	}
	style := Style{Fg: fg, Bg: bg, Attrs: el.attrs}
	line := truncateLine(input.Value, content.Width)
	paintText(buf, content, item.clip, []string{line}, style, TextAlignLeft, Point{})

	cursorX := content.X + DisplayWidth(graphemePrefix(input.Value, input.Cursor))
	if content.Contains(cursorX, content.Y) && item.clip.Contains(cursorX, content.Y) {
		cell := buf.Cell(cursorX, content.Y)
		cell.Style.Attrs |= AttrReverse
		if cell.Rune == 0 {
			cell = NewCell(' ', cell.Style)
		}
		buf.SetCell(cursorX, content.Y, cell)
	}
}

// graphemePrefix returns the first n grapheme clusters of s.
func graphemePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rest := s
	state := -1
	consumed := 0
	count := 0
	for len(rest) > 0 && count < n {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		consumed += len(cluster)
		count++
	}
	return s[:consumed]
}

// paintScrollbars paints the tracks and thumbs for every scrollbar the
// element shows, using the shared proportional mapping.
func (c *Compositor) paintScrollbars(buf *Buffer, item paintItem, rect Rect, fg, bg Color) {
	el := item.el
	if !el.IsScrollable() {
		return
	}
	entry := item.entry
	entry.Rect = rect
	geoms := scrollbarGeoms(el, entry, c.scrollOffset(el))

	trackStyle := Style{Fg: c.resolve(el.borderColor), Bg: bg, Attrs: AttrDim}
	if trackStyle.Fg.IsUnset() {
		trackStyle.Fg = fg
	}
	thumbStyle := Style{Fg: fg, Bg: bg}

	for _, g := range geoms {
		trackRune := '│'
		if g.axis == AxisHorizontal {
			trackRune = '─'
		}
		for y := g.track.Y; y < g.track.Bottom(); y++ {
			for x := g.track.X; x < g.track.Right(); x++ {
				if !item.clip.Contains(x, y) {
					continue
				}
				if g.thumb.Contains(x, y) {
					buf.SetRune(x, y, '█', thumbStyle)
				} else {
					buf.SetRune(x, y, trackRune, trackStyle)
				}
			}
		}
	}
}

// scrollOffset returns the element's current scroll offset, if it is
// scrollable and scroll state is attached.
func (c *Compositor) scrollOffset(el *Element) Point {
	if c.scroll == nil || !el.IsScrollable() {
		return Point{}
	}
	return c.scroll.Offset(el.ID())
}

// applyBackdrop dims and/or desaturates every cell painted so far. In OKLCH
// terms: lightness scales by (1 - Dim), chroma by (1 - Desaturate). Cells
// with unset colors on an axis keep that axis untouched.
func (c *Compositor) applyBackdrop(buf *Buffer, bd Backdrop) {
	if bd.Dim <= 0 && bd.Desaturate <= 0 {
		return
	}
	dim := min(max(bd.Dim, 0), 1)
	desat := min(max(bd.Desaturate, 0), 1)

	width, height := buf.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := buf.Cell(x, y)
			cell.Style.Fg = c.fadeColor(cell.Style.Fg, dim, desat)
			cell.Style.Bg = c.fadeColor(cell.Style.Bg, dim, desat)
			buf.SetCell(x, y, cell)
		}
	}
}

// fadeColor applies the backdrop transform to one color.
func (c *Compositor) fadeColor(col Color, dim, desat float64) Color {
	v, ok := c.cache.toOklch(col)
	if !ok {
		return col
	}
	v.L *= 1 - dim
	v.C *= 1 - desat
	return fromOklch(v)
}
