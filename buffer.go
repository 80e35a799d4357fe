package mosaic

import "strings"

// Buffer is a 2-D grid of cells, the paint target of the compositor.
// Writing the grid to an actual terminal (diffing, escape sequences, flush)
// is the caller's concern; the buffer only holds painted state.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a new grid of the specified dimensions.
// Cells are initialized with spaces and default styling.
func NewBuffer(width, height int) *Buffer {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	cells := make([]Cell, width*height)
	defaultCell := NewCell(' ', NewStyle())
	for i := range cells {
		cells[i] = defaultCell
	}

	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in rows.
func (b *Buffer) Height() int {
	return b.height
}

// Size returns the buffer dimensions (width, height).
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect {
	return NewRect(0, 0, b.width, b.height)
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at position (x, y).
// Returns an empty Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	idx := b.idx(x, y)
	if idx < 0 {
		return Cell{}
	}
	return b.cells[idx]
}

// SetCell sets the cell at position (x, y).
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	b.cells[idx] = c
}

// SetRune sets a rune at position (x, y) with the given style.
// Handles wide characters by placing continuation cells and properly clears
// any wide characters the write overlaps.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	if b.idx(x, y) < 0 {
		return
	}

	cell := NewCell(r, style)
	current := b.Cell(x, y)

	// Writing over the tail of a wide char invalidates its head.
	if current.IsContinuation() {
		b.clearWideCharAt(x, y)
	}

	// Writing over the head of a wide char invalidates its tail.
	if current.Width == 2 && x+1 < b.width {
		b.SetCell(x+1, y, NewCell(' ', NewStyle()))
	}

	if cell.Width == 2 {
		// Not enough room for both halves: paint a space instead.
		if x+1 >= b.width {
			b.SetCell(x, y, NewCell(' ', style))
			return
		}
		// Placing a wide char over another wide char's head clears its tail.
		next := b.Cell(x+1, y)
		if next.Width == 2 && x+2 < b.width {
			b.SetCell(x+2, y, NewCell(' ', NewStyle()))
		}
		b.SetCell(x, y, cell)
		b.SetCell(x+1, y, continuationCell(style))
		return
	}

	b.SetCell(x, y, cell)
}

// AppendComb attaches a zero-width combining mark to the cell at (x, y).
// The mark shares the cell and does not advance the cursor.
func (b *Buffer) AppendComb(x, y int, r rune) {
	idx := b.idx(x, y)
	if idx < 0 {
		return
	}
	cell := b.cells[idx]
	if cell.IsContinuation() {
		// Combining marks belong on the glyph cell, not the tail.
		if x > 0 {
			b.AppendComb(x-1, y, r)
		}
		return
	}
	cell.Comb += string(r)
	b.cells[idx] = cell
}

// clearWideCharAt replaces a wide character whose continuation cell is at
// (x, y) with spaces. Walks left to find the originating glyph cell.
func (b *Buffer) clearWideCharAt(x, y int) {
	for cx := x - 1; cx >= 0; cx-- {
		cell := b.Cell(cx, y)
		if cell.IsContinuation() {
			continue
		}
		if cell.Width == 2 {
			b.SetCell(cx, y, NewCell(' ', NewStyle()))
			for tx := cx + 1; tx <= x; tx++ {
				b.SetCell(tx, y, NewCell(' ', NewStyle()))
			}
		}
		return
	}
}

// SetString writes a string starting at (x, y) with the given style.
// Returns the x position after the last written cell.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	for _, r := range s {
		if x >= b.width {
			break
		}
		w := NewCell(r, style).Width
		b.SetRune(x, y, r, style)
		x += int(w)
	}
	return x
}

// Fill fills a rectangular region with the given rune and style.
// The region is clipped to the buffer bounds.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			b.SetRune(x, y, r, style)
		}
	}
}

// Clear resets every cell to a space with default styling.
func (b *Buffer) Clear() {
	defaultCell := NewCell(' ', NewStyle())
	for i := range b.cells {
		b.cells[i] = defaultCell
	}
}

// Resize resizes the buffer to new dimensions.
// Existing content is preserved where it fits.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}

	cells := make([]Cell, width*height)
	defaultCell := NewCell(' ', NewStyle())
	for i := range cells {
		cells[i] = defaultCell
	}

	minWidth := min(b.width, width)
	minHeight := min(b.height, height)
	for y := 0; y < minHeight; y++ {
		copy(cells[y*width:y*width+minWidth], b.cells[y*b.width:y*b.width+minWidth])
	}

	b.cells = cells
	b.width = width
	b.height = height
}

// String returns the buffer contents as a string, one row per line.
// Continuation cells contribute nothing; combining marks are included.
// Intended for tests and debugging.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.Cell(x, y)
			if c.IsContinuation() {
				continue
			}
			if c.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(c.Rune)
			}
			sb.WriteString(c.Comb)
		}
		if y < b.height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the buffer contents with trailing spaces removed per
// line and trailing empty lines dropped.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}
