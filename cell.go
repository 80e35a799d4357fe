package mosaic

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the paint grid.
// Wide characters (CJK, most emoji) occupy two cells: the first holds the
// rune, the second is marked as a continuation. Zero-width combining marks
// attach to the preceding cell's Comb sequence and never advance the cursor.
type Cell struct {
	Rune  rune   // The base character (0 for continuation cells)
	Comb  string // Trailing zero-width combining marks, if any
	Style Style  // Visual styling
	Width uint8  // Display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune, style Style) Cell {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	return Cell{
		Rune:  r,
		Style: style,
		Width: uint8(w),
	}
}

// continuationCell returns the trailing cell of a wide character.
// It carries the same colors as the glyph cell but no independent character.
func continuationCell(style Style) Cell {
	return Cell{Rune: 0, Style: style, Width: 0}
}

// IsContinuation returns true if this cell is the second half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c.Rune == other.Rune && c.Comb == other.Comb &&
		c.Style.Equal(other.Style) && c.Width == other.Width
}

// IsEmpty returns true if this cell represents an empty/blank cell.
func (c Cell) IsEmpty() bool {
	if c.Rune == 0 && c.Width != 0 {
		return true
	}
	return c.Rune == ' ' && c.Comb == "" && c.Style.Equal(NewStyle())
}
