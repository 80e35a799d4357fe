package mosaic

import (
	"strings"

	"github.com/rivo/uniseg"
)

// DisplayWidth returns the display width of s in terminal cells, accounting
// for wide glyphs and zero-width combining marks.
func DisplayWidth(s string) int {
	return uniseg.StringWidth(s)
}

// wrapText breaks s into display lines no wider than width cells.
// Alignment and painting happen later; this only decides line breaks.
func wrapText(s string, width int, mode WrapMode) []string {
	switch mode {
	case WrapTruncate:
		line := s
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
		}
		return []string{truncateLine(line, width)}
	case WrapNone:
		return strings.Split(s, "\n")
	}

	if width <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		if mode == WrapChar {
			lines = append(lines, charWrap(paragraph, width)...)
		} else {
			lines = append(lines, wordWrap(paragraph, width)...)
		}
	}
	return lines
}

// truncateLine cuts s at width cells, never splitting a grapheme cluster.
func truncateLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	used := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}

// charWrap breaks a single paragraph at grapheme boundaries.
func charWrap(s string, width int) []string {
	var lines []string
	var b strings.Builder
	used := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if used+w > width && used > 0 {
			lines = append(lines, b.String())
			b.Reset()
			used = 0
		}
		b.WriteString(cluster)
		used += w
	}
	lines = append(lines, b.String())
	return lines
}

// wordWrap breaks a single paragraph at word boundaries, falling back to
// character wrapping for words wider than the line.
func wordWrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var b strings.Builder
	used := 0
	for _, word := range words {
		w := DisplayWidth(word)
		switch {
		case used == 0 && w <= width:
			b.WriteString(word)
			used = w
		case used > 0 && used+1+w <= width:
			b.WriteByte(' ')
			b.WriteString(word)
			used += 1 + w
		default:
			if used > 0 {
				lines = append(lines, b.String())
				b.Reset()
				used = 0
			}
			if w <= width {
				b.WriteString(word)
				used = w
				continue
			}
			// A single word wider than the line gets hard-broken.
			broken := charWrap(word, width)
			for _, part := range broken[:len(broken)-1] {
				lines = append(lines, part)
			}
			last := broken[len(broken)-1]
			b.WriteString(last)
			used = DisplayWidth(last)
		}
	}
	if used > 0 || len(lines) == 0 {
		lines = append(lines, b.String())
	}
	return lines
}

// paintLine paints a single display line starting at (x, y), honoring clip.
// Wide glyphs occupy two cells with a marked continuation; zero-width
// combining marks attach to the previously painted cell.
func paintLine(buf *Buffer, x, y int, line string, style Style, clip Rect) {
	rest := line
	state := -1
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if w == 0 {
			// Combining mark with no base of its own: attach behind.
			if clip.Contains(x-1, y) {
				for _, r := range cluster {
					buf.AppendComb(x-1, y, r)
				}
			}
			continue
		}
		if x >= clip.Right() {
			break
		}
		visible := clip.Contains(x, y) && (w < 2 || clip.Contains(x+1, y))
		if visible {
			runes := []rune(cluster)
			buf.SetRune(x, y, runes[0], style)
			for _, r := range runes[1:] {
				buf.AppendComb(x, y, r)
			}
		}
		x += w
	}
}

// alignOffset returns the x padding for a line of the given display width
// inside a content area of the given width.
func alignOffset(align TextAlign, contentWidth, lineWidth int) int {
	if contentWidth <= lineWidth {
		return 0
	}
	switch align {
	case TextAlignCenter:
		return (contentWidth - lineWidth) / 2
	case TextAlignRight:
		return contentWidth - lineWidth
	default:
		return 0
	}
}

// paintText paints wrapped lines into the content rect, applying alignment
// per line and the element's scroll offset. Rows and columns outside the
// clip are skipped.
func paintText(buf *Buffer, content, clip Rect, lines []string, style Style, align TextAlign, offset Point) {
	if content.IsEmpty() {
		return
	}
	paintClip := content.Intersect(clip)
	if paintClip.IsEmpty() {
		return
	}

	for row := 0; row < content.Height; row++ {
		idx := row + offset.Y
		if idx < 0 || idx >= len(lines) {
			continue
		}
		y := content.Y + row
		if y < paintClip.Y || y >= paintClip.Bottom() {
			continue
		}
		line := lines[idx]
		x := content.X - offset.X + alignOffset(align, content.Width, DisplayWidth(line))
		paintLine(buf, x, y, line, style, paintClip)
	}
}
