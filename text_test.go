package mosaic

import (
	"reflect"
	"testing"
)

func TestDisplayWidth(t *testing.T) {
	type tc struct {
		input string
		want  int
	}

	tests := map[string]tc{
		"ascii":            {input: "abc", want: 3},
		"wide":             {input: "世界", want: 4},
		"mixed":            {input: "a世b", want: 4},
		"combining mark":   {input: "é", want: 1},
		"empty":            {input: "", want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := DisplayWidth(tt.input); got != tt.want {
				t.Errorf("DisplayWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	type tc struct {
		input string
		width int
		mode  WrapMode
		want  []string
	}

	tests := map[string]tc{
		"none splits on newlines only": {
			input: "a b\nc",
			width: 2,
			mode:  WrapNone,
			want:  []string{"a b", "c"},
		},
		"word wrap": {
			input: "hello wide world",
			width: 5,
			mode:  WrapWord,
			want:  []string{"hello", "wide", "world"},
		},
		"word wrap packs words": {
			input: "hi yo ok",
			width: 5,
			mode:  WrapWord,
			want:  []string{"hi yo", "ok"},
		},
		"word wrap hard-breaks long words": {
			input: "aaaaaa",
			width: 3,
			mode:  WrapWord,
			want:  []string{"aaa", "aaa"},
		},
		"char wrap": {
			input: "abcd",
			width: 2,
			mode:  WrapChar,
			want:  []string{"ab", "cd"},
		},
		"char wrap respects wide glyphs": {
			input: "世界人",
			width: 3,
			mode:  WrapChar,
			want:  []string{"世", "界", "人"},
		},
		"truncate": {
			input: "abcdef\nxyz",
			width: 4,
			mode:  WrapTruncate,
			want:  []string{"abcd"},
		},
		"truncate never splits a wide glyph": {
			input: "世界",
			width: 3,
			mode:  WrapTruncate,
			want:  []string{"世"},
		},
		"empty input word wrap": {
			input: "",
			width: 5,
			mode:  WrapWord,
			want:  []string{""},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := wrapText(tt.input, tt.width, tt.mode)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestAlignOffset(t *testing.T) {
	type tc struct {
		align TextAlign
		want  int
	}

	tests := map[string]tc{
		"left":   {align: TextAlignLeft, want: 0},
		"center": {align: TextAlignCenter, want: 3},
		"right":  {align: TextAlignRight, want: 6},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := alignOffset(tt.align, 10, 4); got != tt.want {
				t.Errorf("alignOffset(%v, 10, 4) = %d, want %d", tt.align, got, tt.want)
			}
		})
	}

	// A line wider than the content area never gets a negative offset.
	if got := alignOffset(TextAlignRight, 3, 5); got != 0 {
		t.Errorf("alignOffset over-wide = %d, want 0", got)
	}
}

func TestPaintText(t *testing.T) {
	t.Run("scroll offset skips lines and shifts columns", func(t *testing.T) {
		b := NewBuffer(3, 2)
		lines := []string{"aaa", "bbbb", "cccc", "ddd"}
		paintText(b, NewRect(0, 0, 3, 2), b.Rect(), lines, NewStyle(), TextAlignLeft, Point{X: 1, Y: 1})

		want := "bbb\nccc"
		if got := b.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	})

	t.Run("clip drops out-of-bounds glyphs", func(t *testing.T) {
		b := NewBuffer(5, 1)
		clip := NewRect(0, 0, 3, 1)
		paintText(b, NewRect(0, 0, 5, 1), clip, []string{"abcde"}, NewStyle(), TextAlignLeft, Point{})

		if got := b.String(); got != "abc  " {
			t.Errorf("String() = %q, want %q", got, "abc  ")
		}
	})

	t.Run("wide glyph needs both cells inside the clip", func(t *testing.T) {
		b := NewBuffer(4, 1)
		clip := NewRect(0, 0, 3, 1)
		paintText(b, NewRect(0, 0, 4, 1), clip, []string{"a世b"}, NewStyle(), TextAlignLeft, Point{})

		// 世 occupies cells 1-2, both inside the clip, so it paints.
		// 'b' at column 3 is outside and is dropped.
		if got := b.String(); got != "a世 " {
			t.Errorf("String() = %q, want %q", got, "a世 ")
		}
	})
}
