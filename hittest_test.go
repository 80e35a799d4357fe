package mosaic

import "testing"

func TestHitTestTopmost(t *testing.T) {
	root := New("root")
	root.AppendChild(New("under"))
	root.AppendChild(New("over"))

	layout := LayoutResult{
		"root":  {Rect: NewRect(0, 0, 20, 20)},
		"under": {Rect: NewRect(0, 0, 10, 10)},
		"over":  {Rect: NewRect(5, 5, 10, 10)},
	}

	type tc struct {
		x, y int
		want string
	}

	tests := map[string]tc{
		"only under":       {x: 2, y: 2, want: "under"},
		"overlap goes to later sibling": {x: 7, y: 7, want: "over"},
		"only over":        {x: 12, y: 12, want: "over"},
		"background":       {x: 18, y: 2, want: "root"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := HitTest(root, layout, tt.x, tt.y)
			if got == nil || got.ID() != tt.want {
				t.Errorf("HitTest(%d, %d) = %v, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}

	if got := HitTest(root, layout, 50, 50); got != nil {
		t.Errorf("HitTest outside everything = %v, want nil", got)
	}
}

func TestHitTestZIndex(t *testing.T) {
	root := New("root")
	root.AppendChild(New("raised", WithZIndex(5)))
	root.AppendChild(New("later"))

	layout := LayoutResult{
		"root":   {Rect: NewRect(0, 0, 20, 20)},
		"raised": {Rect: NewRect(0, 0, 10, 10)},
		"later":  {Rect: NewRect(0, 0, 10, 10)},
	}

	// Document order would favor "later", but the raised z-index wins.
	got := HitTest(root, layout, 5, 5)
	if got == nil || got.ID() != "raised" {
		t.Errorf("HitTest = %v, want raised", got)
	}
}

func TestHitTestClippedDescendant(t *testing.T) {
	root := New("root")
	panel := New("panel", WithOverflow(OverflowHidden, OverflowHidden))
	panel.AppendChild(New("long"))
	root.AppendChild(panel)

	layout := LayoutResult{
		"root":  {Rect: NewRect(0, 0, 10, 10)},
		"panel": {Rect: NewRect(0, 0, 10, 5)},
		"long":  {Rect: NewRect(0, 0, 10, 10)},
	}

	// Inside the panel the child is hit.
	if got := HitTest(root, layout, 5, 3); got == nil || got.ID() != "long" {
		t.Errorf("HitTest inside clip = %v, want long", got)
	}

	// Below the panel the child is clipped away; the point falls through to
	// whatever paints there (the root).
	if got := HitTest(root, layout, 5, 7); got == nil || got.ID() != "root" {
		t.Errorf("HitTest below clip = %v, want root", got)
	}
}

func TestHitTestMissingLayout(t *testing.T) {
	root := New("root")
	ghost := New("ghost")
	ghost.AppendChild(New("child"))
	root.AppendChild(ghost)

	layout := LayoutResult{
		"root":  {Rect: NewRect(0, 0, 10, 10)},
		"child": {Rect: NewRect(0, 0, 5, 5)},
	}

	// The unlaid-out element is skipped, but its subtree still participates.
	if got := HitTest(root, layout, 2, 2); got == nil || got.ID() != "child" {
		t.Errorf("HitTest = %v, want child", got)
	}
}

func TestHitTestFocusable(t *testing.T) {
	root := New("root")
	button := New("button", WithFocusable())
	button.AppendChild(New("label"))
	root.AppendChild(button)

	layout := LayoutResult{
		"root":   {Rect: NewRect(0, 0, 20, 20)},
		"button": {Rect: NewRect(0, 0, 10, 3)},
		"label":  {Rect: NewRect(1, 1, 8, 1)},
	}

	// The label paints on top but is not focusable; the button is found.
	got := HitTestFocusable(root, layout, 3, 1)
	if got == nil || got.ID() != "button" {
		t.Errorf("HitTestFocusable = %v, want button", got)
	}

	if got := HitTestFocusable(root, layout, 15, 15); got != nil {
		t.Errorf("HitTestFocusable over nothing focusable = %v, want nil", got)
	}
}

func TestAncestorHelpers(t *testing.T) {
	button := New("button", WithClickable(), WithFocusable(), WithDraggable())
	label := New("label")
	button.AppendChild(label)

	if got := clickableAncestor(label); got == nil || got.ID() != "button" {
		t.Errorf("clickableAncestor = %v, want button", got)
	}
	if got := focusableAncestor(label); got == nil || got.ID() != "button" {
		t.Errorf("focusableAncestor = %v, want button", got)
	}
	if got := draggableAncestor(label); got == nil || got.ID() != "button" {
		t.Errorf("draggableAncestor = %v, want button", got)
	}

	button.SetDisabled(true)
	if got := clickableAncestor(label); got != nil {
		t.Errorf("clickableAncestor with disabled button = %v, want nil", got)
	}
	if got := focusableAncestor(label); got != nil {
		t.Errorf("focusableAncestor with disabled button = %v, want nil", got)
	}

	if got := clickableAncestor(nil); got != nil {
		t.Errorf("clickableAncestor(nil) = %v, want nil", got)
	}
}
