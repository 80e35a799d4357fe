// Package mosaic is a retained-mode rendering and interaction engine for
// terminal user interfaces.
//
// The package owns a tree of styled elements, composites them into a 2-D cell
// grid respecting stacking order and clipping, animates property changes, and
// resolves raw pointer/keyboard input into semantic events: focus changes,
// clicks, scroll offsets, and scrollbar drag gestures.
//
// mosaic deliberately does not compute layout and does not talk to the
// terminal. An external layout solver supplies a rectangle, content size, and
// viewport size per element ID (see LayoutResult), and the caller is
// responsible for writing the painted Buffer to the screen. All engine state
// (animation, focus, scroll) lives in flat side tables keyed by the element's
// stable string ID, so callers must reuse IDs across tree rebuilds for state
// to carry over.
package mosaic
