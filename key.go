package mosaic

import "strconv"

// Key identifies a logical keyboard key. Printable input arrives as KeyRune
// with the rune attached to the event.
type Key int

const (
	// KeyNone is the zero value; no key.
	KeyNone Key = iota
	// KeyRune is a printable character.
	KeyRune
	// KeyEscape is the escape key.
	KeyEscape
	// KeyEnter is the enter/return key.
	KeyEnter
	// KeyTab is the tab key.
	KeyTab
	// KeyBackspace is the backspace key.
	KeyBackspace
	// KeyDelete is the forward-delete key.
	KeyDelete
	// KeyUp is the up arrow.
	KeyUp
	// KeyDown is the down arrow.
	KeyDown
	// KeyLeft is the left arrow.
	KeyLeft
	// KeyRight is the right arrow.
	KeyRight
	// KeyHome is the home key.
	KeyHome
	// KeyEnd is the end key.
	KeyEnd
	// KeyPageUp is the page-up key.
	KeyPageUp
	// KeyPageDown is the page-down key.
	KeyPageDown
	// KeyF1 through KeyF12 are the function keys.
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// String returns the key's name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEscape:
		return "escape"
	case KeyEnter:
		return "enter"
	case KeyTab:
		return "tab"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyPageUp:
		return "pageup"
	case KeyPageDown:
		return "pagedown"
	case KeyF1, KeyF2, KeyF3, KeyF4, KeyF5, KeyF6, KeyF7, KeyF8, KeyF9, KeyF10, KeyF11, KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	default:
		return "none"
	}
}

// Modifier is a bitfield of modifier keys held during a key event.
type Modifier int

const (
	// ModCtrl is the control key.
	ModCtrl Modifier = 1 << iota
	// ModAlt is the alt/meta key.
	ModAlt
	// ModShift is the shift key.
	ModShift
)

// Has returns true if all of the given modifiers are held.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// KeyKind distinguishes press, release, and auto-repeat key events. Input
// sources that cannot report releases only ever deliver presses.
type KeyKind int

const (
	// KeyKindPress is the initial press of a key.
	KeyKindPress KeyKind = iota
	// KeyKindRelease is the release of a key.
	KeyKindRelease
	// KeyKindRepeat is an auto-repeat of a held key.
	KeyKindRepeat
)
