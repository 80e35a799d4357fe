package mosaic

import (
	"errors"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKind distinguishes between color representations.
type ColorKind uint8

const (
	// ColorUnset represents the terminal's default color (no color set).
	ColorUnset ColorKind = iota
	// ColorRGB represents a literal true color (24-bit RGB).
	ColorRGB
	// ColorOKLCH represents a literal OKLCH color (lightness, chroma, hue).
	ColorOKLCH
	// ColorVar represents a named theme token, resolved externally.
	ColorVar
	// ColorDerived represents a derived-color expression, resolved externally.
	ColorDerived
)

// Color represents a paintable or symbolic color. Only RGB and OKLCH values
// can be painted or interpolated directly; Var and Derived colors must be
// resolved to literals (see Resolver) before they reach the compositor.
// The zero value is the terminal default.
type Color struct {
	kind    ColorKind
	r, g, b uint8
	l, c, h float64
	ref     string // token name (Var) or expression (Derived)
}

// RGB returns a literal true color.
func RGB(r, g, b uint8) Color {
	return Color{kind: ColorRGB, r: r, g: g, b: b}
}

// OKLCH returns a literal OKLCH color. Lightness is in [0, 1], chroma is
// non-negative (typically below 0.4), and hue is in degrees.
func OKLCH(l, c, h float64) Color {
	return Color{kind: ColorOKLCH, l: l, c: c, h: math.Mod(math.Mod(h, 360)+360, 360)}
}

// Var returns a named theme token. It must be resolved by a Resolver before
// painting.
func Var(name string) Color {
	return Color{kind: ColorVar, ref: name}
}

// Derived returns a derived-color expression. It must be resolved by a
// Resolver before painting.
func Derived(expr string) Color {
	return Color{kind: ColorDerived, ref: expr}
}

// Hex parses a hex color string into an RGB Color.
// Supported formats: "#RRGGBB" and "#RGB".
func Hex(hex string) (Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	switch len(hex) {
	case 6:
		r, err := parseHexByte(hex[0:2])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexByte(hex[2:4])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexByte(hex[4:6])
		if err != nil {
			return Color{}, err
		}
		return RGB(r, g, b), nil
	case 3:
		r, err := parseHexNibble(hex[0])
		if err != nil {
			return Color{}, err
		}
		g, err := parseHexNibble(hex[1])
		if err != nil {
			return Color{}, err
		}
		b, err := parseHexNibble(hex[2])
		if err != nil {
			return Color{}, err
		}
		// Expand nibble to byte: 0xF -> 0xFF
		return RGB(r<<4|r, g<<4|g, b<<4|b), nil
	default:
		return Color{}, errors.New("invalid hex color format: expected #RGB or #RRGGBB")
	}
}

func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}

// Kind returns the ColorKind of this color.
func (c Color) Kind() ColorKind {
	return c.kind
}

// IsUnset returns true if this is the terminal's default color.
func (c Color) IsUnset() bool {
	return c.kind == ColorUnset
}

// IsLiteral returns true if the color can be painted or interpolated
// directly (RGB or OKLCH).
func (c Color) IsLiteral() bool {
	return c.kind == ColorRGB || c.kind == ColorOKLCH
}

// RGBValues returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGBValues() (r, g, b uint8) {
	if c.kind != ColorRGB {
		panic("Color.RGBValues() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// LCH returns the lightness, chroma, and hue components.
// Panics if the color is not an OKLCH color.
func (c Color) LCH() (l, ch, h float64) {
	if c.kind != ColorOKLCH {
		panic("Color.LCH() called on non-OKLCH color")
	}
	return c.l, c.c, c.h
}

// Ref returns the token name or expression for Var and Derived colors,
// and the empty string otherwise.
func (c Color) Ref() string {
	return c.ref
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// Resolver turns named theme tokens and derived-color expressions into
// literal RGB or OKLCH colors. Resolution happens before the compositor
// paints or interpolates a color; literal and unset colors pass through
// unchanged.
type Resolver interface {
	Resolve(Color) Color
}

// resolveColor applies r to c if c needs resolution. A nil resolver leaves
// symbolic colors untouched; the engine then treats them as unset.
func resolveColor(r Resolver, c Color) Color {
	if c.kind != ColorVar && c.kind != ColorDerived {
		return c
	}
	if r == nil {
		return c
	}
	return r.Resolve(c)
}

// oklch is the internal interpolation space: lightness, chroma, hue degrees.
type oklch struct {
	L, C, H float64
}

// OKLab <-> linear sRGB matrices from the OKLab reference implementation.
func rgbToOklch(r, g, b uint8) oklch {
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	lr, lg, lb := col.LinearRgb()

	l := 0.4122214708*lr + 0.5363325363*lg + 0.0514459929*lb
	m := 0.2119034982*lr + 0.6806995451*lg + 0.1073969566*lb
	s := 0.0883024619*lr + 0.2817188376*lg + 0.6299787005*lb

	lc, mc, sc := math.Cbrt(l), math.Cbrt(m), math.Cbrt(s)

	labL := 0.2104542553*lc + 0.7936177850*mc - 0.0040720468*sc
	labA := 1.9779984951*lc - 2.4285922050*mc + 0.4505937099*sc
	labB := 0.0259040371*lc + 0.7827717662*mc - 0.8086757660*sc

	chroma := math.Hypot(labA, labB)
	hue := math.Atan2(labB, labA) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	return oklch{L: labL, C: chroma, H: hue}
}

func oklchToRGB(v oklch) (uint8, uint8, uint8) {
	hRad := v.H * math.Pi / 180
	a := v.C * math.Cos(hRad)
	b := v.C * math.Sin(hRad)

	lc := v.L + 0.3963377774*a + 0.2158037573*b
	mc := v.L - 0.1055613458*a - 0.0638541728*b
	sc := v.L - 0.0894841775*a - 1.2914855480*b

	l, m, s := lc*lc*lc, mc*mc*mc, sc*sc*sc

	lr := 4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	col := colorful.LinearRgb(lr, lg, lb).Clamped()
	return col.RGB255()
}

// toOklch converts a literal color to the OKLCH interpolation space.
// Returns false for unset or unresolved colors.
func toOklch(c Color) (oklch, bool) {
	switch c.kind {
	case ColorOKLCH:
		return oklch{L: c.l, C: c.c, H: c.h}, true
	case ColorRGB:
		return rgbToOklch(c.r, c.g, c.b), true
	default:
		return oklch{}, false
	}
}

// fromOklch converts an interpolation-space value back to a paintable Color.
func fromOklch(v oklch) Color {
	return OKLCH(v.L, v.C, v.H)
}

// ToRGB converts any literal color to 24-bit RGB component values.
// Unset and unresolved colors report ok = false.
func (c Color) ToRGB() (r, g, b uint8, ok bool) {
	switch c.kind {
	case ColorRGB:
		return c.r, c.g, c.b, true
	case ColorOKLCH:
		r, g, b := oklchToRGB(oklch{L: c.l, C: c.c, H: c.h})
		return r, g, b, true
	default:
		return 0, 0, 0, false
	}
}

// colorCache caches literal-color OKLCH conversions for the duration of one
// frame. Var/Derived colors are never cached: they are expected to be
// resolved before reaching the cache, and an unresolved one that leaks
// through is converted (to nothing) uncached.
type colorCache struct {
	entries map[Color]oklch
}

func (cc *colorCache) reset() {
	// Keep the map; repainting the same tree hits the same colors. The
	// cache is invalidated wholesale on engine frame boundaries instead.
	if cc.entries == nil {
		cc.entries = make(map[Color]oklch)
	}
}

func (cc *colorCache) invalidate() {
	cc.entries = nil
}

func (cc *colorCache) toOklch(c Color) (oklch, bool) {
	if !c.IsLiteral() {
		return toOklch(c)
	}
	if cc.entries == nil {
		cc.entries = make(map[Color]oklch)
	}
	if v, ok := cc.entries[c]; ok {
		return v, true
	}
	v, ok := toOklch(c)
	if ok {
		cc.entries[c] = v
	}
	return v, ok
}

// lerpHue interpolates between two hue angles along the shorter arc of the
// circle, wrapping at ±180°. The result is normalized to [0, 360).
func lerpHue(h1, h2, t float64) float64 {
	d := math.Mod(h2-h1+540, 360) - 180
	h := h1 + d*t
	return math.Mod(math.Mod(h, 360)+360, 360)
}

// lerpOklch interpolates lightness and chroma linearly and hue along the
// shorter arc, so color transitions never travel the long way around the
// hue wheel.
func lerpOklch(a, b oklch, t float64) oklch {
	return oklch{
		L: a.L + (b.L-a.L)*t,
		C: a.C + (b.C-a.C)*t,
		H: lerpHue(a.H, b.H, t),
	}
}

// LerpColor interpolates between two literal colors in OKLCH space.
// If either color is unset or unresolved, the second color is returned
// unchanged (a degenerate but safe fallback).
func LerpColor(from, to Color, t float64) Color {
	a, okA := toOklch(from)
	b, okB := toOklch(to)
	if !okA || !okB {
		return to
	}
	return fromOklch(lerpOklch(a, b, t))
}
