package mosaic

import (
	"math"
	"time"
)

// Property identifies an animatable element property.
type Property int

const (
	// PropLeft is the left position offset.
	PropLeft Property = iota
	// PropTop is the top position offset.
	PropTop
	// PropRight is the right position offset.
	PropRight
	// PropBottom is the bottom position offset.
	PropBottom
	// PropWidth is the explicit width.
	PropWidth
	// PropHeight is the explicit height.
	PropHeight
	// PropBackground is the background color.
	PropBackground
	// PropForeground is the foreground color.
	PropForeground
)

// String returns the property's name.
func (p Property) String() string {
	switch p {
	case PropLeft:
		return "left"
	case PropTop:
		return "top"
	case PropRight:
		return "right"
	case PropBottom:
		return "bottom"
	case PropWidth:
		return "width"
	case PropHeight:
		return "height"
	case PropBackground:
		return "background"
	case PropForeground:
		return "foreground"
	default:
		return "unknown"
	}
}

// IsColor returns true for color-valued properties.
func (p Property) IsColor() bool {
	return p == PropBackground || p == PropForeground
}

// animKey identifies one in-flight transition: element plus property.
type animKey struct {
	id   string
	prop Property
}

// animValue is a snapshot or interpolation value: either a scalar or an
// OKLCH color, matching the property it belongs to.
type animValue struct {
	isColor bool
	scalar  float64
	color   oklch
}

func scalarValue(v int) animValue {
	return animValue{scalar: float64(v)}
}

func colorValue(c oklch) animValue {
	return animValue{isColor: true, color: c}
}

func (v animValue) equal(o animValue) bool {
	if v.isColor != o.isColor {
		return false
	}
	if v.isColor {
		return v.color == o.color
	}
	return v.scalar == o.scalar
}

// activeTransition is one in-flight interpolation from one committed value
// to the next.
type activeTransition struct {
	from, to animValue
	start    time.Time
	duration time.Duration
	easing   Easing
}

func (t *activeTransition) done(now time.Time) bool {
	return now.Sub(t.start) >= t.duration
}

// at evaluates the interpolated value at the given time, clamped to the
// transition's span.
func (t *activeTransition) at(now time.Time) animValue {
	if t.duration <= 0 {
		return t.to
	}
	progress := float64(now.Sub(t.start)) / float64(t.duration)
	progress = math.Min(math.Max(progress, 0), 1)
	eased := t.easing.Apply(progress)

	if t.from.isColor {
		return colorValue(lerpOklch(t.from.color, t.to.color, eased))
	}
	return animValue{scalar: t.from.scalar + (t.to.scalar-t.from.scalar)*eased}
}

// AnimationState is the process-wide animation memory for one running UI
// session: the previous frame's property snapshot per element ID and the
// set of in-flight transitions. It is owned by the single UI goroutine.
type AnimationState struct {
	prev          map[string]map[Property]animValue
	active        map[animKey]*activeTransition
	reducedMotion bool
	resolver      Resolver
	now           func() time.Time
}

// NewAnimationState creates empty animation memory.
func NewAnimationState() *AnimationState {
	return &AnimationState{
		prev:   make(map[string]map[Property]animValue),
		active: make(map[animKey]*activeTransition),
		now:    time.Now,
	}
}

// SetReducedMotion toggles the accessibility mode in which committed
// property changes never animate: no transition entries are created and
// interpolation lookups always report nothing.
func (a *AnimationState) SetReducedMotion(v bool) {
	a.reducedMotion = v
	if v {
		a.active = make(map[animKey]*activeTransition)
	}
}

// ReducedMotion reports whether reduced motion is enabled.
func (a *AnimationState) ReducedMotion() bool {
	return a.reducedMotion
}

// SetResolver installs the theme resolver used to turn symbolic colors into
// literals before snapshotting.
func (a *AnimationState) SetResolver(r Resolver) {
	a.resolver = r
}

// SetClock overrides the time source. Intended for tests.
func (a *AnimationState) SetClock(now func() time.Time) {
	a.now = now
}

// Update advances the animation state machine by one frame: it prunes
// finished transitions, snapshots every element's transitionable values,
// and starts a transition for each configured property whose committed
// value changed since the previous frame.
//
// Retargeting an in-flight transition evaluates it at the current time and
// uses that interpolated value as the new starting point, so a mid-flight
// target change never causes a visual jump.
func (a *AnimationState) Update(root *Element) {
	if root == nil {
		return
	}
	now := a.now()

	for key, t := range a.active {
		if t.done(now) {
			delete(a.active, key)
		}
	}

	root.Walk(func(el *Element) bool {
		snap := a.snapshot(el)
		id := el.ID()
		old := a.prev[id]

		for prop, cfg := range el.Transitions() {
			newV, hasNew := snap[prop]
			oldV, hasOld := old[prop]
			if !hasNew || !hasOld || newV.equal(oldV) {
				continue
			}
			key := animKey{id: id, prop: prop}
			if a.reducedMotion || cfg.Duration <= 0 {
				// Zero duration means "complete instantly", not an error.
				delete(a.active, key)
				continue
			}
			from := oldV
			if prev, ok := a.active[key]; ok {
				from = prev.at(now)
			}
			a.active[key] = &activeTransition{
				from:     from,
				to:       newV,
				start:    now,
				duration: cfg.Duration,
				easing:   cfg.Easing,
			}
		}

		a.prev[id] = snap
		return true
	})
}

// snapshot captures an element's current transitionable values: position
// offsets only when the element is positioned, sizes only when explicitly
// fixed, and colors resolved to literals.
func (a *AnimationState) snapshot(el *Element) map[Property]animValue {
	snap := make(map[Property]animValue)

	if el.Position() != PositionStatic {
		left, top, right, bottom := el.Offsets()
		snap[PropLeft] = scalarValue(left)
		snap[PropTop] = scalarValue(top)
		snap[PropRight] = scalarValue(right)
		snap[PropBottom] = scalarValue(bottom)
	}

	if w, h, wSet, hSet := el.FixedSize(); wSet || hSet {
		if wSet {
			snap[PropWidth] = scalarValue(w)
		}
		if hSet {
			snap[PropHeight] = scalarValue(h)
		}
	}

	if c, ok := toOklch(resolveColor(a.resolver, el.Background())); ok {
		snap[PropBackground] = colorValue(c)
	}
	if c, ok := toOklch(resolveColor(a.resolver, el.Foreground())); ok {
		snap[PropForeground] = colorValue(c)
	}

	return snap
}

// Scalar returns the interpolated value of a scalar property, or false if
// no transition is active for it (the caller falls back to the committed
// value).
func (a *AnimationState) Scalar(id string, prop Property) (int, bool) {
	if a.reducedMotion || prop.IsColor() {
		return 0, false
	}
	t, ok := a.active[animKey{id: id, prop: prop}]
	if !ok {
		return 0, false
	}
	return int(math.Round(t.at(a.now()).scalar)), true
}

// Color returns the interpolated value of a color property, or false if no
// transition is active for it.
func (a *AnimationState) Color(id string, prop Property) (Color, bool) {
	if a.reducedMotion || !prop.IsColor() {
		return Color{}, false
	}
	t, ok := a.active[animKey{id: id, prop: prop}]
	if !ok {
		return Color{}, false
	}
	return fromOklch(t.at(a.now()).color), true
}

// Animating returns true if any transition is currently in flight.
// Callers use this to keep ticking frames while idle on input.
func (a *AnimationState) Animating() bool {
	return len(a.active) > 0
}

// Cleanup discards snapshots and transitions for element IDs that are no
// longer present in the tree. Call it after tree rebuilds to prevent
// unbounded growth and false change detections against stale IDs.
func (a *AnimationState) Cleanup(root *Element) {
	live := make(map[string]struct{})
	if root != nil {
		root.Walk(func(el *Element) bool {
			live[el.ID()] = struct{}{}
			return true
		})
	}
	for id := range a.prev {
		if _, ok := live[id]; !ok {
			delete(a.prev, id)
		}
	}
	for key := range a.active {
		if _, ok := live[key.id]; !ok {
			delete(a.active, key)
		}
	}
}
