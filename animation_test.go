package mosaic

import (
	"math"
	"testing"
	"time"
)

// fakeClock is a manually advanced time source for animation tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Unix(1000, 0)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestAnimationScalarTransition(t *testing.T) {
	clock := newFakeClock()
	anim := NewAnimationState()
	anim.SetClock(clock.now)

	el := New("box",
		WithPosition(PositionAbsolute, 0, 0, 0, 0),
		WithTransition(PropLeft, 100*time.Millisecond, EaseLinear),
	)

	anim.Update(el)
	if anim.Animating() {
		t.Fatal("Animating() = true before any change")
	}

	el.SetOffsets(10, 0, 0, 0)
	anim.Update(el)
	if !anim.Animating() {
		t.Fatal("Animating() = false after a committed change")
	}

	clock.advance(50 * time.Millisecond)
	if got, ok := anim.Scalar("box", PropLeft); !ok || got != 5 {
		t.Errorf("Scalar at 50%% = (%d, %v), want (5, true)", got, ok)
	}

	clock.advance(50 * time.Millisecond)
	if got, ok := anim.Scalar("box", PropLeft); !ok || got != 10 {
		t.Errorf("Scalar at 100%% = (%d, %v), want (10, true)", got, ok)
	}

	// The next frame prunes the finished transition.
	anim.Update(el)
	if anim.Animating() {
		t.Error("Animating() = true after the transition completed")
	}
	if _, ok := anim.Scalar("box", PropLeft); ok {
		t.Error("Scalar ok = true after pruning, want false")
	}
}

func TestAnimationRetargetContinuity(t *testing.T) {
	clock := newFakeClock()
	anim := NewAnimationState()
	anim.SetClock(clock.now)

	el := New("box",
		WithPosition(PositionAbsolute, 0, 0, 0, 0),
		WithTransition(PropLeft, 100*time.Millisecond, EaseLinear),
	)

	anim.Update(el)
	el.SetOffsets(10, 0, 0, 0)
	anim.Update(el)

	// Retarget mid-flight: the interpolated value becomes the new start,
	// so there is no visual jump.
	clock.advance(50 * time.Millisecond)
	el.SetOffsets(20, 0, 0, 0)
	anim.Update(el)

	if got, ok := anim.Scalar("box", PropLeft); !ok || got != 5 {
		t.Errorf("Scalar right after retarget = (%d, %v), want (5, true)", got, ok)
	}

	clock.advance(100 * time.Millisecond)
	if got, ok := anim.Scalar("box", PropLeft); !ok || got != 20 {
		t.Errorf("Scalar at retargeted end = (%d, %v), want (20, true)", got, ok)
	}
}

func TestAnimationZeroDuration(t *testing.T) {
	clock := newFakeClock()
	anim := NewAnimationState()
	anim.SetClock(clock.now)

	el := New("box",
		WithPosition(PositionAbsolute, 0, 0, 0, 0),
		WithTransition(PropLeft, 0, EaseLinear),
	)

	anim.Update(el)
	el.SetOffsets(10, 0, 0, 0)
	anim.Update(el)

	// Zero duration completes instantly: no entry, committed value rules.
	if anim.Animating() {
		t.Error("Animating() = true with a zero-duration transition")
	}
	if _, ok := anim.Scalar("box", PropLeft); ok {
		t.Error("Scalar ok = true, want false")
	}
}

func TestAnimationReducedMotion(t *testing.T) {
	clock := newFakeClock()
	anim := NewAnimationState()
	anim.SetClock(clock.now)
	anim.SetReducedMotion(true)

	el := New("box",
		WithPosition(PositionAbsolute, 0, 0, 0, 0),
		WithTransition(PropLeft, 100*time.Millisecond, EaseLinear),
	)

	anim.Update(el)
	el.SetOffsets(10, 0, 0, 0)
	anim.Update(el)

	if anim.Animating() {
		t.Error("Animating() = true with reduced motion")
	}
	if _, ok := anim.Scalar("box", PropLeft); ok {
		t.Error("Scalar ok = true with reduced motion, want false")
	}
}

func TestAnimationColorTransition(t *testing.T) {
	clock := newFakeClock()
	anim := NewAnimationState()
	anim.SetClock(clock.now)

	el := New("box",
		WithBackground(OKLCH(0.2, 0, 0)),
		WithTransition(PropBackground, 100*time.Millisecond, EaseLinear),
	)

	anim.Update(el)
	el.background = OKLCH(0.8, 0, 0)
	anim.Update(el)

	clock.advance(50 * time.Millisecond)
	got, ok := anim.Color("box", PropBackground)
	if !ok {
		t.Fatal("Color ok = false mid-transition")
	}
	l, _, _ := got.LCH()
	if math.Abs(l-0.5) > 1e-9 {
		t.Errorf("interpolated lightness = %v, want 0.5", l)
	}

	// Scalar lookups never answer for color properties, and vice versa.
	if _, ok := anim.Scalar("box", PropBackground); ok {
		t.Error("Scalar ok = true for a color property")
	}
	if _, ok := anim.Color("box", PropLeft); ok {
		t.Error("Color ok = true for a scalar property")
	}
}

func TestAnimationSymbolicColorResolution(t *testing.T) {
	clock := newFakeClock()
	anim := NewAnimationState()
	anim.SetClock(clock.now)
	anim.SetResolver(mapResolver{
		"accent": OKLCH(0.3, 0, 0),
		"danger": OKLCH(0.7, 0, 0),
	})

	el := New("box",
		WithBackground(Var("accent")),
		WithTransition(PropBackground, 100*time.Millisecond, EaseLinear),
	)

	anim.Update(el)
	el.background = Var("danger")
	anim.Update(el)

	clock.advance(50 * time.Millisecond)
	got, ok := anim.Color("box", PropBackground)
	if !ok {
		t.Fatal("Color ok = false for resolved Var transition")
	}
	l, _, _ := got.LCH()
	if math.Abs(l-0.5) > 1e-9 {
		t.Errorf("interpolated lightness = %v, want 0.5", l)
	}
}

func TestAnimationCleanup(t *testing.T) {
	clock := newFakeClock()
	anim := NewAnimationState()
	anim.SetClock(clock.now)

	el := New("box",
		WithPosition(PositionAbsolute, 0, 0, 0, 0),
		WithTransition(PropLeft, 100*time.Millisecond, EaseLinear),
	)

	anim.Update(el)
	el.SetOffsets(10, 0, 0, 0)
	anim.Update(el)

	// The element leaves the tree: its state must not linger.
	anim.Cleanup(New("other-root"))
	if anim.Animating() {
		t.Error("Animating() = true after Cleanup removed the element")
	}
	if _, ok := anim.Scalar("box", PropLeft); ok {
		t.Error("Scalar ok = true after Cleanup, want false")
	}
}

func TestEasingApply(t *testing.T) {
	type tc struct {
		easing Easing
		t      float64
		want   float64
	}

	tests := map[string]tc{
		"linear midpoint":  {easing: EaseLinear, t: 0.5, want: 0.5},
		"in starts slow":   {easing: EaseIn, t: 0.5, want: 0.125},
		"out starts fast":  {easing: EaseOut, t: 0.5, want: 0.875},
		"in-out midpoint":  {easing: EaseInOut, t: 0.5, want: 0.5},
		"clamps below":     {easing: EaseIn, t: -1, want: 0},
		"clamps above":     {easing: EaseOut, t: 2, want: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.easing.Apply(tt.t); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v.Apply(%v) = %v, want %v", tt.easing, tt.t, got, tt.want)
			}
		})
	}
}
