package mosaic

// Easing selects the curve applied to transition progress before
// interpolation.
type Easing int

const (
	// EaseLinear applies no curve.
	EaseLinear Easing = iota
	// EaseIn starts slow and accelerates (cubic).
	EaseIn
	// EaseOut starts fast and decelerates (cubic).
	EaseOut
	// EaseInOut accelerates then decelerates (cubic).
	EaseInOut
)

// Apply maps linear progress t in [0, 1] through the easing curve.
func (e Easing) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	switch e {
	case EaseIn:
		return t * t * t
	case EaseOut:
		u := 1 - t
		return 1 - u*u*u
	case EaseInOut:
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	default:
		return t
	}
}

// String returns the easing curve's name.
func (e Easing) String() string {
	switch e {
	case EaseIn:
		return "ease-in"
	case EaseOut:
		return "ease-out"
	case EaseInOut:
		return "ease-in-out"
	default:
		return "linear"
	}
}
