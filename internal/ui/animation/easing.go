package animation

// Easing maps linear progress in [0, 1] to eased progress. Eased values may
// leave [0, 1] but every easing returns exactly 0 at 0 and 1 at 1.
type Easing func(t float64) float64

// Linear leaves progress untouched.
func Linear(t float64) float64 { return t }

// Decelerate starts fast and slows into the target.
func Decelerate(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv
}

// Overshoot flings past the target and settles back. Higher tension
// overshoots further; 0 degenerates to a cubic ease-out.
func Overshoot(tension float64) Easing {
	return func(t float64) float64 {
		t--
		return t*t*((tension+1)*t+tension) + 1
	}
}
