package particles

import "github.com/tanema/gween/ease"

// ScalarGradient interpolates a single value across a particle's lifetime.
type ScalarGradient struct {
	From, To float32
	Ease     ease.TweenFunc
}

// LinearScalar returns a gradient interpolating linearly from -> to.
func LinearScalar(from, to float32) ScalarGradient {
	return ScalarGradient{From: from, To: to, Ease: ease.Linear}
}

// Sample returns the gradient value at t, clamped to [0, 1].
func (g ScalarGradient) Sample(t float64) float64 {
	return float64(sample(g.Ease, clamp01(t), g.From, g.To))
}

// ColorGradient interpolates a straight-alpha RGBA color across a particle's lifetime.
// Channels are in [0, 1].
type ColorGradient struct {
	From, To [4]float32
	Ease     ease.TweenFunc
}

// LinearColor returns a gradient interpolating linearly from -> to.
func LinearColor(from, to [4]float32) ColorGradient {
	return ColorGradient{From: from, To: to, Ease: ease.Linear}
}

// Sample returns the gradient color at t, clamped to [0, 1].
func (g ColorGradient) Sample(t float64) [4]float32 {
	t = clamp01(t)
	var c [4]float32
	for i := range c {
		c[i] = sample(g.Ease, t, g.From[i], g.To[i])
	}
	return c
}

func sample(fn ease.TweenFunc, t float64, from, to float32) float32 {
	if fn == nil {
		fn = ease.Linear
	}
	return fn(float32(t), from, to-from, 1)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
