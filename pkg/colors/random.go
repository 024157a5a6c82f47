package colors

import "math/rand"

// Random returns an opaque color with each RGB channel drawn uniformly
// from [0, 1) using the shared source.
func Random() Color {
	return RandomFrom(nil)
}

// RandomFrom is Random with a caller-supplied source; a nil source falls
// back to the shared one. Supplying a seeded *rand.Rand makes the result
// reproducible.
func RandomFrom(rng *rand.Rand) Color {
	return Color{R: sample(rng), G: sample(rng), B: sample(rng), A: 1}
}

// RandomPastel returns an opaque pastel color: hue uniform in [0, 1),
// saturation in [0.2, 0.4], brightness in [0.8, 1.0]. Low saturation and
// high brightness yield pastels by construction; no post-hoc filtering.
func RandomPastel() Color {
	return RandomPastelFrom(nil)
}

// RandomPastelFrom is RandomPastel with a caller-supplied source.
func RandomPastelFrom(rng *rand.Rand) Color {
	h := sample(rng)
	s := 0.2 + 0.2*sample(rng)
	b := 0.8 + 0.2*sample(rng)
	return fromHSB(h, s, b, 1)
}

func sample(rng *rand.Rand) float64 {
	if rng != nil {
		return rng.Float64()
	}
	return rand.Float64()
}
