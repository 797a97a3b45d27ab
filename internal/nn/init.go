package nn

import (
	"fmt"
	"math/rand"
)

// source supplies the initial value of the parameter called name.
type source func(name string, bias bool) (float64, error)

// Uniform returns a value drawn from U(-bound, bound).
func Uniform(rng *rand.Rand, bound float64) float64 {
	return (rng.Float64()*2.0 - 1.0) * bound
}

// uniformSource draws weights from U(-bound, bound) and sets biases to 0.
func uniformSource(rng *rand.Rand, bound float64) source {
	return func(_ string, bias bool) (float64, error) {
		if bias {
			return 0, nil
		}
		return Uniform(rng, bound), nil
	}
}

// stateDictSource reads every parameter from sd.
func stateDictSource(sd map[string]float64) source {
	return func(name string, _ bool) (float64, error) {
		v, ok := sd[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingParameter, name)
		}
		return v, nil
	}
}

// newRand creates the generator used for weight initialization.
func newRand(seed int64) *rand.Rand {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	return rand.New(rand.NewSource(seed))
}
