package dataset

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

// Offset shifts the values at the given indices by val. Indices outside of the series are ignored.
func (s Series) Offset(idx []int, val float64) Series {
	n := len(s)
	for _, i := range idx {
		if i < 0 || i >= n {
			continue
		}
		s[i] += val
	}
	return s
}

// GenerateX returns the evenly spaced abscissa 0, 1, ..., n-1
func GenerateX(n int) Series {
	x := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		x = append(x, float64(i))
	}
	return Series(x)
}

func GenerateLineY(x Series, slope, intercept float64) Series {
	y := make([]float64, 0, len(x))
	for _, xPnt := range x {
		y = append(y, slope*xPnt+intercept)
	}
	return Series(y)
}

// GenerateUniformNoise draws n values uniformly from [-distance, distance). A nil rng uses the
// global source.
func GenerateUniformNoise(n int, distance float64, rng *rand.Rand) Series {
	unif := rand.Float64
	if rng != nil {
		unif = rng.Float64
	}

	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, (2.0*unif()-1.0)*distance)
	}
	return Series(y)
}

// GenerateNoisyLine returns points along y = slope*x + intercept at x = 0..n-1 with uniform
// noise of up to distance added to each y value
func GenerateNoisyLine(n int, slope, intercept, distance float64, rng *rand.Rand) (Series, Series) {
	x := GenerateX(n)
	y := GenerateLineY(x, slope, intercept).
		Add(GenerateUniformNoise(n, distance, rng))
	return x, y
}
