package linearmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func TestFitIndices(t *testing.T) {
	tol := 1e-9
	testData := map[string]struct {
		x        []float64
		y        []float64
		idx      []int
		ok       bool
		expected LinearModel
	}{
		"two points": {
			x:        []float64{0, 1, 2, 3},
			y:        []float64{10, 13, 16, 19},
			idx:      []int{0, 3},
			ok:       true,
			expected: LinearModel{Slope: 3, Intercept: 10},
		},
		"subset ignores others": {
			x:        []float64{0, 1, 2, 3},
			y:        []float64{-1.25, 500, 3.75, -800},
			idx:      []int{2, 0},
			ok:       true,
			expected: LinearModel{Slope: 2.5, Intercept: -1.25},
		},
		"negative slope": {
			x:        []float64{-2, 0, 4},
			y:        []float64{5, 1, -7},
			idx:      []int{0, 1, 2},
			ok:       true,
			expected: LinearModel{Slope: -2, Intercept: 1},
		},
		"shared x": {
			x:        []float64{5, 5, 7},
			y:        []float64{1, 2, 3},
			idx:      []int{0, 1},
			ok:       false,
			expected: LinearModel{},
		},
		"nearly shared x": {
			x:        []float64{5, 5 + 1e-5, 7},
			y:        []float64{1, 2, 3},
			idx:      []int{0, 1},
			ok:       false,
			expected: LinearModel{},
		},
	}

	for name, td := range testData {
		t.Run(name, func(t *testing.T) {
			m, ok := FitIndices(td.x, td.y, td.idx)
			require.Equal(t, td.ok, ok)
			assert.InDelta(t, td.expected.Slope, m.Slope, tol, "slope")
			assert.InDelta(t, td.expected.Intercept, m.Intercept, tol, "intercept")
		})
	}
}

func TestFitIndicesMatchesLeastSquares(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4, 5, 6, 7}
	y := []float64{1.1, 2.9, 5.2, 7.1, 8.8, 11.3, 13.0, 14.7}
	idx := []int{0, 1, 2, 3, 4, 5, 6, 7}

	m, ok := FitIndices(x, y, idx)
	require.True(t, ok)

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	assert.InDelta(t, slope, m.Slope, 1e-9)
	assert.InDelta(t, intercept, m.Intercept, 1e-9)
}

func TestFitAll(t *testing.T) {
	m, err := FitAll([]float64{0, 1, 2, 3}, []float64{10, 13, 16, 19})
	require.Nil(t, err)
	assert.InDelta(t, 3.0, m.Slope, 1e-9)
	assert.InDelta(t, 10.0, m.Intercept, 1e-9)

	_, err = FitAll([]float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, ErrLenMismatch)

	_, err = FitAll([]float64{0}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = FitAll([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestResiduals(t *testing.T) {
	m := LinearModel{Slope: 2, Intercept: 1}
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 4, 4, 7}

	res := m.Residuals(nil, x, y)
	assert.Equal(t, []float64{0, 1, 1, 0}, res)

	buf := make([]float64, len(x))
	res = m.Residuals(buf, x, y)
	assert.Equal(t, []float64{0, 1, 1, 0}, buf)
	assert.Equal(t, buf, res)

	for i := range x {
		assert.Equal(t, res[i], m.Residual(x[i], y[i]))
	}
}

func TestInliers(t *testing.T) {
	m := LinearModel{Slope: 1, Intercept: 0}
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 1.5, 7, 3, -1}

	// points 2 and 4 sit exactly on the threshold and are excluded
	assert.Equal(t, 3, CountInliers(x, y, m, 5))
	assert.Equal(t, []int{0, 1, 3}, Inliers(x, y, m, 5))
	assert.Equal(t, 2, CountInliers(x, y, m, 0.5))
	assert.Empty(t, Inliers(x, y, LinearModel{Slope: 100, Intercept: 50}, 1))
}

func TestLinearModel(t *testing.T) {
	m := LinearModel{Slope: 3, Intercept: 10}
	assert.Equal(t, 19.0, m.Predict(3))
	assert.Equal(t, 1.0, m.Residual(3, 20))
	assert.Equal(t, "y ~ 3.00000*x + 10.00000", m.String())
}
