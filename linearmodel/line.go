package linearmodel

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrLenMismatch        = errors.New("x and y have different lengths")
	ErrInsufficientPoints = errors.New("need at least 2 points to fit a line")
	ErrDegenerate         = errors.New("points do not determine a line")
)

// DegenerateTolerance is the smallest magnitude of the normal equation denominator
// that still yields a usable slope
const DegenerateTolerance = 1e-6

// LinearModel represents the line y = Slope*x + Intercept
type LinearModel struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// Predict returns the modelled y value at x
func (m LinearModel) Predict(x float64) float64 {
	return m.Slope*x + m.Intercept
}

// Residual returns the absolute distance along y between the model and the observed point
func (m LinearModel) Residual(x, y float64) float64 {
	return math.Abs(m.Slope*x + m.Intercept - y)
}

// String returns the model equation represented as y ~ a*x + b
func (m LinearModel) String() string {
	return fmt.Sprintf("y ~ %.5f*x + %.5f", m.Slope, m.Intercept)
}

// FitIndices computes the closed form simple linear regression through the points referenced
// by idx. If the sampled x values are too close to determine a slope the zero model is returned
// with ok set to false.
func FitIndices(x, y []float64, idx []int) (LinearModel, bool) {
	var sumX, sumY, sumXX, sumXY float64
	for _, i := range idx {
		sumX += x[i]
		sumY += y[i]
		sumXX += x[i] * x[i]
		sumXY += x[i] * y[i]
	}

	k := float64(len(idx))
	den := k*sumXX - sumX*sumX
	if math.Abs(den) < DegenerateTolerance {
		return LinearModel{}, false
	}

	slope := (k*sumXY - sumX*sumY) / den
	return LinearModel{
		Slope:     slope,
		Intercept: (sumY - slope*sumX) / k,
	}, true
}

// FitAll computes the least squares line through every point using gonum
func FitAll(x, y []float64) (LinearModel, error) {
	if len(x) != len(y) {
		return LinearModel{}, fmt.Errorf("x has %d points and y has %d points, %w", len(x), len(y), ErrLenMismatch)
	}
	if len(x) < 2 {
		return LinearModel{}, fmt.Errorf("got %d points, %w", len(x), ErrInsufficientPoints)
	}
	if floats.Max(x) == floats.Min(x) {
		return LinearModel{}, ErrDegenerate
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return LinearModel{Slope: slope, Intercept: intercept}, nil
}

// Residuals writes the absolute residual of every point into dst and returns it. dst is
// allocated if it does not have the length of x.
func (m LinearModel) Residuals(dst, x, y []float64) []float64 {
	if len(dst) != len(x) {
		dst = make([]float64, len(x))
	}
	floats.ScaleTo(dst, m.Slope, x)
	floats.AddConst(m.Intercept, dst)
	floats.Sub(dst, y)
	for i, r := range dst {
		dst[i] = math.Abs(r)
	}
	return dst
}

// CountInliers returns the number of points with a residual strictly below threshold
func CountInliers(x, y []float64, m LinearModel, threshold float64) int {
	var cnt int
	for i := range x {
		if m.Residual(x[i], y[i]) < threshold {
			cnt++
		}
	}
	return cnt
}

// Inliers returns the indices of points with a residual strictly below threshold
func Inliers(x, y []float64, m LinearModel, threshold float64) []int {
	var idx []int
	for i := range x {
		if m.Residual(x[i], y[i]) < threshold {
			idx = append(idx, i)
		}
	}
	return idx
}
