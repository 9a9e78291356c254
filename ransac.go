package ransac

import (
	"fmt"
	"log/slog"

	"github.com/anastasispk/ransac/linearmodel"
	"github.com/anastasispk/ransac/sample"
)

// Fitter estimates the line explaining the largest consistent subset of a point set using
// random sample consensus. A Fitter only holds its options so it may be shared across
// goroutines as long as each Fit call uses its own Sampler.
type Fitter struct {
	opt *Options
}

// New creates a new instance of a Fitter using the provided options. If no options are provided
// the defaults are used.
func New(opt *Options) (*Fitter, error) {
	opt, err := opt.Validate()
	if err != nil {
		return nil, fmt.Errorf("unable to initialize fitter, %w", err)
	}
	return &Fitter{opt: opt}, nil
}

// Options returns a copy of the fitter configuration
func (f *Fitter) Options() Options {
	return *f.opt
}

// Fit searches for the line with the most inliers among x and y. Each iteration fits a line through
// SampleSize randomly drawn points and scores it against every point. A candidate replaces the
// best so far only when it has strictly more inliers, so the earliest of several equally scored
// candidates wins. The search stops as soon as the best candidate reaches MinInliers.
//
// A nil sampler is replaced by a freshly seeded one owned by this call. The returned result is
// non-nil whenever the error is nil; a weak fit is reported through its inlier count, not an error.
func (f *Fitter) Fit(x, y []float64, s sample.Sampler) (*Result, error) {
	if err := f.validateInput(x, y); err != nil {
		return nil, err
	}
	if s == nil {
		s = sample.NewRandSampler(nil)
	}

	n := len(x)
	res := &Result{}
	residual := make([]float64, n)

	for i := 0; i < f.opt.MaxIterations; i++ {
		res.Iterations++

		idx := s.Sample(n, f.opt.SampleSize)

		// degenerate samples are scored as the zero model and rarely compete
		model, _ := linearmodel.FitIndices(x, y, idx)

		residual = model.Residuals(residual, x, y)
		inliers := countBelow(residual, f.opt.Threshold)

		if inliers <= res.Inliers {
			continue
		}
		res.Model = model
		res.Inliers = inliers
		res.Found = true

		if inliers >= f.opt.MinInliers {
			break
		}
	}

	if res.Inliers < f.opt.MinInliers {
		slog.Debug("ransac budget exhausted below min inliers",
			"iterations", res.Iterations, "inliers", res.Inliers, "min_inliers", f.opt.MinInliers)
	}

	if f.opt.RefitInliers && res.Found {
		if err := f.refit(x, y, res); err != nil {
			slog.Warn("unable to refit inliers, keeping sampled model", "error", err.Error())
		}
	}

	slog.Debug("ransac fit complete",
		"slope", res.Model.Slope, "intercept", res.Model.Intercept,
		"inliers", res.Inliers, "iterations", res.Iterations)
	return res, nil
}

// Inliers returns the indices of the points within the fitter threshold of the provided model
func (f *Fitter) Inliers(x, y []float64, m linearmodel.LinearModel) []int {
	return linearmodel.Inliers(x, y, m, f.opt.Threshold)
}

func (f *Fitter) validateInput(x, y []float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("x has %d points and y has %d points, %w", len(x), len(y), ErrInvalidInput)
	}
	if len(x) < f.opt.SampleSize {
		return fmt.Errorf("got %d points but sample size is %d, %w", len(x), f.opt.SampleSize, ErrInvalidInput)
	}
	if len(x) < f.opt.MinInliers {
		return fmt.Errorf("got %d points but min inliers is %d, %w", len(x), f.opt.MinInliers, ErrInvalidInput)
	}
	return nil
}

func (f *Fitter) refit(x, y []float64, res *Result) error {
	idx := f.Inliers(x, y, res.Model)
	inX := make([]float64, len(idx))
	inY := make([]float64, len(idx))
	for i, j := range idx {
		inX[i] = x[j]
		inY[i] = y[j]
	}

	refined, err := linearmodel.FitAll(inX, inY)
	if err != nil {
		return fmt.Errorf("refit over %d inliers, %w", len(idx), err)
	}
	res.Refined = &refined
	return nil
}

func countBelow(vals []float64, threshold float64) int {
	var cnt int
	for _, v := range vals {
		if v < threshold {
			cnt++
		}
	}
	return cnt
}
