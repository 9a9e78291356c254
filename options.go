package ransac

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidOptions = errors.New("invalid ransac options")
	ErrInvalidInput   = errors.New("invalid input data")
)

const (
	DefaultThreshold     = 5.0
	DefaultMaxIterations = 1000
	DefaultSampleSize    = 2
	DefaultMinInliers    = 80

	// MinSampleSize is the number of points needed to determine a line
	MinSampleSize = 2
)

// Options configures the Fitter. All values are fixed once the Fitter is created.
type Options struct {
	// Threshold is the exclusive upper bound on the absolute residual of an inlier
	Threshold float64 `json:"threshold"`

	// MaxIterations bounds the number of sample, fit, and score rounds
	MaxIterations int `json:"max_iterations"`

	// SampleSize is the number of points drawn per iteration to fit a candidate line
	SampleSize int `json:"sample_size"`

	// MinInliers is the inlier count at which the search stops early
	MinInliers int `json:"min_inliers"`

	// RefitInliers computes a least squares line over the winning inlier set after the search
	RefitInliers bool `json:"refit_inliers"`
}

func NewDefaultOptions() *Options {
	return &Options{
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
		SampleSize:    DefaultSampleSize,
		MinInliers:    DefaultMinInliers,
	}
}

// Validate returns a copy of the options if valid, or the default options if nil
func (o *Options) Validate() (*Options, error) {
	if o == nil {
		return NewDefaultOptions(), nil
	}
	if !(o.Threshold > 0) {
		return nil, fmt.Errorf("threshold must be positive, got %f, %w", o.Threshold, ErrInvalidOptions)
	}
	if o.MaxIterations <= 0 {
		return nil, fmt.Errorf("max iterations must be positive, got %d, %w", o.MaxIterations, ErrInvalidOptions)
	}
	if o.SampleSize < MinSampleSize {
		return nil, fmt.Errorf("sample size must be at least %d, got %d, %w", MinSampleSize, o.SampleSize, ErrInvalidOptions)
	}
	if o.MinInliers < o.SampleSize {
		return nil, fmt.Errorf("min inliers %d is less than sample size %d, %w", o.MinInliers, o.SampleSize, ErrInvalidOptions)
	}

	opt := *o
	return &opt, nil
}
