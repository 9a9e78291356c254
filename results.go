package ransac

import (
	"fmt"
	"io"

	"github.com/anastasispk/ransac/linearmodel"
)

// Result is the outcome of a single Fit call
type Result struct {
	// Model is the sampled line with the most inliers. It is only meaningful when Found is true.
	Model linearmodel.LinearModel `json:"model"`

	// Inliers is the number of points within the threshold of Model
	Inliers int `json:"inliers"`

	// Iterations is the number of iterations executed before the search stopped
	Iterations int `json:"iterations"`

	// Found is false when no iteration produced a candidate with at least one inlier
	Found bool `json:"found"`

	// Refined is the least squares line over the inliers of Model, set when refitting is enabled
	Refined *linearmodel.LinearModel `json:"refined,omitempty"`
}

// Line returns the refined model if present, otherwise the sampled model
func (r *Result) Line() linearmodel.LinearModel {
	if r.Refined != nil {
		return *r.Refined
	}
	return r.Model
}

// TablePrint writes a human readable summary of the result
func (r *Result) TablePrint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "RANSAC Fit:\n"); err != nil {
		return err
	}
	if !r.Found {
		if _, err := fmt.Fprintf(w, "  Model: None\n"); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "  Model: %s\n", r.Model); err != nil {
			return err
		}
	}
	if r.Refined != nil {
		if _, err := fmt.Fprintf(w, "  Refined: %s\n", r.Refined); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "  Inliers: %d\n", r.Inliers); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Iterations: %d\n", r.Iterations); err != nil {
		return err
	}
	return nil
}
