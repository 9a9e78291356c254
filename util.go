package ransac

import (
	"errors"
	"fmt"
	"io"

	"github.com/anastasispk/ransac/linearmodel"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/floats"
)

var ErrNoResult = errors.New("no fit result to plot")

// ScatterFit generates an echart scatter plot of the points split into inliers and outliers of the
// given model, overlaid with the model line across the range of x.
func ScatterFit(title string, x, y []float64, inlierIdx []int, m linearmodel.LinearModel) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(
			opts.Title{
				Title: title,
			},
		),
		charts.WithXAxisOpts(opts.XAxis{Name: "x", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y", Type: "value"}),
	)

	isInlier := make(map[int]struct{}, len(inlierIdx))
	for _, idx := range inlierIdx {
		isInlier[idx] = struct{}{}
	}

	inliers := make([]opts.ScatterData, 0, len(inlierIdx))
	outliers := make([]opts.ScatterData, 0, len(x)-len(inlierIdx))
	for i := 0; i < len(x); i++ {
		pnt := opts.ScatterData{Value: []float64{x[i], y[i]}}
		if _, exists := isInlier[i]; exists {
			inliers = append(inliers, pnt)
			continue
		}
		outliers = append(outliers, pnt)
	}
	scatter.AddSeries("Inliers", inliers).
		AddSeries("Outliers", outliers)

	if len(x) > 0 {
		xMin, xMax := floats.Min(x), floats.Max(x)
		line := charts.NewLine()
		line.AddSeries("Fit", []opts.LineData{
			{Value: []float64{xMin, m.Predict(xMin)}},
			{Value: []float64{xMax, m.Predict(xMax)}},
		})
		scatter.Overlap(line)
	}
	return scatter
}

// PlotFit uses the Apache Echarts library to render an html page of the input points and the
// fitted line of a result from this fitter
func (f *Fitter) PlotFit(w io.Writer, x, y []float64, res *Result) error {
	if res == nil {
		return ErrNoResult
	}
	if len(x) != len(y) {
		return fmt.Errorf("x has %d points and y has %d points, %w", len(x), len(y), ErrInvalidInput)
	}

	m := res.Line()
	page := components.NewPage()
	page.AddCharts(
		ScatterFit("Ransac model visualization", x, y, f.Inliers(x, y, m), m),
	)
	return page.Render(w)
}
