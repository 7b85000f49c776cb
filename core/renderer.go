package core

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	ex "gdpeda/extensions"
	m "gdpeda/models"
)

var ErrEmptySeries = errors.New("cannot render an empty series")

const (
	chartWidth  = 1200
	chartHeight = 600
)

var (
	growthLineColor = drawing.Color{R: 0x1f, G: 0x77, B: 0xb4, A: 255}
	crisisBandColor = drawing.Color{R: 255, G: 0, B: 0, A: 26}
	electionColor   = drawing.Color{R: 200, G: 30, B: 30, A: 255}

	crisisStart  = time.Date(2007, 12, 1, 0, 0, 0, 0, time.UTC)
	crisisEnd    = time.Date(2009, 6, 1, 0, 0, 0, 0, time.UTC)
	electionDate = time.Date(2007, 12, 27, 0, 0, 0, 0, time.UTC)
)

// RenderChart draws the growth series with the crisis band shaded underneath
// and a dashed marker on the election date, and returns the PNG bytes. The
// caller decides where the bytes go, so headless environments work the same.
func RenderChart(series *m.GrowthSeries) ([]byte, error) {
	if series == nil || series.Len() == 0 {
		return nil, ErrEmptySeries
	}

	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("error validating series before rendering: %w", err)
	}

	xs, ys := plotPoints(series)
	if len(xs) == 0 {
		return nil, ErrEmptySeries
	}

	// go-chart needs at least two x values, pad degenerate series a quarter out
	if len(xs) == 1 {
		xs = append(xs, xs[0].AddDate(0, 3, 0))
		ys = append(ys, ys[0])
	}

	yRange := paddedRange(ys)

	// shaded band is a filled series pinned to the top of the y range, drawn
	// first so the growth line layers above it
	band := chart.TimeSeries{
		Name:    "Post-Election Crisis Period",
		XValues: []time.Time{crisisStart, crisisEnd},
		YValues: []float64{yRange.Max, yRange.Max},
		Style: chart.Style{
			StrokeColor: crisisBandColor,
			StrokeWidth: 1,
			FillColor:   crisisBandColor,
		},
	}

	line := chart.TimeSeries{
		Name:    "Quarterly GDP Growth (%)",
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeColor: growthLineColor,
			StrokeWidth: 2,
			DotColor:    growthLineColor,
			DotWidth:    4,
		},
	}

	marker := chart.TimeSeries{
		Name:    "Election Date (Dec 2007)",
		XValues: []time.Time{electionDate, electionDate},
		YValues: []float64{yRange.Min, yRange.Max},
		Style: chart.Style{
			StrokeColor:     electionColor,
			StrokeWidth:     1,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}

	ch := chart.Chart{
		Title:      "Time Series EDA: Kenya GDP Growth Rate (2005-2010)",
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           "Date (Quarterly)",
			TickStyle:      chart.Style{TextRotationDegrees: 45.0},
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			Name:  "GDP Growth Rate (%)",
			Range: yRange,
		},
		Series: []chart.Series{band, line, marker},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("error rendering growth chart: %w", err)
	}

	return buf.Bytes(), nil
}

// plotPoints keeps the date and rate slices aligned while skipping null cells
func plotPoints(series *m.GrowthSeries) ([]time.Time, []float64) {
	xs := make([]time.Time, 0, series.Len())
	ys := make([]float64, 0, series.Len())

	for i, rate := range series.Rates {
		if !rate.Valid {
			continue
		}
		xs = append(xs, series.Dates[i])
		ys = append(ys, rate.Float64)
	}

	return xs, ys
}

func paddedRange(values []float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = ex.Min(lo, v)
		hi = ex.Max(hi, v)
	}

	return &chart.ContinuousRange{Min: lo - 1.0, Max: hi + 1.0}
}
