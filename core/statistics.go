package core

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	m "gdpeda/models"
)

// Describe computes the five number summary plus mean and standard deviation.
// A single value degenerates to itself with a zero standard deviation.
func Describe(values []float64) m.SeriesSummary {
	n := len(values)
	if n == 0 {
		return m.SeriesSummary{}
	}

	// stat.Quantile requires the slice to be sorted in increasing order
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	summary := m.SeriesSummary{
		Count: n,
		Mean:  stat.Mean(sorted, nil),
		Min:   sorted[0],
		P25:   stat.Quantile(0.25, stat.Empirical, sorted, nil),
		P50:   stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P75:   stat.Quantile(0.75, stat.Empirical, sorted, nil),
		Max:   sorted[n-1],
	}

	if n > 1 {
		summary.StdDev = stat.StdDev(sorted, nil)
	}

	return summary
}
