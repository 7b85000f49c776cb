package core

import (
	"fmt"
	"io"

	m "gdpeda/models"
)

// ReportSeries writes the descriptive statistics block, the missing value
// count, and the time index check for the rate column. Read only, calling it
// twice on the same table produces identical output.
func ReportSeries(w io.Writer, series *m.GrowthSeries) error {
	if err := series.Validate(); err != nil {
		return fmt.Errorf("error validating series before reporting: %w", err)
	}

	summary := Describe(series.Values())

	fmt.Fprintln(w, "--- Descriptive Statistics (GDP Growth Rate) ---")
	fmt.Fprintf(w, "count  %8d\n", summary.Count)
	fmt.Fprintf(w, "mean   %8.4f\n", summary.Mean)
	fmt.Fprintf(w, "std    %8.4f\n", summary.StdDev)
	fmt.Fprintf(w, "min    %8.4f\n", summary.Min)
	fmt.Fprintf(w, "25%%    %8.4f\n", summary.P25)
	fmt.Fprintf(w, "50%%    %8.4f\n", summary.P50)
	fmt.Fprintf(w, "75%%    %8.4f\n", summary.P75)
	fmt.Fprintf(w, "max    %8.4f\n", summary.Max)

	fmt.Fprintf(w, "\nMissing values check: %d\n", series.MissingCount())
	fmt.Fprintf(w, "Index type check: the data is time-series indexed: %t\n", series.IsTimeIndexed())

	return nil
}
