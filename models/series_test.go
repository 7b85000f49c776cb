package models

import (
	"testing"
	"time"

	"github.com/guregu/null/v6"

	ex "gdpeda/extensions"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuarterStarts(t *testing.T) {
	dates := QuarterStarts(date(2005, 1, 1), date(2010, 12, 31))

	ex.AssertAreEqual(t, "axis length", 24, len(dates))
	ex.AssertAreEqual(t, "first date", date(2005, 1, 1), dates[0])
	ex.AssertAreEqual(t, "last date", date(2010, 10, 1), dates[len(dates)-1])

	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Fatalf("axis not strictly increasing at index %d", i)
		}
		ex.AssertAreEqual(t, "quarter step", dates[i-1].AddDate(0, 3, 0), dates[i])
	}
}

func TestQuarterStartsAlignsOffQuarterStart(t *testing.T) {
	dates := QuarterStarts(date(2005, 2, 15), date(2005, 12, 31))

	ex.AssertAreEqual(t, "axis length", 3, len(dates))
	ex.AssertAreEqual(t, "aligned first date", date(2005, 4, 1), dates[0])
}

func TestQuarterStartsEmptyRange(t *testing.T) {
	dates := QuarterStarts(date(2010, 12, 15), date(2010, 12, 31))
	ex.AssertAreEqual(t, "axis length", 0, len(dates))
}

func quarterlySeries(t *testing.T) *GrowthSeries {
	t.Helper()

	dates := QuarterStarts(date(2005, 1, 1), date(2010, 12, 31))
	series := NewGrowthSeries(len(dates))
	for i, d := range dates {
		series.Append(d, null.FloatFrom(5.0+float64(i)*0.01))
	}
	return series
}

func TestWindowHalfOpenBoundaries(t *testing.T) {
	series := quarterlySeries(t)

	lo, hi := series.Window(date(2008, 1, 1), date(2009, 1, 1))
	ex.AssertAreEqual(t, "window start index", 12, lo)
	ex.AssertAreEqual(t, "window end index", 16, hi)
}

func TestWindowOffAxisBoundaries(t *testing.T) {
	series := quarterlySeries(t)

	// neither boundary falls on a quarter start, comparison still resolves
	lo, hi := series.Window(date(2007, 12, 15), date(2008, 8, 20))
	ex.AssertAreEqual(t, "window start index", 12, lo)
	ex.AssertAreEqual(t, "window end index", 14, hi)
}

func TestWindowMatchingNothing(t *testing.T) {
	series := quarterlySeries(t)

	lo, hi := series.Window(date(2008, 1, 2), date(2008, 3, 15))
	if lo < hi {
		t.Fatalf("expected empty window, got [%d, %d)", lo, hi)
	}
}

func TestRateAt(t *testing.T) {
	series := quarterlySeries(t)

	rate, ok := series.RateAt(date(2005, 1, 1))
	ex.AssertAreEqual(t, "lookup ok", true, ok)
	ex.AssertAreEqual(t, "rate value", 5.0, rate)

	_, ok = series.RateAt(date(2005, 4, 2))
	ex.AssertAreEqual(t, "off axis lookup", false, ok)
}

func TestMissingCountAndValues(t *testing.T) {
	series := NewGrowthSeries(3)
	series.Append(date(2005, 1, 1), null.FloatFrom(4.8))
	series.Append(date(2005, 4, 1), null.NewFloat(0, false))
	series.Append(date(2005, 7, 1), null.FloatFrom(5.2))

	ex.AssertAreEqual(t, "missing count", 1, series.MissingCount())

	values := series.Values()
	ex.AssertAreEqual(t, "values length", 2, len(values))
	ex.AssertAreEqual(t, "first value", 4.8, values[0])
	ex.AssertAreEqual(t, "second value", 5.2, values[1])
}

func TestIsTimeIndexed(t *testing.T) {
	series := quarterlySeries(t)
	ex.AssertAreEqual(t, "ordered axis", true, series.IsTimeIndexed())

	series.Append(date(2005, 1, 1), null.FloatFrom(5.0))
	ex.AssertAreEqual(t, "out of order axis", false, series.IsTimeIndexed())
}

func TestValidateRowMismatch(t *testing.T) {
	series := quarterlySeries(t)
	series.Rates = series.Rates[:len(series.Rates)-1]

	if err := series.Validate(); err == nil {
		t.Fatal("expected validation error for mismatched row slices")
	}
}
