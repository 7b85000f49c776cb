package core

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/guregu/null/v6"

	ex "gdpeda/extensions"
	m "gdpeda/models"
)

func reportToString(t *testing.T, series *m.GrowthSeries) string {
	t.Helper()

	var buf bytes.Buffer
	if err := ReportSeries(&buf, series); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return buf.String()
}

func TestReportSeriesIsIdempotent(t *testing.T) {
	settings := m.DefaultSettings()
	settings.Seed = 5

	series, err := NewGenerator(settings).Generate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := reportToString(t, series)
	second := reportToString(t, series)

	ex.AssertAreEqual(t, "repeated report output", first, second)

	if !strings.Contains(first, "Missing values check: 0") {
		t.Errorf("missing value line not found in report:\n%s", first)
	}

	if !strings.Contains(first, "time-series indexed: true") {
		t.Errorf("index check line not found in report:\n%s", first)
	}
}

func TestReportSeriesSingleRow(t *testing.T) {
	series := m.NewGrowthSeries(1)
	series.Append(time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), null.FloatFrom(5.1))

	out := reportToString(t, series)

	if !strings.Contains(out, "count         1") {
		t.Errorf("expected count 1 in report:\n%s", out)
	}

	if !strings.Contains(out, "Missing values check: 0") {
		t.Errorf("expected zero missing values in report:\n%s", out)
	}
}

func TestReportSeriesEmptyTable(t *testing.T) {
	series := m.NewGrowthSeries(0)

	out := reportToString(t, series)

	if !strings.Contains(out, "count         0") {
		t.Errorf("expected count 0 in report:\n%s", out)
	}
}

func TestReportSeriesCountsMissingCells(t *testing.T) {
	series := m.NewGrowthSeries(2)
	series.Append(time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), null.FloatFrom(4.9))
	series.Append(time.Date(2005, 4, 1, 0, 0, 0, 0, time.UTC), null.NewFloat(0, false))

	out := reportToString(t, series)

	if !strings.Contains(out, "Missing values check: 1") {
		t.Errorf("expected one missing value in report:\n%s", out)
	}
}
