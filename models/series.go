package models

import (
	"fmt"
	"time"

	"github.com/guregu/null/v6"

	ex "gdpeda/extensions"
)

// GrowthSeries is a date indexed table of growth observations, one row per
// period. Dates and Rates are parallel slices, rows stay in date order.
type GrowthSeries struct {
	Dates []time.Time
	Rates []null.Float
}

func NewGrowthSeries(capacity int) *GrowthSeries {
	return &GrowthSeries{
		Dates: make([]time.Time, 0, capacity),
		Rates: make([]null.Float, 0, capacity),
	}
}

func (s *GrowthSeries) Len() int {
	return len(s.Dates)
}

func (s *GrowthSeries) Append(date time.Time, rate null.Float) {
	s.Dates = append(s.Dates, date)
	s.Rates = append(s.Rates, rate)
}

// Validate makes sure the table rows are intact before anything reads them
func (s *GrowthSeries) Validate() error {
	if !ex.AreAllEqual([]int{len(s.Dates), len(s.Rates)}) {
		return fmt.Errorf("series validation failed, %d dates against %d rates", len(s.Dates), len(s.Rates))
	}

	if !s.IsTimeIndexed() {
		return fmt.Errorf("series validation failed, dates are not strictly increasing")
	}

	return nil
}

// Window returns the half open index range [lo, hi) of rows whose date falls
// in [start, end). Located by date comparison against the ordered axis, never
// by exact match, so boundaries that miss the axis still resolve cleanly.
func (s *GrowthSeries) Window(start, end time.Time) (int, int) {
	return WindowIndexes(s.Dates, start, end)
}

// RateAt returns the rate for an exact axis date. The ok flag is false when
// the date is absent or the cell is missing.
func (s *GrowthSeries) RateAt(date time.Time) (float64, bool) {
	for i, d := range s.Dates {
		if d.Equal(date) {
			if !s.Rates[i].Valid {
				return 0, false
			}
			return s.Rates[i].Float64, true
		}
	}
	return 0, false
}

// Values returns the non missing rates in date order
func (s *GrowthSeries) Values() []float64 {
	valid := ex.FilterMultiple(s.Rates, func(r null.Float) bool { return r.Valid })

	res := make([]float64, len(valid))
	for i, r := range valid {
		res[i] = r.Float64
	}
	return res
}

// MissingCount is the number of null cells in the rate column
func (s *GrowthSeries) MissingCount() int {
	count := 0
	for _, r := range s.Rates {
		if !r.Valid {
			count++
		}
	}
	return count
}

// IsTimeIndexed reports whether the date axis is strictly increasing
func (s *GrowthSeries) IsTimeIndexed() bool {
	for i := 1; i < len(s.Dates); i++ {
		if !s.Dates[i].After(s.Dates[i-1]) {
			return false
		}
	}
	return true
}

// WindowIndexes locates the half open index range [lo, hi) of dates falling
// in [start, end). Assumes dates is in increasing order.
func WindowIndexes(dates []time.Time, start, end time.Time) (int, int) {
	lo := len(dates)
	for i, d := range dates {
		if !d.Before(start) {
			lo = i
			break
		}
	}

	hi := len(dates)
	for i := lo; i < len(dates); i++ {
		if !dates[i].Before(end) {
			hi = i
			break
		}
	}

	return lo, hi
}

// QuarterStarts enumerates quarter start dates from the first quarter start on
// or after start, through end inclusive
func QuarterStarts(start, end time.Time) []time.Time {
	current := alignToQuarterStart(start)

	var dates []time.Time
	for !current.After(end) {
		dates = append(dates, current)
		current = current.AddDate(0, 3, 0)
	}
	return dates
}

func alignToQuarterStart(t time.Time) time.Time {
	quarterMonth := time.Month((int(t.Month())-1)/3*3 + 1)
	aligned := time.Date(t.Year(), quarterMonth, 1, 0, 0, 0, 0, t.Location())
	if aligned.Before(t) {
		aligned = aligned.AddDate(0, 3, 0)
	}
	return aligned
}
