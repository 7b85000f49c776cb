package models

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	Daily     = 252
	Weekly    = 52
	Monthly   = 12
	Quarterly = 4
	Yearly    = 1
)

func ConvertFrequencyToString(inp int) string {
	switch inp {
	case Daily:
		return "days"
	case Weekly:
		return "weeks"
	case Monthly:
		return "months"
	case Quarterly:
		return "quarters"
	case Yearly:
		return "years"
	default:
		return ""
	}
}

// GeneratorSettings holds everything the generator needs to build a series.
// Defaults reproduce the 2005-2010 Kenya growth scenario, tests inject their own.
type GeneratorSettings struct {
	Start time.Time
	End   time.Time

	BaselineMean   float64
	BaselineStdDev float64

	// shock window is half open, [ShockStart, ShockEnd)
	ShockStart     time.Time
	ShockEnd       time.Time
	ShockMagnitude float64

	NoiseStdDev float64

	Seed      int64 // 0 means a fresh source every run
	ChartPath string
}

func DefaultSettings() GeneratorSettings {
	return GeneratorSettings{
		Start:          time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC),
		End:            time.Date(2010, 12, 31, 0, 0, 0, 0, time.UTC),
		BaselineMean:   5.0,
		BaselineStdDev: 0.5,
		ShockStart:     time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC),
		ShockEnd:       time.Date(2009, 1, 1, 0, 0, 0, 0, time.UTC),
		ShockMagnitude: 4.5,
		NoiseStdDev:    0.3,
		ChartPath:      "gdp_growth_eda.png",
	}
}

// SettingsFromEnv layers environment overrides on top of the defaults
func SettingsFromEnv() (GeneratorSettings, error) {
	settings := DefaultSettings()

	if v := os.Getenv("EDA_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return settings, fmt.Errorf("invalid EDA_SEED %q: %w", v, err)
		}
		settings.Seed = seed
	}

	if v := os.Getenv("EDA_CHART_PATH"); v != "" {
		settings.ChartPath = v
	}

	return settings, nil
}
