package core

import (
	"fmt"
	"log"
	"os"
	"time"

	m "gdpeda/models"
)

// RunEDA runs the full pipeline: generate the synthetic series, report its
// descriptive statistics, render the chart, and write it to the settings
// chart path. Returns the generated series and the path written.
func (sc *ServiceContext) RunEDA(settings m.GeneratorSettings) (*m.GrowthSeries, string, error) {
	start := time.Now()

	generator := NewGenerator(settings)
	series, err := generator.Generate()
	if err != nil {
		log.Printf("Error generating growth series: %v", err)
		return nil, "", err
	}

	if err := sc.Context.Err(); err != nil {
		return nil, "", err
	}

	log.Printf("Reporting descriptive statistics (time: %v)", time.Since(start))
	if err := ReportSeries(sc.Out, series); err != nil {
		log.Printf("Error reporting series statistics: %v", err)
		return nil, "", err
	}

	log.Printf("Rendering growth chart (time: %v)", time.Since(start))
	png, err := RenderChart(series)
	if err != nil {
		log.Printf("Error rendering growth chart: %v", err)
		return nil, "", err
	}

	if err := os.WriteFile(settings.ChartPath, png, 0o644); err != nil {
		return nil, "", fmt.Errorf("error writing chart to %s: %w", settings.ChartPath, err)
	}

	log.Printf("Chart written to %s (time: %v)", settings.ChartPath, time.Since(start))
	return series, settings.ChartPath, nil
}
