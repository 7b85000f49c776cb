package models

// SeriesSummary is the standard five number summary plus mean and standard
// deviation for a single numeric column
type SeriesSummary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	P25    float64
	P50    float64
	P75    float64
	Max    float64
}
