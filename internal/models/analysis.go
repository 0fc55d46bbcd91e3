// Package models defines the wire and page types shared between the web
// layer and the API for the grade distribution analyzer.
package models

// StatisticsResult carries the six descriptive statistics for one analysis.
// StdDev is the population standard deviation (divide by N, not N-1).
type StatisticsResult struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// HistogramBucket is one half-open interval [Low,High) and its frequency.
// The final bucket of a histogram is closed so the maximum value is counted.
type HistogramBucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Count int     `json:"count"`
}

// AnalysisResult is the full JSON payload returned by /api/v1/analyze.
type AnalysisResult struct {
	Stats     StatisticsResult  `json:"stats"`
	Histogram []HistogramBucket `json:"histogram"`
	Grades    []float64         `json:"grades"`
	Skipped   int               `json:"skipped,omitempty"`
}

// UsageStats holds the service-level counters shown on the /stats page.
// Only aggregates are kept; submitted grades are never stored.
type UsageStats struct {
	AnalysesTotal   int64  `json:"analyses_total"`
	GradesTotal     int64  `json:"grades_total"`
	InvalidRequests int64  `json:"invalid_requests"`
	LastAnalysis    string `json:"last_analysis,omitempty"`
}
