package grades

import (
	"math"
	"sort"
)

// Summary holds the descriptive statistics for one grade list.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize computes count, mean, median, standard deviation and extrema
// over values. The standard deviation is the population form (sum of squared
// deviations divided by N, not N-1), matching what the web UI documents.
// Returns ErrInvalidInput for an empty slice; every other input is total.
func Summarize(values []float64) (*Summary, error) {
	if len(values) == 0 {
		return nil, ErrInvalidInput
	}
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	n := len(s)

	mean := 0.0
	for _, v := range s {
		mean += v
	}
	mean /= float64(n)

	var median float64
	if n%2 == 1 {
		median = s[n/2]
	} else {
		median = (s[n/2-1] + s[n/2]) / 2.0
	}

	var sumsq float64
	for _, v := range s {
		d := v - mean
		sumsq += d * d
	}

	return &Summary{
		Count:  n,
		Mean:   mean,
		Median: median,
		StdDev: math.Sqrt(sumsq / float64(n)),
		Min:    s[0],
		Max:    s[n-1],
	}, nil
}
