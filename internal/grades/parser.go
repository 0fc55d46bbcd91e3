// Package grades implements the core of the grade distribution analyzer:
// parsing comma-separated grade input, summary statistics and histogram
// bucketing. Everything in here is a pure function computed once per
// request; no state survives a call.
package grades

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidInput is returned when the submitted text yields zero usable
// numeric values.
var ErrInvalidInput = errors.New("no valid numeric grades in input")

// ParseGradeList splits raw input on commas, trims whitespace and converts
// each token to a float64. Malformed tokens are filtered rather than fatal;
// skipped reports how many were dropped so the caller can surface it.
// NaN and Inf tokens are treated as malformed since they would poison every
// downstream reduction. Returns ErrInvalidInput when no valid number remains.
func ParseGradeList(raw string) (values []float64, skipped int, err error) {
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		v, perr := strconv.ParseFloat(token, 64)
		if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			skipped++
			continue
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, skipped, ErrInvalidInput
	}
	return values, skipped, nil
}
