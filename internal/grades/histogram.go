package grades

// DefaultBuckets is the histogram bucket count used when the caller does not
// override it.
const DefaultBuckets = 10

// Bucket is one histogram interval [Low,High) with its occurrence count.
// The final bucket is closed on both ends so Max lands in it.
type Bucket struct {
	Low   float64
	High  float64
	Count int
}

// BuildHistogram partitions [min,max] of values into buckets equal-width
// intervals and counts membership per interval. Bucket counts always sum to
// len(values). When all values are identical the range has zero width and the
// histogram collapses to a single bucket holding everything. A nil slice
// yields a nil histogram; callers validate input via ParseGradeList first.
func BuildHistogram(values []float64, buckets int) []Bucket {
	if len(values) == 0 {
		return nil
	}
	if buckets < 1 {
		buckets = DefaultBuckets
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []Bucket{{Low: min, High: max, Count: len(values)}}
	}

	width := (max - min) / float64(buckets)
	hist := make([]Bucket, buckets)
	for i := range hist {
		hist[i].Low = min + float64(i)*width
		hist[i].High = min + float64(i+1)*width
	}
	// the computed upper edge can drift below max by a few ulps
	hist[buckets-1].High = max

	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= buckets {
			idx = buckets - 1
		}
		hist[idx].Count++
	}
	return hist
}
