package grades

import "testing"

func TestBuildHistogram(t *testing.T) {
	testCases := []struct {
		name       string
		in         []float64
		buckets    int
		wantLen    int
		wantCounts []int
	}{
		{
			name:       "uniform spread over ten buckets",
			in:         []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			buckets:    10,
			wantLen:    10,
			wantCounts: []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 2}, // 9 and 10 share the closed last bucket
		},
		{
			name:       "max lands in final bucket",
			in:         []float64{0, 10},
			buckets:    5,
			wantLen:    5,
			wantCounts: []int{1, 0, 0, 0, 1},
		},
		{
			name:       "identical values collapse to one bucket",
			in:         []float64{50, 50, 50},
			buckets:    10,
			wantLen:    1,
			wantCounts: []int{3},
		},
		{
			name:       "single value",
			in:         []float64{100},
			buckets:    10,
			wantLen:    1,
			wantCounts: []int{1},
		},
		{
			name:       "non-positive bucket count falls back to default",
			in:         []float64{0, 100},
			buckets:    0,
			wantLen:    DefaultBuckets,
			wantCounts: []int{1, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hist := BuildHistogram(tc.in, tc.buckets)
			if len(hist) != tc.wantLen {
				t.Fatalf("got %d buckets, want %d", len(hist), tc.wantLen)
			}
			for i, b := range hist {
				if b.Count != tc.wantCounts[i] {
					t.Errorf("bucket %d count = %d, want %d (%+v)", i, b.Count, tc.wantCounts[i], hist)
				}
			}
		})
	}
}

func TestBuildHistogramEmpty(t *testing.T) {
	if hist := BuildHistogram(nil, 10); hist != nil {
		t.Fatalf("expected nil histogram for empty input, got %+v", hist)
	}
}

// Bucket frequencies must sum to the number of input values and bucket
// edges must cover [min,max] without gaps.
func TestBuildHistogramProperties(t *testing.T) {
	inputs := [][]float64{
		{85, 92, 78, 88, 95, 82, 90, 87, 91, 84},
		{1, 1, 1, 2},
		{-5, 5},
		{0.001, 0.002, 0.003},
		{3, 3, 3},
	}
	for _, in := range inputs {
		hist := BuildHistogram(in, 10)
		total := 0
		for _, b := range hist {
			total += b.Count
		}
		if total != len(in) {
			t.Errorf("bucket counts sum to %d, want %d for %v", total, len(in), in)
		}
		for i := 1; i < len(hist); i++ {
			if hist[i].Low != hist[i-1].High {
				t.Errorf("gap between bucket %d and %d: %v != %v", i-1, i, hist[i-1].High, hist[i].Low)
			}
		}
	}
}
