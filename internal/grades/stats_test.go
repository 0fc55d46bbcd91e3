package grades

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestSummarize(t *testing.T) {
	testCases := []struct {
		name string
		in   []float64
		want Summary
	}{
		{
			// the demo input shown as the form placeholder
			name: "ten grades",
			in:   []float64{85, 92, 78, 88, 95, 82, 90, 87, 91, 84},
			want: Summary{Count: 10, Mean: 87.2, Median: 87.5, Min: 78, Max: 95, StdDev: math.Sqrt(23.36)},
		},
		{
			name: "single value",
			in:   []float64{100},
			want: Summary{Count: 1, Mean: 100, Median: 100, Min: 100, Max: 100, StdDev: 0},
		},
		{
			name: "odd count median",
			in:   []float64{3, 1, 2},
			want: Summary{Count: 3, Mean: 2, Median: 2, Min: 1, Max: 3, StdDev: math.Sqrt(2.0 / 3.0)},
		},
		{
			name: "even count median averages middle pair",
			in:   []float64{4, 1, 3, 2},
			want: Summary{Count: 4, Mean: 2.5, Median: 2.5, Min: 1, Max: 4, StdDev: math.Sqrt(1.25)},
		},
		{
			name: "identical values",
			in:   []float64{7, 7, 7, 7},
			want: Summary{Count: 4, Mean: 7, Median: 7, Min: 7, Max: 7, StdDev: 0},
		},
		{
			name: "negative values",
			in:   []float64{-10, 10},
			want: Summary{Count: 2, Mean: 0, Median: 0, Min: -10, Max: 10, StdDev: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Summarize(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Count != tc.want.Count {
				t.Errorf("Count = %d, want %d", got.Count, tc.want.Count)
			}
			if !almostEqual(got.Mean, tc.want.Mean) {
				t.Errorf("Mean = %v, want %v", got.Mean, tc.want.Mean)
			}
			if !almostEqual(got.Median, tc.want.Median) {
				t.Errorf("Median = %v, want %v", got.Median, tc.want.Median)
			}
			if !almostEqual(got.StdDev, tc.want.StdDev) {
				t.Errorf("StdDev = %v, want %v", got.StdDev, tc.want.StdDev)
			}
			if got.Min != tc.want.Min || got.Max != tc.want.Max {
				t.Errorf("Min/Max = %v/%v, want %v/%v", got.Min, got.Max, tc.want.Min, tc.want.Max)
			}
		})
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

// Summarize must leave the caller's slice untouched; it sorts a copy.
func TestSummarizeDoesNotMutateInput(t *testing.T) {
	in := []float64{9, 1, 5}
	if _, err := Summarize(in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in[0] != 9 || in[1] != 1 || in[2] != 5 {
		t.Fatalf("input slice was mutated: %v", in)
	}
}

// Properties that must hold for any non-empty input.
func TestSummarizeProperties(t *testing.T) {
	inputs := [][]float64{
		{1},
		{5, 5, 5},
		{0.1, 0.2, 0.3, 0.4},
		{-100, 0, 100, 42.5, 17},
		{85, 92, 78, 88, 95, 82, 90, 87, 91, 84},
	}
	for _, in := range inputs {
		sum, err := Summarize(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sum.Mean < sum.Min-epsilon || sum.Mean > sum.Max+epsilon {
			t.Errorf("mean %v outside [%v,%v] for %v", sum.Mean, sum.Min, sum.Max, in)
		}
		if sum.StdDev < 0 {
			t.Errorf("negative stddev %v for %v", sum.StdDev, in)
		}
		allSame := true
		for _, v := range in {
			if v != in[0] {
				allSame = false
				break
			}
		}
		if allSame != (sum.StdDev == 0) {
			t.Errorf("stddev %v does not match identical-values=%t for %v", sum.StdDev, allSame, in)
		}
	}
}
