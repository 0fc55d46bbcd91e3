package grades

import (
	"errors"
	"testing"
)

func TestParseGradeList(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    []float64
		skipped int
		wantErr bool
	}{
		{
			name: "plain list",
			raw:  "85, 92, 78",
			want: []float64{85, 92, 78},
		},
		{
			name: "whitespace and empty tokens",
			raw:  "  85 ,, 92 , ",
			want: []float64{85, 92},
		},
		{
			name:    "malformed tokens filtered",
			raw:     "85, abc, 92, 9x",
			want:    []float64{85, 92},
			skipped: 2,
		},
		{
			name: "negative and fractional",
			raw:  "-3.5,0,99.25",
			want: []float64{-3.5, 0, 99.25},
		},
		{
			name:    "nan and inf rejected",
			raw:     "NaN, +Inf, 50",
			want:    []float64{50},
			skipped: 2,
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "only commas",
			raw:     ",,,",
			wantErr: true,
		},
		{
			name:    "all malformed",
			raw:     "foo, bar, baz",
			skipped: 3,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			values, skipped, err := ParseGradeList(tc.raw)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if skipped != tc.skipped {
				t.Errorf("skipped = %d, want %d", skipped, tc.skipped)
			}
			if len(values) != len(tc.want) {
				t.Fatalf("got %d values, want %d (%v)", len(values), len(tc.want), values)
			}
			for i, v := range values {
				if v != tc.want[i] {
					t.Errorf("values[%d] = %v, want %v", i, v, tc.want[i])
				}
			}
		})
	}
}
