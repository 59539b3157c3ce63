package stack

import "testing"

func TestEvenlySpaced(t *testing.T) {
	tests := []struct {
		name   string
		n      int
		lo, hi float64
		want   []float64
	}{
		{
			name: "zero samples",
			n:    0, lo: 0, hi: 100,
			want: []float64{0, 100},
		},
		{
			name: "one sample",
			n:    1, lo: 0, hi: 100,
			want: []float64{0, 100},
		},
		{
			name: "four intervals",
			n:    4, lo: 0, hi: 100,
			want: []float64{0, 25, 50, 75, 100},
		},
		{
			name: "descending interval",
			n:    2, lo: 10, hi: 0,
			want: []float64{10, 5, 0},
		},
		{
			name: "negative bounds",
			n:    2, lo: -4, hi: 4,
			want: []float64{-4, 0, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvenlySpaced(tt.n, tt.lo, tt.hi)
			if len(got) != len(tt.want) {
				t.Fatalf("EvenlySpaced(%d) = %v, want %v", tt.n, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sample[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestEvenlySpacedExactEndpoints(t *testing.T) {
	// Endpoint exactness is required so boundary geometry aligns with axis
	// extents; interior rounding is fine, the bounds are not.
	lo, hi := 0.1, 0.7
	for n := 0; n <= 17; n++ {
		got := EvenlySpaced(n, lo, hi)
		if got[0] != lo {
			t.Errorf("n=%d: first = %v, want exactly %v", n, got[0], lo)
		}
		if got[len(got)-1] != hi {
			t.Errorf("n=%d: last = %v, want exactly %v", n, got[len(got)-1], hi)
		}
		wantLen := max(n, 1) + 1
		if len(got) != wantLen {
			t.Errorf("n=%d: length = %d, want %d", n, len(got), wantLen)
		}
	}
}

func TestEvenlySpacedMonotonic(t *testing.T) {
	got := EvenlySpaced(9, -3, 12)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Errorf("samples not strictly increasing at %d: %v <= %v", i, got[i], got[i-1])
		}
	}
}
