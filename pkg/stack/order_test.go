package stack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func orderFixture() []Series[string] {
	return []Series[string]{
		{Label: "mid", Values: []float64{2, 2}},   // sum 4
		{Label: "big", Values: []float64{5, 5}},   // sum 10
		{Label: "small", Values: []float64{1, 0}}, // sum 1
	}
}

func labelsOf(items []Series[string]) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Label
	}
	return out
}

func TestOrderNone(t *testing.T) {
	got := labelsOf(OrderNone(orderFixture()))
	if diff := cmp.Diff([]string{"mid", "big", "small"}, got); diff != "" {
		t.Errorf("OrderNone mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderAscending(t *testing.T) {
	got := labelsOf(OrderAscending(orderFixture()))
	if diff := cmp.Diff([]string{"small", "mid", "big"}, got); diff != "" {
		t.Errorf("OrderAscending mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderDescending(t *testing.T) {
	got := labelsOf(OrderDescending(orderFixture()))
	if diff := cmp.Diff([]string{"big", "mid", "small"}, got); diff != "" {
		t.Errorf("OrderDescending mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderAscendingStable(t *testing.T) {
	items := []Series[string]{
		{Label: "first", Values: []float64{1}},
		{Label: "second", Values: []float64{1}},
	}
	got := labelsOf(OrderAscending(items))
	if diff := cmp.Diff([]string{"first", "second"}, got); diff != "" {
		t.Errorf("equal sums should keep input order (-want +got):\n%s", diff)
	}
}

func TestOrderInsideOut(t *testing.T) {
	got := OrderInsideOut(orderFixture())

	if len(got) != 3 {
		t.Fatalf("series count = %d, want 3", len(got))
	}
	// The largest series must not sit at either end of the stack.
	if got[0].Label == "big" || got[len(got)-1].Label == "big" {
		t.Errorf("largest series should be inside, got order %v", labelsOf(got))
	}
}

func TestOrdersArePermutations(t *testing.T) {
	for name, order := range map[string]OrderFn[string]{
		"none":       OrderNone[string],
		"ascending":  OrderAscending[string],
		"descending": OrderDescending[string],
		"insideOut":  OrderInsideOut[string],
	} {
		t.Run(name, func(t *testing.T) {
			out := order(orderFixture())
			if got, want := len(out), 3; got != want {
				t.Fatalf("series count = %d, want %d", got, want)
			}
			seen := map[string]bool{}
			for _, s := range out {
				seen[s.Label] = true
			}
			for _, label := range []string{"small", "mid", "big"} {
				if !seen[label] {
					t.Errorf("missing series %q after ordering", label)
				}
			}
		})
	}
}
