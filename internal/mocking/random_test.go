package mocking

import (
	"testing"
	"time"
)

func TestPickMany_DistinctAndBounded(t *testing.T) {
	r := NewSource(1)
	set := []string{"a", "b", "c", "d", "e"}

	for k := 0; k <= 7; k++ {
		got := PickMany(r, set, k)
		want := min(k, len(set))
		if len(got) != want {
			t.Fatalf("k=%d: expected %d elements, got %d", k, want, len(got))
		}
		seen := map[string]bool{}
		for _, v := range got {
			if seen[v] {
				t.Fatalf("k=%d: repeated element %q", k, v)
			}
			seen[v] = true
		}
	}
}

func TestPick_PanicsOnEmptySet(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Pick(NewSource(1), []int{})
}

func TestBetween_HalfOpen(t *testing.T) {
	r := NewSource(7)
	for range 10000 {
		v := Between(r, 1, 6)
		if v < 1 || v >= 6 {
			t.Fatalf("value out of [1,6): %v", v)
		}
	}
}

func TestWithin_InsideWindow(t *testing.T) {
	r := NewSource(3)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	window := 30 * 24 * time.Hour

	for range 1000 {
		got := Within(r, now, window)
		if got.After(now) || !got.After(now.Add(-window-time.Nanosecond)) {
			t.Fatalf("time outside window: %v", got)
		}
	}
}

func TestDistribution_Draw_FollowsWeights(t *testing.T) {
	d := Distribution[string]{
		{Value: "x", Weight: 3},
		{Value: "y", Weight: 1},
	}
	r := NewSource(42)

	counts := map[string]int{}
	const n = 20000
	for range n {
		counts[d.Draw(r)]++
	}
	if len(counts) != 2 {
		t.Fatalf("unexpected values: %v", counts)
	}

	ratio := float64(counts["x"]) / n
	if ratio < 0.72 || ratio > 0.78 {
		t.Fatalf("expected ~0.75 for x, got %.3f", ratio)
	}

}
