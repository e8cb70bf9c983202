package persona

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPerformanceScoreZeroStats(t *testing.T) {
	score := PerformanceScore(Stats{TotalIncome: decimal.Zero})
	if score != 0 {
		t.Fatalf("expected 0 for zero stats, got %d", score)
	}
}

func TestPerformanceScoreAllMaxed(t *testing.T) {
	stats := Stats{
		MessageCount:     250,
		ResponseRate:     100,
		TotalIncome:      decimal.NewFromInt(5000),
		ContentCreated:   10,
		ContentPublished: 10,
		ConversionRate:   100,
	}
	score := PerformanceScore(stats)
	if score != 100 {
		t.Fatalf("expected 100 for maxed stats, got %d", score)
	}
}

func TestPerformanceScoreMidrange(t *testing.T) {
	stats := Stats{
		MessageCount:     50,
		ResponseRate:     50,
		TotalIncome:      decimal.NewFromInt(500),
		ContentCreated:   2,
		ContentPublished: 1,
		ConversionRate:   50,
	}
	// Every component sits at 50, so the weighted sum is 50
	score := PerformanceScore(stats)
	if score != 50 {
		t.Fatalf("expected 50 for midrange stats, got %d", score)
	}
}

func TestPerformanceScoreIncomeCapped(t *testing.T) {
	atCap := PerformanceScore(Stats{TotalIncome: decimal.NewFromInt(1000)})
	overCap := PerformanceScore(Stats{TotalIncome: decimal.NewFromInt(100000)})
	if atCap != overCap {
		t.Fatalf("income above the cap changed the score: %d vs %d", atCap, overCap)
	}
	if atCap != 40 {
		t.Fatalf("expected capped income alone to contribute 40, got %d", atCap)
	}
}

func TestPerformanceScoreNoContentCreated(t *testing.T) {
	stats := Stats{
		TotalIncome:      decimal.Zero,
		ContentPublished: 5, // stale counter without creations must not divide by zero
	}
	score := PerformanceScore(stats)
	if score != 0 {
		t.Fatalf("expected 0 when nothing was created, got %d", score)
	}
}

func TestPerformanceScoreMonotonicInMessages(t *testing.T) {
	base := Stats{TotalIncome: decimal.Zero}
	prev := PerformanceScore(base)
	for _, count := range []int{10, 40, 80, 100} {
		base.MessageCount = count
		next := PerformanceScore(base)
		if next < prev {
			t.Fatalf("score decreased from %d to %d at %d messages", prev, next, count)
		}
		prev = next
	}
}
