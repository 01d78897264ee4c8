package corpus

import (
	"testing"
	"time"
)

func TestSummarizeDurations(t *testing.T) {
	durations := []time.Duration{
		10 * time.Millisecond,
		20 * time.Millisecond,
		30 * time.Millisecond,
		40 * time.Millisecond,
		100 * time.Millisecond,
	}

	stats := SummarizeDurations(durations)

	if stats.Count != 5 {
		t.Errorf("expected count 5, got %d", stats.Count)
	}
	if stats.MinMs != 10 {
		t.Errorf("expected min 10, got %d", stats.MinMs)
	}
	if stats.MaxMs != 100 {
		t.Errorf("expected max 100, got %d", stats.MaxMs)
	}
	if stats.AvgMs != 40 {
		t.Errorf("expected avg 40, got %f", stats.AvgMs)
	}
	if stats.P50Ms != 30 {
		t.Errorf("expected p50 30, got %f", stats.P50Ms)
	}
}

func TestSummarizeDurationsEmpty(t *testing.T) {
	stats := SummarizeDurations(nil)
	if stats.Count != 0 || stats.MaxMs != 0 {
		t.Errorf("expected zero stats for empty input, got %+v", stats)
	}
}

func TestPercentile(t *testing.T) {
	values := []int64{10, 20, 30, 40, 50}

	tests := []struct {
		pct  float64
		want float64
	}{
		{0, 10},
		{50, 30},
		{100, 50},
		{25, 20},
		{75, 40},
	}
	for _, tt := range tests {
		if got := percentile(values, tt.pct); got != tt.want {
			t.Errorf("percentile(%v) = %f, want %f", tt.pct, got, tt.want)
		}
	}
}

func TestPercentileSingleValue(t *testing.T) {
	if got := percentile([]int64{42}, 95); got != 42 {
		t.Errorf("expected 42, got %f", got)
	}
}
