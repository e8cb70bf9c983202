package roadmap

import (
	"testing"
	"time"
)

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		name    string
		target  float64
		current float64
		want    float64
	}{
		{"zero target", 0, 50, 0},
		{"negative target", -10, 5, 0},
		{"halfway", 200, 100, 50},
		{"exact", 100, 100, 100},
		{"overshoot clamps", 100, 250, 100},
		{"negative current clamps", 100, -5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := Goal{TargetValue: tc.target, CurrentValue: tc.current}
			if got := g.Progress(); got != tc.want {
				t.Fatalf("Progress() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMilestoneSetCompleted(t *testing.T) {
	m := Milestone{}

	m.SetCompleted(true)
	if !m.Completed || m.CompletedAt == nil {
		t.Fatal("completing milestone should stamp CompletedAt")
	}
	stamped := *m.CompletedAt

	time.Sleep(time.Millisecond)
	m.SetCompleted(true)
	if !m.CompletedAt.Equal(stamped) {
		t.Fatal("re-completing should not restamp CompletedAt")
	}

	m.SetCompleted(false)
	if m.Completed || m.CompletedAt != nil {
		t.Fatal("uncompleting should clear CompletedAt")
	}
}

func TestFeatureStatusValid(t *testing.T) {
	for _, s := range []FeatureStatus{FeaturePlanned, FeatureInProgress, FeatureDone} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if FeatureStatus("shipped").Valid() {
		t.Error("unknown feature status should be invalid")
	}
}
