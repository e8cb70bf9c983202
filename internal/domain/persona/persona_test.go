package persona

import (
	"testing"
	"time"
)

func TestNewAppliesDefaults(t *testing.T) {
	p := New("pers_test", "Ava")

	if !p.Active {
		t.Fatal("new persona should be active")
	}
	if p.Behavior.Tone != DefaultTone || p.Behavior.Style != DefaultStyle || p.Behavior.Vocabulary != DefaultVocabulary {
		t.Fatalf("behavior defaults not applied: %+v", p.Behavior)
	}
	if p.Behavior.Responsiveness != DefaultResponsiveness {
		t.Fatalf("expected responsiveness %d, got %d", DefaultResponsiveness, p.Behavior.Responsiveness)
	}
	if p.Autonomy.Level != DefaultAutonomyLevel {
		t.Fatalf("expected autonomy level %d, got %d", DefaultAutonomyLevel, p.Autonomy.Level)
	}
}

func TestNormalizeClampsLevels(t *testing.T) {
	tests := []struct {
		name string
		in   int
		want int
	}{
		{"zero takes default", 0, DefaultResponsiveness},
		{"below min clamps up", -5, LevelMin},
		{"above max clamps down", 99, LevelMax},
		{"in range unchanged", 7, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Persona{Behavior: Behavior{Responsiveness: tt.in}, Autonomy: Autonomy{Level: tt.in}}
			p.Normalize()
			if p.Behavior.Responsiveness != tt.want {
				t.Fatalf("responsiveness: got %d, want %d", p.Behavior.Responsiveness, tt.want)
			}
			if p.Autonomy.Level != tt.want {
				t.Fatalf("autonomy level: got %d, want %d", p.Autonomy.Level, tt.want)
			}
		})
	}
}

func TestNormalizeKeepsExplicitBehavior(t *testing.T) {
	p := Persona{Behavior: Behavior{Tone: "Playful", Responsiveness: 3}}
	p.Normalize()
	if p.Behavior.Tone != "Playful" {
		t.Fatalf("explicit tone overwritten: %s", p.Behavior.Tone)
	}
	if p.Behavior.Style != DefaultStyle {
		t.Fatalf("empty style not defaulted: %s", p.Behavior.Style)
	}
}

func TestTemplateApplyFillsOnlyEmptyFields(t *testing.T) {
	tmpl := Template{
		Slug:      "mentor",
		Name:      "Mentor",
		Archetype: "Coach",
		Bio:       "Guides users",
		Behavior: Behavior{
			Tone:           "Warm",
			Style:          "Conversational",
			Vocabulary:     "Plain",
			Guidelines:     "Encourage questions",
			Responsiveness: 8,
		},
	}

	p := Persona{Name: "Custom", Behavior: Behavior{Tone: "Blunt"}}
	tmpl.Apply(&p)

	if p.Name != "Custom" {
		t.Fatalf("caller-set name overwritten: %s", p.Name)
	}
	if p.Behavior.Tone != "Blunt" {
		t.Fatalf("caller-set tone overwritten: %s", p.Behavior.Tone)
	}
	if p.Archetype != "Coach" || p.Bio != "Guides users" {
		t.Fatalf("empty identity fields not filled: %+v", p)
	}
	if p.Behavior.Style != "Conversational" || p.Behavior.Responsiveness != 8 {
		t.Fatalf("empty behavior fields not filled: %+v", p.Behavior)
	}
}

func TestRecordAutonomyRun(t *testing.T) {
	p := New("pers_test", "Ava")
	ranAt := time.Now()

	p.RecordAutonomyRun(AutonomyRun{Action: "autonomy_tick", RanAt: ranAt})
	p.RecordAutonomyRun(AutonomyRun{Action: "autonomy_tick", RanAt: ranAt.Add(time.Minute)})

	if len(p.Autonomy.History) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(p.Autonomy.History))
	}
	if p.Stats.LastActivityAt == nil || !p.Stats.LastActivityAt.Equal(ranAt.Add(time.Minute)) {
		t.Fatalf("last activity not bumped to latest run: %v", p.Stats.LastActivityAt)
	}
}
