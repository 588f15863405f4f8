package exercise

import (
	"errors"
	"testing"
)

func TestBuiltinProfilesValidate(t *testing.T) {
	for _, p := range builtinProfiles() {
		if err := p.Validate(); err != nil {
			t.Errorf("builtin %s: %v", p.ID, err)
		}
	}
}

func TestRegistryListOrder(t *testing.T) {
	r := NewRegistry()
	list := r.List()

	if len(list) != 8 {
		t.Fatalf("catalog size = %d, want 8", len(list))
	}
	if list[0].ID != "bicep_curl" {
		t.Errorf("first exercise = %s, want bicep_curl", list[0].ID)
	}
	if list[len(list)-1].ID != "shoulder_shrug" {
		t.Errorf("last exercise = %s, want shoulder_shrug", list[len(list)-1].ID)
	}
}

func TestRegistryUnknownExercise(t *testing.T) {
	r := NewRegistry()

	_, err := r.NewTracker("burpee", "", DefaultTrackerOptions())
	if !errors.Is(err, ErrUnknownExercise) {
		t.Errorf("error = %v, want ErrUnknownExercise", err)
	}
	if _, err := r.Profile("burpee"); !errors.Is(err, ErrUnknownExercise) {
		t.Errorf("Profile error = %v, want ErrUnknownExercise", err)
	}
}

func TestRegistrySideHandling(t *testing.T) {
	r := NewRegistry()

	tr, err := r.NewTracker("bicep_curl", "", DefaultTrackerOptions())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	if tr.Side() != "left" {
		t.Errorf("default side = %q, want left", tr.Side())
	}

	if _, err := r.NewTracker("bicep_curl", "both", DefaultTrackerOptions()); err == nil {
		t.Error("invalid side accepted")
	}

	// Non-side-aware exercises ignore the requested side.
	tr, err = r.NewTracker("shoulder_shrug", "right", DefaultTrackerOptions())
	if err != nil {
		t.Fatalf("NewTracker: %v", err)
	}
	if tr.Side() != "" {
		t.Errorf("shrug side = %q, want empty", tr.Side())
	}
}

func TestNewTrackerStartsFresh(t *testing.T) {
	r := NewRegistry()
	require := func(tr *Tracker, err error) *Tracker {
		t.Helper()
		if err != nil {
			t.Fatalf("NewTracker: %v", err)
		}
		return tr
	}

	first := require(r.NewTracker("tricep_extension", "left", DefaultTrackerOptions()))
	// Five frames per phase so the 5-frame smoothing mean crosses both
	// thresholds.
	for _, deg := range []float64{170, 30, 170} {
		for i := 0; i < 5; i++ {
			first.Process(angleFrame(deg))
		}
	}
	if first.RepCount() == 0 {
		t.Fatal("setup produced no reps")
	}

	// A replacement tracker never inherits counters from its predecessor.
	second := require(r.NewTracker("tricep_extension", "left", DefaultTrackerOptions()))
	if second.RepCount() != 0 || second.Stage() != StageNeutral {
		t.Errorf("fresh tracker: reps = %d, stage = %s", second.RepCount(), second.Stage())
	}
}

func TestRegistryDuplicateRejected(t *testing.T) {
	r := NewRegistry()
	err := r.Register(&Profile{
		ID:             "bicep_curl",
		Metric:         MetricJointAngle,
		AngleLandmarks: [3]string{"a", "b", "c"},
		LowerThreshold: 10,
		UpperThreshold: 20,
		CompletionEdge: OnEnterUp,
	})
	if err == nil {
		t.Error("duplicate id accepted")
	}
}

func TestOverrideThresholds(t *testing.T) {
	r := NewRegistry()

	lower, upper := 45.0, 155.0
	if err := r.OverrideThresholds("bicep_curl", &lower, &upper); err != nil {
		t.Fatalf("OverrideThresholds: %v", err)
	}
	p, err := r.Profile("bicep_curl")
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if p.LowerThreshold != 45 || p.UpperThreshold != 155 {
		t.Errorf("thresholds = %v/%v, want 45/155", p.LowerThreshold, p.UpperThreshold)
	}

	// An inverted band is rejected and the stored profile stays intact.
	bad := 200.0
	if err := r.OverrideThresholds("bicep_curl", &bad, nil); err == nil {
		t.Error("inverted band accepted")
	}
	p, _ = r.Profile("bicep_curl")
	if p.LowerThreshold != 45 {
		t.Errorf("failed override mutated profile: lower = %v", p.LowerThreshold)
	}

	if err := r.OverrideThresholds("burpee", &lower, nil); !errors.Is(err, ErrUnknownExercise) {
		t.Errorf("error = %v, want ErrUnknownExercise", err)
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Profile)
		wantErr bool
	}{
		{"valid", func(p *Profile) {}, false},
		{"no id", func(p *Profile) { p.ID = "" }, true},
		{"inverted band", func(p *Profile) { p.LowerThreshold = 160 }, true},
		{"bad edge", func(p *Profile) { p.CompletionEdge = "sometime" }, true},
		{"bad metric", func(p *Profile) { p.Metric = "torque" }, true},
		{"missing angle landmark", func(p *Profile) { p.AngleLandmarks[1] = "" }, true},
		{"negative window", func(p *Profile) { p.SmoothingWindow = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := trackerProfile(OnEnterUp, 5)
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
