package pose

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCheckVisibilityValid(t *testing.T) {
	f := Frame{
		"left_shoulder": {X: 0, Y: 0, Confidence: 0.9},
		"left_elbow":    {X: 0, Y: 1, Confidence: 0.8},
	}

	got := CheckVisibility(f, []string{"left_shoulder", "left_elbow"}, 0.5)
	if !got.Valid {
		t.Errorf("gate invalid, missing = %v", got.Missing)
	}
	if got.Missing != nil {
		t.Errorf("Missing = %v, want nil", got.Missing)
	}
}

func TestCheckVisibilityMissing(t *testing.T) {
	f := Frame{
		"left_shoulder": {Confidence: 0.9},
		"left_elbow":    {Confidence: 0.3}, // Below floor
	}

	got := CheckVisibility(f, []string{"left_shoulder", "left_elbow", "left_wrist"}, 0.5)
	if got.Valid {
		t.Error("gate valid with low-confidence and absent landmarks")
	}
	// Missing names keep the required order.
	want := []string{"left_elbow", "left_wrist"}
	if diff := cmp.Diff(want, got.Missing); diff != "" {
		t.Errorf("Missing mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckVisibilityDefaultFloor(t *testing.T) {
	f := Frame{"nose": {Confidence: 0.5}}

	// Floor <= 0 falls back to the default; 0.5 is exactly at the floor and
	// must pass.
	if got := CheckVisibility(f, []string{"nose"}, 0); !got.Valid {
		t.Errorf("gate invalid at default floor, missing = %v", got.Missing)
	}

	f["nose"] = Landmark{Confidence: 0.49}
	if got := CheckVisibility(f, []string{"nose"}, -1); got.Valid {
		t.Error("gate valid below default floor")
	}
}

func TestFrameFromSlice(t *testing.T) {
	lms := make([]Landmark, NumLandmarks)
	for i := range lms {
		lms[i] = Landmark{X: float64(i), Confidence: 1}
	}

	f := FrameFromSlice(lms)
	if len(f) != NumLandmarks {
		t.Fatalf("frame has %d landmarks, want %d", len(f), NumLandmarks)
	}
	if f["nose"].X != 0 {
		t.Errorf("nose.X = %v, want 0", f["nose"].X)
	}
	if f["right_foot_index"].X != float64(RightFootIndex) {
		t.Errorf("right_foot_index.X = %v, want %d", f["right_foot_index"].X, RightFootIndex)
	}
}
