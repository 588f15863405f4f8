package exercise

import (
	"math"
	"testing"

	"github.com/formsight/reptrack/internal/pose"
)

func TestAbductionAngle(t *testing.T) {
	// Torso vertical; y grows downward as in image space.
	f := pose.Frame{
		"left_shoulder": {X: 0, Y: 0, Confidence: 1},
		"left_hip":      {X: 0, Y: 1, Confidence: 1},
	}

	// Arm hanging straight down alongside the torso.
	f["left_wrist"] = pose.Landmark{X: 0, Y: 0.8, Confidence: 1}
	if got := abductionAngle(f, "left"); math.Abs(got) > 0.2 {
		t.Errorf("arm down: angle = %v, want 0", got)
	}

	// Arm horizontal at shoulder level.
	f["left_wrist"] = pose.Landmark{X: 0.8, Y: 0, Confidence: 1}
	if got := abductionAngle(f, "left"); math.Abs(got-90) > 0.2 {
		t.Errorf("arm level: angle = %v, want 90", got)
	}
}

func TestShoulderRise(t *testing.T) {
	base := func(gap float64) pose.Frame {
		return pose.Frame{
			"left_shoulder":  {X: -1, Y: 0, Confidence: 1},
			"right_shoulder": {X: 1, Y: 0, Confidence: 1},
			"left_ear":       {X: -1, Y: -gap, Confidence: 1},
			"right_ear":      {X: 1, Y: -gap, Confidence: 1},
		}
	}

	// Shoulder width 2. Relaxed: ear/shoulder gap at half the width.
	if got := shoulderRise(base(1)); math.Abs(got-50) > 1e-9 {
		t.Errorf("relaxed rise = %v, want 50", got)
	}
	// Shrugged: the gap shrinks, the metric rises.
	if got := shoulderRise(base(0.5)); math.Abs(got-75) > 1e-9 {
		t.Errorf("shrugged rise = %v, want 75", got)
	}

	// Degenerate shoulder width.
	f := base(1)
	f["right_shoulder"] = f["left_shoulder"]
	if got := shoulderRise(f); got != 0 {
		t.Errorf("degenerate rise = %v, want 0", got)
	}
}

func TestJointAngleMetricExpandsSide(t *testing.T) {
	p := trackerProfile(OnEnterUp, 0)
	f := pose.Frame{
		"right_shoulder": {X: 1, Y: 0, Confidence: 1},
		"right_elbow":    {X: 0, Y: 0, Confidence: 1},
		"right_wrist":    {X: -1, Y: 0, Confidence: 1},
	}

	if got := p.metric(f, "right"); math.Abs(got-180) > 0.2 {
		t.Errorf("metric = %v, want 180", got)
	}
}
