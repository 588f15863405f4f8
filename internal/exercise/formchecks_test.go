package exercise

import (
	"testing"

	"github.com/formsight/reptrack/internal/pose"
)

func TestCheckElbowDrift(t *testing.T) {
	in := CheckInput{
		Side: "left",
		Frame: pose.Frame{
			"left_shoulder": {X: 0, Y: 0, Confidence: 1},
			"left_hip":      {X: 0, Y: 1, Confidence: 1},
			"left_elbow":    {X: 0.1, Y: 0.5, Confidence: 1},
		},
	}

	if amount, _ := checkElbowDrift(in); amount != 0 {
		t.Errorf("tucked elbow penalized: %v", amount)
	}

	in.Frame["left_elbow"] = pose.Landmark{X: 0.8, Y: 0.5, Confidence: 1}
	amount, reason := checkElbowDrift(in)
	if amount <= 0 {
		t.Error("drifting elbow not penalized")
	}
	if reason != "Keep your elbow close to your body" {
		t.Errorf("reason = %q", reason)
	}
}

func TestCheckBentElbow(t *testing.T) {
	straight := CheckInput{
		Side: "left",
		Frame: pose.Frame{
			"left_shoulder": {X: 0, Y: 0, Confidence: 1},
			"left_elbow":    {X: 0.5, Y: 0, Confidence: 1},
			"left_wrist":    {X: 1, Y: 0, Confidence: 1},
		},
	}
	if amount, _ := checkBentElbow(straight); amount != 0 {
		t.Errorf("straight arm penalized: %v", amount)
	}

	bent := straight
	bent.Frame = pose.Frame{
		"left_shoulder": {X: 0, Y: 0, Confidence: 1},
		"left_elbow":    {X: 0.5, Y: 0, Confidence: 1},
		"left_wrist":    {X: 0.5, Y: 0.5, Confidence: 1},
	}
	if amount, _ := checkBentElbow(bent); amount != 15 {
		t.Errorf("bent arm penalty = %v, want 15", amount)
	}
}

func TestCheckOverRaise(t *testing.T) {
	if amount, _ := checkOverRaise(CheckInput{Angle: 80}); amount != 0 {
		t.Errorf("shoulder-level raise penalized: %v", amount)
	}
	amount, reason := checkOverRaise(CheckInput{Angle: 110})
	if amount != 10 {
		t.Errorf("over-raise penalty = %v, want 10", amount)
	}
	if reason != "Don't raise above shoulder level" {
		t.Errorf("reason = %q", reason)
	}
}

func TestCheckLockoutHeight(t *testing.T) {
	frame := pose.Frame{
		"left_shoulder": {X: 0, Y: 0.5, Confidence: 1},
		"left_wrist":    {X: 0, Y: 0.8, Confidence: 1}, // Below the shoulder
	}

	// Mid-press the check stays quiet regardless of wrist height.
	if amount, _ := checkLockoutHeight(CheckInput{Side: "left", Frame: frame, Angle: 100}); amount != 0 {
		t.Errorf("mid-press penalized: %v", amount)
	}
	// Near lockout a low wrist is an incomplete press.
	if amount, _ := checkLockoutHeight(CheckInput{Side: "left", Frame: frame, Angle: 160}); amount != 20 {
		t.Errorf("incomplete lockout penalty = %v, want 20", amount)
	}

	frame["left_wrist"] = pose.Landmark{X: 0, Y: 0.1, Confidence: 1}
	if amount, _ := checkLockoutHeight(CheckInput{Side: "left", Frame: frame, Angle: 160}); amount != 0 {
		t.Errorf("full lockout penalized: %v", amount)
	}
}

func TestCheckRelaxedArms(t *testing.T) {
	straightArms := pose.Frame{
		"left_shoulder":  {X: -1, Y: 0, Confidence: 1},
		"left_elbow":     {X: -1, Y: 0.5, Confidence: 1},
		"left_wrist":     {X: -1, Y: 1, Confidence: 1},
		"right_shoulder": {X: 1, Y: 0, Confidence: 1},
		"right_elbow":    {X: 1, Y: 0.5, Confidence: 1},
		"right_wrist":    {X: 1, Y: 1, Confidence: 1},
	}
	if amount, _ := checkRelaxedArms(CheckInput{Frame: straightArms}); amount != 0 {
		t.Errorf("relaxed arms penalized: %v", amount)
	}

	// Bend one elbow; either side tripping the check is enough.
	straightArms["right_wrist"] = pose.Landmark{X: 0.5, Y: 0.5, Confidence: 1}
	if amount, _ := checkRelaxedArms(CheckInput{Frame: straightArms}); amount != 15 {
		t.Errorf("bent-arm shrug penalty = %v, want 15", amount)
	}
}
