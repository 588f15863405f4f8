package exercise

import (
	"math"

	"github.com/formsight/reptrack/internal/pose"
)

// CheckInput is the context a form check sees for one frame. Angle is the
// smoothed metric value the state machine uses; Stage is the stage before
// this frame's transition, so checks that only apply in part of the cycle
// (e.g. back angle at the bottom of a squat) can gate themselves.
type CheckInput struct {
	Frame pose.Frame
	Side  string
	Stage Stage
	Angle float64
}

// FormCheck inspects one frame and returns a penalty amount with its reason,
// or (0, "") if the check passes. Checks must be deterministic functions of
// the input; positional thresholds are normalized by torso length so no
// check assumes a coordinate unit system.
type FormCheck func(in CheckInput) (float64, string)

func landmark(in CheckInput, name string) pose.Landmark {
	return in.Frame[expandSide(name, in.Side)]
}

// checkElbowDrift penalizes the elbow drifting away from the torso during a
// curl. Drift is the horizontal elbow/hip offset relative to torso length.
func checkElbowDrift(in CheckInput) (float64, string) {
	torso := torsoLength(in.Frame, in.Side)
	if torso <= 0 {
		return 0, ""
	}
	drift := math.Abs(landmark(in, "{side}_elbow").X-landmark(in, "{side}_hip").X) / torso
	if drift > 0.45 {
		return math.Min(30, (drift-0.45)*100), "Keep your elbow close to your body"
	}
	return 0, ""
}

// checkShoulderSwing penalizes swinging the torso to cheat a curl up,
// measured as horizontal shoulder/hip offset relative to torso length.
func checkShoulderSwing(in CheckInput) (float64, string) {
	torso := torsoLength(in.Frame, in.Side)
	if torso <= 0 {
		return 0, ""
	}
	lean := math.Abs(landmark(in, "{side}_shoulder").X-landmark(in, "{side}_hip").X) / torso
	if lean > 0.30 {
		return math.Min(25, (lean-0.30)*120), "Don't swing your body"
	}
	return 0, ""
}

// checkKneeOverToe penalizes the knee tracking past the toes in a squat,
// viewed from the side. Overshoot is normalized by shin length.
func checkKneeOverToe(in CheckInput) (float64, string) {
	knee := landmark(in, "{side}_knee")
	ankle := landmark(in, "{side}_ankle")
	shin := pose.Distance(knee, ankle)
	if shin <= 0 {
		return 0, ""
	}

	// "Forward" depends on which side faces the camera.
	overshoot := ankle.X - knee.X
	if in.Side == "right" {
		overshoot = knee.X - ankle.X
	}
	if overshoot/shin > 0.25 {
		return math.Min(35, (overshoot/shin-0.25)*80), "Knees going over toes"
	}
	return 0, ""
}

// checkBackAngle penalizes excessive forward lean at the bottom of a squat.
// The torso ray is measured against vertical; only applies once the lifter is
// below the midpoint of the descent.
func checkBackAngle(in CheckInput) (float64, string) {
	if in.Stage != StageDown && in.Angle >= 120 {
		return 0, ""
	}
	shoulder := landmark(in, "{side}_shoulder")
	hip := landmark(in, "{side}_hip")
	// Vertical reference points up; y grows downward in image space.
	lean := pose.VectorAngle(shoulder.X-hip.X, shoulder.Y-hip.Y, 0, -1)
	if lean > 45 {
		return math.Min(30, (lean-45)*1.5), "Keep your back straight"
	}
	return 0, ""
}

// checkBodyAlignment penalizes a sagging or piked body line in a push-up: the
// shoulder-hip-ankle angle should stay close to a straight 180.
func checkBodyAlignment(in CheckInput) (float64, string) {
	line := pose.Angle(
		landmark(in, "{side}_shoulder"),
		landmark(in, "{side}_hip"),
		landmark(in, "{side}_ankle"),
	)
	deviation := 180 - line
	if deviation > 20 {
		return math.Min(30, (deviation-20)*1.5), "Keep your body in a straight line"
	}
	return 0, ""
}

// checkElbowFlare penalizes elbows drifting wide of the shoulders, relative
// to torso length. Shared by push-up and shoulder press.
func checkElbowFlare(in CheckInput) (float64, string) {
	torso := torsoLength(in.Frame, in.Side)
	if torso <= 0 {
		return 0, ""
	}
	flare := math.Abs(landmark(in, "{side}_elbow").X-landmark(in, "{side}_shoulder").X) / torso
	if flare > 0.55 {
		return math.Min(15, (flare-0.55)*60), "Keep your elbows tucked"
	}
	return 0, ""
}

// checkLockoutHeight penalizes an incomplete overhead press: near the top of
// the motion the wrist must be above the shoulder.
func checkLockoutHeight(in CheckInput) (float64, string) {
	if in.Angle < 140 {
		return 0, ""
	}
	if landmark(in, "{side}_wrist").Y > landmark(in, "{side}_shoulder").Y {
		return 20, "Push higher, arms overhead"
	}
	return 0, ""
}

// checkUpperArmStill penalizes the upper arm falling away from vertical
// during an overhead tricep extension; only the forearm should move.
func checkUpperArmStill(in CheckInput) (float64, string) {
	shoulder := landmark(in, "{side}_shoulder")
	elbow := landmark(in, "{side}_elbow")
	tilt := pose.VectorAngle(elbow.X-shoulder.X, elbow.Y-shoulder.Y, 0, -1)
	if tilt > 30 {
		return math.Min(20, (tilt-30)*1.2), "Keep your upper arm still"
	}
	return 0, ""
}

// checkBentElbow penalizes bending the elbow during a raise; the arm should
// hold a fixed, nearly straight line.
func checkBentElbow(in CheckInput) (float64, string) {
	elbowAngle := pose.Angle(
		landmark(in, "{side}_shoulder"),
		landmark(in, "{side}_elbow"),
		landmark(in, "{side}_wrist"),
	)
	if elbowAngle < 150 {
		return 15, "Keep your arms straighter"
	}
	return 0, ""
}

// checkOverRaise penalizes raising past shoulder level, where the delts stop
// doing the work.
func checkOverRaise(in CheckInput) (float64, string) {
	if in.Angle > 100 {
		return 10, "Don't raise above shoulder level"
	}
	return 0, ""
}

// checkRelaxedArms penalizes pulling with bent arms during a shrug; the
// movement belongs to the shoulders alone.
func checkRelaxedArms(in CheckInput) (float64, string) {
	for _, side := range []string{"left", "right"} {
		elbowAngle := pose.Angle(
			in.Frame[side+"_shoulder"],
			in.Frame[side+"_elbow"],
			in.Frame[side+"_wrist"],
		)
		if elbowAngle < 140 {
			return 15, "Keep your arms relaxed and straight"
		}
	}
	return 0, ""
}
