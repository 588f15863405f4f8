package exercise

import (
	"github.com/formsight/reptrack/internal/pose"
)

// metric evaluates the profile's angle function on one frame. The visibility
// gate has already run, so every landmark the profile requires is present;
// degenerate geometry still falls back to 0 rather than NaN.
func (p *Profile) metric(f pose.Frame, side string) float64 {
	switch p.Metric {
	case MetricAbduction:
		return abductionAngle(f, side)
	case MetricShoulderRise:
		return shoulderRise(f)
	default:
		a := f[expandSide(p.AngleLandmarks[0], side)]
		b := f[expandSide(p.AngleLandmarks[1], side)]
		c := f[expandSide(p.AngleLandmarks[2], side)]
		return pose.Angle(a, b, c)
	}
}

// abductionAngle measures arm elevation as the angle between the
// shoulder->wrist ray and the torso-down reference ray (shoulder->hip).
// Arms hanging at the side read near 0, arms at shoulder level near 90.
func abductionAngle(f pose.Frame, side string) float64 {
	shoulder := f[expandSide("{side}_shoulder", side)]
	wrist := f[expandSide("{side}_wrist", side)]
	hip := f[expandSide("{side}_hip", side)]

	return pose.VectorAngle(
		wrist.X-shoulder.X, wrist.Y-shoulder.Y,
		hip.X-shoulder.X, hip.Y-shoulder.Y,
	)
}

// shoulderRise maps the shrug motion onto the rising metric the state machine
// expects. The ear/shoulder vertical gap shrinks as the shoulders come up, so
// the gap (normalized by shoulder width to stay unit-agnostic) is inverted:
// relaxed shoulders read around 50, a full shrug around 75. Both sides are
// averaged. A degenerate shoulder width yields 0.
func shoulderRise(f pose.Frame) float64 {
	leftShoulder := f["left_shoulder"]
	rightShoulder := f["right_shoulder"]

	width := pose.Distance(leftShoulder, rightShoulder)
	if width <= 0 {
		return 0
	}

	leftGap := f["left_ear"].Y - leftShoulder.Y
	rightGap := f["right_ear"].Y - rightShoulder.Y
	if leftGap < 0 {
		leftGap = -leftGap
	}
	if rightGap < 0 {
		rightGap = -rightGap
	}
	gap := (leftGap + rightGap) / 2

	rise := (1 - gap/width) * 100
	if rise < 0 {
		rise = 0
	} else if rise > 100 {
		rise = 100
	}
	return rise
}

// torsoLength returns the shoulder-to-hip distance for one side, the
// normalization reference for positional form checks. Returns 0 when the
// torso is degenerate; callers must skip their check in that case.
func torsoLength(f pose.Frame, side string) float64 {
	return pose.Distance(
		f[expandSide("{side}_shoulder", side)],
		f[expandSide("{side}_hip", side)],
	)
}
