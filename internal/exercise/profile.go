// Package exercise implements the per-frame exercise-analysis engine:
// landmark-visibility gating, joint-angle metrics, a generalized
// repetition-counting state machine driven by declarative per-exercise
// profiles, and a rule-based form scorer with user-facing feedback.
package exercise

import (
	"fmt"
	"strings"
)

// Stage is the coarse phase of a repetition cycle. StageUp always means the
// high end of the tracked metric and StageDown the low end, regardless of what
// the motion looks like for a particular exercise.
type Stage string

const (
	StageNeutral Stage = "neutral" // Before any threshold crossing
	StageDown    Stage = "down"    // Metric at or below the lower threshold
	StageUp      Stage = "up"      // Metric at or above the upper threshold
)

// CompletionEdge selects which stage transition increments the rep counter.
// Exercises that count at full extension (e.g. bicep curl, squat) complete on
// entering up; exercises that count on returning to rest (e.g. lateral raise,
// shoulder shrug) complete on entering down.
type CompletionEdge string

const (
	OnEnterUp   CompletionEdge = "on-enter-up"
	OnEnterDown CompletionEdge = "on-enter-down"
)

// MetricKind names the closed set of angle functions a profile can select.
type MetricKind string

const (
	// MetricJointAngle is the three-landmark angle at a vertex.
	MetricJointAngle MetricKind = "joint_angle"
	// MetricAbduction is the arm-elevation angle: the shoulder->wrist ray
	// measured against the torso-down reference ray (shoulder->hip).
	MetricAbduction MetricKind = "abduction"
	// MetricShoulderRise is the shrug metric: the ear/shoulder vertical gap
	// normalized by shoulder width and inverted so that shrugged shoulders
	// read high. Averaged over both sides.
	MetricShoulderRise MetricKind = "shoulder_rise"
)

// sidePlaceholder marks a side-dependent landmark name in a profile, expanded
// to "left" or "right" when a tracker is constructed.
const sidePlaceholder = "{side}"

// Profile is the immutable, declarative description of one exercise. All
// per-exercise behaviour lives here; the state machine and scorer are generic.
type Profile struct {
	ID          string
	DisplayName string

	// RequiredLandmarks lists the landmarks the visibility gate demands,
	// with {side} placeholders for side-aware exercises.
	RequiredLandmarks []string

	// Metric selects the angle function; AngleLandmarks names the three
	// points (A, vertex, C) when Metric is MetricJointAngle.
	Metric         MetricKind
	AngleLandmarks [3]string

	// Thresholds in degrees (or degree-like units for custom metrics).
	// LowerThreshold must be strictly below UpperThreshold; the gap is the
	// hysteresis that prevents oscillation-driven double counting.
	LowerThreshold float64
	UpperThreshold float64

	CompletionEdge CompletionEdge

	// SideAware exercises track one arm/leg selected at construction time.
	// HalfBody exercises work with only the upper body in frame.
	SideAware bool
	HalfBody  bool

	// SmoothingWindow is the angle-history capacity for the moving-average
	// filter; 0 disables smoothing for exercises with fast discrete motion.
	SmoothingWindow int

	// FormChecks run in registration order; the first penalty's reason
	// becomes the feedback text, so ordering is part of the contract.
	FormChecks []FormCheck

	// RepMessage is the feedback shown when a rep completes cleanly.
	RepMessage string
}

// Summary is the listing view of a profile exposed to callers.
type Summary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	SideAware   bool   `json:"side_aware"`
	HalfBody    bool   `json:"half_body"`
}

// Validate checks a profile's internal consistency.
func (p *Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("profile has no id")
	}
	if p.LowerThreshold >= p.UpperThreshold {
		return fmt.Errorf("profile %s: lower threshold %.1f must be below upper threshold %.1f",
			p.ID, p.LowerThreshold, p.UpperThreshold)
	}
	if p.CompletionEdge != OnEnterUp && p.CompletionEdge != OnEnterDown {
		return fmt.Errorf("profile %s: unknown completion edge %q", p.ID, p.CompletionEdge)
	}
	switch p.Metric {
	case MetricJointAngle:
		for _, name := range p.AngleLandmarks {
			if name == "" {
				return fmt.Errorf("profile %s: joint-angle metric needs three landmarks", p.ID)
			}
		}
	case MetricAbduction, MetricShoulderRise:
	default:
		return fmt.Errorf("profile %s: unknown metric %q", p.ID, p.Metric)
	}
	if p.SmoothingWindow < 0 {
		return fmt.Errorf("profile %s: negative smoothing window", p.ID)
	}
	return nil
}

// requiredFor expands the profile's required-landmark list for a side.
func (p *Profile) requiredFor(side string) []string {
	names := make([]string, len(p.RequiredLandmarks))
	for i, name := range p.RequiredLandmarks {
		names[i] = expandSide(name, side)
	}
	return names
}

func expandSide(name, side string) string {
	return strings.ReplaceAll(name, sidePlaceholder, side)
}
