package exercise

import (
	"fmt"
	"strings"
	"time"

	"github.com/formsight/reptrack/internal/pose"
	"github.com/formsight/reptrack/internal/timeutil"
)

// Result is the per-frame output of a tracker. Every call yields a
// well-formed Result; failures are reported through ValidPose and Feedback,
// never as errors.
type Result struct {
	RepCount  int     `json:"rep_count"`
	Stage     Stage   `json:"stage"`
	Feedback  string  `json:"feedback"`
	FormScore int     `json:"form_score"`
	ValidPose bool    `json:"is_valid_pose"`

	// Additional carries diagnostic values (smoothed and raw metric) for
	// overlay rendering; absent on invalid frames.
	Additional map[string]float64 `json:"additional_data,omitempty"`
}

// TrackerOptions holds caller-supplied tuning for one tracker.
type TrackerOptions struct {
	// ConfidenceFloor for the visibility gate; <= 0 uses the pose default.
	ConfidenceFloor float64
	// SmoothingWindow overrides the profile's window when > 0.
	SmoothingWindow int
	// FeedbackHold is the minimum display interval for a feedback message.
	FeedbackHold time.Duration
	// Clock drives feedback rate limiting; nil uses the real clock.
	Clock timeutil.Clock
}

// DefaultTrackerOptions returns the options used when the caller supplies
// none.
func DefaultTrackerOptions() TrackerOptions {
	return TrackerOptions{
		ConfidenceFloor: pose.DefaultConfidenceFloor,
		FeedbackHold:    DefaultFeedbackHold,
		Clock:           timeutil.RealClock{},
	}
}

// Tracker is the mutable per-session state for one exercise. It is owned
// exclusively by its calling goroutine: processing is synchronous, performs
// no I/O, and never blocks. Concurrent sessions each get their own Tracker.
type Tracker struct {
	profile  *Profile
	side     string
	required []string
	opts     TrackerOptions

	repCount int
	stage    Stage
	buf      *angleBuffer // nil when smoothing is disabled
	composer *feedbackComposer
}

func newTracker(p *Profile, side string, opts TrackerOptions) *Tracker {
	if opts.Clock == nil {
		opts.Clock = timeutil.RealClock{}
	}

	window := p.SmoothingWindow
	if opts.SmoothingWindow > 0 {
		window = opts.SmoothingWindow
	}
	var buf *angleBuffer
	if window > 0 {
		buf = newAngleBuffer(window)
	}

	return &Tracker{
		profile:  p,
		side:     side,
		required: p.requiredFor(side),
		opts:     opts,
		stage:    StageNeutral,
		buf:      buf,
		composer: newFeedbackComposer(opts.Clock, opts.FeedbackHold),
	}
}

// Process runs one frame through the full pipeline: visibility gate, metric
// computation, smoothing, rep state machine, form scoring, and feedback
// selection. Invalid frames never mutate the stage or rep count.
func (t *Tracker) Process(frame pose.Frame) Result {
	gate := pose.CheckVisibility(frame, t.required, t.opts.ConfidenceFloor)
	if !gate.Valid {
		msg := "Can't see: " + strings.Join(gate.Missing, ", ")
		return Result{
			RepCount:  t.repCount,
			Stage:     t.stage,
			Feedback:  t.composer.Offer(priorityInvalid, msg),
			FormScore: 0,
			ValidPose: false,
		}
	}

	raw := t.profile.metric(frame, t.side)
	smoothed := raw
	if t.buf != nil {
		t.buf.Push(raw)
		smoothed = t.buf.Mean()
	}

	var scorer FormScorer
	in := CheckInput{Frame: frame, Side: t.side, Stage: t.stage, Angle: smoothed}
	for _, check := range t.profile.FormChecks {
		scorer.Add(check(in))
	}

	next, repDone := advanceStage(t.stage, smoothed, t.profile)
	t.stage = next
	if repDone {
		t.repCount++
	}

	feedback := t.selectFeedback(&scorer, repDone, smoothed)

	return Result{
		RepCount:  t.repCount,
		Stage:     t.stage,
		Feedback:  feedback,
		FormScore: scorer.Score(),
		ValidPose: true,
		Additional: map[string]float64{
			"angle":     smoothed,
			"raw_angle": raw,
		},
	}
}

// selectFeedback applies the message precedence for a valid frame:
// form penalty > rep completion > stage hold > angle progress.
func (t *Tracker) selectFeedback(scorer *FormScorer, repDone bool, angle float64) string {
	switch {
	case scorer.HasPenalties():
		return t.composer.Offer(priorityPenalty, scorer.FirstReason())
	case repDone:
		return t.composer.Offer(priorityRep, t.profile.RepMessage)
	case t.stage == StageUp && t.profile.CompletionEdge == OnEnterDown:
		return t.composer.Offer(priorityStage, "Hold it, now lower with control")
	case t.stage == StageDown && t.profile.CompletionEdge == OnEnterUp:
		return t.composer.Offer(priorityStage, "Good depth, drive back up")
	default:
		return t.composer.Offer(priorityProgress, fmt.Sprintf("Angle: %d°", int(angle)))
	}
}

// Reset restores rep count, stage, angle history, and feedback to their
// initial values while keeping configuration (profile, side, options).
func (t *Tracker) Reset() {
	t.repCount = 0
	t.stage = StageNeutral
	if t.buf != nil {
		t.buf.Reset()
	}
	t.composer.Reset()
}

// RepCount returns the completed repetition count.
func (t *Tracker) RepCount() int { return t.repCount }

// Stage returns the current repetition stage.
func (t *Tracker) Stage() Stage { return t.stage }

// Profile returns the immutable profile this tracker runs.
func (t *Tracker) Profile() *Profile { return t.profile }

// Side returns the tracked side ("left" or "right"), or "" for exercises
// that are not side-aware.
func (t *Tracker) Side() string { return t.side }

// HistoryLen returns the number of samples currently in the smoothing
// buffer, 0 when smoothing is disabled.
func (t *Tracker) HistoryLen() int {
	if t.buf == nil {
		return 0
	}
	return t.buf.Len()
}
