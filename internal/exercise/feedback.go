package exercise

import (
	"time"

	"github.com/formsight/reptrack/internal/timeutil"
)

// DefaultFeedbackHold is the minimum time a message stays on screen before a
// lower-precedence message may replace it.
const DefaultFeedbackHold = 2 * time.Second

// feedbackPriority orders the message classes a frame can produce. Higher
// values always override immediately; lower values wait out the hold interval.
type feedbackPriority int

const (
	priorityProgress feedbackPriority = iota // Generic angle readout
	priorityStage                            // Stage-hold messages ("full extension")
	priorityRep                              // Rep completion
	priorityPenalty                          // Form-penalty reason
	priorityInvalid                          // Invalid pose, always wins
)

// feedbackComposer selects exactly one user-facing message per frame and rate
// limits replacements to avoid flicker at video frame rates.
type feedbackComposer struct {
	clock timeutil.Clock
	hold  time.Duration

	current   string
	priority  feedbackPriority
	changedAt time.Time
}

func newFeedbackComposer(clock timeutil.Clock, hold time.Duration) *feedbackComposer {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	if hold <= 0 {
		hold = DefaultFeedbackHold
	}
	return &feedbackComposer{clock: clock, hold: hold}
}

// Offer proposes this frame's best candidate message. Equal or higher
// priority replaces the current message immediately; lower priority waits
// until the hold interval has elapsed. Returns the message to display.
func (c *feedbackComposer) Offer(priority feedbackPriority, msg string) string {
	if c.current == "" || priority >= c.priority || c.clock.Since(c.changedAt) >= c.hold {
		if msg != c.current || priority != c.priority {
			c.current = msg
			c.priority = priority
			c.changedAt = c.clock.Now()
		}
	}
	return c.current
}

// Reset clears the displayed message, e.g. when the tracker is reset.
func (c *feedbackComposer) Reset() {
	c.current = ""
	c.priority = priorityProgress
	c.changedAt = time.Time{}
}
