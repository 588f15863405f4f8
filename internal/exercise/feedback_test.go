package exercise

import (
	"testing"
	"time"

	"github.com/formsight/reptrack/internal/timeutil"
)

func TestFeedbackHigherPriorityReplacesImmediately(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(1000, 0))
	c := newFeedbackComposer(clock, 2*time.Second)

	if got := c.Offer(priorityProgress, "Angle: 120°"); got != "Angle: 120°" {
		t.Errorf("first offer = %q", got)
	}
	if got := c.Offer(priorityPenalty, "Don't swing your body"); got != "Don't swing your body" {
		t.Errorf("penalty did not replace immediately: %q", got)
	}
}

func TestFeedbackLowerPriorityWaitsOutHold(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(1000, 0))
	c := newFeedbackComposer(clock, 2*time.Second)

	c.Offer(priorityRep, "Great rep!")

	// Within the hold interval the rep message stays up.
	clock.Advance(500 * time.Millisecond)
	if got := c.Offer(priorityProgress, "Angle: 100°"); got != "Great rep!" {
		t.Errorf("hold not honoured: %q", got)
	}

	// Once the hold elapses, lower-priority messages get through.
	clock.Advance(2 * time.Second)
	if got := c.Offer(priorityProgress, "Angle: 90°"); got != "Angle: 90°" {
		t.Errorf("message not replaced after hold: %q", got)
	}
}

func TestFeedbackEqualPriorityUpdates(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(1000, 0))
	c := newFeedbackComposer(clock, 2*time.Second)

	c.Offer(priorityProgress, "Angle: 120°")
	if got := c.Offer(priorityProgress, "Angle: 121°"); got != "Angle: 121°" {
		t.Errorf("equal priority did not update: %q", got)
	}
}

func TestFeedbackReset(t *testing.T) {
	clock := timeutil.NewMockClock(time.Unix(1000, 0))
	c := newFeedbackComposer(clock, 2*time.Second)

	c.Offer(priorityInvalid, "Can't see: left_elbow")
	c.Reset()

	if got := c.Offer(priorityProgress, "Angle: 80°"); got != "Angle: 80°" {
		t.Errorf("offer after reset = %q", got)
	}
}
