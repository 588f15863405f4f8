package exercise

// advanceStage applies one frame's (smoothed) metric value to the rep state
// machine and reports the new stage plus whether a rep completed.
//
// The hysteresis gap between the thresholds is the sole guard against double
// counting: a transition to up is only possible from down or neutral, and a
// transition to down only from up, so re-crossing the same boundary without
// visiting the opposite stage can never re-fire. A rep is counted only on the
// profile's completion edge, and only when the opposite boundary was actually
// crossed first; entering a stage from neutral never counts, because no full
// cycle has happened yet.
func advanceStage(stage Stage, angle float64, p *Profile) (Stage, bool) {
	switch {
	case angle >= p.UpperThreshold:
		if stage == StageDown || stage == StageNeutral {
			completed := stage == StageDown && p.CompletionEdge == OnEnterUp
			return StageUp, completed
		}
	case angle <= p.LowerThreshold:
		if stage == StageUp {
			return StageDown, p.CompletionEdge == OnEnterDown
		}
	}
	// Between the thresholds, or re-asserting the current boundary: hold.
	return stage, false
}
