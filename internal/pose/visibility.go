package pose

// DefaultConfidenceFloor is the minimum landmark confidence accepted by the
// visibility gate when the caller does not override it.
const DefaultConfidenceFloor = 0.5

// GateResult reports whether a frame has every required landmark present with
// sufficient confidence. Missing lists the offending landmark names in the
// order they were required, so feedback is deterministic.
type GateResult struct {
	Valid   bool
	Missing []string
}

// CheckVisibility validates that every required landmark is present in the
// frame with confidence >= floor. A floor <= 0 falls back to
// DefaultConfidenceFloor.
func CheckVisibility(f Frame, required []string, floor float64) GateResult {
	if floor <= 0 {
		floor = DefaultConfidenceFloor
	}

	var missing []string
	for _, name := range required {
		lm, ok := f[name]
		if !ok || lm.Confidence < floor {
			missing = append(missing, name)
		}
	}

	return GateResult{Valid: len(missing) == 0, Missing: missing}
}
