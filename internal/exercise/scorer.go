package exercise

// Penalty is one named deduction from the form score.
type Penalty struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason"`
}

// FormScorer accumulates penalties from a frame's form checks into a 0-100
// score. Penalties keep registration order; the first reason becomes the
// feedback text, so behaviour stays deterministic regardless of severity.
type FormScorer struct {
	penalties []Penalty
}

// Add records a penalty. Zero or negative amounts are ignored so form checks
// can unconditionally return their result.
func (s *FormScorer) Add(amount float64, reason string) {
	if amount <= 0 {
		return
	}
	s.penalties = append(s.penalties, Penalty{Amount: amount, Reason: reason})
}

// Score returns clamp(100 - sum(penalties), 0, 100) as an integer.
func (s *FormScorer) Score() int {
	total := 0.0
	for _, p := range s.penalties {
		total += p.Amount
	}
	score := 100 - total
	if score < 0 {
		score = 0
	} else if score > 100 {
		score = 100
	}
	return int(score)
}

// FirstReason returns the first registered penalty's reason, or "" if the
// frame was clean.
func (s *FormScorer) FirstReason() string {
	if len(s.penalties) == 0 {
		return ""
	}
	return s.penalties[0].Reason
}

// HasPenalties reports whether any penalty fired this frame.
func (s *FormScorer) HasPenalties() bool {
	return len(s.penalties) > 0
}
