package exercise

import (
	"errors"
	"fmt"
)

// ErrUnknownExercise is returned when a tracker is requested for an exercise
// id that is not registered. This is a construction-time failure; it can
// never occur mid-frame.
var ErrUnknownExercise = errors.New("unknown exercise")

// Registry maps exercise ids to their profiles and constructs per-session
// trackers. The built-in catalog is registered at creation. The registry has
// no internal locking; callers that mutate it after startup (threshold
// overrides) must serialize access themselves.
type Registry struct {
	profiles map[string]*Profile
	order    []string // Registration order, for stable listings
}

// NewRegistry returns a registry pre-loaded with the built-in exercise
// catalog.
func NewRegistry() *Registry {
	r := &Registry{profiles: make(map[string]*Profile)}
	for _, p := range builtinProfiles() {
		if err := r.Register(p); err != nil {
			// Built-ins are validated by tests; a bad one is a programming
			// error, not a runtime condition.
			panic(err)
		}
	}
	return r
}

// Register validates and adds a profile. Duplicate ids are rejected.
func (r *Registry) Register(p *Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if _, exists := r.profiles[p.ID]; exists {
		return fmt.Errorf("profile %s already registered", p.ID)
	}
	r.profiles[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

// List returns profile summaries in registration order.
func (r *Registry) List() []Summary {
	out := make([]Summary, 0, len(r.order))
	for _, id := range r.order {
		p := r.profiles[id]
		out = append(out, Summary{
			ID:          p.ID,
			DisplayName: p.DisplayName,
			SideAware:   p.SideAware,
			HalfBody:    p.HalfBody,
		})
	}
	return out
}

// OverrideThresholds adjusts an exercise's hysteresis band, e.g. from a
// tuning file. The stored profile is replaced wholesale, so existing trackers
// keep the band they were built with; the adjusted band must keep a positive
// gap.
func (r *Registry) OverrideThresholds(id string, lower, upper *float64) error {
	p, ok := r.profiles[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExercise, id)
	}

	next := *p
	if lower != nil {
		next.LowerThreshold = *lower
	}
	if upper != nil {
		next.UpperThreshold = *upper
	}
	if err := next.Validate(); err != nil {
		return err
	}

	r.profiles[id] = &next
	return nil
}

// Profile returns the profile for an id.
func (r *Registry) Profile(id string) (*Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExercise, id)
	}
	return p, nil
}

// NewTracker constructs a fresh tracker for an exercise. For side-aware
// exercises side must be "left" or "right" (empty defaults to "left"); for
// symmetric exercises it is ignored.
func (r *Registry) NewTracker(id, side string, opts TrackerOptions) (*Tracker, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownExercise, id)
	}

	if p.SideAware {
		switch side {
		case "":
			side = "left"
		case "left", "right":
		default:
			return nil, fmt.Errorf("exercise %s: invalid side %q", id, side)
		}
	} else {
		side = ""
	}

	return newTracker(p, side, opts), nil
}
