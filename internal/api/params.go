package api

import (
	"encoding/json"
	"net/http"

	"github.com/formsight/reptrack/internal/config"
	"github.com/formsight/reptrack/internal/httputil"
)

// paramsResponse is the wire view of the currently active tuning values.
type paramsResponse struct {
	ConfidenceFloor float64 `json:"confidence_floor"`
	SmoothingWindow int     `json:"smoothing_window"`
	FeedbackHold    string  `json:"feedback_hold"`
}

func (s *Server) getParams(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	resp := paramsResponse{
		ConfidenceFloor: s.opts.ConfidenceFloor,
		SmoothingWindow: s.opts.SmoothingWindow,
		FeedbackHold:    s.opts.FeedbackHold.String(),
	}
	s.mu.Unlock()
	httputil.WriteJSON(w, http.StatusOK, resp)
}

// updateParams applies a tuning document at runtime. Threshold overrides take
// effect for trackers created afterwards; live sessions keep the options they
// were built with.
func (s *Server) updateParams(w http.ResponseWriter, r *http.Request) {
	var cfg config.TuningConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := cfg.Validate(); err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	for id, ov := range cfg.Thresholds {
		if err := s.registry.OverrideThresholds(id, ov.Lower, ov.Upper); err != nil {
			s.mu.Unlock()
			httputil.WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if cfg.ConfidenceFloor != nil {
		s.opts.ConfidenceFloor = *cfg.ConfidenceFloor
	}
	if cfg.SmoothingWindow != nil {
		s.opts.SmoothingWindow = *cfg.SmoothingWindow
	}
	if cfg.FeedbackHold != nil {
		s.opts.FeedbackHold = cfg.GetFeedbackHold()
	}
	resp := paramsResponse{
		ConfidenceFloor: s.opts.ConfidenceFloor,
		SmoothingWindow: s.opts.SmoothingWindow,
		FeedbackHold:    s.opts.FeedbackHold.String(),
	}
	s.mu.Unlock()

	httputil.WriteJSON(w, http.StatusOK, resp)
}
