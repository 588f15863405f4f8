package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/formsight/reptrack/internal/db"
	"github.com/formsight/reptrack/internal/exercise"
	"github.com/formsight/reptrack/internal/httputil"
	"github.com/formsight/reptrack/internal/pose"
)

// maxScoreSamples bounds the per-session form-score history kept for the
// closing summary's quantiles. Oldest samples are dropped first.
const maxScoreSamples = 4096

// session pairs a tracker with its form-score accumulation. The tracker is
// replaced wholesale on reset; a frame in flight sees either the old or the
// new tracker, never a partially reset one.
type session struct {
	id        string
	tracker   *exercise.Tracker
	startedAt time.Time

	scoreSum   float64
	scoreCount int
	scores     []float64
}

func (sess *session) recordScore(score int) {
	sess.scoreSum += float64(score)
	sess.scoreCount++
	sess.scores = append(sess.scores, float64(score))
	if len(sess.scores) > maxScoreSamples {
		sess.scores = sess.scores[1:]
	}
}

// summary computes the closing form-score statistics. Quantiles come from
// the (bounded) sample history; the average covers every frame.
func (sess *session) summary() (avg, p50, p95 float64) {
	if sess.scoreCount == 0 {
		return 0, 0, 0
	}
	avg = sess.scoreSum / float64(sess.scoreCount)

	sorted := make([]float64, len(sess.scores))
	copy(sorted, sess.scores)
	sort.Float64s(sorted)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	return avg, p50, p95
}

type createSessionRequest struct {
	ExerciseID string `json:"exercise_id"`
	Side       string `json:"side,omitempty"`
}

type sessionResponse struct {
	SessionID  string `json:"session_id"`
	ExerciseID string `json:"exercise_id"`
	Side       string `json:"side,omitempty"`
	RepCount   int    `json:"rep_count"`
	Stage      string `json:"stage"`
}

func (s *Server) sessionResponse(sess *session) sessionResponse {
	return sessionResponse{
		SessionID:  sess.id,
		ExerciseID: sess.tracker.Profile().ID,
		Side:       sess.tracker.Side(),
		RepCount:   sess.tracker.RepCount(),
		Stage:      string(sess.tracker.Stage()),
	}
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	s.mu.Lock()
	tracker, err := s.registry.NewTracker(req.ExerciseID, req.Side, s.opts)
	if err != nil {
		s.mu.Unlock()
		status := http.StatusBadRequest
		if errors.Is(err, exercise.ErrUnknownExercise) {
			status = http.StatusNotFound
		}
		httputil.WriteJSONError(w, status, err.Error())
		return
	}

	sess := &session{
		id:        uuid.NewString(),
		tracker:   tracker,
		startedAt: s.clock.Now(),
	}
	s.sessions[sess.id] = sess
	resp := s.sessionResponse(sess)
	s.mu.Unlock()

	httputil.WriteJSON(w, http.StatusCreated, resp)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sess := s.sessions[r.PathValue("id")]
	if sess == nil {
		s.mu.Unlock()
		httputil.WriteJSONError(w, http.StatusNotFound, "unknown session")
		return
	}
	resp := s.sessionResponse(sess)
	s.mu.Unlock()

	httputil.WriteJSON(w, http.StatusOK, resp)
}

type frameRequest struct {
	// Landmarks maps landmark names to coordinates; Indexed is the
	// alternative canonical-order form straight from a pose model.
	Landmarks pose.Frame      `json:"landmarks,omitempty"`
	Indexed   []pose.Landmark `json:"indexed_landmarks,omitempty"`
}

func (s *Server) processFrame(w http.ResponseWriter, r *http.Request) {
	var req frameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	frame := req.Landmarks
	if frame == nil && req.Indexed != nil {
		frame = pose.FrameFromSlice(req.Indexed)
	}
	if frame == nil {
		httputil.WriteJSONError(w, http.StatusBadRequest, "no landmarks in request")
		return
	}

	s.mu.Lock()
	sess := s.sessions[r.PathValue("id")]
	if sess == nil {
		s.mu.Unlock()
		httputil.WriteJSONError(w, http.StatusNotFound, "unknown session")
		return
	}
	result := sess.tracker.Process(frame)
	if result.ValidPose {
		sess.recordScore(result.FormScore)
	}
	s.mu.Unlock()

	httputil.WriteJSON(w, http.StatusOK, result)
}

func (s *Server) resetSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sess := s.sessions[r.PathValue("id")]
	if sess == nil {
		s.mu.Unlock()
		httputil.WriteJSONError(w, http.StatusNotFound, "unknown session")
		return
	}
	sess.tracker.Reset()
	sess.scoreSum = 0
	sess.scoreCount = 0
	sess.scores = nil
	sess.startedAt = s.clock.Now()
	resp := s.sessionResponse(sess)
	s.mu.Unlock()

	httputil.WriteJSON(w, http.StatusOK, resp)
}

// closeSession ends a session and, when a database is configured, persists
// the completed set.
func (s *Server) closeSession(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sess := s.sessions[r.PathValue("id")]
	if sess != nil {
		delete(s.sessions, sess.id)
	}
	s.mu.Unlock()

	if sess == nil {
		httputil.WriteJSONError(w, http.StatusNotFound, "unknown session")
		return
	}

	now := s.clock.Now()
	avg, p50, p95 := sess.summary()
	set := &db.WorkoutSet{
		SessionID:    sess.id,
		ExerciseID:   sess.tracker.Profile().ID,
		Side:         sess.tracker.Side(),
		RepCount:     sess.tracker.RepCount(),
		AvgFormScore: avg,
		P50FormScore: p50,
		P95FormScore: p95,
		DurationSecs: now.Sub(sess.startedAt).Seconds(),
		StartedUnix:  float64(sess.startedAt.UnixMilli()) / 1e3,
		EndedUnix:    float64(now.UnixMilli()) / 1e3,
	}

	if s.db != nil {
		if err := s.db.InsertWorkoutSet(set); err != nil {
			httputil.WriteJSONError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}

	httputil.WriteJSON(w, http.StatusOK, set)
}
