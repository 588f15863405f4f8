// Package api exposes the exercise engine over HTTP: exercise catalog,
// per-session frame processing, runtime tuning, and workout history.
package api

import (
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/formsight/reptrack/internal/db"
	"github.com/formsight/reptrack/internal/exercise"
	"github.com/formsight/reptrack/internal/httputil"
	"github.com/formsight/reptrack/internal/timeutil"
)

// ANSI escape codes for request logging
const colorCyan = "\033[36m"
const colorReset = "\033[0m"
const colorYellow = "\033[33m"
const colorBoldGreen = "\033[1;32m"
const colorBoldRed = "\033[1;31m"

// Server owns the exercise registry, live tracking sessions, and the set
// store. mu guards the session map, the default tracker options, and the
// registry (which the params endpoint can mutate at runtime). Each session's
// tracker is only ever touched while holding mu, which serializes the
// per-frame pipeline per session; the engine itself has no internal locking.
type Server struct {
	registry *exercise.Registry
	db       *db.DB
	clock    timeutil.Clock

	mu       sync.Mutex
	sessions map[string]*session
	opts     exercise.TrackerOptions
}

// NewServer creates an API server. db may be nil in tools that only need
// live tracking without persistence.
func NewServer(registry *exercise.Registry, database *db.DB, opts exercise.TrackerOptions) *Server {
	clock := opts.Clock
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	return &Server{
		registry: registry,
		db:       database,
		clock:    clock,
		sessions: make(map[string]*session),
		opts:     opts,
	}
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	default:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	}
}

// LoggingMiddleware logs method, path, status, and duration.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		log.Printf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

// ServeMux returns the route table for the API.
func (s *Server) ServeMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/exercises", s.listExercises)
	mux.HandleFunc("POST /api/sessions", s.createSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.getSession)
	mux.HandleFunc("POST /api/sessions/{id}/frames", s.processFrame)
	mux.HandleFunc("POST /api/sessions/{id}/reset", s.resetSession)
	mux.HandleFunc("POST /api/sessions/{id}/close", s.closeSession)
	mux.HandleFunc("GET /api/params", s.getParams)
	mux.HandleFunc("PUT /api/params", s.updateParams)
	mux.HandleFunc("GET /api/sets", s.listSets)
	mux.HandleFunc("GET /api/sets/summary", s.summarizeSets)
	mux.HandleFunc("GET /api/report", s.renderReport)
	return mux
}

func (s *Server) listExercises(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	list := s.registry.List()
	s.mu.Unlock()
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (s *Server) listSets(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		httputil.WriteJSONError(w, http.StatusNotImplemented, "no database configured")
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	sets, err := s.db.ListWorkoutSets(r.URL.Query().Get("exercise_id"), limit)
	if err != nil {
		httputil.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if sets == nil {
		sets = []*db.WorkoutSet{}
	}
	httputil.WriteJSON(w, http.StatusOK, sets)
}

func (s *Server) summarizeSets(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		httputil.WriteJSONError(w, http.StatusNotImplemented, "no database configured")
		return
	}

	summaries, err := s.db.SummarizeByExercise()
	if err != nil {
		httputil.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []*db.SetSummary{}
	}
	httputil.WriteJSON(w, http.StatusOK, summaries)
}
