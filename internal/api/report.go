package api

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/formsight/reptrack/internal/httputil"
)

// renderReport renders an HTML workout report: reps per set as a bar chart
// with the average form score overlaid as a line. Query params:
//   - exercise_id (optional) to filter to one exercise
//   - limit (optional; default 30) most recent sets, oldest first on the axis
func (s *Server) renderReport(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		httputil.WriteJSONError(w, http.StatusNotImplemented, "no database configured")
		return
	}

	limit := 30
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := parsePositiveInt(v); err == nil {
			limit = n
		}
	}

	exerciseID := r.URL.Query().Get("exercise_id")
	sets, err := s.db.ListWorkoutSets(exerciseID, limit)
	if err != nil {
		httputil.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if len(sets) == 0 {
		httputil.WriteJSONError(w, http.StatusNotFound, "no recorded sets")
		return
	}

	// ListWorkoutSets returns newest first; the chart reads left to right.
	labels := make([]string, 0, len(sets))
	reps := make([]opts.BarData, 0, len(sets))
	scores := make([]opts.LineData, 0, len(sets))
	for i := len(sets) - 1; i >= 0; i-- {
		set := sets[i]
		label := set.ExerciseID
		if set.Side != "" {
			label += " (" + set.Side + ")"
		}
		labels = append(labels, fmt.Sprintf("%s #%d", label, set.SetID))
		reps = append(reps, opts.BarData{Value: set.RepCount})
		scores = append(scores, opts.LineData{Value: set.AvgFormScore})
	}

	title := "Workout Report"
	if exerciseID != "" {
		title += ": " + exerciseID
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1100px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("last %d sets", len(sets))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "reps"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("reps", reps)

	line := charts.NewLine()
	line.SetXAxis(labels)
	line.AddSeries("avg form score", scores)
	bar.Overlap(line)

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		httputil.WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func parsePositiveInt(v string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("must be positive")
	}
	return n, nil
}
