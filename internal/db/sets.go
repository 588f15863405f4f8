package db

import (
	"database/sql"
	"fmt"
)

// WorkoutSet is one completed set: a closed tracking session's final
// counters and form-score summary.
type WorkoutSet struct {
	SetID        int64   `json:"set_id"`
	SessionID    string  `json:"session_id"`
	ExerciseID   string  `json:"exercise_id"`
	Side         string  `json:"side,omitempty"`
	RepCount     int     `json:"rep_count"`
	AvgFormScore float64 `json:"avg_form_score"`
	P50FormScore float64 `json:"p50_form_score"`
	P95FormScore float64 `json:"p95_form_score"`
	DurationSecs float64 `json:"duration_secs"`
	StartedUnix  float64 `json:"started_unix"`
	EndedUnix    float64 `json:"ended_unix"`
}

// SetSummary aggregates a lifter's history for one exercise.
type SetSummary struct {
	ExerciseID   string  `json:"exercise_id"`
	SetCount     int     `json:"set_count"`
	TotalReps    int     `json:"total_reps"`
	AvgFormScore float64 `json:"avg_form_score"`
	BestSetReps  int     `json:"best_set_reps"`
}

// InsertWorkoutSet records a completed set and fills in its SetID.
func (db *DB) InsertWorkoutSet(ws *WorkoutSet) error {
	result, err := db.Exec(`
		INSERT INTO workout_sets (
			session_id, exercise_id, side, rep_count,
			avg_form_score, p50_form_score, p95_form_score,
			duration_secs, started_unix, ended_unix
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ws.SessionID, ws.ExerciseID, ws.Side, ws.RepCount,
		ws.AvgFormScore, ws.P50FormScore, ws.P95FormScore,
		ws.DurationSecs, ws.StartedUnix, ws.EndedUnix,
	)
	if err != nil {
		return fmt.Errorf("failed to insert workout set: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		ws.SetID = id
	}
	return nil
}

// ListWorkoutSets returns recent sets, newest first, optionally filtered by
// exercise id. A limit <= 0 defaults to 100.
func (db *DB) ListWorkoutSets(exerciseID string, limit int) ([]*WorkoutSet, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `
		SELECT set_id, session_id, exercise_id, side, rep_count,
		       avg_form_score, p50_form_score, p95_form_score,
		       duration_secs, started_unix, ended_unix
		FROM workout_sets
	`
	args := []interface{}{}
	if exerciseID != "" {
		query += " WHERE exercise_id = ?"
		args = append(args, exerciseID)
	}
	query += " ORDER BY ended_unix DESC LIMIT ?"
	args = append(args, limit)

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list workout sets: %w", err)
	}
	defer rows.Close()

	var sets []*WorkoutSet
	for rows.Next() {
		var ws WorkoutSet
		var side sql.NullString
		if err := rows.Scan(
			&ws.SetID, &ws.SessionID, &ws.ExerciseID, &side, &ws.RepCount,
			&ws.AvgFormScore, &ws.P50FormScore, &ws.P95FormScore,
			&ws.DurationSecs, &ws.StartedUnix, &ws.EndedUnix,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workout set: %w", err)
		}
		ws.Side = side.String
		sets = append(sets, &ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sets, nil
}

// SummarizeByExercise aggregates all recorded sets per exercise.
func (db *DB) SummarizeByExercise() ([]*SetSummary, error) {
	rows, err := db.Query(`
		SELECT exercise_id,
		       COUNT(*),
		       SUM(rep_count),
		       AVG(avg_form_score),
		       MAX(rep_count)
		FROM workout_sets
		GROUP BY exercise_id
		ORDER BY exercise_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize workout sets: %w", err)
	}
	defer rows.Close()

	var summaries []*SetSummary
	for rows.Next() {
		var s SetSummary
		if err := rows.Scan(&s.ExerciseID, &s.SetCount, &s.TotalReps, &s.AvgFormScore, &s.BestSetReps); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		summaries = append(summaries, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

// SessionSets returns the sets recorded under one session id, oldest first.
func (db *DB) SessionSets(sessionID string) ([]*WorkoutSet, error) {
	rows, err := db.Query(`
		SELECT set_id, session_id, exercise_id, side, rep_count,
		       avg_form_score, p50_form_score, p95_form_score,
		       duration_secs, started_unix, ended_unix
		FROM workout_sets
		WHERE session_id = ?
		ORDER BY ended_unix ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query session sets: %w", err)
	}
	defer rows.Close()

	var sets []*WorkoutSet
	for rows.Next() {
		var ws WorkoutSet
		var side sql.NullString
		if err := rows.Scan(
			&ws.SetID, &ws.SessionID, &ws.ExerciseID, &side, &ws.RepCount,
			&ws.AvgFormScore, &ws.P50FormScore, &ws.P95FormScore,
			&ws.DurationSecs, &ws.StartedUnix, &ws.EndedUnix,
		); err != nil {
			return nil, fmt.Errorf("failed to scan workout set: %w", err)
		}
		ws.Side = side.String
		sets = append(sets, &ws)
	}
	return sets, rows.Err()
}
