// Command replay drives the exercise engine from a recorded landmark log:
// one JSON keypoint frame per line. It prints per-frame results and a final
// summary, which makes threshold tuning reproducible without a camera.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/formsight/reptrack/internal/exercise"
	"github.com/formsight/reptrack/internal/pose"
)

type recordedFrame struct {
	Landmarks pose.Frame      `json:"landmarks,omitempty"`
	Indexed   []pose.Landmark `json:"indexed_landmarks,omitempty"`
}

func main() {
	input := flag.String("i", "", "landmark log path (JSON lines; default stdin)")
	exerciseID := flag.String("exercise", "bicep_curl", "exercise id to track")
	side := flag.String("side", "", "tracked side for side-aware exercises")
	floor := flag.Float64("confidence", pose.DefaultConfidenceFloor, "landmark confidence floor")
	verbose := flag.Bool("v", false, "print every frame, not just transitions")
	flag.Parse()

	in := os.Stdin
	if *input != "" {
		f, err := os.Open(*input)
		if err != nil {
			log.Fatalf("failed to open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	registry := exercise.NewRegistry()
	opts := exercise.DefaultTrackerOptions()
	opts.ConfidenceFloor = *floor
	tracker, err := registry.NewTracker(*exerciseID, *side, opts)
	if err != nil {
		log.Fatalf("failed to create tracker: %v", err)
	}

	var (
		frames    int
		invalid   int
		lastStage = tracker.Stage()
		lastReps  = 0
		scoreSum  int
	)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var rec recordedFrame
		if err := json.Unmarshal(line, &rec); err != nil {
			log.Fatalf("frame %d: bad JSON: %v", frames+1, err)
		}
		frame := rec.Landmarks
		if frame == nil {
			frame = pose.FrameFromSlice(rec.Indexed)
		}

		result := tracker.Process(frame)
		frames++
		if !result.ValidPose {
			invalid++
		} else {
			scoreSum += result.FormScore
		}

		changed := result.Stage != lastStage || result.RepCount != lastReps
		if *verbose || changed {
			fmt.Printf("frame %4d  reps=%-3d stage=%-7s score=%-3d %s\n",
				frames, result.RepCount, result.Stage, result.FormScore, result.Feedback)
		}
		lastStage = result.Stage
		lastReps = result.RepCount
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read error: %v", err)
	}

	fmt.Printf("\n%s: %d reps over %d frames (%d invalid)\n",
		*exerciseID, tracker.RepCount(), frames, invalid)
	if frames > invalid && frames > 0 {
		fmt.Printf("average form score: %d\n", scoreSum/(frames-invalid))
	}
}
