// Package config loads caller-supplied tuning for the exercise engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/formsight/reptrack/internal/exercise"
	"github.com/formsight/reptrack/internal/pose"
)

// TuningConfig holds the runtime-adjustable parameters of the tracking
// pipeline. All fields are pointers so a partial JSON file only overrides
// what it names; the same schema is accepted by the /api/params endpoint.
type TuningConfig struct {
	// ConfidenceFloor is the minimum landmark confidence for the
	// visibility gate.
	ConfidenceFloor *float64 `json:"confidence_floor,omitempty"`

	// SmoothingWindow overrides every profile's angle-history capacity
	// when set (> 0).
	SmoothingWindow *int `json:"smoothing_window,omitempty"`

	// FeedbackHold is the minimum display interval for a feedback
	// message, as a duration string like "2s".
	FeedbackHold *string `json:"feedback_hold,omitempty"`

	// Thresholds optionally overrides per-exercise angle thresholds,
	// keyed by exercise id.
	Thresholds map[string]ThresholdOverride `json:"thresholds,omitempty"`
}

// ThresholdOverride adjusts one exercise's hysteresis band.
type ThresholdOverride struct {
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
}

// maxConfigFileSize caps config reads; tuning files are tiny.
const maxConfigFileSize = 1 * 1024 * 1024

// Load reads a TuningConfig from a JSON file. Fields omitted from the file
// keep their defaults, so partial configs are safe.
func Load(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg TuningConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *TuningConfig) Validate() error {
	if c.ConfidenceFloor != nil {
		if *c.ConfidenceFloor <= 0 || *c.ConfidenceFloor > 1 {
			return fmt.Errorf("confidence_floor must be in (0, 1], got %f", *c.ConfidenceFloor)
		}
	}

	if c.SmoothingWindow != nil && *c.SmoothingWindow < 0 {
		return fmt.Errorf("smoothing_window must be non-negative, got %d", *c.SmoothingWindow)
	}

	if c.FeedbackHold != nil && *c.FeedbackHold != "" {
		if _, err := time.ParseDuration(*c.FeedbackHold); err != nil {
			return fmt.Errorf("invalid feedback_hold %q: %w", *c.FeedbackHold, err)
		}
	}

	for id, ov := range c.Thresholds {
		if ov.Lower != nil && ov.Upper != nil && *ov.Lower >= *ov.Upper {
			return fmt.Errorf("thresholds for %s: lower %.1f must be below upper %.1f",
				id, *ov.Lower, *ov.Upper)
		}
	}

	return nil
}

// GetConfidenceFloor returns the confidence_floor value or the default.
func (c *TuningConfig) GetConfidenceFloor() float64 {
	if c.ConfidenceFloor == nil {
		return pose.DefaultConfidenceFloor
	}
	return *c.ConfidenceFloor
}

// GetSmoothingWindow returns the smoothing_window override, or 0 when the
// profiles' own windows should be used.
func (c *TuningConfig) GetSmoothingWindow() int {
	if c.SmoothingWindow == nil {
		return 0
	}
	return *c.SmoothingWindow
}

// GetFeedbackHold parses and returns the feedback_hold as a time.Duration.
func (c *TuningConfig) GetFeedbackHold() time.Duration {
	if c.FeedbackHold == nil || *c.FeedbackHold == "" {
		return exercise.DefaultFeedbackHold
	}
	d, err := time.ParseDuration(*c.FeedbackHold)
	if err != nil {
		return exercise.DefaultFeedbackHold
	}
	return d
}

// TrackerOptions converts the tuning values into per-tracker options.
func (c *TuningConfig) TrackerOptions() exercise.TrackerOptions {
	opts := exercise.DefaultTrackerOptions()
	opts.ConfidenceFloor = c.GetConfidenceFloor()
	opts.SmoothingWindow = c.GetSmoothingWindow()
	opts.FeedbackHold = c.GetFeedbackHold()
	return opts
}
