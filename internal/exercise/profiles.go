package exercise

// builtinProfiles returns the exercise catalog. Thresholds are in degrees of
// the profile's metric. Completion edges follow where each movement naturally
// finishes a repetition: pressing movements count at lockout (entering up),
// raises and shrugs count on returning to rest (entering down).
func builtinProfiles() []*Profile {
	return []*Profile{
		{
			ID:          "bicep_curl",
			DisplayName: "Bicep Curl",
			RequiredLandmarks: []string{
				"{side}_shoulder", "{side}_elbow", "{side}_wrist", "{side}_hip",
			},
			Metric:          MetricJointAngle,
			AngleLandmarks:  [3]string{"{side}_shoulder", "{side}_elbow", "{side}_wrist"},
			LowerThreshold:  40,  // Fully curled
			UpperThreshold:  160, // Arm extended
			CompletionEdge:  OnEnterUp,
			SideAware:       true,
			SmoothingWindow: DefaultSmoothingWindow,
			FormChecks:      []FormCheck{checkElbowDrift, checkShoulderSwing},
			RepMessage:      "Great rep!",
		},
		{
			ID:          "squat",
			DisplayName: "Squat",
			RequiredLandmarks: []string{
				"{side}_shoulder", "{side}_hip", "{side}_knee", "{side}_ankle",
			},
			Metric:          MetricJointAngle,
			AngleLandmarks:  [3]string{"{side}_hip", "{side}_knee", "{side}_ankle"},
			LowerThreshold:  90,  // Full depth
			UpperThreshold:  160, // Standing
			CompletionEdge:  OnEnterUp,
			SideAware:       true,
			SmoothingWindow: DefaultSmoothingWindow,
			FormChecks:      []FormCheck{checkKneeOverToe, checkBackAngle},
			RepMessage:      "Great squat!",
		},
		{
			ID:          "pushup",
			DisplayName: "Push-Up",
			RequiredLandmarks: []string{
				"{side}_shoulder", "{side}_elbow", "{side}_wrist",
				"{side}_hip", "{side}_ankle",
			},
			Metric:          MetricJointAngle,
			AngleLandmarks:  [3]string{"{side}_shoulder", "{side}_elbow", "{side}_wrist"},
			LowerThreshold:  90,  // Chest near the ground
			UpperThreshold:  160, // Arms extended
			CompletionEdge:  OnEnterUp,
			SideAware:       true,
			SmoothingWindow: DefaultSmoothingWindow,
			FormChecks:      []FormCheck{checkBodyAlignment, checkElbowFlare},
			RepMessage:      "Great push-up!",
		},
		{
			ID:          "shoulder_press",
			DisplayName: "Shoulder Press",
			RequiredLandmarks: []string{
				"{side}_shoulder", "{side}_elbow", "{side}_wrist", "{side}_hip",
			},
			Metric:          MetricJointAngle,
			AngleLandmarks:  [3]string{"{side}_shoulder", "{side}_elbow", "{side}_wrist"},
			LowerThreshold:  100, // Bar at shoulder level
			UpperThreshold:  160, // Overhead lockout
			CompletionEdge:  OnEnterUp,
			SideAware:       true,
			HalfBody:        true,
			SmoothingWindow: DefaultSmoothingWindow,
			FormChecks:      []FormCheck{checkLockoutHeight, checkElbowFlare},
			RepMessage:      "Strong press!",
		},
		{
			ID:          "tricep_extension",
			DisplayName: "Tricep Extension",
			RequiredLandmarks: []string{
				"{side}_shoulder", "{side}_elbow", "{side}_wrist",
			},
			Metric:          MetricJointAngle,
			AngleLandmarks:  [3]string{"{side}_shoulder", "{side}_elbow", "{side}_wrist"},
			LowerThreshold:  60,  // Elbow fully bent
			UpperThreshold:  150, // Arm extended overhead
			CompletionEdge:  OnEnterUp,
			SideAware:       true,
			HalfBody:        true,
			SmoothingWindow: DefaultSmoothingWindow,
			FormChecks:      []FormCheck{checkUpperArmStill},
			RepMessage:      "Great extension!",
		},
		{
			ID:          "lateral_raise",
			DisplayName: "Lateral Raise",
			RequiredLandmarks: []string{
				"{side}_shoulder", "{side}_elbow", "{side}_wrist", "{side}_hip",
			},
			Metric:          MetricAbduction,
			LowerThreshold:  30, // Arms at the sides
			UpperThreshold:  70, // Arms at shoulder level
			CompletionEdge:  OnEnterDown,
			SideAware:       true,
			HalfBody:        true,
			SmoothingWindow: DefaultSmoothingWindow,
			FormChecks:      []FormCheck{checkBentElbow, checkOverRaise},
			RepMessage:      "Great rep!",
		},
		{
			ID:          "front_raise",
			DisplayName: "Front Raise",
			RequiredLandmarks: []string{
				"{side}_shoulder", "{side}_elbow", "{side}_wrist", "{side}_hip",
			},
			Metric:          MetricAbduction,
			LowerThreshold:  25, // Arms down
			UpperThreshold:  70, // Arms at shoulder level
			CompletionEdge:  OnEnterDown,
			SideAware:       true,
			HalfBody:        true,
			SmoothingWindow: DefaultSmoothingWindow,
			FormChecks:      []FormCheck{checkBentElbow, checkOverRaise},
			RepMessage:      "Great rep!",
		},
		{
			ID:          "shoulder_shrug",
			DisplayName: "Shoulder Shrug",
			RequiredLandmarks: []string{
				"left_ear", "right_ear",
				"left_shoulder", "right_shoulder",
				"left_elbow", "right_elbow",
				"left_wrist", "right_wrist",
			},
			Metric:         MetricShoulderRise,
			LowerThreshold: 58, // Shoulders relaxed
			UpperThreshold: 70, // Full shrug
			CompletionEdge: OnEnterDown,
			HalfBody:       true,
			// The motion is fast and discrete; smoothing would blur the
			// hold at the top, so it stays disabled.
			SmoothingWindow: 0,
			FormChecks:      []FormCheck{checkRelaxedArms},
			RepMessage:      "Great shrug!",
		},
	}
}
