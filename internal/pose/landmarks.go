// Package pose defines the body-landmark vocabulary and per-frame keypoint
// data produced by an external pose-estimation model, plus the geometry and
// visibility primitives the exercise engine is built on. The package owns no
// camera or model lifecycle; callers feed it one Frame per video frame.
package pose

// Canonical landmark indices for the standard 33-point whole-body set
// (MediaPipe Pose convention). Consumers of a different pose model must remap
// their indices to these before building a Frame.
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// LandmarkNames maps canonical indices to landmark names.
var LandmarkNames = [NumLandmarks]string{
	"nose",
	"left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear",
	"mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_pinky", "right_pinky",
	"left_index", "right_index",
	"left_thumb", "right_thumb",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
	"left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

// LandmarkIndices is the reverse mapping from landmark name to canonical index.
var LandmarkIndices = func() map[string]int {
	m := make(map[string]int, NumLandmarks)
	for i, name := range LandmarkNames {
		m[name] = i
	}
	return m
}()

// Landmark is a single named anatomical point for one frame. Coordinates may
// be normalized [0,1] or pixel-space; the engine only assumes internal
// consistency within one frame. Confidence is in [0,1].
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z,omitempty"`
	Confidence float64 `json:"confidence"`
}

// Frame is one video frame's set of named landmarks.
type Frame map[string]Landmark

// FrameFromSlice builds a Frame from landmarks in canonical index order.
// Slices shorter than NumLandmarks produce a partial frame; extra entries are
// ignored.
func FrameFromSlice(landmarks []Landmark) Frame {
	f := make(Frame, NumLandmarks)
	for i, lm := range landmarks {
		if i >= NumLandmarks {
			break
		}
		f[LandmarkNames[i]] = lm
	}
	return f
}
