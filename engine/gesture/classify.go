// Package gesture turns hand-tracking output into discrete gesture labels.
// Sources run on their own goroutine and only ever report labels; they
// never touch particle state.
package gesture

import "math"

// Label is the classified hand pose.
type Label uint8

const (
	Unknown Label = iota
	Fist          // closed hand, shrinks the cloud
	Open          // open palm, grows the cloud
)

func (l Label) String() string {
	switch l {
	case Fist:
		return "fist"
	case Open:
		return "open"
	}
	return "unknown"
}

// Keypoint indices of the 21-point hand model.
const (
	Wrist     = 0
	ThumbMCP  = 1
	ThumbTip  = 4
	IndexMCP  = 5
	IndexTip  = 8
	MiddleMCP = 9
	MiddleTip = 12
	RingMCP   = 13
	RingTip   = 16
	PinkyMCP  = 17
	PinkyTip  = 20

	NumKeypoints = 21
)

// Classification thresholds on the mean finger extension, in the
// tracker's normalized coordinates.
const (
	FistThreshold = 0.15
	OpenThreshold = 0.25
)

// Keypoint is one tracked landmark.
type Keypoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Hand is one detected hand.
type Hand struct {
	Keypoints []Keypoint `json:"keypoints"`
}

var fingers = [5][2]int{
	{ThumbTip, ThumbMCP},
	{IndexTip, IndexMCP},
	{MiddleTip, MiddleMCP},
	{RingTip, RingMCP},
	{PinkyTip, PinkyMCP},
}

// Extension is the mean, over the five fingers, of how much farther the
// fingertip is from the palm centre than its knuckle. The palm centre is
// the midpoint of the wrist and the middle finger knuckle.
func Extension(h Hand) (float64, bool) {
	if len(h.Keypoints) < NumKeypoints {
		return 0, false
	}
	kp := h.Keypoints
	cx := (kp[Wrist].X + kp[MiddleMCP].X) / 2
	cy := (kp[Wrist].Y + kp[MiddleMCP].Y) / 2
	sum := 0.0
	for _, f := range fingers {
		tip, mcp := kp[f[0]], kp[f[1]]
		sum += math.Hypot(tip.X-cx, tip.Y-cy) - math.Hypot(mcp.X-cx, mcp.Y-cy)
	}
	return sum / float64(len(fingers)), true
}

// Classify labels a hand as a fist, an open palm, or unknown when it is
// in between or has too few keypoints.
func Classify(h Hand) Label {
	ext, ok := Extension(h)
	switch {
	case !ok || math.IsNaN(ext):
		return Unknown
	case ext < FistThreshold:
		return Fist
	case ext > OpenThreshold:
		return Open
	}
	return Unknown
}
