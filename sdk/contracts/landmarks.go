package contracts

// Hand landmark indices following the MediaPipe hand model. The external
// detector emits exactly NumLandmarks points per hand, in this order.
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a single landmark position, normalized to [0,1] in viewport
// coordinates (Z is relative depth as reported by the detector).
type Point3D struct {
	X float64
	Y float64
	Z float64
}

// HandObservation is one hand as reported by the external pose detector for a
// single frame. It is immutable and is discarded once the frame is processed.
type HandObservation struct {
	Points     [NumLandmarks]Point3D
	Handedness string // "Left" or "Right"
}
