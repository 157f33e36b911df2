package contracts

// GestureKind is the label assigned to a hand pose by the gesture classifier.
type GestureKind string

const (
	GestureFist     GestureKind = "fist"
	GestureOpenHand GestureKind = "open_hand"
	GesturePointing GestureKind = "pointing"
	GesturePeace    GestureKind = "peace"
	GestureCustom   GestureKind = "custom"
)

// Finger indices into FingerStates, thumb first.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerStates holds the per-finger extension flags a gesture was derived from.
type FingerStates [NumFingers]bool

// Extended returns the number of extended fingers.
func (f FingerStates) Extended() int {
	var n int
	for _, up := range f {
		if up {
			n++
		}
	}
	return n
}

// Gesture is the classification result for one hand observation. It is
// recomputed every frame and never persisted.
type Gesture struct {
	Kind    GestureKind
	Fingers FingerStates
}
