// Package gesture classifies hand observations into musical gestures.
//
// Classification is a pure function of the 21-point landmark set; there is no
// hidden state and nothing is persisted between frames.
package gesture

import (
	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
)

// fingerJoints pairs each fingertip with the proximal joint used for the
// extension test.
var fingerJoints = [contracts.NumFingers][2]int{
	contracts.Thumb:  {contracts.ThumbTip, contracts.ThumbIP},
	contracts.Index:  {contracts.IndexTip, contracts.IndexPIP},
	contracts.Middle: {contracts.MiddleTip, contracts.MiddlePIP},
	contracts.Ring:   {contracts.RingTip, contracts.RingPIP},
	contracts.Pinky:  {contracts.PinkyTip, contracts.PinkyPIP},
}

// FingerStates computes the per-finger extension flags for one observation.
// The thumb is extended when its tip sits further right than its IP joint
// (natural abduction); the other fingers are extended when the tip sits above
// the PIP joint on screen (smaller Y).
func FingerStates(hand contracts.HandObservation) contracts.FingerStates {
	var states contracts.FingerStates
	for finger, joints := range fingerJoints {
		tip := hand.Points[joints[0]]
		base := hand.Points[joints[1]]
		if finger == contracts.Thumb {
			states[finger] = tip.X > base.X
		} else {
			states[finger] = tip.Y < base.Y
		}
	}
	return states
}

// Classify labels one hand observation. Priority order: fist, open hand,
// pointing, peace, custom.
func Classify(hand contracts.HandObservation) contracts.Gesture {
	states := FingerStates(hand)
	return contracts.Gesture{Kind: kindOf(states), Fingers: states}
}

func kindOf(states contracts.FingerStates) contracts.GestureKind {
	n := states.Extended()
	switch {
	case n == 0:
		return contracts.GestureFist
	case n >= 4:
		return contracts.GestureOpenHand
	case n == 1 && states[contracts.Index]:
		return contracts.GesturePointing
	case n == 2 && states[contracts.Index] && states[contracts.Middle]:
		return contracts.GesturePeace
	default:
		return contracts.GestureCustom
	}
}

// FingertipIndex maps a finger to its tip landmark index.
func FingertipIndex(finger int) int {
	return fingerJoints[finger][0]
}
