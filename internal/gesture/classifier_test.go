package gesture

import (
	"testing"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"github.com/stretchr/testify/assert"
)

// curledHand places every landmark at the same point, so no extension test
// passes.
func curledHand() contracts.HandObservation {
	var hand contracts.HandObservation
	for i := range hand.Points {
		hand.Points[i] = contracts.Point3D{X: 0.5, Y: 0.8}
	}
	return hand
}

func extend(hand *contracts.HandObservation, finger int) {
	tip, joint := fingerJoints[finger][0], fingerJoints[finger][1]
	if finger == contracts.Thumb {
		hand.Points[tip].X = hand.Points[joint].X + 0.1
	} else {
		hand.Points[tip].Y = hand.Points[joint].Y - 0.1
	}
}

func TestClassifyFist(t *testing.T) {
	g := Classify(curledHand())
	assert.Equal(t, contracts.GestureFist, g.Kind)
	assert.Equal(t, 0, g.Fingers.Extended())
}

func TestClassifyOpenHand(t *testing.T) {
	hand := curledHand()
	for finger := 0; finger < contracts.NumFingers; finger++ {
		extend(&hand, finger)
	}
	g := Classify(hand)
	assert.Equal(t, contracts.GestureOpenHand, g.Kind)
	assert.Equal(t, contracts.NumFingers, g.Fingers.Extended())
}

func TestClassifyFourFingersIsOpenHand(t *testing.T) {
	hand := curledHand()
	for _, finger := range []int{contracts.Index, contracts.Middle, contracts.Ring, contracts.Pinky} {
		extend(&hand, finger)
	}
	assert.Equal(t, contracts.GestureOpenHand, Classify(hand).Kind)
}

func TestClassifyPointing(t *testing.T) {
	hand := curledHand()
	extend(&hand, contracts.Index)
	g := Classify(hand)
	assert.Equal(t, contracts.GesturePointing, g.Kind)
	assert.True(t, g.Fingers[contracts.Index])
}

func TestClassifyPeace(t *testing.T) {
	hand := curledHand()
	extend(&hand, contracts.Index)
	extend(&hand, contracts.Middle)
	assert.Equal(t, contracts.GesturePeace, Classify(hand).Kind)
}

func TestClassifyCustom(t *testing.T) {
	// A lone thumb matches no named shape.
	hand := curledHand()
	extend(&hand, contracts.Thumb)
	assert.Equal(t, contracts.GestureCustom, Classify(hand).Kind)

	// Two fingers other than index+middle are custom as well.
	hand = curledHand()
	extend(&hand, contracts.Ring)
	extend(&hand, contracts.Pinky)
	assert.Equal(t, contracts.GestureCustom, Classify(hand).Kind)
}

func TestThumbExtensionUsesX(t *testing.T) {
	hand := curledHand()
	// Tip above the IP joint but not beyond it horizontally: still curled.
	hand.Points[contracts.ThumbTip].Y = hand.Points[contracts.ThumbIP].Y - 0.2
	states := FingerStates(hand)
	assert.False(t, states[contracts.Thumb])

	hand.Points[contracts.ThumbTip].X = hand.Points[contracts.ThumbIP].X + 0.05
	states = FingerStates(hand)
	assert.True(t, states[contracts.Thumb])
}

func TestFingertipIndex(t *testing.T) {
	assert.Equal(t, contracts.ThumbTip, FingertipIndex(contracts.Thumb))
	assert.Equal(t, contracts.IndexTip, FingertipIndex(contracts.Index))
	assert.Equal(t, contracts.PinkyTip, FingertipIndex(contracts.Pinky))
}
