package main

import (
	"fmt"
	"os"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/sdk/contracts"
	"github.com/ankitxrishav/HandGesture-Music/sdk/engine"
)

// pointingHand builds a synthetic observation with only the index finger
// extended, its tip at normalized viewport coordinates (x, y).
func pointingHand(x, y float64) contracts.HandObservation {
	var hand contracts.HandObservation
	for i := range hand.Points {
		hand.Points[i] = contracts.Point3D{X: 0.5, Y: 0.9}
	}
	// Curl every finger by keeping tips below their PIP joints, then extend
	// the index finger and place its tip on the target point.
	hand.Points[contracts.IndexPIP] = contracts.Point3D{X: x, Y: y + 0.1}
	hand.Points[contracts.IndexTip] = contracts.Point3D{X: x, Y: y}
	hand.Handedness = "Right"
	return hand
}

func fistHand() contracts.HandObservation {
	var hand contracts.HandObservation
	for i := range hand.Points {
		hand.Points[i] = contracts.Point3D{X: 0.5, Y: 0.9}
	}
	hand.Handedness = "Right"
	return hand
}

func main() {
	eng, err := engine.NewEngine(
		contracts.WithScale(contracts.ScalePentatonic),
		contracts.WithInstrument(contracts.InstrumentPiano),
		contracts.WithHarmonyMode(contracts.HarmonyChords),
		contracts.WithMasterVolume(0.7),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "engine init failed:", err)
		os.Exit(1)
	}
	defer eng.Stop()

	// Sweep the index fingertip across the viewport, one frame every 50 ms,
	// the way a camera pipeline would feed real MediaPipe landmarks.
	for step := 0; step < 40; step++ {
		x := 0.1 + 0.02*float64(step)
		eng.ProcessFrame([]contracts.HandObservation{pointingHand(x, 0.4)})
		time.Sleep(50 * time.Millisecond)
		eng.Tick()
	}

	// A fist stops everything.
	eng.ProcessFrame([]contracts.HandObservation{fistHand()})
	eng.Tick()

	fmt.Printf("sounding pitches after fist: %v\n", eng.Sounding())
	fmt.Printf("pattern confidence: %.0f\n", eng.PatternConfidence())

	f, err := os.Create("session.mid")
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating session.mid:", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := eng.ExportSMF(f); err != nil {
		fmt.Fprintln(os.Stderr, "exporting SMF:", err)
		os.Exit(1)
	}
	fmt.Println("wrote session.mid with", len(eng.Events()), "events")
}
