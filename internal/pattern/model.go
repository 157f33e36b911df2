// Package pattern tracks recently triggered root pitches and derives
// confidence and consonance scores plus a counterpoint bias from them.
package pattern

import (
	"fmt"
	"strings"
	"time"

	"github.com/ankitxrishav/HandGesture-Music/internal/musicutil"
)

const (
	historyWindow = 50
	// signatureLen root pitches form one interval signature (3 deltas).
	signatureLen = 4
	// Occurrences needed for full confidence.
	confidenceSaturation = 20
)

// Consonant pitch-class distances: minor third, major third, perfect fifth,
// minor sixth. Octave multiples are handled separately (distance 0 over a
// non-zero interval).
var consonantClasses = map[int]bool{3: true, 4: true, 7: true, 8: true}

type entry struct {
	pitch    int
	velocity float64
	at       time.Time
}

// Model is the online pattern tracker. It is mutated on every root-note
// trigger and reset whenever the active scale changes.
type Model struct {
	history []entry
	counts  map[string]int
	total   int

	// Most recent inter-onset gaps only; not accumulated.
	rhythm []time.Duration

	confidence   float64
	harmonyScore float64
}

// New returns an empty model.
func New() *Model {
	return &Model{counts: make(map[string]int)}
}

// Reset clears all history, pattern counts and derived scores. A fresh scale
// is a fresh vocabulary.
func (m *Model) Reset() {
	m.history = m.history[:0]
	m.counts = make(map[string]int)
	m.total = 0
	m.rhythm = nil
	m.confidence = 0
	m.harmonyScore = 0
}

// Observe records one newly triggered root pitch and recomputes the derived
// scores.
func (m *Model) Observe(pitch int, velocity float64, at time.Time) {
	m.history = append(m.history, entry{pitch: pitch, velocity: velocity, at: at})
	if len(m.history) > historyWindow {
		m.history = m.history[len(m.history)-historyWindow:]
	}

	if len(m.history) >= signatureLen {
		last := m.history[len(m.history)-signatureLen:]
		m.counts[signature(last)]++
		m.total++

		rhythm := make([]time.Duration, 0, signatureLen-1)
		for i := 1; i < signatureLen; i++ {
			rhythm = append(rhythm, last[i].at.Sub(last[i-1].at))
		}
		m.rhythm = rhythm
	}

	m.confidence = musicutil.Clamp(100*float64(m.total)/confidenceSaturation, 0, 100)
	m.harmonyScore = m.computeHarmonyScore()
}

// signature joins consecutive pitch deltas into a discrete table key.
func signature(entries []entry) string {
	deltas := make([]string, 0, len(entries)-1)
	for i := 1; i < len(entries); i++ {
		deltas = append(deltas, fmt.Sprintf("%d", entries[i].pitch-entries[i-1].pitch))
	}
	return strings.Join(deltas, ",")
}

// computeHarmonyScore samples every second entry of the last 10 history items
// and scores how many consecutive pitch-class distances are consonant.
func (m *Model) computeHarmonyScore() float64 {
	recent := m.history
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	var sampled []int
	for i := 0; i < len(recent); i += 2 {
		sampled = append(sampled, recent[i].pitch)
	}
	if len(sampled) < 3 {
		// Fewer than 2 comparisons available.
		return 0
	}

	var consonant int
	comparisons := len(sampled) - 1
	for i := 1; i < len(sampled); i++ {
		diff := musicutil.Abs(sampled[i] - sampled[i-1])
		class := diff % 12
		if consonantClasses[class] || (class == 0 && diff != 0) {
			consonant++
		}
	}
	return 100 * float64(consonant) / float64(comparisons)
}

// Confidence is the clamped pattern-accumulation score in [0,100].
func (m *Model) Confidence() float64 {
	return m.confidence
}

// HarmonyScore is the consonance score in [0,100].
func (m *Model) HarmonyScore() float64 {
	return m.harmonyScore
}

// Occurrences returns the total number of recorded pattern occurrences.
func (m *Model) Occurrences() int {
	return m.total
}

// RhythmPattern returns the most recent inter-onset gaps (up to 3).
func (m *Model) RhythmPattern() []time.Duration {
	out := make([]time.Duration, len(m.rhythm))
	copy(out, m.rhythm)
	return out
}

// CounterpointSuggestion proposes a complementary pitch for the given root:
// a third away from the root, against the direction the line has been moving.
// The caller quantizes the result to the active scale. Requires more than two
// history entries.
func (m *Model) CounterpointSuggestion(root int) (int, bool) {
	if len(m.history) <= 2 {
		return 0, false
	}
	last := m.history[len(m.history)-3:]
	mean := float64(last[1].pitch-last[0].pitch+last[2].pitch-last[1].pitch) / 2
	if mean > 0 {
		return root - 3, true
	}
	return root + 3, true
}
