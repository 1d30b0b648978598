package strategy

import "math"

// UltimateAdaptive derives its thresholds from the table instead of fixed
// parameters: bust tolerance and point target scale with the player count,
// both loosen while the player holds Second Chance protection, and the
// tolerance tightens once half the table has dropped out of the round.
type UltimateAdaptive struct{}

// NewUltimateAdaptive returns an UltimateAdaptive strategy
func NewUltimateAdaptive() *UltimateAdaptive {
	return &UltimateAdaptive{}
}

// Name returns "Ultimate_Adaptive"
func (s *UltimateAdaptive) Name() string {
	return "Ultimate_Adaptive"
}

// ShouldHit implements Strategy
func (s *UltimateAdaptive) ShouldHit(view View) bool {
	tolerance := 0.20 + float64(view.PlayerCount-2)*0.02
	pointTarget := 40 + 2*view.PlayerCount

	if view.HasSecondChance {
		tolerance = math.Min(1, tolerance*2)
		pointTarget += 10
	}

	if view.NumberCount < 3 {
		return true
	}

	// one more distinct value completes the flip 7; with protection the
	// downside is covered, so always go for it
	if view.HasSecondChance && distinctCount(view.NumberValues) == 6 {
		return true
	}

	bustProb := bustProbability(view.NumberValues)

	if view.Score >= pointTarget {
		if view.HasSecondChance && view.Score < pointTarget+15 {
			return bustProb <= tolerance
		}

		return false
	}

	// most of the table already resolved: tighten up
	if view.ActiveCount*2 <= view.PlayerCount {
		tolerance *= 0.8
	}

	return bustProb <= tolerance
}
