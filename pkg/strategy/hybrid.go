package strategy

import (
	"fmt"
	"math"
)

// Hybrid combines a minimum card floor, a point target and a bust-probability
// ceiling. Below minCards it always hits. At or above targetPoints it stays,
// unless protected and within ten points of the target, in which case the
// bust-probability check still applies. Otherwise it hits while the bust
// probability stays within maxBustProb (doubled when protected and aware).
type Hybrid struct {
	minCards          int
	targetPoints      int
	maxBustProb       float64
	secondChanceAware bool
}

// NewHybrid returns a Hybrid strategy
func NewHybrid(minCards, targetPoints int, maxBustProb float64, secondChanceAware bool) (*Hybrid, error) {
	if minCards < 0 || minCards > 10 {
		return nil, ParameterError{
			Strategy:  "Hybrid",
			Parameter: "minCards",
			Reason:    fmt.Sprintf("must be in [0,10], got %d", minCards),
		}
	}

	if targetPoints < 1 {
		return nil, ParameterError{
			Strategy:  "Hybrid",
			Parameter: "targetPoints",
			Reason:    fmt.Sprintf("must be positive, got %d", targetPoints),
		}
	}

	if maxBustProb < 0 || maxBustProb > 1 {
		return nil, ParameterError{
			Strategy:  "Hybrid",
			Parameter: "maxBustProb",
			Reason:    fmt.Sprintf("must be in [0,1], got %v", maxBustProb),
		}
	}

	return &Hybrid{
		minCards:          minCards,
		targetPoints:      targetPoints,
		maxBustProb:       maxBustProb,
		secondChanceAware: secondChanceAware,
	}, nil
}

// Name returns a name like "Hybrid_C3_P50_B20%"
func (s *Hybrid) Name() string {
	return fmt.Sprintf("Hybrid_C%d_P%d_B%d%%%s",
		s.minCards, s.targetPoints, int(math.Round(s.maxBustProb*100)), scSuffix(s.secondChanceAware))
}

// ShouldHit implements Strategy
func (s *Hybrid) ShouldHit(view View) bool {
	if view.NumberCount < s.minCards {
		return true
	}

	if view.Score >= s.targetPoints {
		// protected and close to the target: push on to the risk check
		pushing := s.secondChanceAware && view.HasSecondChance && view.Score < s.targetPoints+10
		if !pushing {
			return false
		}
	}

	threshold := s.maxBustProb
	if s.secondChanceAware && view.HasSecondChance {
		threshold = math.Min(1, threshold*2)
	}

	return bustProbability(view.NumberValues) <= threshold
}
