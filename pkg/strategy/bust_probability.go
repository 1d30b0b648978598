package strategy

import (
	"fmt"
	"math"
)

// BustProbability hits while the estimated bust probability stays at or below
// a threshold. When secondChanceAware, the threshold doubles (capped at 1)
// while the player holds Second Chance protection.
type BustProbability struct {
	maxBustProb       float64
	secondChanceAware bool
}

// NewBustProbability returns a BustProbability strategy
func NewBustProbability(maxBustProb float64, secondChanceAware bool) (*BustProbability, error) {
	if maxBustProb < 0 || maxBustProb > 1 {
		return nil, ParameterError{
			Strategy:  "BustProb",
			Parameter: "maxBustProb",
			Reason:    fmt.Sprintf("must be in [0,1], got %v", maxBustProb),
		}
	}

	return &BustProbability{
		maxBustProb:       maxBustProb,
		secondChanceAware: secondChanceAware,
	}, nil
}

// Name returns a name like "BustProb_15%" or "BustProb_15%_SC"
func (s *BustProbability) Name() string {
	return fmt.Sprintf("BustProb_%d%%%s", int(math.Round(s.maxBustProb*100)), scSuffix(s.secondChanceAware))
}

// ShouldHit implements Strategy
func (s *BustProbability) ShouldHit(view View) bool {
	threshold := s.maxBustProb
	if s.secondChanceAware && view.HasSecondChance {
		threshold = math.Min(1, threshold*2)
	}

	return bustProbability(view.NumberValues) <= threshold
}

func scSuffix(aware bool) string {
	if aware {
		return "_SC"
	}

	return ""
}
