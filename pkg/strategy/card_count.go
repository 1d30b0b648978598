package strategy

import "fmt"

// CardCount hits until the player holds a target count of number cards.
// When secondChanceAware, the target extends by one card while the player
// holds Second Chance protection.
type CardCount struct {
	targetCount       int
	secondChanceAware bool
}

// NewCardCount returns a CardCount strategy
func NewCardCount(targetCount int, secondChanceAware bool) (*CardCount, error) {
	if targetCount < 1 || targetCount > 10 {
		return nil, ParameterError{
			Strategy:  "CardCount",
			Parameter: "targetCount",
			Reason:    fmt.Sprintf("must be in [1,10], got %d", targetCount),
		}
	}

	return &CardCount{
		targetCount:       targetCount,
		secondChanceAware: secondChanceAware,
	}, nil
}

// Name returns a name like "CardCount_5"
func (s *CardCount) Name() string {
	return fmt.Sprintf("CardCount_%d%s", s.targetCount, scSuffix(s.secondChanceAware))
}

// ShouldHit implements Strategy
func (s *CardCount) ShouldHit(view View) bool {
	target := s.targetCount
	if s.secondChanceAware && view.HasSecondChance {
		target++
	}

	return view.NumberCount < target
}
