package strategy

import "fmt"

// PointThreshold hits until the current unbonused round score reaches a
// target point total
type PointThreshold struct {
	targetPoints int
}

// NewPointThreshold returns a PointThreshold strategy
func NewPointThreshold(targetPoints int) (*PointThreshold, error) {
	if targetPoints < 1 {
		return nil, ParameterError{
			Strategy:  "PointThreshold",
			Parameter: "targetPoints",
			Reason:    fmt.Sprintf("must be positive, got %d", targetPoints),
		}
	}

	return &PointThreshold{targetPoints: targetPoints}, nil
}

// Name returns a name like "PointThreshold_45"
func (s *PointThreshold) Name() string {
	return fmt.Sprintf("PointThreshold_%d", s.targetPoints)
}

// ShouldHit implements Strategy
func (s *PointThreshold) ShouldHit(view View) bool {
	return view.Score < s.targetPoints
}
