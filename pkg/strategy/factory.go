package strategy

import "fmt"

// Spec identifies a strategy by name with its numeric parameters. Specs are
// how experiment configurations describe a lineup without touching code.
type Spec struct {
	Name              string  `yaml:"name"`
	MaxBustProb       float64 `yaml:"maxBustProb"`
	TargetCount       int     `yaml:"targetCount"`
	TargetPoints      int     `yaml:"targetPoints"`
	MinCards          int     `yaml:"minCards"`
	SecondChanceAware bool    `yaml:"secondChanceAware"`
}

// FromSpec constructs a strategy from a spec
func FromSpec(spec Spec) (Strategy, error) {
	switch spec.Name {
	case "bust-probability":
		return NewBustProbability(spec.MaxBustProb, spec.SecondChanceAware)
	case "card-count":
		return NewCardCount(spec.TargetCount, spec.SecondChanceAware)
	case "point-threshold":
		return NewPointThreshold(spec.TargetPoints)
	case "hybrid":
		return NewHybrid(spec.MinCards, spec.TargetPoints, spec.MaxBustProb, spec.SecondChanceAware)
	case "ultimate-adaptive":
		return NewUltimateAdaptive(), nil
	}

	return nil, fmt.Errorf("no strategy with name: %s", spec.Name)
}

// FromSpecs constructs a full lineup, failing fast on the first bad spec
func FromSpecs(specs []Spec) ([]Strategy, error) {
	strategies := make([]Strategy, len(specs))
	for i, spec := range specs {
		s, err := FromSpec(spec)
		if err != nil {
			return nil, err
		}

		strategies[i] = s
	}

	return strategies, nil
}
