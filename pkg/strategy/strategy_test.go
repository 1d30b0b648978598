package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBustProbability(t *testing.T) {
	a := assert.New(t)

	s, err := NewBustProbability(0.15, false)
	a.NoError(err)
	a.Equal("BustProb_15%", s.Name())

	// empty hand: bust probability 0
	a.True(s.ShouldHit(View{}))

	// 5+6 distinct → 11/78 ≈ 0.141 ≤ 0.15
	a.True(s.ShouldHit(View{NumberValues: []int{5, 6}}))

	// 5+7 → 12/78 ≈ 0.154 > 0.15
	a.False(s.ShouldHit(View{NumberValues: []int{5, 7}}))

	// duplicates only count once
	a.True(s.ShouldHit(View{NumberValues: []int{5, 6, 5}}))
}

func TestBustProbability_SecondChanceAware(t *testing.T) {
	a := assert.New(t)

	s, err := NewBustProbability(0.15, true)
	a.NoError(err)
	a.Equal("BustProb_15%_SC", s.Name())

	// 10+12 → 22/78 ≈ 0.282: over 0.15 but within the doubled 0.30
	view := View{NumberValues: []int{10, 12}}
	a.False(s.ShouldHit(view))

	view.HasSecondChance = true
	a.True(s.ShouldHit(view))
}

func TestNewBustProbability_Validation(t *testing.T) {
	a := assert.New(t)

	_, err := NewBustProbability(-0.1, false)
	a.EqualError(err, "BustProb: invalid maxBustProb: must be in [0,1], got -0.1")

	_, err = NewBustProbability(1.5, false)
	a.Error(err)
}

func TestCardCount(t *testing.T) {
	a := assert.New(t)

	s, err := NewCardCount(5, false)
	a.NoError(err)
	a.Equal("CardCount_5", s.Name())

	a.True(s.ShouldHit(View{NumberCount: 4}))
	a.False(s.ShouldHit(View{NumberCount: 5}))
	a.False(s.ShouldHit(View{NumberCount: 6}))

	// score never matters
	a.True(s.ShouldHit(View{NumberCount: 4, Score: 500}))

	sc, err := NewCardCount(5, true)
	a.NoError(err)
	a.Equal("CardCount_5_SC", sc.Name())
	a.True(sc.ShouldHit(View{NumberCount: 5, HasSecondChance: true}))
	a.False(sc.ShouldHit(View{NumberCount: 6, HasSecondChance: true}))

	_, err = NewCardCount(0, false)
	a.Error(err)
}

func TestPointThreshold(t *testing.T) {
	a := assert.New(t)

	s, err := NewPointThreshold(45)
	a.NoError(err)
	a.Equal("PointThreshold_45", s.Name())

	a.True(s.ShouldHit(View{Score: 44}))
	a.False(s.ShouldHit(View{Score: 45}))
	a.False(s.ShouldHit(View{Score: 46}))

	_, err = NewPointThreshold(0)
	a.Error(err)
}

func TestHybrid(t *testing.T) {
	a := assert.New(t)

	s, err := NewHybrid(3, 50, 0.20, false)
	a.NoError(err)
	a.Equal("Hybrid_C3_P50_B20%", s.Name())

	// below the card floor: always hit, even with a high score
	a.True(s.ShouldHit(View{NumberCount: 2, Score: 60, NumberValues: []int{12, 11}}))

	// at or above the point target: stay
	a.False(s.ShouldHit(View{NumberCount: 4, Score: 50, NumberValues: []int{1, 2, 3, 4}}))

	// between floor and target: the bust check decides
	// 1+2+3+4 = 10/78 ≈ 0.128 ≤ 0.20
	a.True(s.ShouldHit(View{NumberCount: 4, Score: 10, NumberValues: []int{1, 2, 3, 4}}))
	// 10+11+12 = 33/78 ≈ 0.423 > 0.20
	a.False(s.ShouldHit(View{NumberCount: 3, Score: 33, NumberValues: []int{10, 11, 12}}))
}

func TestHybrid_SecondChanceAware(t *testing.T) {
	a := assert.New(t)

	s, err := NewHybrid(3, 50, 0.20, true)
	a.NoError(err)

	// protected and within 10 of the target: keep pushing if the risk is fine
	// 1+2+3+4+5 = 15/78 ≈ 0.192 ≤ 0.40 (doubled)
	view := View{NumberCount: 5, Score: 55, NumberValues: []int{1, 2, 3, 4, 5}, HasSecondChance: true}
	a.True(s.ShouldHit(view))

	// 10 or more past the target: stay even when protected
	view.Score = 60
	a.False(s.ShouldHit(view))

	// unprotected: target is a hard stop
	view.Score = 55
	view.HasSecondChance = false
	a.False(s.ShouldHit(view))
}

func TestUltimateAdaptive(t *testing.T) {
	a := assert.New(t)

	s := NewUltimateAdaptive()
	a.Equal("Ultimate_Adaptive", s.Name())

	// below three number cards: always hit
	a.True(s.ShouldHit(View{NumberCount: 2, Score: 99, NumberValues: []int{12, 11}, PlayerCount: 4, ActiveCount: 4}))

	// six distinct values while protected: go for the flip 7
	view := View{
		NumberCount:     6,
		NumberValues:    []int{8, 9, 10, 11, 12, 7},
		Score:           57,
		HasSecondChance: true,
		PlayerCount:     4,
		ActiveCount:     4,
	}
	a.True(s.ShouldHit(view))

	// 4 players: tolerance 0.24, target 48
	// 1+2+3 = 6/78 ≈ 0.077 ≤ 0.24 and score under target → hit
	a.True(s.ShouldHit(View{NumberCount: 3, Score: 6, NumberValues: []int{1, 2, 3}, PlayerCount: 4, ActiveCount: 4}))

	// at the target without protection → stay
	a.False(s.ShouldHit(View{NumberCount: 4, Score: 48, NumberValues: []int{12, 11, 10, 9}, PlayerCount: 4, ActiveCount: 4}))
}

func TestUltimateAdaptive_HerdAdjustment(t *testing.T) {
	a := assert.New(t)

	s := NewUltimateAdaptive()

	// 4 players, everyone active: tolerance 0.24
	// 6+7+5 = 18/78 ≈ 0.231 ≤ 0.24 → hit
	view := View{NumberCount: 3, Score: 18, NumberValues: []int{6, 7, 5}, PlayerCount: 4, ActiveCount: 4}
	a.True(s.ShouldHit(view))

	// half the table resolved: tolerance drops to 0.192 → stay
	view.ActiveCount = 2
	a.False(s.ShouldHit(view))
}

func TestFromSpec(t *testing.T) {
	a := assert.New(t)

	s, err := FromSpec(Spec{Name: "bust-probability", MaxBustProb: 0.25})
	a.NoError(err)
	a.Equal("BustProb_25%", s.Name())

	s, err = FromSpec(Spec{Name: "card-count", TargetCount: 5, SecondChanceAware: true})
	a.NoError(err)
	a.Equal("CardCount_5_SC", s.Name())

	s, err = FromSpec(Spec{Name: "point-threshold", TargetPoints: 45})
	a.NoError(err)
	a.Equal("PointThreshold_45", s.Name())

	s, err = FromSpec(Spec{Name: "hybrid", MinCards: 3, TargetPoints: 50, MaxBustProb: 0.2})
	a.NoError(err)
	a.Equal("Hybrid_C3_P50_B20%", s.Name())

	s, err = FromSpec(Spec{Name: "ultimate-adaptive"})
	a.NoError(err)
	a.Equal("Ultimate_Adaptive", s.Name())

	_, err = FromSpec(Spec{Name: "bogus"})
	a.EqualError(err, "no strategy with name: bogus")
}

func TestFromSpecs(t *testing.T) {
	a := assert.New(t)

	strategies, err := FromSpecs([]Spec{
		{Name: "card-count", TargetCount: 5},
		{Name: "point-threshold", TargetPoints: 45},
	})
	a.NoError(err)
	a.Len(strategies, 2)

	_, err = FromSpecs([]Spec{
		{Name: "card-count", TargetCount: 5},
		{Name: "card-count", TargetCount: 0},
	})
	a.Error(err)
}
