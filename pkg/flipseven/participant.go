package flipseven

import (
	"flipseven-simulator/pkg/deck"
	"flipseven-simulator/pkg/strategy"
)

// Participant is an individual player in the match, bound to the strategy
// that makes its decisions
type Participant struct {
	// Position is the seat index, fixed for the whole match
	Position int

	// Strategy decides hit or stay on this participant's turns
	Strategy strategy.Strategy

	// Hand holds the cards drawn this round, in draw order
	Hand deck.Hand

	// TotalScore is the cumulative score across rounds; it only grows
	TotalScore int

	// RoundScore is the banked score for the current round
	RoundScore int

	// IsActive is true while the participant is still playing this round
	IsActive bool

	// HasBusted is true if the participant busted this round
	HasBusted bool

	// HasSecondChance is true while an unconsumed Second Chance is held
	HasSecondChance bool

	// FlipThreePending forces the next hit to draw three cards
	FlipThreePending bool
}

func newParticipant(position int, strat strategy.Strategy) *Participant {
	return &Participant{
		Position: position,
		Strategy: strat,
	}
}

// newRound resets all per-round state. TotalScore persists.
func (p *Participant) newRound() {
	p.Hand = nil
	p.RoundScore = 0
	p.IsActive = true
	p.HasBusted = false
	p.HasSecondChance = false
	p.FlipThreePending = false
}

// bank records the round score and resolves the participant for the round
func (p *Participant) bank(score int) {
	p.RoundScore = score
	p.IsActive = false
}

// bust resolves the participant with a zero score
func (p *Participant) bust() {
	p.RoundScore = 0
	p.HasBusted = true
	p.IsActive = false
}
