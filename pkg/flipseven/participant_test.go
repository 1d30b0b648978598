package flipseven

import (
	"testing"

	"flipseven-simulator/pkg/deck"
	"flipseven-simulator/pkg/strategy"

	"github.com/stretchr/testify/assert"
)

func TestParticipant_NewRound(t *testing.T) {
	a := assert.New(t)

	s := strategy.NewUltimateAdaptive()
	p := newParticipant(3, s)
	p.Hand = deck.CardsFromString("1,2,3")
	p.TotalScore = 50
	p.RoundScore = 6
	p.HasBusted = true
	p.HasSecondChance = true
	p.FlipThreePending = true

	p.newRound()

	a.Equal(3, p.Position)
	a.Empty(p.Hand)
	a.Equal(0, p.RoundScore)
	a.True(p.IsActive)
	a.False(p.HasBusted)
	a.False(p.HasSecondChance)
	a.False(p.FlipThreePending)

	// cumulative score persists across rounds
	a.Equal(50, p.TotalScore)
}

func TestParticipant_Bank(t *testing.T) {
	a := assert.New(t)

	p := newParticipant(0, strategy.NewUltimateAdaptive())
	p.newRound()

	p.bank(42)
	a.Equal(42, p.RoundScore)
	a.False(p.IsActive)
	a.False(p.HasBusted)
}

func TestParticipant_Bust(t *testing.T) {
	a := assert.New(t)

	p := newParticipant(0, strategy.NewUltimateAdaptive())
	p.newRound()
	p.RoundScore = 10

	p.bust()
	a.Equal(0, p.RoundScore)
	a.False(p.IsActive)
	a.True(p.HasBusted)
}
