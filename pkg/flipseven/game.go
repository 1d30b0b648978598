// Package flipseven implements the Flip 7 rules state machine: turn
// resolution with bust, Second Chance and Flip Three interactions, round
// progression with dealer rotation, and match termination at the target
// score. A Game runs strictly sequentially; reproducibility comes from the
// injected random source the deck shuffles with.
package flipseven

import (
	"errors"

	"flipseven-simulator/internal/rng"
	"flipseven-simulator/pkg/deck"
	"flipseven-simulator/pkg/strategy"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// player count limits for a match
const (
	MinPlayers = 2
	MaxPlayers = 10
)

// Game is a single Flip 7 match
type Game struct {
	id           string
	options      Options
	deck         *deck.Deck
	participants []*Participant

	currentIndex int
	dealerIndex  int
	roundNumber  int

	done   bool
	winner *Participant

	logger logrus.FieldLogger
}

// NewGame returns a new match with one participant per strategy. Seat order
// follows the strategy list. The random source must be owned by this match.
func NewGame(logger logrus.FieldLogger, strategies []strategy.Strategy, opts Options, gen rng.Generator) (*Game, error) {
	if len(strategies) < MinPlayers || len(strategies) > MaxPlayers {
		return nil, PlayerCountError{
			Min: MinPlayers,
			Max: MaxPlayers,
			Got: len(strategies),
		}
	}

	for _, s := range strategies {
		if s == nil {
			return nil, ErrNilStrategy
		}
	}

	if gen == nil {
		return nil, ErrNilRandomSource
	}

	if opts.TargetScore <= 0 {
		return nil, errors.New("target score must be greater than 0")
	}

	if opts.MaxTurnsPerRound <= 0 {
		return nil, errors.New("max turns per round must be greater than 0")
	}

	if opts.MaxNumberCards < deck.FlipSevenCount {
		return nil, errors.New("max number cards cannot be below the flip 7 count")
	}

	participants := make([]*Participant, len(strategies))
	for i, s := range strategies {
		participants[i] = newParticipant(i, s)
	}

	g := &Game{
		id:           uuid.New().String(),
		options:      opts,
		deck:         deck.New(len(strategies), gen),
		participants: participants,
		dealerIndex:  0,
		currentIndex: 1 % len(strategies),
		roundNumber:  1,
		logger:       logger,
	}

	return g, nil
}

// ID returns the match's unique identifier
func (g *Game) ID() string {
	return g.id
}

// PlayMatch runs rounds until a participant reaches the target score and
// returns the final result. The first participant in seat order at or above
// the target is the winner.
func (g *Game) PlayMatch() *MatchResult {
	for !g.done {
		g.playRound()

		for _, p := range g.participants {
			if p.TotalScore >= g.options.TargetScore {
				g.done = true
				g.winner = p
				break
			}
		}

		if g.done {
			break
		}

		g.roundNumber++
		g.dealerIndex = (g.dealerIndex + 1) % len(g.participants)
		g.currentIndex = (g.dealerIndex + 1) % len(g.participants)
	}

	g.logger.WithFields(logrus.Fields{
		"match":  g.id,
		"winner": g.winner.Strategy.Name(),
		"rounds": g.roundNumber,
		"score":  g.winner.TotalScore,
	}).Debug("match complete")

	return g.result()
}

// playRound plays one complete round: reset, deal one card each, then turns
// until nobody is active or a flip 7 ends the round
func (g *Game) playRound() {
	for _, p := range g.participants {
		p.newRound()
	}

	g.dealInitialCards()

	turns := 0
	for g.activeCount() > 0 && turns < g.options.MaxTurnsPerRound {
		p := g.participants[g.currentIndex]

		if !g.takeTurn(p) {
			break
		}

		g.nextPlayer()
		turns++
	}

	for _, p := range g.participants {
		p.TotalScore += p.RoundScore
	}
}

// dealInitialCards deals one card to each participant. Action cards dealt
// here take effect before the first turn.
func (g *Game) dealInitialCards() {
	for _, p := range g.participants {
		card := g.deck.Draw()
		p.Hand.AddCard(card)
		g.applyAction(p, card)
	}
}

// takeTurn resolves one turn for the participant. It returns false when the
// turn ended the round for everyone (a flip 7), true otherwise.
func (g *Game) takeTurn(p *Participant) bool {
	if !p.IsActive {
		return true
	}

	// a flip 7 dealt or drawn earlier resolves before anything else
	if p.Hand.HasFlipSeven() {
		g.bankFlipSeven(p)
		return false
	}

	// safety valve against policies that never stay
	if p.Hand.NumberCount() >= g.options.MaxNumberCards {
		p.bank(p.Hand.Score(false))
		return true
	}

	if !p.Strategy.ShouldHit(g.viewFor(p)) {
		p.bank(p.Hand.Score(false))
		return true
	}

	draws := 1
	if p.FlipThreePending {
		draws = 3
	}

	for i := 0; i < draws; i++ {
		card := g.deck.Draw()

		if p.Hand.WouldBust(card) {
			if p.HasSecondChance {
				// protection absorbs the bust; the busting card goes to
				// the discard pile, not the hand
				p.HasSecondChance = false
				g.deck.Discard(card)
				continue
			}

			// remaining draws in the batch are abandoned
			p.bust()
			return true
		}

		p.Hand.AddCard(card)
		g.applyAction(p, card)
	}

	if p.Hand.HasFlipSeven() {
		g.bankFlipSeven(p)
		return false
	}

	if draws == 3 {
		p.FlipThreePending = false
	}

	return true
}

// bankFlipSeven banks the bonus score. The caller ends the round for
// everyone.
func (g *Game) bankFlipSeven(p *Participant) {
	p.bank(p.Hand.Score(true))

	g.logger.WithFields(logrus.Fields{
		"match":    g.id,
		"round":    g.roundNumber,
		"strategy": p.Strategy.Name(),
		"score":    p.RoundScore,
	}).Debug("flip 7")
}

// applyAction sets the flag for an action card entering the hand. Freeze is
// recognized but has no modeled effect on turn resolution.
func (g *Game) applyAction(p *Participant, card *deck.Card) {
	if card.Kind != deck.Action {
		return
	}

	switch card.ActionKind {
	case deck.SecondChance:
		p.HasSecondChance = true
	case deck.FlipThree:
		p.FlipThreePending = true
	case deck.Freeze:
		// inert, pending a ruling on how freezing targets are chosen
	}
}

// nextPlayer rotates currentIndex to the next active participant, wrapping
// around the table
func (g *Game) nextPlayer() {
	start := g.currentIndex
	for {
		g.currentIndex = (g.currentIndex + 1) % len(g.participants)
		if g.participants[g.currentIndex].IsActive {
			break
		}

		if g.currentIndex == start {
			break
		}
	}
}

// viewFor builds the read-only projection handed to the participant's
// strategy
func (g *Game) viewFor(p *Participant) strategy.View {
	return strategy.View{
		NumberValues:    p.Hand.NumberValues(),
		NumberCount:     p.Hand.NumberCount(),
		Score:           p.Hand.Score(false),
		HasSecondChance: p.HasSecondChance,
		PlayerCount:     len(g.participants),
		ActiveCount:     g.activeCount(),
	}
}

func (g *Game) activeCount() int {
	count := 0
	for _, p := range g.participants {
		if p.IsActive {
			count++
		}
	}

	return count
}

func (g *Game) result() *MatchResult {
	results := make([]ParticipantResult, len(g.participants))
	for i, p := range g.participants {
		results[i] = ParticipantResult{
			Position:   p.Position,
			Strategy:   p.Strategy.Name(),
			TotalScore: p.TotalScore,
			Busted:     p.HasBusted,
			FlipSeven:  p.Hand.HasFlipSeven(),
		}
	}

	return &MatchResult{
		ID:             g.id,
		WinnerPosition: g.winner.Position,
		Rounds:         g.roundNumber,
		Participants:   results,
	}
}
