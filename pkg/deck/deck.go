package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"

	"flipseven-simulator/internal/rng"
)

// addAmounts are the add-modifier denominations, three copies of each per deck copy
var addAmounts = []int{2, 4, 6, 8, 10}

// actionKinds are the action cards, three copies of each per deck copy
var actionKinds = []ActionKind{Freeze, FlipThree, SecondChance}

// Deck is the Flip 7 draw pile plus its discard pile.
// The deck owns its random source; matches inject an independent generator so
// shuffles are reproducible and never touch process-global state.
type Deck struct {
	Cards    []*Card `json:"cards"`
	Discards []*Card `json:"discards"`

	rng rng.Generator
}

// New returns a shuffled deck scaled to the player count.
// The deck contains max(2, ceil((playerCount+2)/3)) copies of the base deck.
func New(playerCount int, gen rng.Generator) *Deck {
	copies := (playerCount + 4) / 3
	if copies < 2 {
		copies = 2
	}

	d := &Deck{rng: gen}
	d.buildDeck(copies)
	d.shuffle(d.Cards)

	return d
}

// buildDeck fills the draw pile with the given number of base-deck copies.
// Each copy holds one 0 and v copies of each value v in 1..12, three of each
// add modifier, a single x2 multiplier, and three of each action card.
func (d *Deck) buildDeck(copies int) {
	cards := make([]*Card, 0, copies*104)
	for i := 0; i < copies; i++ {
		cards = append(cards, NewNumber(0))
		for value := 1; value <= MaxNumberValue; value++ {
			for n := 0; n < value; n++ {
				cards = append(cards, NewNumber(value))
			}
		}

		for _, amount := range addAmounts {
			for n := 0; n < 3; n++ {
				cards = append(cards, NewModifier(Add, amount))
			}
		}
		cards = append(cards, NewModifier(Multiply, 2))

		for _, kind := range actionKinds {
			for n := 0; n < 3; n++ {
				cards = append(cards, NewAction(kind))
			}
		}
	}

	d.Cards = cards
}

func (d *Deck) shuffle(cards []*Card) {
	for j := len(cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Draw will draw the next card. Draw never fails: an empty draw pile first
// reshuffles the discard pile, and if both piles are exhausted a smaller
// number-only deck is synthesized so conservative strategies can't strand a
// match. Synthesized cards are new cards, not recycled ones.
func (d *Deck) Draw() *Card {
	if len(d.Cards) == 0 && len(d.Discards) > 0 {
		d.Cards = d.Discards
		d.Discards = nil
		d.shuffle(d.Cards)
	}

	if len(d.Cards) == 0 {
		d.Cards = d.emergencyDeck()
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card
}

// emergencyDeck builds a reduced number-only deck: max(1, v/2) copies of each
// value 0..12. Never empty (the 0 and 1 values contribute one card each).
func (d *Deck) emergencyDeck() []*Card {
	cards := make([]*Card, 0, 42)
	for value := 0; value <= MaxNumberValue; value++ {
		count := value / 2
		if count < 1 {
			count = 1
		}

		for n := 0; n < count; n++ {
			cards = append(cards, NewNumber(value))
		}
	}

	d.shuffle(cards)
	return cards
}

// Discard adds a card to the discard pile
func (d *Deck) Discard(card *Card) {
	d.Discards = append(d.Discards, card)
}

// CardsLeft returns the number of cards left in the draw pile
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// DiscardsLeft returns the number of cards in the discard pile
func (d *Deck) DiscardsLeft() int {
	return len(d.Discards)
}

// HashCode returns a SHA1 hash code of the draw pile.
// Useful for asserting two decks shuffled identically.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}
