package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a Flip 7 card
type Kind string

// card kinds
const (
	Number   Kind = "number"
	Action   Kind = "action"
	Modifier Kind = "modifier"
)

// ActionKind represents the effect of an action card
type ActionKind string

// action kinds
const (
	Freeze       ActionKind = "freeze"
	FlipThree    ActionKind = "flipThree"
	SecondChance ActionKind = "secondChance"
)

// ModifierKind represents how a modifier card changes a score
type ModifierKind string

// modifier kinds
const (
	Add      ModifierKind = "add"
	Multiply ModifierKind = "multiply"
)

// MaxNumberValue is the highest number card value
const MaxNumberValue = 12

// Card is an individual Flip 7 card.
// Exactly one payload group is meaningful, determined by Kind: Value for
// Number cards, ActionKind for Action cards, and ModifierKind + Amount for
// Modifier cards. Cards are created at deck-build time and never mutated.
type Card struct {
	Kind         Kind         `json:"kind"`
	Value        int          `json:"value,omitempty"`
	ActionKind   ActionKind   `json:"actionKind,omitempty"`
	ModifierKind ModifierKind `json:"modifierKind,omitempty"`
	Amount       int          `json:"amount,omitempty"`
}

// NewNumber returns a number card with the given value
func NewNumber(value int) *Card {
	if value < 0 || value > MaxNumberValue {
		panic(fmt.Sprintf("number value out of range: %d", value))
	}

	return &Card{
		Kind:  Number,
		Value: value,
	}
}

// NewAction returns an action card of the given kind
func NewAction(kind ActionKind) *Card {
	switch kind {
	case Freeze, FlipThree, SecondChance:
	default:
		panic(fmt.Sprintf("unknown action kind: %s", kind))
	}

	return &Card{
		Kind:       Action,
		ActionKind: kind,
	}
}

// NewModifier returns a modifier card
func NewModifier(kind ModifierKind, amount int) *Card {
	switch kind {
	case Add, Multiply:
	default:
		panic(fmt.Sprintf("unknown modifier kind: %s", kind))
	}

	return &Card{
		Kind:         Modifier,
		ModifierKind: kind,
		Amount:       amount,
	}
}

// IsNumber returns true if the card is a number card
func (c *Card) IsNumber() bool {
	return c.Kind == Number
}

// IsAction returns true if the card is an action card of the given kind
func (c *Card) IsAction(kind ActionKind) bool {
	return c.Kind == Action && c.ActionKind == kind
}

func (c *Card) String() string {
	switch c.Kind {
	case Number:
		return strconv.Itoa(c.Value)
	case Modifier:
		if c.ModifierKind == Multiply {
			return fmt.Sprintf("x%d", c.Amount)
		}

		return fmt.Sprintf("+%d", c.Amount)
	case Action:
		switch c.ActionKind {
		case Freeze:
			return "fz"
		case FlipThree:
			return "f3"
		case SecondChance:
			return "sc"
		}
	}

	panic(fmt.Sprintf("unknown card kind: %s", c.Kind))
}

// Equal returns true if the cards have the same kind and payload
func (c *Card) Equal(card *Card) bool {
	return *c == *card
}

// CardFromString returns a Card from the string.
// Number cards are "0" through "12", modifiers are "+<n>" or "x<n>", and
// actions are "fz", "f3" and "sc".
func CardFromString(s string) *Card {
	switch s {
	case "":
		return nil
	case "fz":
		return NewAction(Freeze)
	case "f3":
		return NewAction(FlipThree)
	case "sc":
		return NewAction(SecondChance)
	}

	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "x") {
		amount, err := strconv.Atoi(s[1:])
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}

		if s[0] == 'x' {
			return NewModifier(Multiply, amount)
		}

		return NewModifier(Add, amount)
	}

	value, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return NewNumber(value)
}

// CardsFromString will return a slice of cards from a string in the format of 3,+4,sc,...
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of 3,+4,sc,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
