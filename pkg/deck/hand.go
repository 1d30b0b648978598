package deck

// FlipSevenBonus is the flat bonus for holding seven distinct number values
const FlipSevenBonus = 15

// FlipSevenCount is the number of distinct number values that ends a round
const FlipSevenCount = 7

// Hand represents the cards a player has drawn this round, in draw order
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// NumberValues returns the values of all number cards in draw order.
// Duplicates are possible only transiently, before a bust check resolves.
func (h Hand) NumberValues() []int {
	values := make([]int, 0, len(h))
	for _, c := range h {
		if c.IsNumber() {
			values = append(values, c.Value)
		}
	}

	return values
}

// NumberCount returns the count of number cards in the hand
func (h Hand) NumberCount() int {
	count := 0
	for _, c := range h {
		if c.IsNumber() {
			count++
		}
	}

	return count
}

// DistinctNumberCount returns the count of distinct number values in the hand
func (h Hand) DistinctNumberCount() int {
	seen := make(map[int]bool)
	for _, c := range h {
		if c.IsNumber() {
			seen[c.Value] = true
		}
	}

	return len(seen)
}

// WouldBust returns true if drawing the card would bust the hand, i.e. the
// card is a number card whose value is already held. Comparison is by value,
// not card identity.
func (h Hand) WouldBust(card *Card) bool {
	if !card.IsNumber() {
		return false
	}

	for _, c := range h {
		if c.IsNumber() && c.Value == card.Value {
			return true
		}
	}

	return false
}

// HasFlipSeven returns true if the hand holds exactly seven distinct number
// values
func (h Hand) HasFlipSeven() bool {
	return h.DistinctNumberCount() == FlipSevenCount
}

// Score computes the hand's round score: sum the number cards, apply each
// multiply modifier in hand order, add each add modifier in hand order, then
// add the Flip 7 bonus if earned. The sum → multiply → add → bonus order is
// part of the rules and must not be rearranged.
func (h Hand) Score(flipSeven bool) int {
	total := 0
	for _, c := range h {
		if c.IsNumber() {
			total += c.Value
		}
	}

	for _, c := range h {
		if c.Kind == Modifier && c.ModifierKind == Multiply {
			total *= c.Amount
		}
	}

	for _, c := range h {
		if c.Kind == Modifier && c.ModifierKind == Add {
			total += c.Amount
		}
	}

	if flipSeven {
		total += FlipSevenBonus
	}

	return total
}

func (h Hand) String() string {
	return CardsToString(h)
}
