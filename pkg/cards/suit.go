package cards

// Suit represents a card suit in a French deck
type Suit string

const (
	Hearts   Suit = "Hearts"
	Spades   Suit = "Spades"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
)

// SuitValues lists every Suit for iteration. Deck construction walks this
// exact order, so it is part of the contract.
var SuitValues = []Suit{Hearts, Clubs, Diamonds, Spades}

// String returns the English name of the suit
func (s Suit) String() string {
	return string(s)
}
