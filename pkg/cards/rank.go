package cards

// Rank represents a card rank in a French deck
type Rank string

const (
	Ace   Rank = "Ace"
	King  Rank = "King"
	Queen Rank = "Queen"
	Jack  Rank = "Jack"
	Ten   Rank = "10"
	Nine  Rank = "9"
	Eight Rank = "8"
	Seven Rank = "7"
	Six   Rank = "6"
	Five  Rank = "5"
	Four  Rank = "4"
	Three Rank = "3"
	Two   Rank = "2"
)

// RankValues lists every Rank for iteration, ace high down to two. Deck
// construction walks this exact order, so it is part of the contract.
var RankValues = []Rank{
	Ace, King, Queen, Jack, Ten, Nine, Eight,
	Seven, Six, Five, Four, Three, Two,
}

// NumericValue returns the numerical value of the rank. With acesHigh the
// ace counts 14 above the king; otherwise it counts 1 below the two.
func (r Rank) NumericValue(acesHigh bool) int {
	if r == Ace {
		if acesHigh {
			return 14
		}
		return 1
	}

	switch r {
	case King:
		return 13
	case Queen:
		return 12
	case Jack:
		return 11
	case Ten:
		return 10
	case Nine:
		return 9
	case Eight:
		return 8
	case Seven:
		return 7
	case Six:
		return 6
	case Five:
		return 5
	case Four:
		return 4
	case Three:
		return 3
	case Two:
		return 2
	}
	return 0
}

// String returns the display name of the rank
func (r Rank) String() string {
	return string(r)
}
