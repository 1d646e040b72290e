package cards

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fadedpez/frenchdeck/internal/types"
)

// DeckType selects a predefined deck layout
type DeckType string

const (
	// FullFrench is the standard 52-card deck, one card per rank and suit
	FullFrench DeckType = "full_french"
)

// Shuffler randomizes the order of n elements through swap. *math/rand.Rand
// satisfies it; tests substitute a deterministic implementation.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Builder is the entry point for deck construction. Picking a deck type (or
// custom rank and suit lists) advances it to a ShuffleStage; shuffling the
// stage produces a dealable Deck. Each advancing call consumes its receiver,
// and reuse fails with a PROTOCOL_VIOLATION error.
type Builder struct {
	shuffler Shuffler
	consumed bool
}

// NewBuilder begins construction of a custom deck
func NewBuilder() *Builder {
	return &Builder{}
}

// WithShuffler overrides the randomness source used by the shuffle stage
func (b *Builder) WithShuffler(s Shuffler) *Builder {
	b.shuffler = s
	return b
}

// DeckType builds the card sequence for a predefined deck type
func (b *Builder) DeckType(deckType DeckType) (*ShuffleStage, error) {
	switch deckType {
	case FullFrench:
		return b.build(RankValues, SuitValues)
	default:
		return nil, types.NewDeckError(types.ErrInvalidArgument,
			fmt.Sprintf("unknown deck type %q", deckType))
	}
}

// CustomDeckType builds the card sequence from the given rank and suit lists.
// Every rank is paired with every suit, preserving the order and multiplicity
// of both lists; callers wanting doubled cards repeat entries.
func (b *Builder) CustomDeckType(ranks []Rank, suits []Suit) (*ShuffleStage, error) {
	return b.build(ranks, suits)
}

func (b *Builder) build(ranks []Rank, suits []Suit) (*ShuffleStage, error) {
	if b.consumed {
		return nil, types.NewDeckError(types.ErrProtocolViolation,
			"building stage already completed, expected a call on the shuffle stage")
	}
	b.consumed = true

	cards := make([]Card, 0, len(ranks)*len(suits))
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}

	shuffler := b.shuffler
	if shuffler == nil {
		shuffler = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &ShuffleStage{cards: cards, shuffler: shuffler}, nil
}

// ShuffleStage holds a built card sequence awaiting its shuffle
type ShuffleStage struct {
	cards    []Card
	shuffler Shuffler
	consumed bool
}

// Shuffle randomizes the card order and applies a single cut, producing the
// finished Deck. A count from 1 to 10 runs count+1 permutation passes,
// inclusive of the zero bound; any other count runs exactly one pass.
func (s *ShuffleStage) Shuffle(shuffles int) (*Deck, error) {
	if s.consumed {
		return nil, types.NewDeckError(types.ErrProtocolViolation,
			"shuffle stage already completed, expected a call on the finished deck")
	}
	s.consumed = true

	if shuffles >= 1 && shuffles <= 10 {
		for i := 0; i <= shuffles; i++ {
			s.permute()
		}
	} else {
		s.permute()
	}

	// Cut once: split at the midpoint and swap the halves
	halfway := len(s.cards) / 2
	cut := make([]Card, 0, len(s.cards))
	cut = append(cut, s.cards[halfway:]...)
	cut = append(cut, s.cards[:halfway]...)

	return &Deck{cards: cut}, nil
}

// NoShuffle produces the finished Deck in its built order, skipping both the
// permutation passes and the cut
func (s *ShuffleStage) NoShuffle() (*Deck, error) {
	if s.consumed {
		return nil, types.NewDeckError(types.ErrProtocolViolation,
			"shuffle stage already completed, expected a call on the finished deck")
	}
	s.consumed = true

	return &Deck{cards: s.cards}, nil
}

func (s *ShuffleStage) permute() {
	s.shuffler.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

// Deck is a finished, dealable sequence of cards
type Deck struct {
	cards []Card
}

// NewDeck creates a standard 52-card deck shuffled 7 times
func NewDeck() *Deck {
	// Errors are unreachable on freshly created stages
	stage, _ := NewBuilder().DeckType(FullFrench)
	deck, _ := stage.Shuffle(7)
	return deck
}

// DealTop removes and returns the card at the front of the deck. The second
// return is false once the deck is empty; an exhausted deck is not an error.
func (d *Deck) DealTop() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// DealBottom removes and returns the card at the back of the deck
func (d *Deck) DealBottom() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, true
}

// Remaining returns the number of cards left in the deck
func (d *Deck) Remaining() int {
	return len(d.cards)
}
