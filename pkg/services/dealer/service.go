package dealer

import (
	"context"
	"time"

	"github.com/fadedpez/frenchdeck/internal/logging"
	"github.com/fadedpez/frenchdeck/internal/types"
	"github.com/fadedpez/frenchdeck/pkg/cards"
	dealRepo "github.com/fadedpez/frenchdeck/pkg/repositories/deal"
	"github.com/google/uuid"
)

// SessionOptions configures a new dealing session. When Ranks or Suits are
// provided a custom deck is built from them; otherwise DeckType is used,
// defaulting to the full French deck.
type SessionOptions struct {
	DeckType     cards.DeckType
	Ranks        []cards.Rank
	Suits        []cards.Suit
	ShuffleCount int
	NoShuffle    bool
	Shuffler     cards.Shuffler
}

// Session is a single dealing session over one deck
type Session struct {
	ID string

	deck     *cards.Deck
	sequence int
}

// Service handles dealing business logic over a deal history repository
type Service struct {
	repo   dealRepo.Repository
	logger *logging.Logger
}

// NewService creates a new dealer service
func NewService(repo dealRepo.Repository) *Service {
	return &Service{
		repo:   repo,
		logger: logging.Default,
	}
}

// StartSession builds a deck per the options and opens a session over it
func (s *Service) StartSession(ctx context.Context, opts SessionOptions) (*Session, error) {
	builder := cards.NewBuilder()
	if opts.Shuffler != nil {
		builder = builder.WithShuffler(opts.Shuffler)
	}

	var stage *cards.ShuffleStage
	var err error
	if len(opts.Ranks) > 0 || len(opts.Suits) > 0 {
		stage, err = builder.CustomDeckType(opts.Ranks, opts.Suits)
	} else {
		deckType := opts.DeckType
		if deckType == "" {
			deckType = cards.FullFrench
		}
		stage, err = builder.DeckType(deckType)
	}
	if err != nil {
		return nil, err
	}

	var deck *cards.Deck
	if opts.NoShuffle {
		deck, err = stage.NoShuffle()
	} else {
		deck, err = stage.Shuffle(opts.ShuffleCount)
	}
	if err != nil {
		return nil, err
	}

	session := &Session{
		ID:   uuid.NewString(),
		deck: deck,
	}

	s.logger.Info("Started deal session %s with %d cards", session.ID, deck.Remaining())
	return session, nil
}

// DealTop deals the card at the front of the session's deck and records it.
// The bool is false once the deck is exhausted, which is not an error.
func (s *Service) DealTop(ctx context.Context, session *Session) (cards.Card, bool, error) {
	card, ok := session.deck.DealTop()
	if !ok {
		return cards.Card{}, false, nil
	}
	return card, true, s.record(ctx, session, card, dealRepo.FromTop)
}

// DealBottom deals the card at the back of the session's deck and records it
func (s *Service) DealBottom(ctx context.Context, session *Session) (cards.Card, bool, error) {
	card, ok := session.deck.DealBottom()
	if !ok {
		return cards.Card{}, false, nil
	}
	return card, true, s.record(ctx, session, card, dealRepo.FromBottom)
}

// Remaining returns the number of cards left in the session's deck
func (s *Service) Remaining(session *Session) int {
	return session.deck.Remaining()
}

// SessionHistory retrieves the recorded deals for a session in deal order
func (s *Service) SessionHistory(ctx context.Context, sessionID string) ([]*dealRepo.DealRecord, error) {
	return s.repo.GetSessionDeals(ctx, sessionID)
}

func (s *Service) record(ctx context.Context, session *Session, card cards.Card, from string) error {
	session.sequence++

	record := &dealRepo.DealRecord{
		ID:        uuid.NewString(),
		SessionID: session.ID,
		Card:      card.String(),
		From:      from,
		Sequence:  session.sequence,
		DealtAt:   time.Now(),
	}

	if err := s.repo.SaveDeal(ctx, record); err != nil {
		// The card is already dealt; the caller keeps it even when the
		// history write fails
		wrapped := types.WrapError(types.ErrDatabaseError, "failed to record deal", err)
		s.logger.LogError(wrapped)
		return wrapped
	}
	return nil
}
