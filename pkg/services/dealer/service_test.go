package dealer

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/frenchdeck/internal/types"
	"github.com/fadedpez/frenchdeck/pkg/cards"
	dealRepo "github.com/fadedpez/frenchdeck/pkg/repositories/deal"
	dealmock "github.com/fadedpez/frenchdeck/pkg/repositories/deal/mock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	repo    *dealmock.Repository
	service *Service
	ctx     context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.repo = &dealmock.Repository{}
	s.repo.Test(s.T())
	s.service = NewService(s.repo)
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestStartSession() {
	session, err := s.service.StartSession(s.ctx, SessionOptions{ShuffleCount: 7})

	s.NoError(err)
	s.NotEmpty(session.ID, "Session should get an ID")
	s.Equal(52, s.service.Remaining(session), "Default session should hold a full deck")
}

func (s *ServiceSuite) TestStartSessionCustomDeck() {
	session, err := s.service.StartSession(s.ctx, SessionOptions{
		Ranks:     []cards.Rank{cards.Ace, cards.King},
		Suits:     []cards.Suit{cards.Hearts, cards.Spades},
		NoShuffle: true,
	})

	s.NoError(err)
	s.Equal(4, s.service.Remaining(session), "Custom session should hold ranks times suits cards")
}

func (s *ServiceSuite) TestStartSessionUnknownDeckType() {
	_, err := s.service.StartSession(s.ctx, SessionOptions{DeckType: cards.DeckType("tarot")})

	s.Error(err)
	s.True(types.IsDeckError(err, types.ErrInvalidArgument), "Unknown deck type should surface INVALID_ARGUMENT")
}

func (s *ServiceSuite) TestDealTopRecordsDeal() {
	s.repo.On("SaveDeal", mock.Anything, mock.MatchedBy(func(r *dealRepo.DealRecord) bool {
		return r.From == dealRepo.FromTop && r.Sequence == 1 && r.ID != "" && r.Card != ""
	})).Return(nil).Once()

	session, err := s.service.StartSession(s.ctx, SessionOptions{NoShuffle: true})
	s.Require().NoError(err)

	card, ok, err := s.service.DealTop(s.ctx, session)
	s.NoError(err)
	s.True(ok, "Dealing from a full deck should produce a card")
	s.Equal(cards.NewCard(cards.Ace, cards.Hearts), card, "Unshuffled deck should deal the first built card")
	s.Equal(51, s.service.Remaining(session))

	s.repo.AssertExpectations(s.T())
}

func (s *ServiceSuite) TestDealBottomRecordsDeal() {
	s.repo.On("SaveDeal", mock.Anything, mock.MatchedBy(func(r *dealRepo.DealRecord) bool {
		return r.From == dealRepo.FromBottom && r.Sequence == 1
	})).Return(nil).Once()

	session, err := s.service.StartSession(s.ctx, SessionOptions{NoShuffle: true})
	s.Require().NoError(err)

	card, ok, err := s.service.DealBottom(s.ctx, session)
	s.NoError(err)
	s.True(ok)
	s.Equal(cards.NewCard(cards.Two, cards.Spades), card, "Unshuffled deck should deal the last built card from the bottom")

	s.repo.AssertExpectations(s.T())
}

func (s *ServiceSuite) TestDealSequencesAreMonotonic() {
	var sequences []int
	s.repo.On("SaveDeal", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		record := args.Get(1).(*dealRepo.DealRecord)
		sequences = append(sequences, record.Sequence)
	}).Return(nil)

	session, err := s.service.StartSession(s.ctx, SessionOptions{NoShuffle: true})
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, _, err := s.service.DealTop(s.ctx, session)
		s.NoError(err)
	}
	_, _, err = s.service.DealBottom(s.ctx, session)
	s.NoError(err)

	s.Equal([]int{1, 2, 3, 4}, sequences, "Sequence should increase by one per deal across both ends")
}

func (s *ServiceSuite) TestDealFromEmptyDeck() {
	session, err := s.service.StartSession(s.ctx, SessionOptions{
		Ranks:     []cards.Rank{},
		Suits:     []cards.Suit{cards.Hearts},
		NoShuffle: true,
	})
	s.Require().NoError(err)

	// No SaveDeal expectation: nothing should be recorded
	_, ok, err := s.service.DealTop(s.ctx, session)
	s.NoError(err, "An exhausted deck is not an error")
	s.False(ok, "An exhausted deck should produce nothing")

	_, ok, err = s.service.DealBottom(s.ctx, session)
	s.NoError(err)
	s.False(ok)

	s.repo.AssertNotCalled(s.T(), "SaveDeal", mock.Anything, mock.Anything)
}

func (s *ServiceSuite) TestDealSurvivesRepositoryFailure() {
	s.repo.On("SaveDeal", mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	session, err := s.service.StartSession(s.ctx, SessionOptions{NoShuffle: true})
	s.Require().NoError(err)

	card, ok, err := s.service.DealTop(s.ctx, session)
	s.True(ok, "The card is dealt even when recording fails")
	s.Equal(cards.NewCard(cards.Ace, cards.Hearts), card)
	s.Error(err)
	s.True(types.IsDeckError(err, types.ErrDatabaseError), "Repository failure should surface as DATABASE_ERROR")
}

func (s *ServiceSuite) TestSessionHistory() {
	expected := []*dealRepo.DealRecord{
		{ID: "r1", SessionID: "session1", Card: "Ace of Hearts", From: dealRepo.FromTop, Sequence: 1},
	}
	s.repo.On("GetSessionDeals", mock.Anything, "session1").Return(expected, nil).Once()

	records, err := s.service.SessionHistory(s.ctx, "session1")
	s.NoError(err)
	s.Equal(expected, records)

	s.repo.AssertExpectations(s.T())
}

// TestFullDealWithMemoryRepository runs the service against the real memory
// repository end to end
func (s *ServiceSuite) TestFullDealWithMemoryRepository() {
	service := NewService(dealRepo.NewMemoryRepository())

	session, err := service.StartSession(s.ctx, SessionOptions{ShuffleCount: 7})
	s.Require().NoError(err)

	seen := make(map[cards.Card]bool)
	for i := 0; i < 52; i++ {
		card, ok, err := service.DealTop(s.ctx, session)
		s.Require().NoError(err)
		s.Require().True(ok)
		seen[card] = true
	}
	s.Len(seen, 52, "All 52 deals should be distinct cards")

	_, ok, err := service.DealTop(s.ctx, session)
	s.NoError(err)
	s.False(ok, "The 53rd deal should produce nothing")
	s.Equal(0, service.Remaining(session))

	history, err := service.SessionHistory(s.ctx, session.ID)
	s.NoError(err)
	s.Len(history, 52, "Every deal should be recorded")
	for i, record := range history {
		s.Equal(i+1, record.Sequence, "History should be in deal order")
		s.Equal(dealRepo.FromTop, record.From)
	}
}
