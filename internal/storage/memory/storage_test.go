package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Registered player tests

func (s *StorageSuite) TestSaveAndGetRegisteredPlayer() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveRegisteredPlayer(s.ctx, rp)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRegisteredPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(rp.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetRegisteredPlayerByUsername() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hash123",
	}
	_ = s.storage.SaveRegisteredPlayer(s.ctx, rp)

	retrieved, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal("player-1", string(retrieved.PlayerID))
}

func (s *StorageSuite) TestGetRegisteredPlayerByUsernameNotFound() {
	_, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Match tests

func newMatch(id model.MatchID, playerID model.PlayerID, created time.Time) *model.Match {
	return &model.Match{
		ID:          id,
		PlayerID:    playerID,
		Status:      model.MatchStatusInProgress,
		Strategy:    model.StrategyHeuristic,
		TargetScore: model.DefaultTargetScore,
		Round:       1,
		Turn:        model.NewTurnState(),
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := newMatch("match-1", "player-1", time.Now())
	match.HumanScore = 42

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(42, retrieved.HumanScore)
	s.Equal(model.MatchStatusInProgress, retrieved.Status)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestGetMatchReturnsCopy() {
	match := newMatch("match-1", "player-1", time.Now())
	_ = s.storage.SaveMatch(s.ctx, match)

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	retrieved.HumanScore = 99
	retrieved.Rounds = append(retrieved.Rounds, model.RoundSummary{Round: 1})

	again, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(0, again.HumanScore)
	s.Empty(again.Rounds)
}

func (s *StorageSuite) TestGetMatchesForPlayer() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveMatch(s.ctx, newMatch("match-2", "player-1", base.Add(time.Minute)))
	_ = s.storage.SaveMatch(s.ctx, newMatch("match-1", "player-1", base))
	_ = s.storage.SaveMatch(s.ctx, newMatch("match-3", "player-2", base)) // Different player

	matches, err := s.storage.GetMatchesForPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(model.MatchID("match-1"), matches[0].ID)
	s.Equal(model.MatchID("match-2"), matches[1].ID)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, newMatch("match-1", "player-1", time.Now()))

	err := s.storage.DeleteMatch(s.ctx, "match-1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Record tests

func (s *StorageSuite) TestSaveAndGetRecord() {
	matchID := model.MatchID("match-1")
	record := model.NewRecord("player-1", time.Now())
	record.HumanWins = 3
	record.OpponentWins = 1
	record.CurrentMatch = &matchID

	err := s.storage.SaveRecord(s.ctx, record)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetRecord(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(3, retrieved.HumanWins)
	s.Equal(1, retrieved.OpponentWins)
	s.Require().NotNil(retrieved.CurrentMatch)
	s.Equal(matchID, *retrieved.CurrentMatch)
}

func (s *StorageSuite) TestGetRecordNotFound() {
	_, err := s.storage.GetRecord(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrRecordNotFound)
}

// Session tests

func (s *StorageSuite) TestSaveGetDeleteSession() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	session := &model.Session{Token: "tok", PlayerID: "player-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	retrieved, err := s.storage.GetSession(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal(*session, *retrieved)

	s.Require().NoError(s.storage.DeleteSession(s.ctx, "tok"))
	_, err = s.storage.GetSession(s.ctx, "tok")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteExpiredSessions() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveSession(s.ctx, &model.Session{Token: "old", ExpiresAt: now.Add(-time.Minute)})
	_ = s.storage.SaveSession(s.ctx, &model.Session{Token: "live", ExpiresAt: now.Add(time.Minute)})

	removed, err := s.storage.DeleteExpiredSessions(s.ctx, now)
	s.Require().NoError(err)
	s.Equal(1, removed)

	_, err = s.storage.GetSession(s.ctx, "old")
	s.ErrorIs(err, model.ErrSessionNotFound)
	_, err = s.storage.GetSession(s.ctx, "live")
	s.NoError(err)
}
