package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/dicegame-go/internal/dependencies/clock"
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/dice"
	"github.com/mcoot/dicegame-go/internal/services/opponent"
	"github.com/mcoot/dicegame-go/internal/services/round"
	"github.com/mcoot/dicegame-go/internal/storage"
)

const (
	matchIDLength   = 12
	matchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Controller manages the match state machine and round flow
type Controller struct {
	storage   storage.Storage
	roller    *dice.Roller
	opponents *opponent.Service
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger

	// Only a match's owner may change it, and every change also touches the
	// owner's record, so mutations are serialised per player.
	players keyedLocks
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	roller *dice.Roller,
	opponents *opponent.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		roller:    roller,
		opponents: opponents,
		clock:     clock,
		random:    random,
		logger:    logger.With(slog.String("component", "match-controller")),
	}
}

// StartMatch begins a new match for the player.
// targetInput is parsed leniently; an empty strategy selects the default.
func (c *Controller) StartMatch(ctx context.Context, playerID model.PlayerID, targetInput string, strategy string) (*model.Match, error) {
	unlock := c.players.lock(string(playerID))
	defer unlock()

	if strategy == "" {
		strategy = c.opponents.DefaultStrategy()
	}
	if !c.opponents.Has(strategy) {
		return nil, model.ErrUnknownStrategy
	}

	record, err := c.getOrCreateRecord(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if record.CurrentMatch != nil {
		current, err := c.storage.GetMatch(ctx, *record.CurrentMatch)
		switch {
		case err == nil && !current.IsFinished():
			return nil, model.ErrMatchInProgress
		case err != nil && !errors.Is(err, model.ErrMatchNotFound):
			return nil, err
		}
	}

	now := c.clock.Now()
	match := &model.Match{
		ID:          model.MatchID(c.random.String(matchIDLength, matchIDAlphabet)),
		PlayerID:    playerID,
		Status:      model.MatchStatusInProgress,
		Strategy:    strategy,
		TargetScore: model.ParseTargetScore(targetInput),
		Round:       1,
		Turn:        model.NewTurnState(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	record.CurrentMatch = &match.ID
	record.UpdatedAt = now
	if err := c.storage.SaveRecord(ctx, record); err != nil {
		return nil, err
	}

	c.logger.Info("match started",
		slog.String("match_id", string(match.ID)),
		slog.String("player_id", string(playerID)),
		slog.Int("target_score", match.TargetScore),
		slog.String("strategy", strategy),
	)

	return match, nil
}

// GetMatch retrieves a match owned by the player
func (c *Controller) GetMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.PlayerID != playerID {
		return nil, model.ErrNotMatchOwner
	}
	return match, nil
}

// GetCurrentMatch returns the player's in-progress match
func (c *Controller) GetCurrentMatch(ctx context.Context, playerID model.PlayerID) (*model.Match, error) {
	record, err := c.storage.GetRecord(ctx, playerID)
	if err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return nil, model.ErrNoMatchInProgress
		}
		return nil, err
	}
	if record.CurrentMatch == nil {
		return nil, model.ErrNoMatchInProgress
	}

	match, err := c.storage.GetMatch(ctx, *record.CurrentMatch)
	if err != nil {
		if errors.Is(err, model.ErrMatchNotFound) {
			return nil, model.ErrNoMatchInProgress
		}
		return nil, err
	}
	if match.IsFinished() {
		return nil, model.ErrNoMatchInProgress
	}
	return match, nil
}

// GetRecord returns the player's win tallies and match history.
// A player who has never played gets an empty record.
func (c *Controller) GetRecord(ctx context.Context, playerID model.PlayerID) (*model.Record, error) {
	record, err := c.storage.GetRecord(ctx, playerID)
	if err != nil {
		if errors.Is(err, model.ErrRecordNotFound) {
			return model.NewRecord(playerID, c.clock.Now()), nil
		}
		return nil, err
	}
	return record, nil
}

// GetMatches returns every stored match the player has started, oldest first
func (c *Controller) GetMatches(ctx context.Context, playerID model.PlayerID) ([]*model.Match, error) {
	return c.storage.GetMatchesForPlayer(ctx, playerID)
}

// Roll rerolls the unheld dice. The round is scored automatically once the
// roll limit is reached, in which case the scored round is returned.
func (c *Controller) Roll(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, *model.RoundSummary, error) {
	unlock := c.players.lock(string(playerID))
	defer unlock()

	match, err := c.playableMatch(ctx, matchID, playerID)
	if err != nil {
		return nil, nil, err
	}

	if !match.Turn.CanRoll() {
		return nil, nil, model.ErrRollLimitReached
	}

	match.Turn.Dice = c.roller.Roll(match.Turn.Dice, match.Turn.Holds)
	match.Turn.Holds = model.HoldMask{} // a hold covers one roll
	match.Turn.RollCount++
	match.UpdatedAt = c.clock.Now()

	c.logger.Debug("human rolled",
		slog.String("match_id", string(match.ID)),
		slog.Int("round", match.Round),
		slog.Int("roll_count", match.Turn.RollCount),
		slog.String("dice", match.Turn.Dice.String()),
	)

	if match.Turn.Phase() == model.TurnPhaseLocked {
		summary, err := c.scoreRound(ctx, match)
		if err != nil {
			return nil, nil, err
		}
		return match, summary, nil
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, nil, err
	}
	return match, nil, nil
}

// ToggleHold flips whether the die at index is kept on the next roll only
func (c *Controller) ToggleHold(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, index int) (*model.Match, error) {
	unlock := c.players.lock(string(playerID))
	defer unlock()

	if !model.IsValidDieIndex(index) {
		return nil, model.ErrInvalidDieIndex
	}

	match, err := c.playableMatch(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	if !match.Turn.CanHold() {
		if match.Turn.Phase() == model.TurnPhaseIdle {
			return nil, model.ErrNotRolledYet
		}
		return nil, model.ErrRollLimitReached
	}

	match.Turn.Holds = dice.ToggleHold(match.Turn.Holds, index)
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// Score ends the round with the human's current dice
func (c *Controller) Score(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, *model.RoundSummary, error) {
	unlock := c.players.lock(string(playerID))
	defer unlock()

	match, err := c.playableMatch(ctx, matchID, playerID)
	if err != nil {
		return nil, nil, err
	}

	if !match.Turn.CanScore() {
		return nil, nil, model.ErrNotRolledYet
	}

	summary, err := c.scoreRound(ctx, match)
	if err != nil {
		return nil, nil, err
	}
	return match, summary, nil
}

// QuitMatch abandons the match and returns the player to the menu.
// Win tallies are kept.
func (c *Controller) QuitMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) error {
	unlock := c.players.lock(string(playerID))
	defer unlock()

	match, err := c.playableMatch(ctx, matchID, playerID)
	if err != nil {
		return err
	}

	now := c.clock.Now()
	match.Status = model.MatchStatusAbandoned
	match.UpdatedAt = now
	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return err
	}

	record, err := c.getOrCreateRecord(ctx, playerID)
	if err != nil {
		return err
	}
	if record.CurrentMatch != nil && *record.CurrentMatch == match.ID {
		record.CurrentMatch = nil
	}
	record.UpdatedAt = now
	if err := c.storage.SaveRecord(ctx, record); err != nil {
		return err
	}

	c.logger.Info("match abandoned",
		slog.String("match_id", string(match.ID)),
		slog.String("player_id", string(playerID)),
		slog.Int("human_score", match.HumanScore),
		slog.Int("opponent_score", match.OpponentScore),
	)
	return nil
}

// scoreRound applies the round engine to the match and persists the result
func (c *Controller) scoreRound(ctx context.Context, match *model.Match) (*model.RoundSummary, error) {
	record, err := c.getOrCreateRecord(ctx, match.PlayerID)
	if err != nil {
		return nil, err
	}

	human := match.Turn.Dice
	rollCount := match.Turn.RollCount

	state, outcome, opp := round.ScoreTurn(human, rollCount, match.State(record), c.opponents.Policy(match.Strategy))

	summary := model.RoundSummary{
		Round:          match.Round,
		HumanDice:      human,
		HumanRolls:     rollCount,
		OpponentDice:   opp.Dice,
		OpponentRolls:  opp.Rolls,
		HumanPoints:    human.Sum(),
		OpponentPoints: opp.Dice.Sum(),
		Outcome:        outcome,
	}

	now := c.clock.Now()
	match.HumanScore = state.HumanScore
	match.OpponentScore = state.OpponentScore
	match.OpponentDice = opp.Dice
	match.LastOutcome = outcome
	match.Rounds = append(match.Rounds, summary)
	match.UpdatedAt = now

	record.HumanWins = state.HumanWins
	record.OpponentWins = state.OpponentWins
	record.UpdatedAt = now

	if outcome.IsTerminal() {
		match.Status = model.MatchStatusComplete
		record.CurrentMatch = nil
		record.AddSummary(model.MatchSummary{
			ID:            match.ID,
			TargetScore:   match.TargetScore,
			HumanScore:    match.HumanScore,
			OpponentScore: match.OpponentScore,
			Outcome:       outcome,
			Rounds:        len(match.Rounds),
			CompletedAt:   now,
		})
	} else {
		match.Round++
		match.Turn = model.NewTurnState()
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save scored match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if err := c.storage.SaveRecord(ctx, record); err != nil {
		return nil, err
	}

	c.logger.Info("round scored",
		slog.String("match_id", string(match.ID)),
		slog.Int("round", summary.Round),
		slog.Int("human_points", summary.HumanPoints),
		slog.Int("opponent_points", summary.OpponentPoints),
		slog.Int("human_score", match.HumanScore),
		slog.Int("opponent_score", match.OpponentScore),
		slog.String("outcome", string(outcome)),
	)

	return &summary, nil
}

// playableMatch loads a match that the player owns and that is still in progress
func (c *Controller) playableMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	match, err := c.GetMatch(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	switch match.Status {
	case model.MatchStatusComplete:
		return nil, model.ErrMatchComplete
	case model.MatchStatusAbandoned:
		return nil, model.ErrMatchAbandoned
	}
	return match, nil
}

func (c *Controller) getOrCreateRecord(ctx context.Context, playerID model.PlayerID) (*model.Record, error) {
	record, err := c.storage.GetRecord(ctx, playerID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, model.ErrRecordNotFound) {
		return nil, err
	}
	return model.NewRecord(playerID, c.clock.Now()), nil
}
