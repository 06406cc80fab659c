package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/domain/game"
	"github.com/ptcgpocket/companion/internal/domain/user"
	idgen "github.com/ptcgpocket/companion/internal/platform/id"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

// RecordGameInput is the two co-submitted payloads of the "record a game"
// operation: the match facts and the player-attributed outcome.
type RecordGameInput struct {
	PlayerID         string
	OpponentsPoints  int
	PlayerPoints     int
	DatePlayed       time.Time
	TurnsPlayed      int
	PlayerDeckUsed   string
	OpponentName     string
	OpponentDeckType string
	Notes            string
	Outcome          string
	RankingChange    *int
}

type GameService struct {
	gameRepo game.Repository
	deckRepo deck.Repository
	userRepo user.Repository
	idGen    idgen.Generator
	logger   *logging.Logger
}

func NewGameService(
	gameRepo game.Repository,
	deckRepo deck.Repository,
	userRepo user.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *GameService {
	if logger == nil {
		logger = logging.Default()
	}

	return &GameService{
		gameRepo: gameRepo,
		deckRepo: deckRepo,
		userRepo: userRepo,
		idGen:    idGen,
		logger:   logger,
	}
}

// RecordGame validates the match facts, resolves references, and persists
// details and record together in one transaction.
func (s *GameService) RecordGame(ctx context.Context, input RecordGameInput) (game.Record, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.RecordGame")
	defer span.End()

	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.PlayerID == "" {
		return game.Record{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	outcome, err := game.ParseOutcome(input.Outcome)
	if err != nil {
		return game.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	detailsID, err := s.idGen.NewID()
	if err != nil {
		return game.Record{}, fmt.Errorf("generate game details id: %w", err)
	}
	recordID, err := s.idGen.NewID()
	if err != nil {
		return game.Record{}, fmt.Errorf("generate game record id: %w", err)
	}

	details := game.Details{
		ID:               detailsID,
		OpponentsPoints:  input.OpponentsPoints,
		PlayerPoints:     input.PlayerPoints,
		DatePlayed:       input.DatePlayed,
		TurnsPlayed:      input.TurnsPlayed,
		PlayerDeckUsed:   strings.TrimSpace(input.PlayerDeckUsed),
		OpponentName:     strings.TrimSpace(input.OpponentName),
		OpponentDeckType: strings.TrimSpace(input.OpponentDeckType),
		Notes:            strings.TrimSpace(input.Notes),
	}
	if err := details.Validate(); err != nil {
		return game.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	record := game.Record{
		ID:            recordID,
		PlayerID:      input.PlayerID,
		DetailsRef:    detailsID,
		Outcome:       outcome,
		RankingChange: input.RankingChange,
	}
	if err := record.Validate(); err != nil {
		return game.Record{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensurePlayerExists(ctx, input.PlayerID); err != nil {
		return game.Record{}, err
	}
	if _, exists, err := s.deckRepo.GetByID(ctx, details.PlayerDeckUsed); err != nil {
		return game.Record{}, fmt.Errorf("get deck: %w", err)
	} else if !exists {
		return game.Record{}, fmt.Errorf("%w: deck=%s", ErrMissingReference, details.PlayerDeckUsed)
	}

	if err := s.gameRepo.CreateRecord(ctx, details, record); err != nil {
		if isMissingReference(err) {
			return game.Record{}, fmt.Errorf("%w: %v", ErrMissingReference, err)
		}
		return game.Record{}, fmt.Errorf("create game record: %w", err)
	}

	s.logger.InfoContext(ctx, "game recorded",
		"game_record_id", record.ID,
		"player_id", record.PlayerID,
		"outcome", string(record.Outcome),
		"turns_played", details.TurnsPlayed,
	)

	return record, nil
}

// PlayerStatistics aggregates every recorded game of a player into the win,
// loss and draw buckets. Zero games is a well-defined all-zero answer.
func (s *GameService) PlayerStatistics(ctx context.Context, playerID string) (game.Statistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.PlayerStatistics")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return game.Statistics{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	if _, exists, err := s.userRepo.GetByID(ctx, playerID); err != nil {
		return game.Statistics{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return game.Statistics{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	counts, err := s.gameRepo.CountByOutcome(ctx, playerID)
	if err != nil {
		return game.Statistics{}, fmt.Errorf("count games by outcome: %w", err)
	}

	stats := game.Statistics{
		Wins:   counts[game.OutcomeWin],
		Losses: counts[game.OutcomeLoss],
		Draws:  counts[game.OutcomeDraw],
	}
	stats.TotalGames = stats.Wins + stats.Losses + stats.Draws
	if stats.TotalGames > 0 {
		rate := float64(stats.Wins) / float64(stats.TotalGames) * 100
		stats.WinRate = math.Round(rate*100) / 100
	}

	return stats, nil
}

func (s *GameService) ensurePlayerExists(ctx context.Context, playerID string) error {
	_, exists, err := s.userRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s", ErrMissingReference, playerID)
	}
	return nil
}
