package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/infrastructure/repository/memory"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

type gameFixture struct {
	games  *GameService
	deckID string
}

func newGameFixture(t *testing.T) gameFixture {
	t.Helper()

	deckRepo := memory.NewDeckRepository()
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	cardRepo := memory.NewCardRepository(memory.SeedCards())

	decks := NewDeckService(deckRepo, cardRepo, userRepo, deck.DefaultRules(),
		&seqIDGenerator{prefix: "deck"}, logging.NewNop())
	created, err := decks.CreateDeck(t.Context(), CreateDeckInput{
		OwnerID: memory.UserIDTrainerRed,
		Name:    "Electric Rush",
		CardIDs: legalCardList(),
	})
	if err != nil {
		t.Fatalf("seed deck failed: %v", err)
	}

	games := NewGameService(memory.NewGameRepository(), deckRepo, userRepo,
		&seqIDGenerator{prefix: "game"}, logging.NewNop())
	return gameFixture{games: games, deckID: created.ID}
}

func (f gameFixture) record(t *testing.T, outcome string, playerPoints, opponentPoints int) {
	t.Helper()
	_, err := f.games.RecordGame(t.Context(), RecordGameInput{
		PlayerID:        memory.UserIDTrainerRed,
		PlayerPoints:    playerPoints,
		OpponentsPoints: opponentPoints,
		DatePlayed:      time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC),
		TurnsPlayed:     12,
		PlayerDeckUsed:  f.deckID,
		OpponentName:    "Blue",
		Outcome:         outcome,
	})
	if err != nil {
		t.Fatalf("record %s game failed: %v", outcome, err)
	}
}

func TestGameService_RecordGame(t *testing.T) {
	f := newGameFixture(t)

	change := 15
	rec, err := f.games.RecordGame(t.Context(), RecordGameInput{
		PlayerID:        memory.UserIDTrainerRed,
		PlayerPoints:    3,
		OpponentsPoints: 1,
		DatePlayed:      time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC),
		TurnsPlayed:     14,
		PlayerDeckUsed:  f.deckID,
		OpponentName:    "Blue",
		Outcome:         "win",
		RankingChange:   &change,
	})
	if err != nil {
		t.Fatalf("record game failed: %v", err)
	}
	if rec.Outcome != "WIN" {
		t.Fatalf("expected outcome normalized to WIN, got %s", rec.Outcome)
	}
	if rec.ID == "" || rec.DetailsRef == "" || rec.ID == rec.DetailsRef {
		t.Fatalf("expected distinct generated ids, got record=%s details=%s", rec.ID, rec.DetailsRef)
	}
}

func TestGameService_RecordGame_Rejections(t *testing.T) {
	f := newGameFixture(t)

	base := RecordGameInput{
		PlayerID:        memory.UserIDTrainerRed,
		PlayerPoints:    3,
		OpponentsPoints: 1,
		DatePlayed:      time.Date(2026, 3, 2, 19, 0, 0, 0, time.UTC),
		TurnsPlayed:     14,
		PlayerDeckUsed:  f.deckID,
		OpponentName:    "Blue",
		Outcome:         "WIN",
	}

	tests := []struct {
		name   string
		mutate func(in *RecordGameInput)
		want   error
	}{
		{"unknown outcome", func(in *RecordGameInput) { in.Outcome = "VICTORY" }, ErrInvalidInput},
		{"points above bound", func(in *RecordGameInput) { in.PlayerPoints = 4; in.OpponentsPoints = 3 }, ErrInvalidInput},
		{"negative points", func(in *RecordGameInput) { in.OpponentsPoints = -1 }, ErrInvalidInput},
		{"zero turns", func(in *RecordGameInput) { in.TurnsPlayed = 0 }, ErrInvalidInput},
		{"unknown player", func(in *RecordGameInput) { in.PlayerID = "user-ghost" }, ErrMissingReference},
		{"unknown deck", func(in *RecordGameInput) { in.PlayerDeckUsed = "deck-ghost" }, ErrMissingReference},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := f.games.RecordGame(t.Context(), in)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestGameService_PlayerStatistics(t *testing.T) {
	f := newGameFixture(t)

	stats, err := f.games.PlayerStatistics(t.Context(), memory.UserIDTrainerRed)
	if err != nil {
		t.Fatalf("statistics with zero games failed: %v", err)
	}
	if stats.TotalGames != 0 || stats.WinRate != 0 {
		t.Fatalf("expected all-zero statistics, got %+v", stats)
	}

	f.record(t, "WIN", 3, 0)
	f.record(t, "loss", 1, 3)
	f.record(t, "Draw", 2, 2)

	stats, err = f.games.PlayerStatistics(t.Context(), memory.UserIDTrainerRed)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.TotalGames != 3 || stats.Wins != 1 || stats.Losses != 1 || stats.Draws != 1 {
		t.Fatalf("unexpected buckets: %+v", stats)
	}
	if stats.WinRate != 33.33 {
		t.Fatalf("expected win rate 33.33, got %v", stats.WinRate)
	}

	f.record(t, "WIN", 3, 1)
	stats, err = f.games.PlayerStatistics(t.Context(), memory.UserIDTrainerRed)
	if err != nil {
		t.Fatalf("statistics failed: %v", err)
	}
	if stats.WinRate != 50.0 {
		t.Fatalf("expected win rate 50.0, got %v", stats.WinRate)
	}

	if _, err := f.games.PlayerStatistics(t.Context(), "user-ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}
}
