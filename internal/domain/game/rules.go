package game

import (
	"errors"
	"fmt"
)

// MaxTotalPoints is the prize-card ceiling: the two players' points together
// can never exceed it.
const MaxTotalPoints = 6

var (
	ErrNegativePoints  = errors.New("points cannot be negative")
	ErrPointsOverBound = errors.New("total points over bound")
	ErrInvalidTurns    = errors.New("turns played must be at least 1")
)

// Validate checks a match record's factual fields before persistence.
func (d Details) Validate() error {
	if d.OpponentsPoints < 0 || d.PlayerPoints < 0 {
		return fmt.Errorf("%w: opponent=%d player=%d", ErrNegativePoints, d.OpponentsPoints, d.PlayerPoints)
	}
	if d.OpponentsPoints+d.PlayerPoints > MaxTotalPoints {
		return fmt.Errorf("%w: %d+%d > %d", ErrPointsOverBound, d.OpponentsPoints, d.PlayerPoints, MaxTotalPoints)
	}
	if d.TurnsPlayed < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidTurns, d.TurnsPlayed)
	}
	if d.DatePlayed.IsZero() {
		return fmt.Errorf("date played is required")
	}
	if d.PlayerDeckUsed == "" {
		return fmt.Errorf("player deck is required")
	}
	if d.OpponentName == "" {
		return fmt.Errorf("opponent name is required")
	}
	return nil
}

func (r Record) Validate() error {
	if r.PlayerID == "" {
		return fmt.Errorf("player id is required")
	}
	if _, ok := AllOutcomes[r.Outcome]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOutcome, r.Outcome)
	}
	return nil
}
