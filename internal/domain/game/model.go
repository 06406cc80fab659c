package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Outcome attributes a played game to one of the closed result buckets.
// The canonical form is upper case; ParseOutcome accepts any casing.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
	OutcomeDraw Outcome = "DRAW"
)

var AllOutcomes = map[Outcome]struct{}{
	OutcomeWin:  {},
	OutcomeLoss: {},
	OutcomeDraw: {},
}

var ErrUnknownOutcome = errors.New("unknown game outcome")

// ErrMissingDetails reports a foreign key violation: a record was written
// pointing at a details row that does not exist.
var ErrMissingDetails = errors.New("referenced game details do not exist")

// ParseOutcome normalizes a boundary-supplied outcome to its canonical form.
func ParseOutcome(raw string) (Outcome, error) {
	out := Outcome(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := AllOutcomes[out]; !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownOutcome, raw)
	}
	return out, nil
}

// Details is the factual record of one played match.
type Details struct {
	ID               string
	OpponentsPoints  int
	PlayerPoints     int
	DatePlayed       time.Time
	TurnsPlayed      int
	PlayerDeckUsed   string
	OpponentName     string
	OpponentDeckType string
	Notes            string
}

// Record attributes a Details row to a player with an outcome.
type Record struct {
	ID            string
	PlayerID      string
	DetailsRef    string
	Outcome       Outcome
	RankingChange *int
}

// Statistics aggregates a player's recorded games.
type Statistics struct {
	TotalGames int
	Wins       int
	Losses     int
	Draws      int
	WinRate    float64
}
