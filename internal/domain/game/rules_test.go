package game

import (
	"errors"
	"testing"
	"time"
)

func validDetails() Details {
	return Details{
		ID:              "details-1",
		OpponentsPoints: 3,
		PlayerPoints:    3,
		DatePlayed:      time.Date(2026, 4, 2, 20, 30, 0, 0, time.UTC),
		TurnsPlayed:     12,
		PlayerDeckUsed:  "deck-1",
		OpponentName:    "Blue",
	}
}

func TestDetails_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Details)
		targetErr error
	}{
		{
			name:   "valid details",
			mutate: func(_ *Details) {},
		},
		{
			name: "points sum over bound",
			mutate: func(d *Details) {
				d.OpponentsPoints = 4
				d.PlayerPoints = 3
			},
			targetErr: ErrPointsOverBound,
		},
		{
			name: "negative player points",
			mutate: func(d *Details) {
				d.PlayerPoints = -1
			},
			targetErr: ErrNegativePoints,
		},
		{
			name: "negative opponent points",
			mutate: func(d *Details) {
				d.OpponentsPoints = -2
			},
			targetErr: ErrNegativePoints,
		},
		{
			name: "zero turns",
			mutate: func(d *Details) {
				d.TurnsPlayed = 0
			},
			targetErr: ErrInvalidTurns,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := validDetails()
			tc.mutate(&d)
			err := d.Validate()
			if tc.targetErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.targetErr) {
				t.Fatalf("expected %v, got %v", tc.targetErr, err)
			}
		})
	}
}

func TestParseOutcome(t *testing.T) {
	for raw, want := range map[string]Outcome{
		"WIN":  OutcomeWin,
		"win":  OutcomeWin,
		"Loss": OutcomeLoss,
		"draw": OutcomeDraw,
		" WIN": OutcomeWin,
	} {
		got, err := ParseOutcome(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		if got != want {
			t.Fatalf("parse %q: expected %s, got %s", raw, want, got)
		}
	}

	if _, err := ParseOutcome("forfeit"); !errors.Is(err, ErrUnknownOutcome) {
		t.Fatalf("expected %v, got %v", ErrUnknownOutcome, err)
	}
}

func TestRecord_Validate(t *testing.T) {
	r := Record{ID: "rec-1", PlayerID: "user-1", DetailsRef: "details-1", Outcome: OutcomeWin}
	if err := r.Validate(); err != nil {
		t.Fatalf("expected valid record, got %v", err)
	}

	r.Outcome = "VICTORY"
	if err := r.Validate(); !errors.Is(err, ErrUnknownOutcome) {
		t.Fatalf("expected %v, got %v", ErrUnknownOutcome, err)
	}
}
