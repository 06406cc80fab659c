package deck

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func validCardIDs(rules Rules) []string {
	ids := make([]string, 0, rules.DeckSize)
	for i := 0; i < rules.DeckSize; i++ {
		ids = append(ids, fmt.Sprintf("card-%02d", i))
	}
	return ids
}

func TestValidateCards(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func([]string) []string
		targetErr error
	}{
		{
			name:      "valid list of 20 unique cards",
			mutate:    func(ids []string) []string { return ids },
			targetErr: nil,
		},
		{
			name: "two copies of the same card allowed",
			mutate: func(ids []string) []string {
				ids[1] = ids[0]
				return ids
			},
			targetErr: nil,
		},
		{
			name: "too short",
			mutate: func(ids []string) []string {
				return ids[:10]
			},
			targetErr: ErrInvalidDeckSize,
		},
		{
			name: "too long",
			mutate: func(ids []string) []string {
				return append(ids, "card-extra")
			},
			targetErr: ErrInvalidDeckSize,
		},
		{
			name: "three copies rejected",
			mutate: func(ids []string) []string {
				ids[1] = ids[0]
				ids[2] = ids[0]
				return ids
			},
			targetErr: ErrTooManyCopies,
		},
	}

	rules := DefaultRules()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ids := tc.mutate(validCardIDs(rules))
			err := ValidateCards(ids, rules)
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

func TestValidateCards_EmptyCardID(t *testing.T) {
	rules := DefaultRules()
	ids := validCardIDs(rules)
	ids[5] = ""

	if err := ValidateCards(ids, rules); err == nil {
		t.Fatalf("expected error for empty card id")
	}
}

func TestDeck_ValidateBasic_TemporalOrder(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	d := Deck{
		ID:        "deck-1",
		Name:      "Pikachu Rush",
		OwnerID:   "user-1",
		CardIDs:   validCardIDs(DefaultRules()),
		CreatedAt: created,
		UpdatedAt: created.Add(-time.Minute),
	}

	if err := d.ValidateBasic(); err == nil {
		t.Fatalf("expected error when updated_at precedes created_at")
	}

	d.UpdatedAt = created
	if err := d.ValidateBasic(); err != nil {
		t.Fatalf("expected valid deck, got %v", err)
	}
}
