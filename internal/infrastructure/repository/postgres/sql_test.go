package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/domain/game"
	"github.com/ptcgpocket/companion/internal/domain/user"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected sql.ErrNoRows to be not found")
	}
	if !isNotFound(fmt.Errorf("get row: %w", sql.ErrNoRows)) {
		t.Fatal("expected wrapped sql.ErrNoRows to be not found")
	}
	if isNotFound(errors.New("boom")) {
		t.Fatal("expected unrelated error to not be not found")
	}
}

func TestMapConstraintError(t *testing.T) {
	tests := []struct {
		name       string
		code       pq.ErrorCode
		constraint string
		want       error
	}{
		{"collection number", pqUniqueViolation, "cards_set_name_collection_number_key", card.ErrDuplicateCollectionNumber},
		{"email", pqUniqueViolation, "users_email_key", user.ErrDuplicateEmail},
		{"google id", pqUniqueViolation, "users_google_id_key", user.ErrDuplicateGoogleID},
		{"deck slot card vanished", pqForeignKeyViolation, "deck_cards_card_id_fkey", card.ErrMissingCard},
		{"pokemon specialization card vanished", pqForeignKeyViolation, "pokemon_cards_card_id_fkey", card.ErrMissingCard},
		{"ability vanished", pqForeignKeyViolation, "pokemon_abilities_ability_id_fkey", ability.ErrMissingAbility},
		{"support ability vanished", pqForeignKeyViolation, "support_abilities_ability_id_fkey", ability.ErrMissingAbility},
		{"deck owner vanished", pqForeignKeyViolation, "decks_owner_id_fkey", user.ErrMissingUser},
		{"game player vanished", pqForeignKeyViolation, "game_records_player_id_fkey", user.ErrMissingUser},
		{"game deck vanished", pqForeignKeyViolation, "game_details_player_deck_used_fkey", deck.ErrMissingDeck},
		{"details ref vanished", pqForeignKeyViolation, "game_records_game_details_ref_fkey", game.ErrMissingDetails},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pqErr := &pq.Error{Code: tt.code, Constraint: tt.constraint}
			if got := mapConstraintError(pqErr); !errors.Is(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}

	unknownUnique := &pq.Error{Code: pqUniqueViolation, Constraint: "something_else_key"}
	if got := mapConstraintError(unknownUnique); got != error(unknownUnique) {
		t.Fatalf("expected unknown constraint to pass through, got %v", got)
	}

	unknownFK := &pq.Error{Code: pqForeignKeyViolation, Constraint: "something_else_fkey"}
	if got := mapConstraintError(unknownFK); got != error(unknownFK) {
		t.Fatalf("expected unknown fk constraint to pass through, got %v", got)
	}

	plain := errors.New("boom")
	if got := mapConstraintError(plain); got != plain {
		t.Fatalf("expected non-pq error to pass through, got %v", got)
	}
}
