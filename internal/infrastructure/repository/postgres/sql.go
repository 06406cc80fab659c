package postgres

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/domain/game"
	"github.com/ptcgpocket/companion/internal/domain/user"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapConstraintError translates postgres constraint violations into the
// domain sentinels callers match on. Unknown constraints pass through
// untouched.
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case pqUniqueViolation:
		switch pqErr.Constraint {
		case "cards_set_name_collection_number_key":
			return card.ErrDuplicateCollectionNumber
		case "users_email_key":
			return user.ErrDuplicateEmail
		case "users_google_id_key":
			return user.ErrDuplicateGoogleID
		}
	case pqForeignKeyViolation:
		switch pqErr.Constraint {
		case "pokemon_cards_card_id_fkey",
			"pokemon_abilities_card_id_fkey",
			"support_abilities_card_id_fkey",
			"deck_cards_card_id_fkey":
			return card.ErrMissingCard
		case "pokemon_abilities_ability_id_fkey",
			"support_abilities_ability_id_fkey":
			return ability.ErrMissingAbility
		case "decks_owner_id_fkey",
			"game_records_player_id_fkey":
			return user.ErrMissingUser
		case "game_details_player_deck_used_fkey":
			return deck.ErrMissingDeck
		case "game_records_game_details_ref_fkey":
			return game.ErrMissingDetails
		}
	}

	return err
}

func stringSliceToAny(values []string) []any {
	out := make([]any, 0, len(values))
	for _, v := range values {
		out = append(out, v)
	}
	return out
}
