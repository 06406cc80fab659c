package usecase

import (
	"errors"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/domain/game"
	"github.com/ptcgpocket/companion/internal/domain/user"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("resource already exists")
	ErrMissingReference      = errors.New("referenced resource does not exist")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// isConflict reports whether a repository error is a uniqueness violation
// surfaced by the storage layer rather than caught by a pre-check.
func isConflict(err error) bool {
	return errors.Is(err, card.ErrDuplicateCollectionNumber) ||
		errors.Is(err, user.ErrDuplicateEmail) ||
		errors.Is(err, user.ErrDuplicateGoogleID)
}

// isMissingReference reports whether a repository error is a foreign key
// violation: a referenced row vanished between the service-level existence
// checks and the write.
func isMissingReference(err error) bool {
	return errors.Is(err, card.ErrMissingCard) ||
		errors.Is(err, ability.ErrMissingAbility) ||
		errors.Is(err, user.ErrMissingUser) ||
		errors.Is(err, deck.ErrMissingDeck) ||
		errors.Is(err, game.ErrMissingDetails)
}
