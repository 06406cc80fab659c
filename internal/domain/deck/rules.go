package deck

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDeckSize = errors.New("invalid deck size")
	ErrTooManyCopies   = errors.New("max copies of a card exceeded")

	// ErrMissingDeck reports a foreign key violation: a row that references
	// a deck was written after the deck vanished.
	ErrMissingDeck = errors.New("referenced deck does not exist")
)

// Rules stores deck composition validation parameters.
type Rules struct {
	DeckSize         int
	MaxCopiesPerCard int
}

func DefaultRules() Rules {
	return Rules{
		DeckSize:         20,
		MaxCopiesPerCard: 2,
	}
}

// ValidateCards checks a deck's full card list against the composition rules.
// It runs identically on create and on any update that replaces the list.
func ValidateCards(cardIDs []string, rules Rules) error {
	if len(cardIDs) != rules.DeckSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidDeckSize, rules.DeckSize, len(cardIDs))
	}

	copies := make(map[string]int, len(cardIDs))
	for _, id := range cardIDs {
		if id == "" {
			return fmt.Errorf("card id is required")
		}
		copies[id]++
		if copies[id] > rules.MaxCopiesPerCard {
			return fmt.Errorf("%w: card=%s max=%d", ErrTooManyCopies, id, rules.MaxCopiesPerCard)
		}
	}

	return nil
}
