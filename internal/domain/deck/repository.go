package deck

import "context"

// Repository describes deck persistence needs from use cases. Update replaces
// the deck row and its whole card list in one transaction.
type Repository interface {
	Create(ctx context.Context, d Deck) error
	GetByID(ctx context.Context, id string) (Deck, bool, error)
	Update(ctx context.Context, d Deck) error
	ListByOwner(ctx context.Context, ownerID string) ([]Deck, error)
}
