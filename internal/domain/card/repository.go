package card

import "context"

// Repository describes catalog persistence needs from use cases. Create must
// write the base card, its specialization and all ability links atomically.
type Repository interface {
	Create(ctx context.Context, c Card) error
	GetByID(ctx context.Context, id string) (Card, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Card, error)
	GetBySetAndNumber(ctx context.Context, set SetName, collectionNumber string) (Card, bool, error)
	List(ctx context.Context, filter Filter, page Page) ([]Card, error)
}
