package ability

import "context"

// Repository describes ability catalog persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, a Ability) error
	GetByIDs(ctx context.Context, ids []string) ([]Ability, error)
	List(ctx context.Context) ([]Ability, error)
}
