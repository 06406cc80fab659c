package cache

import (
	"context"
	"strconv"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	basecache "github.com/ptcgpocket/companion/internal/platform/cache"
)

// CardRepository caches catalog reads. The catalog is append-only, so every
// write just drops the card keyspace instead of patching entries.
type CardRepository struct {
	next  card.Repository
	cache *basecache.Store
}

func NewCardRepository(next card.Repository, cache *basecache.Store) *CardRepository {
	return &CardRepository{next: next, cache: cache}
}

func (r *CardRepository) Create(ctx context.Context, c card.Card) error {
	if err := r.next.Create(ctx, c); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "card:")
	return nil
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (card.Card, bool, error) {
	key := "card:id:" + id
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedCard{value: item, exists: exists}, nil
	})
	if err != nil {
		return card.Card{}, false, err
	}

	cached, _ := v.(cachedCard)
	return cached.value, cached.exists, nil
}

// GetByIDs serves deck validation with arbitrary id sets; memoizing every
// combination would only churn the store, so it always hits the source.
func (r *CardRepository) GetByIDs(ctx context.Context, ids []string) ([]card.Card, error) {
	return r.next.GetByIDs(ctx, ids)
}

func (r *CardRepository) GetBySetAndNumber(ctx context.Context, set card.SetName, collectionNumber string) (card.Card, bool, error) {
	key := "card:number:" + string(set) + ":" + collectionNumber
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetBySetAndNumber(ctx, set, collectionNumber)
		if err != nil {
			return nil, err
		}
		return cachedCard{value: item, exists: exists}, nil
	})
	if err != nil {
		return card.Card{}, false, err
	}

	cached, _ := v.(cachedCard)
	return cached.value, cached.exists, nil
}

func (r *CardRepository) List(ctx context.Context, filter card.Filter, page card.Page) ([]card.Card, error) {
	key := "card:list:" + string(filter.SetName) + ":" + string(filter.PackName) + ":" + string(filter.Rarity) +
		":" + strconv.Itoa(page.Skip) + ":" + strconv.Itoa(page.Limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, filter, page)
		if err != nil {
			return nil, err
		}
		return append([]card.Card(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]card.Card)
	return append([]card.Card(nil), items...), nil
}

type cachedCard struct {
	value  card.Card
	exists bool
}

type AbilityRepository struct {
	next  ability.Repository
	cache *basecache.Store
}

func NewAbilityRepository(next ability.Repository, cache *basecache.Store) *AbilityRepository {
	return &AbilityRepository{next: next, cache: cache}
}

func (r *AbilityRepository) Create(ctx context.Context, a ability.Ability) error {
	if err := r.next.Create(ctx, a); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "ability:")
	return nil
}

func (r *AbilityRepository) GetByIDs(ctx context.Context, ids []string) ([]ability.Ability, error) {
	return r.next.GetByIDs(ctx, ids)
}

func (r *AbilityRepository) List(ctx context.Context) ([]ability.Ability, error) {
	v, err := r.cache.GetOrLoad(ctx, "ability:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]ability.Ability(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]ability.Ability)
	return append([]ability.Ability(nil), items...), nil
}
