package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ptcgpocket/companion/internal/domain/ability"
)

type AbilityRepository struct {
	mu    sync.RWMutex
	items map[string]ability.Ability
}

func NewAbilityRepository(abilities []ability.Ability) *AbilityRepository {
	r := &AbilityRepository{items: make(map[string]ability.Ability)}
	for _, a := range abilities {
		r.items[a.ID] = a
	}
	return r
}

func (r *AbilityRepository) Create(_ context.Context, a ability.Ability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[a.ID] = a
	return nil
}

func (r *AbilityRepository) GetByIDs(_ context.Context, ids []string) ([]ability.Ability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ability.Ability, 0, len(ids))
	for _, id := range ids {
		a, ok := r.items[id]
		if !ok {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *AbilityRepository) List(_ context.Context) ([]ability.Ability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ability.Ability, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
