package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ptcgpocket/companion/internal/domain/card"
)

type CardRepository struct {
	mu       sync.RWMutex
	items    map[string]card.Card
	byNumber map[string]string
}

func NewCardRepository(cards []card.Card) *CardRepository {
	r := &CardRepository{
		items:    make(map[string]card.Card),
		byNumber: make(map[string]string),
	}
	for _, c := range cards {
		r.items[c.ID] = cloneCard(c)
		r.byNumber[numberKey(c.SetName, c.CollectionNumber)] = c.ID
	}
	return r
}

func (r *CardRepository) Create(_ context.Context, c card.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := numberKey(c.SetName, c.CollectionNumber)
	if _, taken := r.byNumber[key]; taken {
		return fmt.Errorf("%w: %s %s", card.ErrDuplicateCollectionNumber, c.SetName, c.CollectionNumber)
	}

	r.items[c.ID] = cloneCard(c)
	r.byNumber[key] = c.ID
	return nil
}

func (r *CardRepository) GetByID(_ context.Context, id string) (card.Card, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.items[id]
	if !ok {
		return card.Card{}, false, nil
	}
	return cloneCard(c), true, nil
}

func (r *CardRepository) GetByIDs(_ context.Context, ids []string) ([]card.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]card.Card, 0, len(ids))
	for _, id := range ids {
		c, ok := r.items[id]
		if !ok {
			continue
		}
		out = append(out, cloneCard(c))
	}
	return out, nil
}

func (r *CardRepository) GetBySetAndNumber(_ context.Context, set card.SetName, collectionNumber string) (card.Card, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byNumber[numberKey(set, collectionNumber)]
	if !ok {
		return card.Card{}, false, nil
	}
	return cloneCard(r.items[id]), true, nil
}

func (r *CardRepository) List(_ context.Context, filter card.Filter, page card.Page) ([]card.Card, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]card.Card, 0, len(r.items))
	for _, c := range r.items {
		if filter.SetName != "" && c.SetName != filter.SetName {
			continue
		}
		if filter.PackName != "" && c.PackName != filter.PackName {
			continue
		}
		if filter.Rarity != "" && c.Rarity != filter.Rarity {
			continue
		}
		matched = append(matched, c)
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].SetName != matched[j].SetName {
			return matched[i].SetName < matched[j].SetName
		}
		return matched[i].CollectionNumber < matched[j].CollectionNumber
	})

	if page.Skip >= len(matched) {
		return []card.Card{}, nil
	}
	matched = matched[page.Skip:]
	if page.Limit > 0 && page.Limit < len(matched) {
		matched = matched[:page.Limit]
	}

	out := make([]card.Card, 0, len(matched))
	for _, c := range matched {
		out = append(out, cloneCard(c))
	}
	return out, nil
}

func numberKey(set card.SetName, collectionNumber string) string {
	return string(set) + "::" + collectionNumber
}

func cloneCard(c card.Card) card.Card {
	copied := c
	if c.Pokemon != nil {
		pokemon := *c.Pokemon
		pokemon.Abilities = make([]card.PokemonAbility, 0, len(c.Pokemon.Abilities))
		for _, a := range c.Pokemon.Abilities {
			ability := a
			ability.EnergyCost = make(map[card.EnergyType]int, len(a.EnergyCost))
			for k, v := range a.EnergyCost {
				ability.EnergyCost[k] = v
			}
			if a.Damage != nil {
				damage := *a.Damage
				ability.Damage = &damage
			}
			pokemon.Abilities = append(pokemon.Abilities, ability)
		}
		copied.Pokemon = &pokemon
	}
	if c.Trainer != nil {
		trainer := *c.Trainer
		trainer.Abilities = append([]card.SupportAbility(nil), c.Trainer.Abilities...)
		copied.Trainer = &trainer
	}
	return copied
}
