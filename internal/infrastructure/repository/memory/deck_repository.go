package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/ptcgpocket/companion/internal/domain/deck"
)

type DeckRepository struct {
	mu    sync.RWMutex
	items map[string]deck.Deck
}

func NewDeckRepository() *DeckRepository {
	return &DeckRepository{items: make(map[string]deck.Deck)}
}

func (r *DeckRepository) Create(_ context.Context, d deck.Deck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[d.ID] = cloneDeck(d)
	return nil
}

func (r *DeckRepository) GetByID(_ context.Context, id string) (deck.Deck, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.items[id]
	if !ok {
		return deck.Deck{}, false, nil
	}
	return cloneDeck(d), true, nil
}

func (r *DeckRepository) Update(_ context.Context, d deck.Deck) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[d.ID]; !ok {
		return fmt.Errorf("deck %s does not exist", d.ID)
	}
	r.items[d.ID] = cloneDeck(d)
	return nil
}

func (r *DeckRepository) ListByOwner(_ context.Context, ownerID string) ([]deck.Deck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]deck.Deck, 0)
	for _, d := range r.items {
		if d.OwnerID != ownerID {
			continue
		}
		out = append(out, cloneDeck(d))
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneDeck(d deck.Deck) deck.Deck {
	copied := d
	copied.CardIDs = append([]string(nil), d.CardIDs...)
	return copied
}
