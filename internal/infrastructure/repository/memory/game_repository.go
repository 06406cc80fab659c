package memory

import (
	"context"
	"sync"

	"github.com/ptcgpocket/companion/internal/domain/game"
)

type GameRepository struct {
	mu      sync.RWMutex
	details map[string]game.Details
	records map[string]game.Record
}

func NewGameRepository() *GameRepository {
	return &GameRepository{
		details: make(map[string]game.Details),
		records: make(map[string]game.Record),
	}
}

func (r *GameRepository) CreateRecord(_ context.Context, d game.Details, rec game.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.details[d.ID] = d
	r.records[rec.ID] = cloneRecord(rec)
	return nil
}

func (r *GameRepository) CountByOutcome(_ context.Context, playerID string) (map[game.Outcome]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[game.Outcome]int)
	for _, rec := range r.records {
		if rec.PlayerID != playerID {
			continue
		}
		counts[rec.Outcome]++
	}
	return counts, nil
}

func cloneRecord(rec game.Record) game.Record {
	copied := rec
	if rec.RankingChange != nil {
		change := *rec.RankingChange
		copied.RankingChange = &change
	}
	return copied
}
