package game

import "context"

// Repository describes game persistence needs from use cases. CreateRecord
// writes the details row and the record row in one transaction.
type Repository interface {
	CreateRecord(ctx context.Context, d Details, r Record) error
	CountByOutcome(ctx context.Context, playerID string) (map[Outcome]int, error)
}
