package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ptcgpocket/companion/internal/domain/game"
	qb "github.com/ptcgpocket/companion/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

type gameDetailsTableModel struct {
	ID               string    `db:"id"`
	OpponentsPoints  int       `db:"opponents_points"`
	PlayerPoints     int       `db:"player_points"`
	DatePlayed       time.Time `db:"date_played"`
	TurnsPlayed      int       `db:"turns_played"`
	PlayerDeckUsed   string    `db:"player_deck_used"`
	OpponentName     string    `db:"opponent_name"`
	OpponentDeckType string    `db:"opponent_deck_type"`
	Notes            string    `db:"notes"`
}

type gameRecordTableModel struct {
	ID             string        `db:"id"`
	PlayerID       string        `db:"player_id"`
	GameDetailsRef string        `db:"game_details_ref"`
	Outcome        string        `db:"outcome"`
	RankingChange  sql.NullInt64 `db:"ranking_change"`
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

// CreateRecord writes the details row and the record row in one transaction
// so a record never points at missing facts.
func (r *GameRepository) CreateRecord(ctx context.Context, d game.Details, rec game.Record) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for game record create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertDetailsQuery = `
INSERT INTO game_details (
    id, opponents_points, player_points, date_played, turns_played,
    player_deck_used, opponent_name, opponent_deck_type, notes
) VALUES (
    :id, :opponents_points, :player_points, :date_played, :turns_played,
    :player_deck_used, :opponent_name, :opponent_deck_type, :notes
)`

	detailsRow := gameDetailsTableModel{
		ID:               d.ID,
		OpponentsPoints:  d.OpponentsPoints,
		PlayerPoints:     d.PlayerPoints,
		DatePlayed:       d.DatePlayed,
		TurnsPlayed:      d.TurnsPlayed,
		PlayerDeckUsed:   d.PlayerDeckUsed,
		OpponentName:     d.OpponentName,
		OpponentDeckType: d.OpponentDeckType,
		Notes:            d.Notes,
	}
	detailsSQL, detailsArgs, err := sqlx.Named(insertDetailsQuery, detailsRow)
	if err != nil {
		return fmt.Errorf("bind insert game details query: %w", err)
	}
	detailsSQL = tx.Rebind(detailsSQL)
	if _, err := tx.ExecContext(ctx, detailsSQL, detailsArgs...); err != nil {
		return fmt.Errorf("insert game details: %w", mapConstraintError(err))
	}

	const insertRecordQuery = `
INSERT INTO game_records (id, player_id, game_details_ref, outcome, ranking_change)
VALUES (:id, :player_id, :game_details_ref, :outcome, :ranking_change)`

	recordRow := gameRecordTableModel{
		ID:             rec.ID,
		PlayerID:       rec.PlayerID,
		GameDetailsRef: rec.DetailsRef,
		Outcome:        string(rec.Outcome),
	}
	if rec.RankingChange != nil {
		recordRow.RankingChange = sql.NullInt64{Int64: int64(*rec.RankingChange), Valid: true}
	}
	recordSQL, recordArgs, err := sqlx.Named(insertRecordQuery, recordRow)
	if err != nil {
		return fmt.Errorf("bind insert game record query: %w", err)
	}
	recordSQL = tx.Rebind(recordSQL)
	if _, err := tx.ExecContext(ctx, recordSQL, recordArgs...); err != nil {
		return fmt.Errorf("insert game record: %w", mapConstraintError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit game record tx: %w", err)
	}

	return nil
}

func (r *GameRepository) CountByOutcome(ctx context.Context, playerID string) (map[game.Outcome]int, error) {
	query, args, err := qb.Select("outcome", "COUNT(*) AS total").From("game_records").
		Where(qb.Eq("player_id", playerID)).
		GroupBy("outcome").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build count games by outcome query: %w", err)
	}

	var rows []struct {
		Outcome string `db:"outcome"`
		Total   int    `db:"total"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("count games by outcome: %w", err)
	}

	counts := make(map[game.Outcome]int, len(rows))
	for _, row := range rows {
		counts[game.Outcome(row.Outcome)] = row.Total
	}

	return counts, nil
}
