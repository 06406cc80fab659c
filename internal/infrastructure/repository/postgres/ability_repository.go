package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	qb "github.com/ptcgpocket/companion/internal/platform/querybuilder"
)

type AbilityRepository struct {
	db *sqlx.DB
}

type abilityTableModel struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

func NewAbilityRepository(db *sqlx.DB) *AbilityRepository {
	return &AbilityRepository{db: db}
}

func (r *AbilityRepository) Create(ctx context.Context, a ability.Ability) error {
	query, args, err := qb.InsertModel("abilities", abilityTableModel{ID: a.ID, Name: a.Name}, "")
	if err != nil {
		return fmt.Errorf("build insert ability query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert ability: %w", mapConstraintError(err))
	}

	return nil
}

func (r *AbilityRepository) GetByIDs(ctx context.Context, ids []string) ([]ability.Ability, error) {
	if len(ids) == 0 {
		return []ability.Ability{}, nil
	}

	query, args, err := qb.Select("id", "name").From("abilities").
		Where(qb.In("id", stringSliceToAny(ids))).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select abilities by ids query: %w", err)
	}

	var rows []abilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select abilities by ids: %w", err)
	}

	out := make([]ability.Ability, 0, len(rows))
	for _, row := range rows {
		out = append(out, ability.Ability{ID: row.ID, Name: row.Name})
	}

	return out, nil
}

func (r *AbilityRepository) List(ctx context.Context) ([]ability.Ability, error) {
	query, args, err := qb.Select("id", "name").From("abilities").
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list abilities query: %w", err)
	}

	var rows []abilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list abilities: %w", err)
	}

	out := make([]ability.Ability, 0, len(rows))
	for _, row := range rows {
		out = append(out, ability.Ability{ID: row.ID, Name: row.Name})
	}

	return out, nil
}
