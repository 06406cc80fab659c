package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ptcgpocket/companion/internal/domain/deck"
	qb "github.com/ptcgpocket/companion/internal/platform/querybuilder"
)

type DeckRepository struct {
	db *sqlx.DB
}

type deckTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	OwnerID     string    `db:"owner_id"`
	Description string    `db:"description"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var deckSelectColumns = []string{
	"id",
	"name",
	"owner_id",
	"description",
	"is_active",
	"created_at",
	"updated_at",
}

func NewDeckRepository(db *sqlx.DB) *DeckRepository {
	return &DeckRepository{db: db}
}

func (r *DeckRepository) Create(ctx context.Context, d deck.Deck) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for deck create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertDeckQuery = `
INSERT INTO decks (id, name, owner_id, description, is_active, created_at, updated_at)
VALUES (:id, :name, :owner_id, :description, :is_active, :created_at, :updated_at)`

	deckSQL, deckArgs, err := sqlx.Named(insertDeckQuery, deckToTableModel(d))
	if err != nil {
		return fmt.Errorf("bind insert deck query: %w", err)
	}
	deckSQL = tx.Rebind(deckSQL)
	if _, err := tx.ExecContext(ctx, deckSQL, deckArgs...); err != nil {
		return fmt.Errorf("insert deck: %w", mapConstraintError(err))
	}

	if err := insertDeckCards(ctx, tx, d.ID, d.CardIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit deck create tx: %w", err)
	}

	return nil
}

// Update replaces the deck row and the whole deck_cards set together so a
// reader never sees a half-replaced card list.
func (r *DeckRepository) Update(ctx context.Context, d deck.Deck) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for deck update: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const updateDeckQuery = `
UPDATE decks
SET name = :name,
    description = :description,
    is_active = :is_active,
    updated_at = :updated_at
WHERE id = :id`

	deckSQL, deckArgs, err := sqlx.Named(updateDeckQuery, deckToTableModel(d))
	if err != nil {
		return fmt.Errorf("bind update deck query: %w", err)
	}
	deckSQL = tx.Rebind(deckSQL)
	result, err := tx.ExecContext(ctx, deckSQL, deckArgs...)
	if err != nil {
		return fmt.Errorf("update deck: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update deck rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update deck: deck %s does not exist", d.ID)
	}

	clearQuery, clearArgs, err := qb.DeleteFrom("deck_cards").
		Where(qb.Eq("deck_id", d.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear deck cards query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear deck cards: %w", err)
	}

	if err := insertDeckCards(ctx, tx, d.ID, d.CardIDs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit deck update tx: %w", err)
	}

	return nil
}

// Slot preserves the submitted order and makes duplicate card references
// distinct rows.
func insertDeckCards(ctx context.Context, tx *sqlx.Tx, deckID string, cardIDs []string) error {
	builder := qb.InsertInto("deck_cards").Columns("deck_id", "card_id", "slot")
	for slot, cardID := range cardIDs {
		builder = builder.Values(deckID, cardID, slot)
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return fmt.Errorf("build insert deck cards query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert deck cards: %w", mapConstraintError(err))
	}
	return nil
}

func (r *DeckRepository) GetByID(ctx context.Context, id string) (deck.Deck, bool, error) {
	query, args, err := qb.Select(deckSelectColumns...).From("decks").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return deck.Deck{}, false, fmt.Errorf("build select deck query: %w", err)
	}

	var row deckTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return deck.Deck{}, false, nil
		}
		return deck.Deck{}, false, fmt.Errorf("select deck: %w", err)
	}

	decks, err := r.attachCards(ctx, []deck.Deck{deckFromTableModel(row)})
	if err != nil {
		return deck.Deck{}, false, err
	}

	return decks[0], true, nil
}

func (r *DeckRepository) ListByOwner(ctx context.Context, ownerID string) ([]deck.Deck, error) {
	query, args, err := qb.Select(deckSelectColumns...).From("decks").
		Where(qb.Eq("owner_id", ownerID)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list decks query: %w", err)
	}

	var rows []deckTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list decks by owner: %w", err)
	}

	out := make([]deck.Deck, 0, len(rows))
	for _, row := range rows {
		out = append(out, deckFromTableModel(row))
	}

	return r.attachCards(ctx, out)
}

func (r *DeckRepository) attachCards(ctx context.Context, decks []deck.Deck) ([]deck.Deck, error) {
	if len(decks) == 0 {
		return []deck.Deck{}, nil
	}

	ids := make([]string, 0, len(decks))
	index := make(map[string]int, len(decks))
	for i, d := range decks {
		ids = append(ids, d.ID)
		index[d.ID] = i
	}

	query, args, err := qb.Select("deck_id", "card_id").From("deck_cards").
		Where(qb.In("deck_id", stringSliceToAny(ids))).
		OrderBy("deck_id", "slot").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select deck cards query: %w", err)
	}

	var rows []struct {
		DeckID string `db:"deck_id"`
		CardID string `db:"card_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select deck cards: %w", err)
	}

	for _, row := range rows {
		i, ok := index[row.DeckID]
		if !ok {
			continue
		}
		decks[i].CardIDs = append(decks[i].CardIDs, row.CardID)
	}

	return decks, nil
}

func deckToTableModel(d deck.Deck) deckTableModel {
	return deckTableModel{
		ID:          d.ID,
		Name:        d.Name,
		OwnerID:     d.OwnerID,
		Description: d.Description,
		IsActive:    d.IsActive,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func deckFromTableModel(row deckTableModel) deck.Deck {
	return deck.Deck{
		ID:          row.ID,
		Name:        row.Name,
		OwnerID:     row.OwnerID,
		Description: row.Description,
		IsActive:    row.IsActive,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
