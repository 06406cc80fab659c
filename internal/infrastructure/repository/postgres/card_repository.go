package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ptcgpocket/companion/internal/domain/card"
	qb "github.com/ptcgpocket/companion/internal/platform/querybuilder"
)

type CardRepository struct {
	db *sqlx.DB
}

var cardSelectColumns = []string{
	"id",
	"name",
	"set_name",
	"pack_name",
	"collection_number",
	"rarity",
	"image_url",
	"kind",
}

func NewCardRepository(db *sqlx.DB) *CardRepository {
	return &CardRepository{db: db}
}

// Create writes the base card row, its specialization row and all ability
// link rows in one transaction.
func (r *CardRepository) Create(ctx context.Context, c card.Card) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for card create: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertCardQuery = `
INSERT INTO cards (id, name, set_name, pack_name, collection_number, rarity, image_url, kind)
VALUES (:id, :name, :set_name, :pack_name, :collection_number, :rarity, :image_url, :kind)`

	cardRow := cardTableModel{
		ID:               c.ID,
		Name:             c.Name,
		SetName:          string(c.SetName),
		PackName:         string(c.PackName),
		CollectionNumber: c.CollectionNumber,
		Rarity:           string(c.Rarity),
		ImageURL:         c.ImageURL,
		Kind:             string(c.Kind),
	}
	cardSQL, cardArgs, err := sqlx.Named(insertCardQuery, cardRow)
	if err != nil {
		return fmt.Errorf("bind insert card query: %w", err)
	}
	cardSQL = tx.Rebind(cardSQL)
	if _, err := tx.ExecContext(ctx, cardSQL, cardArgs...); err != nil {
		return fmt.Errorf("insert card: %w", mapConstraintError(err))
	}

	switch c.Kind {
	case card.KindPokemon:
		if err := insertPokemonRows(ctx, tx, c); err != nil {
			return err
		}
	case card.KindTrainer:
		if err := insertTrainerRows(ctx, tx, c); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit card create tx: %w", err)
	}

	return nil
}

func insertPokemonRows(ctx context.Context, tx *sqlx.Tx, c card.Card) error {
	const insertPokemonQuery = `
INSERT INTO pokemon_cards (card_id, hp, energy_type, stage, evolves_from, weakness, retreat_cost)
VALUES (:card_id, :hp, :energy_type, :stage, :evolves_from, :weakness, :retreat_cost)`

	pokemonRow := pokemonCardTableModel{
		CardID:      c.ID,
		HP:          c.Pokemon.HP,
		EnergyType:  string(c.Pokemon.Type),
		Stage:       string(c.Pokemon.Stage),
		EvolvesFrom: c.Pokemon.EvolvesFrom,
		Weakness:    string(c.Pokemon.Weakness),
		RetreatCost: c.Pokemon.RetreatCost,
	}
	pokemonSQL, pokemonArgs, err := sqlx.Named(insertPokemonQuery, pokemonRow)
	if err != nil {
		return fmt.Errorf("bind insert pokemon card query: %w", err)
	}
	pokemonSQL = tx.Rebind(pokemonSQL)
	if _, err := tx.ExecContext(ctx, pokemonSQL, pokemonArgs...); err != nil {
		return fmt.Errorf("insert pokemon card: %w", mapConstraintError(err))
	}

	const insertAbilityQuery = `
INSERT INTO pokemon_abilities (id, card_id, ability_id, energy_cost, effect, damage)
VALUES (:id, :card_id, :ability_id, :energy_cost, :effect, :damage)`

	for _, a := range c.Pokemon.Abilities {
		row, err := pokemonAbilityToTableModel(c.ID, a)
		if err != nil {
			return err
		}
		abilitySQL, abilityArgs, err := sqlx.Named(insertAbilityQuery, row)
		if err != nil {
			return fmt.Errorf("bind insert pokemon ability %s query: %w", a.ID, err)
		}
		abilitySQL = tx.Rebind(abilitySQL)
		if _, err := tx.ExecContext(ctx, abilitySQL, abilityArgs...); err != nil {
			return fmt.Errorf("insert pokemon ability %s: %w", a.ID, mapConstraintError(err))
		}
	}

	return nil
}

func insertTrainerRows(ctx context.Context, tx *sqlx.Tx, c card.Card) error {
	const insertAbilityQuery = `
INSERT INTO support_abilities (id, card_id, ability_id, support_type, effect)
VALUES (:id, :card_id, :ability_id, :support_type, :effect)`

	for _, a := range c.Trainer.Abilities {
		row := supportAbilityTableModel{
			ID:          a.ID,
			CardID:      c.ID,
			AbilityID:   a.AbilityRef,
			SupportType: string(a.SupportType),
			Effect:      a.Effect,
		}
		abilitySQL, abilityArgs, err := sqlx.Named(insertAbilityQuery, row)
		if err != nil {
			return fmt.Errorf("bind insert support ability %s query: %w", a.ID, err)
		}
		abilitySQL = tx.Rebind(abilitySQL)
		if _, err := tx.ExecContext(ctx, abilitySQL, abilityArgs...); err != nil {
			return fmt.Errorf("insert support ability %s: %w", a.ID, mapConstraintError(err))
		}
	}

	return nil
}

func (r *CardRepository) GetByID(ctx context.Context, id string) (card.Card, bool, error) {
	query, args, err := qb.Select(cardSelectColumns...).From("cards").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return card.Card{}, false, fmt.Errorf("build select card query: %w", err)
	}

	var row cardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return card.Card{}, false, nil
		}
		return card.Card{}, false, fmt.Errorf("select card: %w", err)
	}

	cards, err := r.attachDetails(ctx, []card.Card{cardFromTableModel(row)})
	if err != nil {
		return card.Card{}, false, err
	}

	return cards[0], true, nil
}

func (r *CardRepository) GetByIDs(ctx context.Context, ids []string) ([]card.Card, error) {
	if len(ids) == 0 {
		return []card.Card{}, nil
	}

	query, args, err := qb.Select(cardSelectColumns...).From("cards").
		Where(qb.In("id", stringSliceToAny(ids))).
		OrderBy("set_name", "collection_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select cards by ids query: %w", err)
	}

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select cards by ids: %w", err)
	}

	out := make([]card.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, cardFromTableModel(row))
	}

	return r.attachDetails(ctx, out)
}

func (r *CardRepository) GetBySetAndNumber(ctx context.Context, set card.SetName, collectionNumber string) (card.Card, bool, error) {
	query, args, err := qb.Select(cardSelectColumns...).From("cards").
		Where(
			qb.Eq("set_name", string(set)),
			qb.Eq("collection_number", collectionNumber),
		).
		ToSQL()
	if err != nil {
		return card.Card{}, false, fmt.Errorf("build select card by number query: %w", err)
	}

	var row cardTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return card.Card{}, false, nil
		}
		return card.Card{}, false, fmt.Errorf("select card by number: %w", err)
	}

	cards, err := r.attachDetails(ctx, []card.Card{cardFromTableModel(row)})
	if err != nil {
		return card.Card{}, false, err
	}

	return cards[0], true, nil
}

func (r *CardRepository) List(ctx context.Context, filter card.Filter, page card.Page) ([]card.Card, error) {
	builder := qb.Select(cardSelectColumns...).From("cards")

	var conditions []qb.Condition
	if filter.SetName != "" {
		conditions = append(conditions, qb.Eq("set_name", string(filter.SetName)))
	}
	if filter.PackName != "" {
		conditions = append(conditions, qb.Eq("pack_name", string(filter.PackName)))
	}
	if filter.Rarity != "" {
		conditions = append(conditions, qb.Eq("rarity", string(filter.Rarity)))
	}
	if len(conditions) > 0 {
		builder = builder.Where(conditions...)
	}

	query, args, err := builder.
		OrderBy("set_name", "collection_number").
		Limit(page.Limit).
		Offset(page.Skip).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	var rows []cardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	out := make([]card.Card, 0, len(rows))
	for _, row := range rows {
		out = append(out, cardFromTableModel(row))
	}

	return r.attachDetails(ctx, out)
}

// attachDetails loads the specialization halves for a page of base rows with
// one query per table instead of one per card.
func (r *CardRepository) attachDetails(ctx context.Context, cards []card.Card) ([]card.Card, error) {
	if len(cards) == 0 {
		return []card.Card{}, nil
	}

	pokemonIDs := make([]string, 0, len(cards))
	trainerIDs := make([]string, 0, len(cards))
	index := make(map[string]int, len(cards))
	for i, c := range cards {
		index[c.ID] = i
		switch c.Kind {
		case card.KindPokemon:
			pokemonIDs = append(pokemonIDs, c.ID)
		case card.KindTrainer:
			trainerIDs = append(trainerIDs, c.ID)
		}
	}

	if len(pokemonIDs) > 0 {
		if err := r.attachPokemonDetails(ctx, cards, index, pokemonIDs); err != nil {
			return nil, err
		}
	}
	if len(trainerIDs) > 0 {
		if err := r.attachTrainerDetails(ctx, cards, index, trainerIDs); err != nil {
			return nil, err
		}
	}

	return cards, nil
}

func (r *CardRepository) attachPokemonDetails(ctx context.Context, cards []card.Card, index map[string]int, ids []string) error {
	query, args, err := qb.Select("card_id", "hp", "energy_type", "stage", "evolves_from", "weakness", "retreat_cost").
		From("pokemon_cards").
		Where(qb.In("card_id", stringSliceToAny(ids))).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select pokemon cards query: %w", err)
	}

	var rows []pokemonCardTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("select pokemon cards: %w", err)
	}
	for _, row := range rows {
		i, ok := index[row.CardID]
		if !ok {
			continue
		}
		cards[i].Pokemon = &card.PokemonDetails{
			HP:          row.HP,
			Type:        card.EnergyType(row.EnergyType),
			Stage:       card.Stage(row.Stage),
			EvolvesFrom: row.EvolvesFrom,
			Weakness:    card.EnergyType(row.Weakness),
			RetreatCost: row.RetreatCost,
		}
	}

	query, args, err = qb.Select("id", "card_id", "ability_id", "energy_cost", "effect", "damage").
		From("pokemon_abilities").
		Where(qb.In("card_id", stringSliceToAny(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select pokemon abilities query: %w", err)
	}

	var abilityRows []pokemonAbilityTableModel
	if err := r.db.SelectContext(ctx, &abilityRows, query, args...); err != nil {
		return fmt.Errorf("select pokemon abilities: %w", err)
	}
	for _, row := range abilityRows {
		i, ok := index[row.CardID]
		if !ok || cards[i].Pokemon == nil {
			continue
		}
		a, err := pokemonAbilityFromTableModel(row)
		if err != nil {
			return err
		}
		cards[i].Pokemon.Abilities = append(cards[i].Pokemon.Abilities, a)
	}

	return nil
}

func (r *CardRepository) attachTrainerDetails(ctx context.Context, cards []card.Card, index map[string]int, ids []string) error {
	query, args, err := qb.Select("id", "card_id", "ability_id", "support_type", "effect").
		From("support_abilities").
		Where(qb.In("card_id", stringSliceToAny(ids))).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build select support abilities query: %w", err)
	}

	var rows []supportAbilityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return fmt.Errorf("select support abilities: %w", err)
	}

	for i := range cards {
		if cards[i].Kind == card.KindTrainer {
			cards[i].Trainer = &card.TrainerDetails{}
		}
	}
	for _, row := range rows {
		i, ok := index[row.CardID]
		if !ok || cards[i].Trainer == nil {
			continue
		}
		cards[i].Trainer.Abilities = append(cards[i].Trainer.Abilities, card.SupportAbility{
			ID:          row.ID,
			AbilityRef:  row.AbilityID,
			SupportType: card.SupportType(row.SupportType),
			Effect:      row.Effect,
		})
	}

	return nil
}
