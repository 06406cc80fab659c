package postgres

import (
	"database/sql"
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/ptcgpocket/companion/internal/domain/card"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

type cardTableModel struct {
	ID               string `db:"id"`
	Name             string `db:"name"`
	SetName          string `db:"set_name"`
	PackName         string `db:"pack_name"`
	CollectionNumber string `db:"collection_number"`
	Rarity           string `db:"rarity"`
	ImageURL         string `db:"image_url"`
	Kind             string `db:"kind"`
}

type pokemonCardTableModel struct {
	CardID      string `db:"card_id"`
	HP          int    `db:"hp"`
	EnergyType  string `db:"energy_type"`
	Stage       string `db:"stage"`
	EvolvesFrom string `db:"evolves_from"`
	Weakness    string `db:"weakness"`
	RetreatCost int    `db:"retreat_cost"`
}

type pokemonAbilityTableModel struct {
	ID         string        `db:"id"`
	CardID     string        `db:"card_id"`
	AbilityID  string        `db:"ability_id"`
	EnergyCost []byte        `db:"energy_cost"`
	Effect     string        `db:"effect"`
	Damage     sql.NullInt64 `db:"damage"`
}

type supportAbilityTableModel struct {
	ID          string `db:"id"`
	CardID      string `db:"card_id"`
	AbilityID   string `db:"ability_id"`
	SupportType string `db:"support_type"`
	Effect      string `db:"effect"`
}

func cardFromTableModel(row cardTableModel) card.Card {
	return card.Card{
		ID:               row.ID,
		Name:             row.Name,
		SetName:          card.SetName(row.SetName),
		PackName:         card.PackName(row.PackName),
		CollectionNumber: row.CollectionNumber,
		Rarity:           card.Rarity(row.Rarity),
		ImageURL:         row.ImageURL,
		Kind:             card.Kind(row.Kind),
	}
}

func pokemonAbilityFromTableModel(row pokemonAbilityTableModel) (card.PokemonAbility, error) {
	out := card.PokemonAbility{
		ID:         row.ID,
		AbilityRef: row.AbilityID,
		Effect:     row.Effect,
	}
	if len(row.EnergyCost) > 0 {
		if err := jsonCodec.Unmarshal(row.EnergyCost, &out.EnergyCost); err != nil {
			return card.PokemonAbility{}, fmt.Errorf("decode energy cost for ability %s: %w", row.ID, err)
		}
	}
	if row.Damage.Valid {
		damage := int(row.Damage.Int64)
		out.Damage = &damage
	}
	return out, nil
}

func pokemonAbilityToTableModel(cardID string, a card.PokemonAbility) (pokemonAbilityTableModel, error) {
	cost, err := jsonCodec.Marshal(a.EnergyCost)
	if err != nil {
		return pokemonAbilityTableModel{}, fmt.Errorf("encode energy cost for ability %s: %w", a.ID, err)
	}
	row := pokemonAbilityTableModel{
		ID:         a.ID,
		CardID:     cardID,
		AbilityID:  a.AbilityRef,
		EnergyCost: cost,
		Effect:     a.Effect,
	}
	if a.Damage != nil {
		row.Damage = sql.NullInt64{Int64: int64(*a.Damage), Valid: true}
	}
	return row, nil
}
