package card

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSetName     = errors.New("unknown set name")
	ErrUnknownPackName    = errors.New("unknown pack name")
	ErrPackSetMismatch    = errors.New("pack does not belong to set")
	ErrUnknownRarity      = errors.New("unknown rarity")
	ErrUnknownEnergyType  = errors.New("unknown energy type")
	ErrUnknownWeakness    = errors.New("unknown weakness")
	ErrUnknownStage       = errors.New("unknown stage")
	ErrUnknownSupportType = errors.New("unknown support type")
	ErrUnknownKind        = errors.New("unknown card kind")
	ErrEvolutionMismatch  = errors.New("stage and evolves_from are inconsistent")
	ErrInvalidHP          = errors.New("hp must be greater than zero")
	ErrInvalidRetreatCost = errors.New("retreat cost cannot be negative")
	ErrInvalidDamage      = errors.New("damage cannot be negative")
	ErrInvalidEnergyCost  = errors.New("invalid energy cost")
	ErrSpecializationMiss = errors.New("card kind and specialization payload disagree")

	// ErrDuplicateCollectionNumber is surfaced by repositories when the
	// (set_name, collection_number) pair is already taken.
	ErrDuplicateCollectionNumber = errors.New("collection number already used in set")

	// ErrMissingCard reports a foreign key violation: a row that references
	// a card was written after the card vanished.
	ErrMissingCard = errors.New("referenced card does not exist")
)

// Validate checks the whole card: base fields, kind/payload exclusivity and
// the specialization's own rules. It is pure and runs before any persistence.
func (c Card) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("card name is required")
	}
	if c.CollectionNumber == "" {
		return fmt.Errorf("collection number is required")
	}
	if _, ok := AllSetNames[c.SetName]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetName, c.SetName)
	}
	packSet, ok := SetByPack[c.PackName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPackName, c.PackName)
	}
	if packSet != c.SetName {
		return fmt.Errorf("%w: pack=%s set=%s", ErrPackSetMismatch, c.PackName, c.SetName)
	}
	if _, ok := AllRarities[c.Rarity]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownRarity, c.Rarity)
	}

	switch c.Kind {
	case KindPokemon:
		if c.Pokemon == nil || c.Trainer != nil {
			return ErrSpecializationMiss
		}
		return c.Pokemon.validate()
	case KindTrainer:
		if c.Trainer == nil || c.Pokemon != nil {
			return ErrSpecializationMiss
		}
		return c.Trainer.validate()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKind, c.Kind)
	}
}

func (p PokemonDetails) validate() error {
	if p.HP <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidHP, p.HP)
	}
	if _, ok := AllEnergyTypes[p.Type]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEnergyType, p.Type)
	}
	if _, ok := AllStages[p.Stage]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownStage, p.Stage)
	}
	if _, ok := AllWeaknesses[p.Weakness]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownWeakness, p.Weakness)
	}
	if p.RetreatCost < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRetreatCost, p.RetreatCost)
	}
	if err := p.validateEvolution(); err != nil {
		return err
	}
	for _, a := range p.Abilities {
		if err := a.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (p PokemonDetails) validateEvolution() error {
	switch p.Stage {
	case StageOne, StageTwo:
		if p.EvolvesFrom == "" {
			return fmt.Errorf("%w: %s requires evolves_from", ErrEvolutionMismatch, p.Stage)
		}
	case StageBasic:
		if p.EvolvesFrom != "" {
			return fmt.Errorf("%w: basic pokemon cannot evolve from %s", ErrEvolutionMismatch, p.EvolvesFrom)
		}
	}
	return nil
}

func (a PokemonAbility) validate() error {
	if a.AbilityRef == "" {
		return fmt.Errorf("ability reference is required")
	}
	if a.Effect == "" {
		return fmt.Errorf("ability effect is required")
	}
	if a.Damage != nil && *a.Damage < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDamage, *a.Damage)
	}
	for energy, count := range a.EnergyCost {
		if _, ok := AllEnergyTypes[energy]; !ok {
			return fmt.Errorf("%w: unknown energy %s", ErrInvalidEnergyCost, energy)
		}
		if count < 0 {
			return fmt.Errorf("%w: negative count for %s", ErrInvalidEnergyCost, energy)
		}
	}
	return nil
}

func (t TrainerDetails) validate() error {
	for _, a := range t.Abilities {
		if a.AbilityRef == "" {
			return fmt.Errorf("ability reference is required")
		}
		if a.Effect == "" {
			return fmt.Errorf("effect description is required")
		}
		if _, ok := AllSupportTypes[a.SupportType]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSupportType, a.SupportType)
		}
	}
	return nil
}

// Validate rejects filter values outside the closed enum sets. Empty fields
// mean "no filter" and pass.
func (f Filter) Validate() error {
	if f.SetName != "" {
		if _, ok := AllSetNames[f.SetName]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownSetName, f.SetName)
		}
	}
	if f.PackName != "" {
		if _, ok := SetByPack[f.PackName]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPackName, f.PackName)
		}
	}
	if f.Rarity != "" {
		if _, ok := AllRarities[f.Rarity]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownRarity, f.Rarity)
		}
	}
	return nil
}
