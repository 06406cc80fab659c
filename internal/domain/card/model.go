package card

// Card is one catalog entry. Kind selects which specialization payload is set;
// a card never carries both and never carries neither.
type Card struct {
	ID               string
	Name             string
	SetName          SetName
	PackName         PackName
	CollectionNumber string
	Rarity           Rarity
	ImageURL         string
	Kind             Kind
	Pokemon          *PokemonDetails
	Trainer          *TrainerDetails
}

// PokemonDetails carries the pokemon-specific half of a card.
type PokemonDetails struct {
	HP          int
	Type        EnergyType
	Stage       Stage
	EvolvesFrom string
	Weakness    EnergyType
	RetreatCost int
	Abilities   []PokemonAbility
}

// TrainerDetails carries the trainer-specific half of a card.
type TrainerDetails struct {
	Abilities []SupportAbility
}

// PokemonAbility links a pokemon card to a catalog ability and carries the
// per-card cost, effect text and optional attack damage.
type PokemonAbility struct {
	ID         string
	AbilityRef string
	EnergyCost map[EnergyType]int
	Effect     string
	Damage     *int
}

// SupportAbility links a trainer card to a catalog ability.
type SupportAbility struct {
	ID          string
	AbilityRef  string
	SupportType SupportType
	Effect      string
}

// AbilityRefs collects the catalog ability ids the card links to.
func (c Card) AbilityRefs() []string {
	var refs []string
	switch c.Kind {
	case KindPokemon:
		if c.Pokemon == nil {
			return nil
		}
		for _, a := range c.Pokemon.Abilities {
			refs = append(refs, a.AbilityRef)
		}
	case KindTrainer:
		if c.Trainer == nil {
			return nil
		}
		for _, a := range c.Trainer.Abilities {
			refs = append(refs, a.AbilityRef)
		}
	}
	return refs
}

// Filter narrows catalog listings; zero-valued fields match everything.
type Filter struct {
	SetName  SetName
	PackName PackName
	Rarity   Rarity
}

// Page is offset-based pagination for catalog listings.
type Page struct {
	Skip  int
	Limit int
}
