package card

// SetName identifies a card release set.
type SetName string

const (
	SetGeneticApex    SetName = "Genetic Apex (A1)"
	SetMythicalIsland SetName = "Mythical Island (A1a)"
)

var AllSetNames = map[SetName]struct{}{
	SetGeneticApex:    {},
	SetMythicalIsland: {},
}

// PackName identifies a booster pack within a set.
type PackName string

const (
	PackCharizard PackName = "(A1) Charizard"
	PackPikachu   PackName = "(A1) Pikachu"
	PackMewtwo    PackName = "(A1) Mewtwo"
	PackMew       PackName = "(A1a) Mew"
)

// SetByPack is the single source of truth for which set each pack ships in.
var SetByPack = map[PackName]SetName{
	PackCharizard: SetGeneticApex,
	PackPikachu:   SetGeneticApex,
	PackMewtwo:    SetGeneticApex,
	PackMew:       SetMythicalIsland,
}

// Rarity is the printed rarity tier of a card.
type Rarity string

const (
	RarityDiamond1 Rarity = "1 Diamond"
	RarityDiamond2 Rarity = "2 Diamond"
	RarityDiamond3 Rarity = "3 Diamond"
	RarityDiamond4 Rarity = "4 Diamond"
	RarityStar1    Rarity = "1 Star"
	RarityStar2    Rarity = "2 Star"
	RarityStar3    Rarity = "3 Star"
	RarityCrown    Rarity = "Crown"
	RarityPromo    Rarity = "Promo"
)

var AllRarities = map[Rarity]struct{}{
	RarityDiamond1: {},
	RarityDiamond2: {},
	RarityDiamond3: {},
	RarityDiamond4: {},
	RarityStar1:    {},
	RarityStar2:    {},
	RarityStar3:    {},
	RarityCrown:    {},
	RarityPromo:    {},
}

// EnergyType is an energy color. EnergyNone is only legal as a weakness.
type EnergyType string

const (
	EnergyFire      EnergyType = "Fire"
	EnergyWater     EnergyType = "Water"
	EnergyGrass     EnergyType = "Grass"
	EnergyMetal     EnergyType = "Metal"
	EnergyElectric  EnergyType = "Electric"
	EnergyColorless EnergyType = "Colorless"
	EnergyDragon    EnergyType = "Dragon"
	EnergyFighting  EnergyType = "Fighting"
	EnergyPsychic   EnergyType = "Psychic"
	EnergyDarkness  EnergyType = "Darkness"
	EnergyNone      EnergyType = "None"
)

var AllEnergyTypes = map[EnergyType]struct{}{
	EnergyFire:      {},
	EnergyWater:     {},
	EnergyGrass:     {},
	EnergyMetal:     {},
	EnergyElectric:  {},
	EnergyColorless: {},
	EnergyDragon:    {},
	EnergyFighting:  {},
	EnergyPsychic:   {},
	EnergyDarkness:  {},
}

var AllWeaknesses = map[EnergyType]struct{}{
	EnergyFire:      {},
	EnergyWater:     {},
	EnergyGrass:     {},
	EnergyMetal:     {},
	EnergyElectric:  {},
	EnergyColorless: {},
	EnergyDragon:    {},
	EnergyFighting:  {},
	EnergyPsychic:   {},
	EnergyDarkness:  {},
	EnergyNone:      {},
}

// Stage is the evolution stage of a Pokemon card.
type Stage string

const (
	StageBasic Stage = "Basic"
	StageOne   Stage = "Stage 1"
	StageTwo   Stage = "Stage 2"
)

var AllStages = map[Stage]struct{}{
	StageBasic: {},
	StageOne:   {},
	StageTwo:   {},
}

// SupportType classifies a trainer card ability.
type SupportType string

const (
	SupportTrainer SupportType = "Trainer"
	SupportItem    SupportType = "Item"
)

var AllSupportTypes = map[SupportType]struct{}{
	SupportTrainer: {},
	SupportItem:    {},
}

// Kind discriminates the card specialization.
type Kind string

const (
	KindPokemon Kind = "pokemon"
	KindTrainer Kind = "trainer"
)

var AllKinds = map[Kind]struct{}{
	KindPokemon: {},
	KindTrainer: {},
}
