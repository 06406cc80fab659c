package memory

import (
	"time"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/domain/user"
)

const (
	AbilityIDGnaw      = "ability-gnaw"
	AbilityIDThunder   = "ability-thunder-punch"
	AbilityIDHeal      = "ability-heal-20"
	AbilityIDDrawTwo   = "ability-draw-two"
	CardIDPikachu      = "card-a1-pikachu"
	CardIDRaichu       = "card-a1-raichu"
	CardIDPotion       = "card-a1-potion"
	CardIDBulbasaur    = "card-a1-bulbasaur"
	CardIDSquirtle     = "card-a1-squirtle"
	CardIDCaterpie     = "card-a1-caterpie"
	CardIDMewtwo       = "card-a1-mewtwo"
	CardIDJigglypuff   = "card-a1-jigglypuff"
	CardIDMew          = "card-a1a-mew"
	CardIDPokeBall     = "card-a1-poke-ball"
	UserIDTrainerRed   = "user-trainer-red"
	UserIDTrainerBlue  = "user-trainer-blue"
	GoogleIDTrainerRed = "google-oauth2|red"
)

func SeedAbilities() []ability.Ability {
	return []ability.Ability{
		{ID: AbilityIDGnaw, Name: "Gnaw"},
		{ID: AbilityIDThunder, Name: "Thunder Punch"},
		{ID: AbilityIDHeal, Name: "Heal 20 Damage"},
		{ID: AbilityIDDrawTwo, Name: "Draw 2 Cards"},
	}
}

func SeedCards() []card.Card {
	damage20 := 20
	damage40 := 40
	return []card.Card{
		{
			ID:               CardIDPikachu,
			Name:             "Pikachu",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackPikachu,
			CollectionNumber: "094",
			Rarity:           card.RarityDiamond1,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP:          60,
				Type:        card.EnergyElectric,
				Stage:       card.StageBasic,
				Weakness:    card.EnergyFighting,
				RetreatCost: 1,
				Abilities: []card.PokemonAbility{
					{
						ID:         "link-pikachu-gnaw",
						AbilityRef: AbilityIDGnaw,
						EnergyCost: map[card.EnergyType]int{card.EnergyElectric: 1},
						Effect:     "Deal 20 damage.",
						Damage:     &damage20,
					},
				},
			},
		},
		{
			ID:               CardIDRaichu,
			Name:             "Raichu",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackPikachu,
			CollectionNumber: "095",
			Rarity:           card.RarityDiamond3,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP:          100,
				Type:        card.EnergyElectric,
				Stage:       card.StageOne,
				EvolvesFrom: "Pikachu",
				Weakness:    card.EnergyFighting,
				RetreatCost: 1,
				Abilities: []card.PokemonAbility{
					{
						ID:         "link-raichu-thunder-punch",
						AbilityRef: AbilityIDThunder,
						EnergyCost: map[card.EnergyType]int{card.EnergyElectric: 2},
						Effect:     "Flip a coin. If heads, deal 20 more damage.",
						Damage:     &damage40,
					},
				},
			},
		},
		{
			ID:               CardIDPotion,
			Name:             "Potion",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackCharizard,
			CollectionNumber: "219",
			Rarity:           card.RarityDiamond1,
			Kind:             card.KindTrainer,
			Trainer: &card.TrainerDetails{
				Abilities: []card.SupportAbility{
					{
						ID:          "link-potion-heal",
						AbilityRef:  AbilityIDHeal,
						SupportType: card.SupportItem,
						Effect:      "Heal 20 damage from 1 of your Pokemon.",
					},
				},
			},
		},
		{
			ID:               CardIDBulbasaur,
			Name:             "Bulbasaur",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackMewtwo,
			CollectionNumber: "001",
			Rarity:           card.RarityDiamond1,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP: 70, Type: card.EnergyGrass, Stage: card.StageBasic,
				Weakness: card.EnergyFire, RetreatCost: 1,
			},
		},
		{
			ID:               CardIDSquirtle,
			Name:             "Squirtle",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackPikachu,
			CollectionNumber: "053",
			Rarity:           card.RarityDiamond1,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP: 60, Type: card.EnergyWater, Stage: card.StageBasic,
				Weakness: card.EnergyElectric, RetreatCost: 1,
			},
		},
		{
			ID:               CardIDCaterpie,
			Name:             "Caterpie",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackCharizard,
			CollectionNumber: "005",
			Rarity:           card.RarityDiamond1,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP: 50, Type: card.EnergyGrass, Stage: card.StageBasic,
				Weakness: card.EnergyFire, RetreatCost: 1,
			},
		},
		{
			ID:               CardIDMewtwo,
			Name:             "Mewtwo",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackMewtwo,
			CollectionNumber: "129",
			Rarity:           card.RarityDiamond4,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP: 130, Type: card.EnergyPsychic, Stage: card.StageBasic,
				Weakness: card.EnergyDarkness, RetreatCost: 2,
			},
		},
		{
			ID:               CardIDJigglypuff,
			Name:             "Jigglypuff",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackCharizard,
			CollectionNumber: "111",
			Rarity:           card.RarityDiamond1,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP: 60, Type: card.EnergyPsychic, Stage: card.StageBasic,
				Weakness: card.EnergyMetal, RetreatCost: 1,
			},
		},
		{
			ID:               CardIDMew,
			Name:             "Mew",
			SetName:          card.SetMythicalIsland,
			PackName:         card.PackMew,
			CollectionNumber: "032",
			Rarity:           card.RarityDiamond3,
			Kind:             card.KindPokemon,
			Pokemon: &card.PokemonDetails{
				HP: 60, Type: card.EnergyPsychic, Stage: card.StageBasic,
				Weakness: card.EnergyDarkness, RetreatCost: 1,
			},
		},
		{
			ID:               CardIDPokeBall,
			Name:             "Poke Ball",
			SetName:          card.SetGeneticApex,
			PackName:         card.PackMewtwo,
			CollectionNumber: "218",
			Rarity:           card.RarityDiamond1,
			Kind:             card.KindTrainer,
			Trainer: &card.TrainerDetails{
				Abilities: []card.SupportAbility{
					{
						ID:          "link-poke-ball-draw",
						AbilityRef:  AbilityIDDrawTwo,
						SupportType: card.SupportItem,
						Effect:      "Put 1 random Basic Pokemon from your deck into your hand.",
					},
				},
			},
		},
	}
}

func SeedUsers() []user.User {
	created := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	return []user.User{
		{
			ID:        UserIDTrainerRed,
			Email:     "red@pallet.town",
			FullName:  "Red",
			GoogleID:  GoogleIDTrainerRed,
			IsActive:  true,
			CreatedAt: created,
			LastLogin: created,
		},
		{
			ID:        UserIDTrainerBlue,
			Email:     "blue@pallet.town",
			FullName:  "Blue",
			GoogleID:  "google-oauth2|blue",
			IsActive:  true,
			CreatedAt: created,
			LastLogin: created,
		},
	}
}
