package usecase

import (
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/infrastructure/repository/memory"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

type seqIDGenerator struct {
	prefix string
	n      atomic.Int64
}

func (g *seqIDGenerator) NewID() (string, error) {
	return fmt.Sprintf("%s-%03d", g.prefix, g.n.Add(1)), nil
}

func newCardService() *CardService {
	return NewCardService(
		memory.NewCardRepository(memory.SeedCards()),
		memory.NewAbilityRepository(memory.SeedAbilities()),
		&seqIDGenerator{prefix: "card"},
		logging.NewNop(),
	)
}

func TestCardService_CreatePokemonCard(t *testing.T) {
	service := newCardService()

	damage := 30
	created, err := service.CreatePokemonCard(t.Context(), CreatePokemonCardInput{
		Name:             "Charmander",
		SetName:          "Genetic Apex (A1)",
		PackName:         "(A1) Charizard",
		CollectionNumber: "033",
		Rarity:           "1 Diamond",
		HP:               60,
		Type:             "Fire",
		Stage:            "Basic",
		Weakness:         "Water",
		RetreatCost:      1,
		Abilities: []PokemonAbilityInput{
			{
				AbilityRef: memory.AbilityIDGnaw,
				EnergyCost: map[string]int{"Fire": 1},
				Effect:     "Deal 30 damage.",
				Damage:     &damage,
			},
		},
	})
	if err != nil {
		t.Fatalf("create pokemon card failed: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected generated card id")
	}
	if created.Kind != card.KindPokemon || created.Pokemon == nil {
		t.Fatalf("expected pokemon specialization, got kind=%s", created.Kind)
	}
	if len(created.Pokemon.Abilities) != 1 || created.Pokemon.Abilities[0].ID == "" {
		t.Fatalf("expected one ability link with generated id, got %+v", created.Pokemon.Abilities)
	}

	fetched, err := service.GetCard(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get card failed: %v", err)
	}
	if fetched.Name != "Charmander" || *fetched.Pokemon.Abilities[0].Damage != 30 {
		t.Fatalf("round trip mismatch: %+v", fetched)
	}
}

func TestCardService_CreatePokemonCard_RejectsUnknownEnums(t *testing.T) {
	service := newCardService()

	base := CreatePokemonCardInput{
		Name:             "Charmander",
		SetName:          "Genetic Apex (A1)",
		PackName:         "(A1) Charizard",
		CollectionNumber: "033",
		Rarity:           "1 Diamond",
		HP:               60,
		Type:             "Fire",
		Stage:            "Basic",
		Weakness:         "Water",
		RetreatCost:      1,
	}

	tests := []struct {
		name   string
		mutate func(in *CreatePokemonCardInput)
	}{
		{"unknown set", func(in *CreatePokemonCardInput) { in.SetName = "Space-Time Smackdown" }},
		{"pack from another set", func(in *CreatePokemonCardInput) { in.PackName = "(A1a) Mew" }},
		{"unknown rarity", func(in *CreatePokemonCardInput) { in.Rarity = "5 Diamond" }},
		{"unknown type", func(in *CreatePokemonCardInput) { in.Type = "Fairy" }},
		{"none as type", func(in *CreatePokemonCardInput) { in.Type = "None" }},
		{"unknown stage", func(in *CreatePokemonCardInput) { in.Stage = "Mega" }},
		{"stage 1 without evolves_from", func(in *CreatePokemonCardInput) { in.Stage = "Stage 1" }},
		{"zero hp", func(in *CreatePokemonCardInput) { in.HP = 0 }},
		{"negative retreat cost", func(in *CreatePokemonCardInput) { in.RetreatCost = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			_, err := service.CreatePokemonCard(t.Context(), in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestCardService_CreateTrainerCard_MissingAbilityRef(t *testing.T) {
	service := newCardService()

	_, err := service.CreateTrainerCard(t.Context(), CreateTrainerCardInput{
		Name:             "X Speed",
		SetName:          "Genetic Apex (A1)",
		PackName:         "(A1) Mewtwo",
		CollectionNumber: "220",
		Rarity:           "1 Diamond",
		Abilities: []SupportAbilityInput{
			{AbilityRef: "ability-does-not-exist", SupportType: "Item", Effect: "Reduce retreat cost."},
		},
	})
	if !errors.Is(err, ErrMissingReference) {
		t.Fatalf("expected ErrMissingReference, got %v", err)
	}
}

func TestCardService_CreateCard_DuplicateCollectionNumber(t *testing.T) {
	service := newCardService()

	// Seeded Pikachu already holds 094 in Genetic Apex.
	_, err := service.CreatePokemonCard(t.Context(), CreatePokemonCardInput{
		Name:             "Pikachu",
		SetName:          "Genetic Apex (A1)",
		PackName:         "(A1) Pikachu",
		CollectionNumber: "094",
		Rarity:           "1 Diamond",
		HP:               60,
		Type:             "Electric",
		Stage:            "Basic",
		Weakness:         "Fighting",
		RetreatCost:      1,
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestCardService_ListCards(t *testing.T) {
	service := newCardService()

	electric, err := service.ListCards(t.Context(), ListCardsInput{PackName: "(A1) Pikachu"})
	if err != nil {
		t.Fatalf("list cards failed: %v", err)
	}
	if len(electric) != 3 {
		t.Fatalf("expected 3 pikachu-pack cards, got %d", len(electric))
	}
	if electric[0].CollectionNumber > electric[1].CollectionNumber {
		t.Fatalf("expected collection number ordering, got %s before %s",
			electric[0].CollectionNumber, electric[1].CollectionNumber)
	}

	paged, err := service.ListCards(t.Context(), ListCardsInput{SetName: "Genetic Apex (A1)", Skip: 2, Limit: 4})
	if err != nil {
		t.Fatalf("list cards paged failed: %v", err)
	}
	if len(paged) != 4 {
		t.Fatalf("expected limit of 4 cards after skipping 2 of 9, got %d", len(paged))
	}

	if _, err := service.ListCards(t.Context(), ListCardsInput{Rarity: "Shiny"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown rarity filter, got %v", err)
	}
	if _, err := service.ListCards(t.Context(), ListCardsInput{Skip: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative skip, got %v", err)
	}
}

func TestCardService_GetCard_NotFound(t *testing.T) {
	service := newCardService()

	_, err := service.GetCard(t.Context(), "card-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
