package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	idgen "github.com/ptcgpocket/companion/internal/platform/id"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

const (
	defaultListLimit = 100
	maxListLimit     = 500
)

// PokemonAbilityInput is one ability link on an incoming pokemon card.
type PokemonAbilityInput struct {
	AbilityRef string
	EnergyCost map[string]int
	Effect     string
	Damage     *int
}

// SupportAbilityInput is one ability link on an incoming trainer card.
type SupportAbilityInput struct {
	AbilityRef  string
	SupportType string
	Effect      string
}

// CreatePokemonCardInput is the incoming payload for the pokemon card create
// operation: base card fields plus the pokemon specialization.
type CreatePokemonCardInput struct {
	Name             string
	SetName          string
	PackName         string
	CollectionNumber string
	Rarity           string
	ImageURL         string
	HP               int
	Type             string
	Stage            string
	EvolvesFrom      string
	Weakness         string
	RetreatCost      int
	Abilities        []PokemonAbilityInput
}

// CreateTrainerCardInput is the incoming payload for the trainer card create
// operation.
type CreateTrainerCardInput struct {
	Name             string
	SetName          string
	PackName         string
	CollectionNumber string
	Rarity           string
	ImageURL         string
	Abilities        []SupportAbilityInput
}

// ListCardsInput carries optional equality filters and offset pagination.
type ListCardsInput struct {
	SetName  string
	PackName string
	Rarity   string
	Skip     int
	Limit    int
}

type CardService struct {
	cardRepo    card.Repository
	abilityRepo ability.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewCardService(
	cardRepo card.Repository,
	abilityRepo ability.Repository,
	idGen idgen.Generator,
	logger *logging.Logger,
) *CardService {
	if logger == nil {
		logger = logging.Default()
	}

	return &CardService{
		cardRepo:    cardRepo,
		abilityRepo: abilityRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// CreatePokemonCard validates a card and persists the base row, the pokemon
// specialization and all ability links atomically.
func (s *CardService) CreatePokemonCard(ctx context.Context, input CreatePokemonCardInput) (card.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CardService.CreatePokemonCard")
	defer span.End()

	abilities := make([]card.PokemonAbility, 0, len(input.Abilities))
	for _, a := range input.Abilities {
		linkID, err := s.idGen.NewID()
		if err != nil {
			return card.Card{}, fmt.Errorf("generate ability link id: %w", err)
		}
		cost := make(map[card.EnergyType]int, len(a.EnergyCost))
		for energy, count := range a.EnergyCost {
			cost[card.EnergyType(energy)] = count
		}
		abilities = append(abilities, card.PokemonAbility{
			ID:         linkID,
			AbilityRef: strings.TrimSpace(a.AbilityRef),
			EnergyCost: cost,
			Effect:     strings.TrimSpace(a.Effect),
			Damage:     a.Damage,
		})
	}

	newCard := card.Card{
		Name:             strings.TrimSpace(input.Name),
		SetName:          card.SetName(input.SetName),
		PackName:         card.PackName(input.PackName),
		CollectionNumber: strings.TrimSpace(input.CollectionNumber),
		Rarity:           card.Rarity(input.Rarity),
		ImageURL:         strings.TrimSpace(input.ImageURL),
		Kind:             card.KindPokemon,
		Pokemon: &card.PokemonDetails{
			HP:          input.HP,
			Type:        card.EnergyType(input.Type),
			Stage:       card.Stage(input.Stage),
			EvolvesFrom: strings.TrimSpace(input.EvolvesFrom),
			Weakness:    card.EnergyType(input.Weakness),
			RetreatCost: input.RetreatCost,
			Abilities:   abilities,
		},
	}

	return s.createCard(ctx, newCard)
}

// CreateTrainerCard is the trainer-side counterpart of CreatePokemonCard.
func (s *CardService) CreateTrainerCard(ctx context.Context, input CreateTrainerCardInput) (card.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CardService.CreateTrainerCard")
	defer span.End()

	abilities := make([]card.SupportAbility, 0, len(input.Abilities))
	for _, a := range input.Abilities {
		linkID, err := s.idGen.NewID()
		if err != nil {
			return card.Card{}, fmt.Errorf("generate ability link id: %w", err)
		}
		abilities = append(abilities, card.SupportAbility{
			ID:          linkID,
			AbilityRef:  strings.TrimSpace(a.AbilityRef),
			SupportType: card.SupportType(a.SupportType),
			Effect:      strings.TrimSpace(a.Effect),
		})
	}

	newCard := card.Card{
		Name:             strings.TrimSpace(input.Name),
		SetName:          card.SetName(input.SetName),
		PackName:         card.PackName(input.PackName),
		CollectionNumber: strings.TrimSpace(input.CollectionNumber),
		Rarity:           card.Rarity(input.Rarity),
		ImageURL:         strings.TrimSpace(input.ImageURL),
		Kind:             card.KindTrainer,
		Trainer: &card.TrainerDetails{
			Abilities: abilities,
		},
	}

	return s.createCard(ctx, newCard)
}

func (s *CardService) createCard(ctx context.Context, newCard card.Card) (card.Card, error) {
	cardID, err := s.idGen.NewID()
	if err != nil {
		return card.Card{}, fmt.Errorf("generate card id: %w", err)
	}
	newCard.ID = cardID

	if err := newCard.Validate(); err != nil {
		return card.Card{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureAbilitiesExist(ctx, newCard.AbilityRefs()); err != nil {
		return card.Card{}, err
	}

	_, taken, err := s.cardRepo.GetBySetAndNumber(ctx, newCard.SetName, newCard.CollectionNumber)
	if err != nil {
		return card.Card{}, fmt.Errorf("check collection number: %w", err)
	}
	if taken {
		return card.Card{}, fmt.Errorf("%w: collection number %s already used in %s",
			ErrConflict, newCard.CollectionNumber, newCard.SetName)
	}

	if err := s.cardRepo.Create(ctx, newCard); err != nil {
		if isConflict(err) {
			return card.Card{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		if isMissingReference(err) {
			return card.Card{}, fmt.Errorf("%w: %v", ErrMissingReference, err)
		}
		return card.Card{}, fmt.Errorf("create card: %w", err)
	}

	s.logger.InfoContext(ctx, "card created",
		"card_id", newCard.ID,
		"name", newCard.Name,
		"kind", string(newCard.Kind),
		"set_name", string(newCard.SetName),
	)

	return newCard, nil
}

func (s *CardService) GetCard(ctx context.Context, cardID string) (card.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CardService.GetCard")
	defer span.End()

	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return card.Card{}, fmt.Errorf("%w: card id is required", ErrInvalidInput)
	}

	found, exists, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return card.Card{}, fmt.Errorf("get card: %w", err)
	}
	if !exists {
		return card.Card{}, fmt.Errorf("%w: card=%s", ErrNotFound, cardID)
	}

	return found, nil
}

func (s *CardService) ListCards(ctx context.Context, input ListCardsInput) ([]card.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CardService.ListCards")
	defer span.End()

	filter := card.Filter{
		SetName:  card.SetName(strings.TrimSpace(input.SetName)),
		PackName: card.PackName(strings.TrimSpace(input.PackName)),
		Rarity:   card.Rarity(strings.TrimSpace(input.Rarity)),
	}
	if err := filter.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	page := card.Page{Skip: input.Skip, Limit: input.Limit}
	if page.Skip < 0 {
		return nil, fmt.Errorf("%w: skip cannot be negative", ErrInvalidInput)
	}
	if page.Limit <= 0 {
		page.Limit = defaultListLimit
	}
	if page.Limit > maxListLimit {
		page.Limit = maxListLimit
	}

	cards, err := s.cardRepo.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

func (s *CardService) ensureAbilitiesExist(ctx context.Context, refs []string) error {
	if len(refs) == 0 {
		return nil
	}

	unique := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		unique = append(unique, ref)
	}

	found, err := s.abilityRepo.GetByIDs(ctx, unique)
	if err != nil {
		return fmt.Errorf("get abilities by ids: %w", err)
	}
	if len(found) != len(unique) {
		return fmt.Errorf("%w: some ability refs are unknown", ErrMissingReference)
	}

	return nil
}
