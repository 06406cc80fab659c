package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/domain/user"
	idgen "github.com/ptcgpocket/companion/internal/platform/id"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

// CreateDeckInput is the incoming payload for deck creation. CardIDs is the
// full 20-card multiset.
type CreateDeckInput struct {
	OwnerID     string
	Name        string
	Description string
	CardIDs     []string
}

// UpdateDeckInput updates deck fields in place; nil pointers leave the field
// untouched. A non-nil CardIDs replaces the entire card list.
type UpdateDeckInput struct {
	DeckID      string
	Name        *string
	Description *string
	IsActive    *bool
	CardIDs     []string
}

type DeckService struct {
	deckRepo deck.Repository
	cardRepo card.Repository
	userRepo user.Repository
	rules    deck.Rules
	idGen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewDeckService(
	deckRepo deck.Repository,
	cardRepo card.Repository,
	userRepo user.Repository,
	rules deck.Rules,
	idGen idgen.Generator,
	logger *logging.Logger,
) *DeckService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DeckService{
		deckRepo: deckRepo,
		cardRepo: cardRepo,
		userRepo: userRepo,
		rules:    rules,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateDeck validates composition and referential integrity, then persists
// the deck row and its card list in one transaction.
func (s *DeckService) CreateDeck(ctx context.Context, input CreateDeckInput) (deck.Deck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.CreateDeck")
	defer span.End()

	input.OwnerID = strings.TrimSpace(input.OwnerID)
	input.Name = strings.TrimSpace(input.Name)
	if input.OwnerID == "" {
		return deck.Deck{}, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return deck.Deck{}, fmt.Errorf("%w: deck name is required", ErrInvalidInput)
	}

	if err := deck.ValidateCards(input.CardIDs, s.rules); err != nil {
		return deck.Deck{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.ensureOwnerExists(ctx, input.OwnerID); err != nil {
		return deck.Deck{}, err
	}
	if err := s.ensureCardsExist(ctx, input.CardIDs); err != nil {
		return deck.Deck{}, err
	}

	deckID, err := s.idGen.NewID()
	if err != nil {
		return deck.Deck{}, fmt.Errorf("generate deck id: %w", err)
	}

	now := s.now().UTC()
	newDeck := deck.Deck{
		ID:          deckID,
		Name:        input.Name,
		OwnerID:     input.OwnerID,
		Description: strings.TrimSpace(input.Description),
		IsActive:    true,
		CardIDs:     append([]string(nil), input.CardIDs...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := newDeck.ValidateBasic(); err != nil {
		return deck.Deck{}, fmt.Errorf("validate deck: %w", err)
	}

	if err := s.deckRepo.Create(ctx, newDeck); err != nil {
		if isMissingReference(err) {
			return deck.Deck{}, fmt.Errorf("%w: %v", ErrMissingReference, err)
		}
		return deck.Deck{}, fmt.Errorf("create deck: %w", err)
	}

	s.logger.InfoContext(ctx, "deck created",
		"deck_id", newDeck.ID,
		"owner_id", newDeck.OwnerID,
		"card_count", len(newDeck.CardIDs),
	)

	return newDeck, nil
}

func (s *DeckService) GetDeck(ctx context.Context, deckID string) (deck.Deck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.GetDeck")
	defer span.End()

	deckID = strings.TrimSpace(deckID)
	if deckID == "" {
		return deck.Deck{}, fmt.Errorf("%w: deck id is required", ErrInvalidInput)
	}

	found, exists, err := s.deckRepo.GetByID(ctx, deckID)
	if err != nil {
		return deck.Deck{}, fmt.Errorf("get deck: %w", err)
	}
	if !exists {
		return deck.Deck{}, fmt.Errorf("%w: deck=%s", ErrNotFound, deckID)
	}

	return found, nil
}

// UpdateDeck applies partial field updates; when a new card list is given the
// whole DeckCard set is replaced and composition is re-validated against it.
func (s *DeckService) UpdateDeck(ctx context.Context, input UpdateDeckInput) (deck.Deck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.UpdateDeck")
	defer span.End()

	existing, err := s.GetDeck(ctx, input.DeckID)
	if err != nil {
		return deck.Deck{}, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return deck.Deck{}, fmt.Errorf("%w: deck name cannot be empty", ErrInvalidInput)
		}
		existing.Name = name
	}
	if input.Description != nil {
		existing.Description = strings.TrimSpace(*input.Description)
	}
	if input.IsActive != nil {
		existing.IsActive = *input.IsActive
	}
	if input.CardIDs != nil {
		if err := deck.ValidateCards(input.CardIDs, s.rules); err != nil {
			return deck.Deck{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if err := s.ensureCardsExist(ctx, input.CardIDs); err != nil {
			return deck.Deck{}, err
		}
		existing.CardIDs = append([]string(nil), input.CardIDs...)
	}

	existing.UpdatedAt = s.now().UTC()

	if err := existing.ValidateBasic(); err != nil {
		return deck.Deck{}, fmt.Errorf("validate deck: %w", err)
	}

	if err := s.deckRepo.Update(ctx, existing); err != nil {
		if isMissingReference(err) {
			return deck.Deck{}, fmt.Errorf("%w: %v", ErrMissingReference, err)
		}
		return deck.Deck{}, fmt.Errorf("update deck: %w", err)
	}

	s.logger.InfoContext(ctx, "deck updated",
		"deck_id", existing.ID,
		"cards_replaced", input.CardIDs != nil,
	)

	return existing, nil
}

func (s *DeckService) ListDecksByOwner(ctx context.Context, ownerID string) ([]deck.Deck, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DeckService.ListDecksByOwner")
	defer span.End()

	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: owner id is required", ErrInvalidInput)
	}

	decks, err := s.deckRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list decks by owner: %w", err)
	}

	return decks, nil
}

func (s *DeckService) ensureOwnerExists(ctx context.Context, ownerID string) error {
	_, exists, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("get owner: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: owner=%s", ErrMissingReference, ownerID)
	}
	return nil
}

func (s *DeckService) ensureCardsExist(ctx context.Context, cardIDs []string) error {
	unique := make([]string, 0, len(cardIDs))
	seen := make(map[string]struct{}, len(cardIDs))
	for _, id := range cardIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	cards, err := s.cardRepo.GetByIDs(ctx, unique)
	if err != nil {
		return fmt.Errorf("get cards by ids: %w", err)
	}
	if len(cards) != len(unique) {
		return fmt.Errorf("%w: some card ids are unknown", ErrMissingReference)
	}

	return nil
}
