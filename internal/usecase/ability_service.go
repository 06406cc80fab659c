package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	idgen "github.com/ptcgpocket/companion/internal/platform/id"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

type AbilityService struct {
	abilityRepo ability.Repository
	idGen       idgen.Generator
	logger      *logging.Logger
}

func NewAbilityService(abilityRepo ability.Repository, idGen idgen.Generator, logger *logging.Logger) *AbilityService {
	if logger == nil {
		logger = logging.Default()
	}

	return &AbilityService{
		abilityRepo: abilityRepo,
		idGen:       idGen,
		logger:      logger,
	}
}

// CreateAbility registers a named ability in the catalog. Card-specific
// effect text and costs are supplied per card, not here.
func (s *AbilityService) CreateAbility(ctx context.Context, name string) (ability.Ability, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AbilityService.CreateAbility")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return ability.Ability{}, fmt.Errorf("%w: ability name is required", ErrInvalidInput)
	}

	abilityID, err := s.idGen.NewID()
	if err != nil {
		return ability.Ability{}, fmt.Errorf("generate ability id: %w", err)
	}

	entry := ability.Ability{ID: abilityID, Name: name}
	if err := entry.Validate(); err != nil {
		return ability.Ability{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.abilityRepo.Create(ctx, entry); err != nil {
		return ability.Ability{}, fmt.Errorf("create ability: %w", err)
	}

	s.logger.InfoContext(ctx, "ability created", "ability_id", entry.ID, "name", entry.Name)

	return entry, nil
}

func (s *AbilityService) ListAbilities(ctx context.Context) ([]ability.Ability, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AbilityService.ListAbilities")
	defer span.End()

	items, err := s.abilityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list abilities: %w", err)
	}

	return items, nil
}
