package usecase

import (
	"errors"
	"testing"

	"github.com/ptcgpocket/companion/internal/infrastructure/repository/memory"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

func newAbilityService() *AbilityService {
	return NewAbilityService(
		memory.NewAbilityRepository(memory.SeedAbilities()),
		&seqIDGenerator{prefix: "ability"},
		logging.NewNop(),
	)
}

func TestAbilityService_CreateAndList(t *testing.T) {
	service := newAbilityService()

	created, err := service.CreateAbility(t.Context(), "  Quick Attack  ")
	if err != nil {
		t.Fatalf("create ability failed: %v", err)
	}
	if created.ID == "" || created.Name != "Quick Attack" {
		t.Fatalf("expected trimmed name and generated id, got %+v", created)
	}

	listed, err := service.ListAbilities(t.Context())
	if err != nil {
		t.Fatalf("list abilities failed: %v", err)
	}
	if len(listed) != len(memory.SeedAbilities())+1 {
		t.Fatalf("expected %d abilities, got %d", len(memory.SeedAbilities())+1, len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i-1].Name > listed[i].Name {
			t.Fatalf("expected name ordering, got %s before %s", listed[i-1].Name, listed[i].Name)
		}
	}
}

func TestAbilityService_CreateAbility_EmptyName(t *testing.T) {
	service := newAbilityService()

	if _, err := service.CreateAbility(t.Context(), "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
