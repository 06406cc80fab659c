package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/ptcgpocket/companion/internal/infrastructure/repository/memory"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

func newUserService() *UserService {
	return NewUserService(
		memory.NewUserRepository(memory.SeedUsers()),
		&seqIDGenerator{prefix: "user"},
		logging.NewNop(),
	)
}

func TestUserService_SyncLogin_FirstLoginCreates(t *testing.T) {
	service := newUserService()

	loginAt := time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return loginAt }

	created, err := service.SyncLogin(t.Context(), SyncLoginInput{
		GoogleID: "google-oauth2|green",
		Email:    "green@pallet.town",
		FullName: "Green",
	})
	if err != nil {
		t.Fatalf("sync login failed: %v", err)
	}
	if created.ID == "" || !created.IsActive {
		t.Fatalf("expected active user with generated id, got %+v", created)
	}
	if !created.CreatedAt.Equal(loginAt) || !created.LastLogin.Equal(loginAt) {
		t.Fatalf("expected timestamps %v, got %+v", loginAt, created)
	}

	fetched, err := service.GetUser(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if fetched.Email != "green@pallet.town" {
		t.Fatalf("round trip mismatch: %+v", fetched)
	}
}

func TestUserService_SyncLogin_ReturningLoginBumpsLastLogin(t *testing.T) {
	service := newUserService()

	loginAt := time.Date(2026, 3, 5, 8, 30, 0, 0, time.UTC)
	service.now = func() time.Time { return loginAt }

	returning, err := service.SyncLogin(t.Context(), SyncLoginInput{
		GoogleID: memory.GoogleIDTrainerRed,
		Email:    "red@pallet.town",
		FullName: "Red",
	})
	if err != nil {
		t.Fatalf("sync login failed: %v", err)
	}
	if returning.ID != memory.UserIDTrainerRed {
		t.Fatalf("expected existing user, got %s", returning.ID)
	}
	if !returning.LastLogin.Equal(loginAt) {
		t.Fatalf("expected last login bumped to %v, got %v", loginAt, returning.LastLogin)
	}

	fetched, err := service.GetUser(t.Context(), memory.UserIDTrainerRed)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if !fetched.LastLogin.Equal(loginAt) {
		t.Fatalf("expected persisted last login %v, got %v", loginAt, fetched.LastLogin)
	}
}

func TestUserService_SyncLogin_EmailTakenByOtherAccount(t *testing.T) {
	service := newUserService()

	_, err := service.SyncLogin(t.Context(), SyncLoginInput{
		GoogleID: "google-oauth2|impostor",
		Email:    "red@pallet.town",
		FullName: "Impostor",
	})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestUserService_SyncLogin_MissingClaims(t *testing.T) {
	service := newUserService()

	if _, err := service.SyncLogin(t.Context(), SyncLoginInput{Email: "x@y.z"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without google id, got %v", err)
	}
	if _, err := service.SyncLogin(t.Context(), SyncLoginInput{GoogleID: "g"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput without email, got %v", err)
	}
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	service := newUserService()

	if _, err := service.GetUser(t.Context(), "user-ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
