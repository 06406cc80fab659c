package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ptcgpocket/companion/internal/domain/user"
	idgen "github.com/ptcgpocket/companion/internal/platform/id"
	"github.com/ptcgpocket/companion/internal/platform/logging"
)

// SyncLoginInput carries the identity claims verified upstream by the
// authentication middleware.
type SyncLoginInput struct {
	GoogleID string
	Email    string
	FullName string
	Picture  string
}

// UserService keeps the local user table in sync with the external identity
// provider and serves user profiles.
type UserService struct {
	userRepo user.Repository
	idGen    idgen.Generator
	logger   *logging.Logger
	now      func() time.Time
}

func NewUserService(userRepo user.Repository, idGen idgen.Generator, logger *logging.Logger) *UserService {
	if logger == nil {
		logger = logging.Default()
	}
	return &UserService{
		userRepo: userRepo,
		idGen:    idGen,
		logger:   logger,
		now:      time.Now,
	}
}

// SyncLogin upserts the user identified by GoogleID. First login creates the
// row; subsequent logins only bump last_login. A known email attached to a
// different Google account is rejected as a conflict.
func (s *UserService) SyncLogin(ctx context.Context, in SyncLoginInput) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.SyncLogin")
	defer span.End()

	in.GoogleID = strings.TrimSpace(in.GoogleID)
	in.Email = strings.TrimSpace(in.Email)
	if in.GoogleID == "" || in.Email == "" {
		return user.User{}, fmt.Errorf("%w: google id and email are required", ErrInvalidInput)
	}

	loginAt := s.now().UTC()

	existing, found, err := s.userRepo.GetByGoogleID(ctx, in.GoogleID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by google id: %w", err)
	}
	if found {
		if err := s.userRepo.UpdateLastLogin(ctx, existing.ID, loginAt); err != nil {
			return user.User{}, fmt.Errorf("update last login: %w", err)
		}
		existing.LastLogin = loginAt
		return existing, nil
	}

	if _, emailTaken, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return user.User{}, fmt.Errorf("get user by email: %w", err)
	} else if emailTaken {
		return user.User{}, fmt.Errorf("%w: email=%s: %s", ErrConflict, in.Email, user.ErrDuplicateEmail)
	}

	userID, err := s.idGen.NewID()
	if err != nil {
		return user.User{}, fmt.Errorf("generate user id: %w", err)
	}

	created := user.User{
		ID:        userID,
		Email:     in.Email,
		FullName:  in.FullName,
		Picture:   in.Picture,
		GoogleID:  in.GoogleID,
		IsActive:  true,
		CreatedAt: loginAt,
		LastLogin: loginAt,
	}
	if err := created.Validate(); err != nil {
		return user.User{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if err := s.userRepo.Create(ctx, created); err != nil {
		if isConflict(err) {
			return user.User{}, fmt.Errorf("%w: %s", ErrConflict, err)
		}
		return user.User{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created on first login", "user_id", created.ID)
	return created, nil
}

// GetUserByGoogleID resolves the locally synced account for a verified
// external identity. Identities never seen by SyncLogin are not found.
func (s *UserService) GetUserByGoogleID(ctx context.Context, googleID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.GetUserByGoogleID")
	defer span.End()

	googleID = strings.TrimSpace(googleID)
	if googleID == "" {
		return user.User{}, fmt.Errorf("%w: google id is required", ErrInvalidInput)
	}

	found, exists, err := s.userRepo.GetByGoogleID(ctx, googleID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user by google id: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: account not synced", ErrNotFound)
	}
	return found, nil
}

// GetUser returns the stored profile for userID.
func (s *UserService) GetUser(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "UserService.GetUser")
	defer span.End()

	found, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return found, nil
}
