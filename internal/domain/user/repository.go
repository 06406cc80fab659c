package user

import (
	"context"
	"time"
)

// Repository describes account persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, bool, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}
