package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ptcgpocket/companion/internal/domain/user"
)

type UserRepository struct {
	mu         sync.RWMutex
	items      map[string]user.User
	byGoogleID map[string]string
	byEmail    map[string]string
}

func NewUserRepository(users []user.User) *UserRepository {
	r := &UserRepository{
		items:      make(map[string]user.User),
		byGoogleID: make(map[string]string),
		byEmail:    make(map[string]string),
	}
	for _, u := range users {
		r.items[u.ID] = u
		r.byGoogleID[u.GoogleID] = u.ID
		r.byEmail[u.Email] = u.ID
	}
	return r
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[u.Email]; taken {
		return fmt.Errorf("%w: %s", user.ErrDuplicateEmail, u.Email)
	}
	if _, taken := r.byGoogleID[u.GoogleID]; taken {
		return fmt.Errorf("%w: %s", user.ErrDuplicateGoogleID, u.GoogleID)
	}

	r.items[u.ID] = u
	r.byGoogleID[u.GoogleID] = u.ID
	r.byEmail[u.Email] = u.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.items[id]
	return u, ok, nil
}

func (r *UserRepository) GetByGoogleID(_ context.Context, googleID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byGoogleID[googleID]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[id], true, nil
}

func (r *UserRepository) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.items[id]
	if !ok {
		return fmt.Errorf("user %s does not exist", id)
	}
	u.LastLogin = at
	r.items[id] = u
	return nil
}
