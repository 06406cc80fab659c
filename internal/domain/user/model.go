package user

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// Surfaced by repositories when a uniqueness constraint is hit.
	ErrDuplicateEmail    = errors.New("email already registered")
	ErrDuplicateGoogleID = errors.New("google id already registered")

	// ErrMissingUser reports a foreign key violation: a row that references
	// a user was written after the user vanished.
	ErrMissingUser = errors.New("referenced user does not exist")
)

// User is an account owning decks and game records. Credentials are never
// stored here; GoogleID is an opaque external identity reference.
type User struct {
	ID        string
	Email     string
	FullName  string
	Picture   string
	GoogleID  string
	IsActive  bool
	CreatedAt time.Time
	LastLogin time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return fmt.Errorf("valid email is required")
	}
	if u.FullName == "" {
		return fmt.Errorf("full name is required")
	}
	if u.GoogleID == "" {
		return fmt.Errorf("google id is required")
	}
	return nil
}
