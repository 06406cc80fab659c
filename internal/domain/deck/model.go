package deck

import (
	"fmt"
	"time"
)

// Deck is a named, owned multiset of card references used in play.
type Deck struct {
	ID          string
	Name        string
	OwnerID     string
	Description string
	IsActive    bool
	CardIDs     []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d Deck) ValidateBasic() error {
	if d.ID == "" {
		return fmt.Errorf("deck id is required")
	}
	if d.Name == "" {
		return fmt.Errorf("deck name is required")
	}
	if d.OwnerID == "" {
		return fmt.Errorf("owner id is required")
	}
	if len(d.CardIDs) == 0 {
		return fmt.Errorf("deck cards are required")
	}
	if d.UpdatedAt.Before(d.CreatedAt) {
		return fmt.Errorf("updated_at cannot precede created_at")
	}
	return nil
}
