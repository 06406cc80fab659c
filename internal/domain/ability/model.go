package ability

import (
	"errors"
	"fmt"
)

// ErrMissingAbility reports a foreign key violation: a row that references
// an ability was written after the ability vanished.
var ErrMissingAbility = errors.New("referenced ability does not exist")

// Ability is a catalog entry: the canonical name of an ability, reusable
// across card printings. Per-card effect text and costs live on the card's
// linking rows, not here.
type Ability struct {
	ID   string
	Name string
}

func (a Ability) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("ability id is required")
	}
	if a.Name == "" {
		return fmt.Errorf("ability name is required")
	}
	return nil
}
