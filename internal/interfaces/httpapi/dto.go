package httpapi

import (
	"time"

	"github.com/ptcgpocket/companion/internal/domain/ability"
	"github.com/ptcgpocket/companion/internal/domain/card"
	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/domain/game"
	"github.com/ptcgpocket/companion/internal/domain/user"
)

type createAbilityRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type abilityDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func abilityToDTO(a ability.Ability) abilityDTO {
	return abilityDTO{ID: a.ID, Name: a.Name}
}

type pokemonAbilityRequest struct {
	AbilityRef string         `json:"ability_ref" validate:"required"`
	EnergyCost map[string]int `json:"energy_cost"`
	Effect     string         `json:"effect" validate:"required"`
	Damage     *int           `json:"damage"`
}

type createPokemonCardRequest struct {
	Name             string                  `json:"name" validate:"required,max=120"`
	SetName          string                  `json:"set_name" validate:"required"`
	PackName         string                  `json:"pack_name" validate:"required"`
	CollectionNumber string                  `json:"collection_number" validate:"required,max=16"`
	Rarity           string                  `json:"rarity" validate:"required"`
	ImageURL         string                  `json:"image_url" validate:"omitempty,url"`
	HP               int                     `json:"hp" validate:"required,gt=0"`
	Type             string                  `json:"type" validate:"required"`
	Stage            string                  `json:"stage" validate:"required"`
	EvolvesFrom      string                  `json:"evolves_from"`
	Weakness         string                  `json:"weakness" validate:"required"`
	RetreatCost      int                     `json:"retreat_cost" validate:"gte=0"`
	Abilities        []pokemonAbilityRequest `json:"abilities" validate:"dive"`
}

type supportAbilityRequest struct {
	AbilityRef  string `json:"ability_ref" validate:"required"`
	SupportType string `json:"support_type" validate:"required"`
	Effect      string `json:"effect" validate:"required"`
}

type createTrainerCardRequest struct {
	Name             string                  `json:"name" validate:"required,max=120"`
	SetName          string                  `json:"set_name" validate:"required"`
	PackName         string                  `json:"pack_name" validate:"required"`
	CollectionNumber string                  `json:"collection_number" validate:"required,max=16"`
	Rarity           string                  `json:"rarity" validate:"required"`
	ImageURL         string                  `json:"image_url" validate:"omitempty,url"`
	Abilities        []supportAbilityRequest `json:"abilities" validate:"dive"`
}

type pokemonAbilityDTO struct {
	ID         string         `json:"id"`
	AbilityRef string         `json:"ability_ref"`
	EnergyCost map[string]int `json:"energy_cost,omitempty"`
	Effect     string         `json:"effect"`
	Damage     *int           `json:"damage,omitempty"`
}

type supportAbilityDTO struct {
	ID          string `json:"id"`
	AbilityRef  string `json:"ability_ref"`
	SupportType string `json:"support_type"`
	Effect      string `json:"effect"`
}

type pokemonDetailsDTO struct {
	HP          int                 `json:"hp"`
	Type        string              `json:"type"`
	Stage       string              `json:"stage"`
	EvolvesFrom string              `json:"evolves_from,omitempty"`
	Weakness    string              `json:"weakness"`
	RetreatCost int                 `json:"retreat_cost"`
	Abilities   []pokemonAbilityDTO `json:"abilities"`
}

type trainerDetailsDTO struct {
	Abilities []supportAbilityDTO `json:"abilities"`
}

type cardDTO struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	SetName          string             `json:"set_name"`
	PackName         string             `json:"pack_name"`
	CollectionNumber string             `json:"collection_number"`
	Rarity           string             `json:"rarity"`
	ImageURL         string             `json:"image_url,omitempty"`
	Kind             string             `json:"kind"`
	Pokemon          *pokemonDetailsDTO `json:"pokemon,omitempty"`
	Trainer          *trainerDetailsDTO `json:"trainer,omitempty"`
}

func cardToDTO(c card.Card) cardDTO {
	dto := cardDTO{
		ID:               c.ID,
		Name:             c.Name,
		SetName:          string(c.SetName),
		PackName:         string(c.PackName),
		CollectionNumber: c.CollectionNumber,
		Rarity:           string(c.Rarity),
		ImageURL:         c.ImageURL,
		Kind:             string(c.Kind),
	}
	if c.Pokemon != nil {
		abilities := make([]pokemonAbilityDTO, 0, len(c.Pokemon.Abilities))
		for _, a := range c.Pokemon.Abilities {
			cost := make(map[string]int, len(a.EnergyCost))
			for energy, count := range a.EnergyCost {
				cost[string(energy)] = count
			}
			abilities = append(abilities, pokemonAbilityDTO{
				ID:         a.ID,
				AbilityRef: a.AbilityRef,
				EnergyCost: cost,
				Effect:     a.Effect,
				Damage:     a.Damage,
			})
		}
		dto.Pokemon = &pokemonDetailsDTO{
			HP:          c.Pokemon.HP,
			Type:        string(c.Pokemon.Type),
			Stage:       string(c.Pokemon.Stage),
			EvolvesFrom: c.Pokemon.EvolvesFrom,
			Weakness:    string(c.Pokemon.Weakness),
			RetreatCost: c.Pokemon.RetreatCost,
			Abilities:   abilities,
		}
	}
	if c.Trainer != nil {
		abilities := make([]supportAbilityDTO, 0, len(c.Trainer.Abilities))
		for _, a := range c.Trainer.Abilities {
			abilities = append(abilities, supportAbilityDTO{
				ID:          a.ID,
				AbilityRef:  a.AbilityRef,
				SupportType: string(a.SupportType),
				Effect:      a.Effect,
			})
		}
		dto.Trainer = &trainerDetailsDTO{Abilities: abilities}
	}
	return dto
}

type createDeckRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	CardIDs     []string `json:"card_ids" validate:"required,dive,required"`
}

type updateDeckRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool    `json:"is_active"`
	CardIDs     []string `json:"card_ids" validate:"omitempty,dive,required"`
}

type deckDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	OwnerID     string    `json:"owner_id"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CardIDs     []string  `json:"card_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func deckToDTO(d deck.Deck) deckDTO {
	return deckDTO{
		ID:          d.ID,
		Name:        d.Name,
		OwnerID:     d.OwnerID,
		Description: d.Description,
		IsActive:    d.IsActive,
		CardIDs:     append([]string(nil), d.CardIDs...),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type recordGameRequest struct {
	OpponentsPoints  int       `json:"opponents_points" validate:"gte=0"`
	PlayerPoints     int       `json:"player_points" validate:"gte=0"`
	DatePlayed       time.Time `json:"date_played" validate:"required"`
	TurnsPlayed      int       `json:"turns_played" validate:"required,gt=0"`
	PlayerDeckUsed   string    `json:"player_deck_used" validate:"required"`
	OpponentName     string    `json:"opponent_name" validate:"omitempty,max=120"`
	OpponentDeckType string    `json:"opponent_deck_type" validate:"omitempty,max=120"`
	Notes            string    `json:"notes" validate:"omitempty,max=1000"`
	Outcome          string    `json:"outcome" validate:"required"`
	RankingChange    *int      `json:"ranking_change"`
}

type gameRecordDTO struct {
	ID            string `json:"id"`
	PlayerID      string `json:"player_id"`
	DetailsRef    string `json:"details_ref"`
	Outcome       string `json:"outcome"`
	RankingChange *int   `json:"ranking_change,omitempty"`
}

func gameRecordToDTO(r game.Record) gameRecordDTO {
	return gameRecordDTO{
		ID:            r.ID,
		PlayerID:      r.PlayerID,
		DetailsRef:    r.DetailsRef,
		Outcome:       string(r.Outcome),
		RankingChange: r.RankingChange,
	}
}

type statisticsDTO struct {
	TotalGames int     `json:"total_games"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	Draws      int     `json:"draws"`
	WinRate    float64 `json:"win_rate"`
}

func statisticsToDTO(s game.Statistics) statisticsDTO {
	return statisticsDTO{
		TotalGames: s.TotalGames,
		Wins:       s.Wins,
		Losses:     s.Losses,
		Draws:      s.Draws,
		WinRate:    s.WinRate,
	}
}

type userDTO struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Picture   string    `json:"picture,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	LastLogin time.Time `json:"last_login"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Picture:   u.Picture,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}
