package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/ptcgpocket/companion/internal/usecase"
)

func (h *Handler) CreateAbility(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateAbility")
	defer span.End()

	var req createAbilityRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.abilityService.CreateAbility(ctx, req.Name)
	if err != nil {
		h.logger.WarnContext(ctx, "create ability failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, abilityToDTO(created))
}

func (h *Handler) ListAbilities(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAbilities")
	defer span.End()

	abilities, err := h.abilityService.ListAbilities(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list abilities failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]abilityDTO, 0, len(abilities))
	for _, a := range abilities {
		items = append(items, abilityToDTO(a))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CreatePokemonCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePokemonCard")
	defer span.End()

	var req createPokemonCardRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	abilities := make([]usecase.PokemonAbilityInput, 0, len(req.Abilities))
	for _, a := range req.Abilities {
		abilities = append(abilities, usecase.PokemonAbilityInput{
			AbilityRef: a.AbilityRef,
			EnergyCost: a.EnergyCost,
			Effect:     a.Effect,
			Damage:     a.Damage,
		})
	}

	created, err := h.cardService.CreatePokemonCard(ctx, usecase.CreatePokemonCardInput{
		Name:             req.Name,
		SetName:          req.SetName,
		PackName:         req.PackName,
		CollectionNumber: req.CollectionNumber,
		Rarity:           req.Rarity,
		ImageURL:         req.ImageURL,
		HP:               req.HP,
		Type:             req.Type,
		Stage:            req.Stage,
		EvolvesFrom:      req.EvolvesFrom,
		Weakness:         req.Weakness,
		RetreatCost:      req.RetreatCost,
		Abilities:        abilities,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create pokemon card failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, cardToDTO(created))
}

func (h *Handler) CreateTrainerCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTrainerCard")
	defer span.End()

	var req createTrainerCardRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	abilities := make([]usecase.SupportAbilityInput, 0, len(req.Abilities))
	for _, a := range req.Abilities {
		abilities = append(abilities, usecase.SupportAbilityInput{
			AbilityRef:  a.AbilityRef,
			SupportType: a.SupportType,
			Effect:      a.Effect,
		})
	}

	created, err := h.cardService.CreateTrainerCard(ctx, usecase.CreateTrainerCardInput{
		Name:             req.Name,
		SetName:          req.SetName,
		PackName:         req.PackName,
		CollectionNumber: req.CollectionNumber,
		Rarity:           req.Rarity,
		ImageURL:         req.ImageURL,
		Abilities:        abilities,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create trainer card failed", "name", req.Name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, cardToDTO(created))
}

func (h *Handler) GetCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCard")
	defer span.End()

	cardID := r.PathValue("cardID")
	found, err := h.cardService.GetCard(ctx, cardID)
	if err != nil {
		h.logger.WarnContext(ctx, "get card failed", "card_id", cardID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cardToDTO(found))
}

func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCards")
	defer span.End()

	query := r.URL.Query()
	input := usecase.ListCardsInput{
		SetName:  strings.TrimSpace(query.Get("set_name")),
		PackName: strings.TrimSpace(query.Get("pack_name")),
		Rarity:   strings.TrimSpace(query.Get("rarity")),
	}

	var err error
	if input.Skip, err = parseIntParam(query.Get("skip"), 0); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: skip must be an integer", usecase.ErrInvalidInput))
		return
	}
	if input.Limit, err = parseIntParam(query.Get("limit"), 0); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
		return
	}

	cards, err := h.cardService.ListCards(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "list cards failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]cardDTO, 0, len(cards))
	for _, c := range cards {
		items = append(items, cardToDTO(c))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func parseIntParam(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
