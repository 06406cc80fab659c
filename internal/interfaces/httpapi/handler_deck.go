package httpapi

import (
	"fmt"
	"net/http"

	"github.com/ptcgpocket/companion/internal/usecase"
)

func (h *Handler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateDeck")
	defer span.End()

	owner, err := h.currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req createDeckRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	created, err := h.deckService.CreateDeck(ctx, usecase.CreateDeckInput{
		OwnerID:     owner.ID,
		Name:        req.Name,
		Description: req.Description,
		CardIDs:     req.CardIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create deck failed", "owner_id", owner.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, deckToDTO(created))
}

func (h *Handler) GetDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDeck")
	defer span.End()

	deckID := r.PathValue("deckID")
	found, err := h.deckService.GetDeck(ctx, deckID)
	if err != nil {
		h.logger.WarnContext(ctx, "get deck failed", "deck_id", deckID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deckToDTO(found))
}

func (h *Handler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateDeck")
	defer span.End()

	owner, err := h.currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	deckID := r.PathValue("deckID")
	existing, err := h.deckService.GetDeck(ctx, deckID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if existing.OwnerID != owner.ID {
		writeError(ctx, w, fmt.Errorf("%w: deck belongs to another user", usecase.ErrUnauthorized))
		return
	}

	var req updateDeckRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	updated, err := h.deckService.UpdateDeck(ctx, usecase.UpdateDeckInput{
		DeckID:      deckID,
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
		CardIDs:     req.CardIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update deck failed", "deck_id", deckID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deckToDTO(updated))
}

func (h *Handler) ListMyDecks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMyDecks")
	defer span.End()

	owner, err := h.currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	decks, err := h.deckService.ListDecksByOwner(ctx, owner.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "list decks failed", "owner_id", owner.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]deckDTO, 0, len(decks))
	for _, d := range decks {
		items = append(items, deckToDTO(d))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
