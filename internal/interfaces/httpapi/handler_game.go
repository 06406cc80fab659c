package httpapi

import (
	"net/http"

	"github.com/ptcgpocket/companion/internal/usecase"
)

func (h *Handler) RecordGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecordGame")
	defer span.End()

	player, err := h.currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req recordGameRequest
	if err := h.decodeRequest(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.gameService.RecordGame(ctx, usecase.RecordGameInput{
		PlayerID:         player.ID,
		OpponentsPoints:  req.OpponentsPoints,
		PlayerPoints:     req.PlayerPoints,
		DatePlayed:       req.DatePlayed,
		TurnsPlayed:      req.TurnsPlayed,
		PlayerDeckUsed:   req.PlayerDeckUsed,
		OpponentName:     req.OpponentName,
		OpponentDeckType: req.OpponentDeckType,
		Notes:            req.Notes,
		Outcome:          req.Outcome,
		RankingChange:    req.RankingChange,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "record game failed", "player_id", player.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, gameRecordToDTO(record))
}

func (h *Handler) GetMyStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMyStatistics")
	defer span.End()

	player, err := h.currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.gameService.PlayerStatistics(ctx, player.ID)
	if err != nil {
		h.logger.WarnContext(ctx, "player statistics failed", "player_id", player.ID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statisticsToDTO(stats))
}
