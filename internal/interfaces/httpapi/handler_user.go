package httpapi

import (
	"fmt"
	"net/http"

	"github.com/ptcgpocket/companion/internal/usecase"
)

// SyncLogin upserts the local account row for the verified identity. Clients
// call it once after sign-in; every later request only needs the token.
func (h *Handler) SyncLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SyncLogin")
	defer span.End()

	identity, ok := identityFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: identity is missing from request context", usecase.ErrUnauthorized))
		return
	}

	synced, err := h.userService.SyncLogin(ctx, usecase.SyncLoginInput{
		GoogleID: identity.Subject,
		Email:    identity.Email,
		FullName: identity.FullName,
		Picture:  identity.Picture,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "login sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(synced))
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMe")
	defer span.End()

	me, err := h.currentUser(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, userToDTO(me))
}
