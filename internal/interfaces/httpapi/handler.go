package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/ptcgpocket/companion/internal/domain/user"
	"github.com/ptcgpocket/companion/internal/platform/logging"
	"github.com/ptcgpocket/companion/internal/usecase"
)

type Handler struct {
	cardService    *usecase.CardService
	abilityService *usecase.AbilityService
	deckService    *usecase.DeckService
	gameService    *usecase.GameService
	userService    *usecase.UserService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	cardService *usecase.CardService,
	abilityService *usecase.AbilityService,
	deckService *usecase.DeckService,
	gameService *usecase.GameService,
	userService *usecase.UserService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		cardService:    cardService,
		abilityService: abilityService,
		deckService:    deckService,
		gameService:    gameService,
		userService:    userService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) decodeRequest(r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// currentUser resolves the authenticated identity to the locally synced
// account. Identities that never hit login-sync resolve to not found.
func (h *Handler) currentUser(ctx context.Context) (user.User, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return user.User{}, fmt.Errorf("%w: identity is missing from request context", usecase.ErrUnauthorized)
	}
	return h.userService.GetUserByGoogleID(ctx, identity.Subject)
}
