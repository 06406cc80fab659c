package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/ptcgpocket/companion/internal/domain/deck"
	"github.com/ptcgpocket/companion/internal/infrastructure/account/introspect"
	"github.com/ptcgpocket/companion/internal/infrastructure/repository/memory"
	idgen "github.com/ptcgpocket/companion/internal/platform/id"
	"github.com/ptcgpocket/companion/internal/platform/logging"
	"github.com/ptcgpocket/companion/internal/usecase"
)

// staticVerifier resolves bearer tokens from a fixed table, standing in for
// the provider's introspection endpoint.
type staticVerifier struct {
	identities map[string]introspect.Identity
}

func (v *staticVerifier) VerifyAccessToken(_ context.Context, token string) (introspect.Identity, error) {
	identity, ok := v.identities[token]
	if !ok {
		return introspect.Identity{}, fmt.Errorf("%w: token is not recognized", usecase.ErrUnauthorized)
	}
	return identity, nil
}

const (
	tokenTrainerRed = "token-trainer-red"
	tokenNewTrainer = "token-new-trainer"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	ids := idgen.NewUUIDGenerator()

	cardRepo := memory.NewCardRepository(memory.SeedCards())
	abilityRepo := memory.NewAbilityRepository(memory.SeedAbilities())
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	deckRepo := memory.NewDeckRepository()
	gameRepo := memory.NewGameRepository()

	handler := NewHandler(
		usecase.NewCardService(cardRepo, abilityRepo, ids, logger),
		usecase.NewAbilityService(abilityRepo, ids, logger),
		usecase.NewDeckService(deckRepo, cardRepo, userRepo, deck.DefaultRules(), ids, logger),
		usecase.NewGameService(gameRepo, deckRepo, userRepo, ids, logger),
		usecase.NewUserService(userRepo, ids, logger),
		logger,
	)

	verifier := &staticVerifier{identities: map[string]introspect.Identity{
		tokenTrainerRed: {
			Subject:  memory.GoogleIDTrainerRed,
			Email:    "red@pallet.town",
			FullName: "Trainer Red",
		},
		tokenNewTrainer: {
			Subject:  "google-oauth2|green",
			Email:    "green@pallet.town",
			FullName: "Trainer Green",
		},
	}}

	return NewRouter(handler, verifier, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, target, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *strings.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = strings.NewReader(string(raw))
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		APIVersion string `json:"apiVersion"`
		Data       T      `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response body %q: %v", rec.Body.String(), err)
	}
	if envelope.APIVersion != "2.0" {
		t.Fatalf("expected apiVersion=2.0, got %q", envelope.APIVersion)
	}
	return envelope.Data
}

func twentyLegalCards() []string {
	ids := []string{
		memory.CardIDPikachu,
		memory.CardIDRaichu,
		memory.CardIDPotion,
		memory.CardIDBulbasaur,
		memory.CardIDSquirtle,
		memory.CardIDCaterpie,
		memory.CardIDMewtwo,
		memory.CardIDJigglypuff,
		memory.CardIDMew,
		memory.CardIDPokeBall,
	}
	out := make([]string, 0, 20)
	for _, id := range ids {
		out = append(out, id, id)
	}
	return out
}

func TestRouter_PublicCardListing(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/cards?pack_name=%28A1%29+Pikachu", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	cards := decodeData[[]cardDTO](t, rec)
	if len(cards) == 0 {
		t.Fatalf("expected cards in the Pikachu pack")
	}
	for _, c := range cards {
		if c.PackName != "(A1) Pikachu" {
			t.Fatalf("unexpected pack in filtered listing: %q", c.PackName)
		}
	}
}

func TestRouter_AuthRequired(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/decks", "", map[string]any{
		"name":     "No Token",
		"card_ids": twentyLegalCards(),
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_LoginSyncCreatesAccount(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/users/login-sync", tokenNewTrainer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	synced := decodeData[userDTO](t, rec)
	if synced.Email != "green@pallet.town" {
		t.Fatalf("unexpected email after sync: %q", synced.Email)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/users/me", tokenNewTrainer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 from /v1/users/me, got %d: %s", rec.Code, rec.Body.String())
	}
	me := decodeData[userDTO](t, rec)
	if me.ID != synced.ID {
		t.Fatalf("expected /v1/users/me to resolve the synced account, got %q want %q", me.ID, synced.ID)
	}
}

func TestRouter_UnsyncedIdentityCannotUseOwnedResources(t *testing.T) {
	router := newTestRouter(t)

	// Valid token, but the identity never hit login-sync.
	rec := doJSON(t, router, http.MethodGet, "/v1/decks", tokenNewTrainer, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unsynced identity, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_DeckLifecycle(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/decks", tokenTrainerRed, map[string]any{
		"name":        "Electric Rush",
		"description": "Pikachu line plus support",
		"card_ids":    twentyLegalCards(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[deckDTO](t, rec)
	if created.OwnerID != memory.UserIDTrainerRed {
		t.Fatalf("expected deck owned by the authenticated user, got %q", created.OwnerID)
	}
	if !created.IsActive {
		t.Fatalf("expected new deck to be active")
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/decks", tokenTrainerRed, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	decks := decodeData[[]deckDTO](t, rec)
	if len(decks) != 1 || decks[0].ID != created.ID {
		t.Fatalf("expected exactly the created deck in listing, got %+v", decks)
	}

	newName := "Electric Rush v2"
	rec = doJSON(t, router, http.MethodPut, "/v1/decks/"+created.ID, tokenTrainerRed, map[string]any{
		"name": newName,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	updated := decodeData[deckDTO](t, rec)
	if updated.Name != newName {
		t.Fatalf("expected renamed deck, got %q", updated.Name)
	}
	if len(updated.CardIDs) != 20 {
		t.Fatalf("expected card list untouched by rename, got %d cards", len(updated.CardIDs))
	}
}

func TestRouter_DeckCompositionRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/decks", tokenTrainerRed, map[string]any{
		"name":     "Short Deck",
		"card_ids": twentyLegalCards()[:10],
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_RecordGameAndStatistics(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/decks", tokenTrainerRed, map[string]any{
		"name":     "Ladder Deck",
		"card_ids": twentyLegalCards(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	ladderDeck := decodeData[deckDTO](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/v1/games", tokenTrainerRed, map[string]any{
		"opponents_points": 1,
		"player_points":    3,
		"date_played":      time.Date(2025, 2, 1, 19, 30, 0, 0, time.UTC).Format(time.RFC3339),
		"turns_played":     14,
		"player_deck_used": ladderDeck.ID,
		"opponent_name":    "Blue",
		"outcome":          "win",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	record := decodeData[gameRecordDTO](t, rec)
	if record.Outcome != "WIN" {
		t.Fatalf("expected normalized outcome WIN, got %q", record.Outcome)
	}
	if record.PlayerID != memory.UserIDTrainerRed {
		t.Fatalf("expected record for the authenticated player, got %q", record.PlayerID)
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/games/statistics", tokenTrainerRed, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	stats := decodeData[statisticsDTO](t, rec)
	if stats.TotalGames != 1 || stats.Wins != 1 {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
	if stats.WinRate != 100.0 {
		t.Fatalf("expected win rate 100.0, got %v", stats.WinRate)
	}
}

func TestRouter_UpdateForeignDeckRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/decks", tokenTrainerRed, map[string]any{
		"name":     "Red's Deck",
		"card_ids": twentyLegalCards(),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decodeData[deckDTO](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/v1/users/login-sync", tokenNewTrainer, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPut, "/v1/decks/"+created.ID, tokenNewTrainer, map[string]any{
		"name": "Hijacked",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d: %s", rec.Code, rec.Body.String())
	}
}
