package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

// Catalog reads are public; the card and ability catalogs carry no
// user-specific data.
func registerPublicCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/abilities", handler.ListAbilities)
	mux.HandleFunc("GET /v1/cards", handler.ListCards)
	mux.HandleFunc("GET /v1/cards/{cardID}", handler.GetCard)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/users/login-sync", RequireAuth(verifier, http.HandlerFunc(handler.SyncLogin)))
	mux.Handle("GET /v1/users/me", RequireAuth(verifier, http.HandlerFunc(handler.GetMe)))

	mux.Handle("POST /v1/abilities", RequireAuth(verifier, http.HandlerFunc(handler.CreateAbility)))
	mux.Handle("POST /v1/cards/pokemon", RequireAuth(verifier, http.HandlerFunc(handler.CreatePokemonCard)))
	mux.Handle("POST /v1/cards/trainer", RequireAuth(verifier, http.HandlerFunc(handler.CreateTrainerCard)))

	mux.Handle("POST /v1/decks", RequireAuth(verifier, http.HandlerFunc(handler.CreateDeck)))
	mux.Handle("GET /v1/decks", RequireAuth(verifier, http.HandlerFunc(handler.ListMyDecks)))
	mux.Handle("GET /v1/decks/{deckID}", RequireAuth(verifier, http.HandlerFunc(handler.GetDeck)))
	mux.Handle("PUT /v1/decks/{deckID}", RequireAuth(verifier, http.HandlerFunc(handler.UpdateDeck)))

	mux.Handle("POST /v1/games", RequireAuth(verifier, http.HandlerFunc(handler.RecordGame)))
	mux.Handle("GET /v1/games/statistics", RequireAuth(verifier, http.HandlerFunc(handler.GetMyStatistics)))
}
