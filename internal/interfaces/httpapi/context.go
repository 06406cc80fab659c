package httpapi

import (
	"context"

	"github.com/ptcgpocket/companion/internal/infrastructure/account/introspect"
)

type contextKey string

const identityContextKey contextKey = "auth_identity"

func withIdentity(ctx context.Context, id introspect.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

func identityFromContext(ctx context.Context) (introspect.Identity, bool) {
	id, ok := ctx.Value(identityContextKey).(introspect.Identity)
	return id, ok
}
