package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gglink/gglink/internal/domain"
)

type contextKey int

const identityKey contextKey = iota

// IdentityResolver turns a bearer credential into a live account identity.
type IdentityResolver interface {
	ResolveIdentity(token string) (domain.Identity, error)
}

// bearerToken extracts the credential from the x-auth-token header or an
// Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	if token := r.Header.Get("x-auth-token"); token != "" {
		return token
	}
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// RequireAuth rejects requests without a resolvable credential and stashes
// the identity in the request context for handlers.
func RequireAuth(resolver IdentityResolver, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			respondMessage(w, http.StatusUnauthorized, "no token, authorization denied")
			return
		}

		identity, err := resolver.ResolveIdentity(token)
		if err != nil {
			respondMessage(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// identityFrom returns the authenticated identity stored by RequireAuth.
func identityFrom(r *http.Request) domain.Identity {
	identity, _ := r.Context().Value(identityKey).(domain.Identity)
	return identity
}
