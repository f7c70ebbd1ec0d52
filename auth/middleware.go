package auth

import (
	"context"
	"net/http"
	"strings"
)

type identityKey struct{}

// WithIdentity stores the authenticated identity in context.
func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, ident)
}

// IdentityFromContext retrieves the authenticated identity (if any).
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	ident, ok := ctx.Value(identityKey{}).(*Identity)
	return ident, ok
}

// RequireAuth wraps a handler with bearer-token authentication. A missing
// credential yields 401; a present but unverifiable one yields 403.
func RequireAuth(tokens *TokenService, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr, ok := bearerToken(r)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		ident, err := tokens.Verify(tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		handler(w, r.WithContext(WithIdentity(r.Context(), ident)))
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
