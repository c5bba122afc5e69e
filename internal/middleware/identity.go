package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// CookieName carries the per-browser identity token.
const CookieName = "toy_uid"

const cookieMaxAge = 60 * 60 * 24 * 365

type identityContextKey struct{}

// Identity guarantees every request downstream carries a stable browser
// identity token. A valid existing cookie is reused unchanged; otherwise a
// fresh token is minted and set with a one-year, lax, script-readable cookie
// so the UI can show "your" items. This never fails: when the client drops
// the cookie, each visit simply counts as a new identity.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ""
		if c, err := r.Cookie(CookieName); err == nil {
			id = strings.TrimSpace(c.Value)
		}
		if id == "" {
			id = "toy-" + uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   cookieMaxAge,
				HttpOnly: false,
				SameSite: http.SameSiteLaxMode,
			})
		}
		ctx := context.WithValue(r.Context(), identityContextKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFromContext returns the token stored by Identity.
func IdentityFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(identityContextKey{}).(string); ok {
		return v
	}
	return ""
}
