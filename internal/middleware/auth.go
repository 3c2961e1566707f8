package middleware

import (
	"context"
	"net/http"
	"net/url"

	"eventhub/internal/entity"
	"eventhub/internal/session"
)

type contextKey string

const (
	claimsKey contextKey = "claims"
	tokenKey  contextKey = "token"
)

func ClaimsFrom(ctx context.Context) *entity.TokenClaims {
	claims, _ := ctx.Value(claimsKey).(*entity.TokenClaims)
	return claims
}

func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// RequireUser sends visitors without a session to the login page,
// keeping the requested path for the post-login redirect.
func RequireUser(gate *session.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, token, ok := gate.Current(w, r)
			if !ok {
				http.Redirect(w, r, "/login?redirect="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), claims, token)))
		})
	}
}

// RequireAdmin additionally checks the role claim. Non-admins are sent
// home with an access-denied notice; the check runs on every request.
func RequireAdmin(gate *session.Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, token, ok := gate.Current(w, r)
			if !ok {
				http.Redirect(w, r, "/login?redirect="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
				return
			}
			if claims.Role != entity.RoleAdmin {
				http.Redirect(w, r, "/?error=forbidden", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), claims, token)))
		})
	}
}

func withSession(ctx context.Context, claims *entity.TokenClaims, token string) context.Context {
	ctx = context.WithValue(ctx, claimsKey, claims)
	return context.WithValue(ctx, tokenKey, token)
}
