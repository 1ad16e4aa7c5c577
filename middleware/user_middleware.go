package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/cardbin/cardbin-api/auth"
)

type contextKey string

const userKey contextKey = "user"

// WithUser decodes the session token, if one is present, and attaches the
// caller's id to the request context. Absent or invalid tokens leave the
// request anonymous; individual operations decide whether that matters.
func WithUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := tokenFromRequest(r); token != "" {
			if claims, err := auth.VerifyToken(token); err == nil {
				r = r.WithContext(WithUserID(r.Context(), claims.UserID))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// tokenFromRequest looks for a bearer token in the Authorization header
// (any casing) or a `token` query parameter.
func tokenFromRequest(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}
	return r.URL.Query().Get("token")
}

// WithUserID attaches a verified caller id to the context.
func WithUserID(ctx context.Context, id uint) context.Context {
	return context.WithValue(ctx, userKey, id)
}

// UserID returns the authenticated caller's id, if any.
func UserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userKey).(uint)
	return id, ok
}
