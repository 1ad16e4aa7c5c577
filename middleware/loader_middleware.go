package middleware

import (
	"net/http"

	"github.com/cardbin/cardbin-api/loaders"
	"gorm.io/gorm"
)

// WithLoaders installs a fresh set of batch loaders for every request. The
// loader caches must never outlive a request or results would leak between
// users.
func WithLoaders(db *gorm.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := loaders.ToContext(r.Context(), loaders.New(db))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
