// Package resolvers implements the queries and mutations exposed by the
// GraphQL schema: authorization gating, field-level visibility, and the
// transactional writes behind flashcard creation, forking, and tagging.
package resolvers

import (
	"github.com/cardbin/cardbin-api/auth"
	"gorm.io/gorm"
)

// Resolver owns the dependencies every operation needs. The database handle
// is injected here rather than read from ambient package state.
type Resolver struct {
	DB       *gorm.DB
	Identity auth.IdentityVerifier
}

func New(db *gorm.DB, identity auth.IdentityVerifier) *Resolver {
	return &Resolver{DB: db, Identity: identity}
}
