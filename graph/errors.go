package graph

import (
	"errors"
	"log"

	"github.com/cardbin/cardbin-api/resolvers"
	"github.com/getsentry/sentry-go"
)

var errInternal = errors.New("INTERNAL_SERVER_ERROR")

// sanitize decides what a resolver failure looks like on the wire.
// Unauthorized and validation errors are expected traffic and pass through
// untracked; anything else is reported and replaced so internal detail never
// reaches the caller.
func sanitize(err error) error {
	if err == nil || errors.Is(err, resolvers.ErrUnauthorized) {
		return err
	}
	var invalid *resolvers.InvalidInputError
	if errors.As(err, &invalid) {
		return err
	}
	log.Println(err)
	sentry.CaptureException(err)
	return errInternal
}
