package resolvers

import (
	"context"
	"errors"
	"log"

	"github.com/cardbin/cardbin-api/middleware"
	"github.com/getsentry/sentry-go"
)

// ErrUnauthorized aborts a gated operation when no verified caller identity
// is attached to the request. It is expected traffic and is never reported
// to the error tracker.
var ErrUnauthorized = errors.New("UNAUTHORIZED")

func (r *Resolver) requireUser(ctx context.Context) (uint, error) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return 0, ErrUnauthorized
	}
	return id, nil
}

// InvalidInputError carries field-scoped validation failures out of query
// operations, which have no inline errors list in their payload the way the
// mutations do. Expected traffic, never reported to the error tracker.
type InvalidInputError struct {
	Errors []FieldError
}

func (e *InvalidInputError) Error() string {
	if len(e.Errors) == 0 {
		return "Invalid input."
	}
	return e.Errors[0].Message
}

// report logs an unexpected failure and forwards it to the error tracker.
func report(err error) {
	log.Println(err)
	sentry.CaptureException(err)
}
