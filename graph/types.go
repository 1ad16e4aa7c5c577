package graph

import (
	"time"

	"github.com/cardbin/cardbin-api/loaders"
	"github.com/cardbin/cardbin-api/middleware"
	"github.com/cardbin/cardbin-api/models"
	"github.com/cardbin/cardbin-api/resolvers"
	"github.com/graphql-go/graphql"
)

var difficultyEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "Difficulty",
	Values: graphql.EnumValueConfigMap{
		"easy":   {Value: models.DifficultyEasy},
		"medium": {Value: models.DifficultyMedium},
		"hard":   {Value: models.DifficultyHard},
	},
})

var flashcardStatusEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "FlashcardStatus",
	Values: graphql.EnumValueConfigMap{
		"unattempted":    {Value: models.StatusUnattempted},
		"knowAnswer":     {Value: models.StatusKnowAnswer},
		"dontKnowAnswer": {Value: models.StatusDontKnowAnswer},
	},
})

var visibilityEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "FlashcardVisibility",
	Values: graphql.EnumValueConfigMap{
		"public":  {Value: models.VisibilityPublic},
		"private": {Value: models.VisibilityPrivate},
		"deleted": {Value: models.VisibilityDeleted},
	},
})

var timespanEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ReportTimespan",
	Values: graphql.EnumValueConfigMap{
		"week":  {Value: resolvers.TimespanWeek},
		"month": {Value: resolvers.TimespanMonth},
	},
})

var groupByEnum = graphql.NewEnum(graphql.EnumConfig{
	Name: "ReportGroupBy",
	Values: graphql.EnumValueConfigMap{
		"difficulty":   {Value: resolvers.GroupByDifficulty},
		"answerStatus": {Value: resolvers.GroupByAnswerStatus},
	},
})

// Timestamps go over the wire as epoch milliseconds.
func unixMilli(t time.Time) float64 {
	return float64(t.UnixMilli())
}

// List elements arrive as values, single results as pointers; the source
// helpers accept either.
func flashcardFrom(src interface{}) *models.Flashcard {
	switch v := src.(type) {
	case *models.Flashcard:
		return v
	case models.Flashcard:
		return &v
	}
	return nil
}

func userFrom(src interface{}) *models.User {
	switch v := src.(type) {
	case *models.User:
		return v
	case models.User:
		return &v
	}
	return nil
}

func tagFrom(src interface{}) *models.Tag {
	switch v := src.(type) {
	case *models.Tag:
		return v
	case models.Tag:
		return &v
	}
	return nil
}

func historyFrom(src interface{}) *models.FlashcardHistory {
	switch v := src.(type) {
	case *models.FlashcardHistory:
		return v
	case models.FlashcardHistory:
		return &v
	}
	return nil
}

func collectionFrom(src interface{}) *models.Collection {
	switch v := src.(type) {
	case *models.Collection:
		return v
	case models.Collection:
		return &v
	}
	return nil
}

type objects struct {
	fieldError          *graphql.Object
	tag                 *graphql.Object
	user                *graphql.Object
	stats               *graphql.Object
	flashcard           *graphql.Object
	history             *graphql.Object
	collection          *graphql.Object
	paginatedFlashcards *graphql.Object
	paginatedHistory    *graphql.Object
	createFlashcard     *graphql.Object
	updateFlashcard     *graphql.Object
	forkFlashcard       *graphql.Object
	respondToFlashcard  *graphql.Object
	userResponse        *graphql.Object
	createCollection    *graphql.Object
	report              *graphql.Object
}

func buildObjects(r *resolvers.Resolver) *objects {
	o := &objects{}

	o.fieldError = graphql.NewObject(graphql.ObjectConfig{
		Name: "FieldError",
		Fields: graphql.Fields{
			"field":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"message": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
	errorsField := &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(o.fieldError))}

	o.tag = graphql.NewObject(graphql.ObjectConfig{
		Name: "Tag",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return tagFrom(p.Source).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return tagFrom(p.Source).Name, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(tagFrom(p.Source).CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(tagFrom(p.Source).UpdatedAt), nil
				},
			},
		},
	})
	tagList := graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.tag)))

	o.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFrom(p.Source).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFrom(p.Source).Name, nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFrom(p.Source).Username, nil
				},
			},
			// Redacted to "" for everyone but the owner.
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.UserEmail(p.Context, userFrom(p.Source)), nil
				},
			},
			"profilePic": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return userFrom(p.Source).ProfilePic, nil
				},
			},
			"numFlashcards": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					count, err := r.NumFlashcards(p.Context, userFrom(p.Source))
					if err != nil {
						return nil, sanitize(err)
					}
					return count, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(userFrom(p.Source).CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(userFrom(p.Source).UpdatedAt), nil
				},
			},
		},
	})

	o.stats = graphql.NewObject(graphql.ObjectConfig{
		Name: "FlashcardStats",
		Fields: graphql.Fields{
			"avgTime":     &graphql.Field{Type: graphql.NewNonNull(graphql.Float)},
			"numAttempts": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"lastSeenOn": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					stats, _ := p.Source.(*loaders.FlashcardStats)
					if stats == nil {
						return nil, nil
					}
					return unixMilli(stats.LastSeenOn), nil
				},
			},
		},
	})

	o.flashcard = graphql.NewObject(graphql.ObjectConfig{
		Name: "Flashcard",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return flashcardFrom(p.Source).ID, nil
				},
			},
			"randId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return flashcardFrom(p.Source).RandID, nil
				},
			},
			"title": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.FlashcardTitle(p.Context, flashcardFrom(p.Source)), nil
				},
			},
			"body": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.FlashcardBody(p.Context, flashcardFrom(p.Source)), nil
				},
			},
			"isPublic": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return flashcardFrom(p.Source).IsPublic, nil
				},
			},
			"isFork": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return flashcardFrom(p.Source).IsFork, nil
				},
			},
			"difficulty": &graphql.Field{
				Type: graphql.NewNonNull(difficultyEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return flashcardFrom(p.Source).Difficulty, nil
				},
			},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(visibilityEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return r.FlashcardVisibility(flashcardFrom(p.Source)), nil
				},
			},
			"creatorId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return flashcardFrom(p.Source).CreatorID, nil
				},
			},
			"creator": &graphql.Field{
				Type: o.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					card := flashcardFrom(p.Source)
					l := loaders.FromContext(p.Context)
					if l == nil {
						return nil, nil
					}
					thunk := l.Users.Load(p.Context, card.CreatorID)
					return func() (interface{}, error) {
						user, err := thunk()
						if err != nil {
							return nil, sanitize(err)
						}
						if user == nil {
							return nil, nil
						}
						return user, nil
					}, nil
				},
			},
			"tags": &graphql.Field{
				Type: tagList,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					card := flashcardFrom(p.Source)
					if card.Tags != nil {
						return card.Tags, nil
					}
					l := loaders.FromContext(p.Context)
					if l == nil {
						return []models.Tag{}, nil
					}
					thunk := l.FlashcardTags.Load(p.Context, card.ID)
					return func() (interface{}, error) {
						tags, err := thunk()
						if err != nil {
							return nil, sanitize(err)
						}
						if tags == nil {
							return []models.Tag{}, nil
						}
						return tags, nil
					}, nil
				},
			},
			// The caller's own attempt aggregate, never another user's.
			"stats": &graphql.Field{
				Type: o.stats,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, ok := middleware.UserID(p.Context)
					if !ok {
						return nil, resolvers.ErrUnauthorized
					}
					card := flashcardFrom(p.Source)
					l := loaders.FromContext(p.Context)
					if l == nil {
						return nil, nil
					}
					key := loaders.UserFlashcardKey{UserID: userID, FlashcardID: card.ID}
					thunk := l.FlashcardStats.Load(p.Context, key)
					return func() (interface{}, error) {
						stats, err := thunk()
						if err != nil {
							return nil, sanitize(err)
						}
						if stats == nil {
							return nil, nil
						}
						return stats, nil
					}, nil
				},
			},
			"isForkedByYou": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					userID, ok := middleware.UserID(p.Context)
					if !ok {
						return false, nil
					}
					card := flashcardFrom(p.Source)
					l := loaders.FromContext(p.Context)
					if l == nil {
						return false, nil
					}
					key := loaders.UserFlashcardKey{UserID: userID, FlashcardID: card.ID}
					thunk := l.IsForked.Load(p.Context, key)
					return func() (interface{}, error) {
						forked, err := thunk()
						if err != nil {
							return nil, sanitize(err)
						}
						return forked, nil
					}, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(flashcardFrom(p.Source).CreatedAt), nil
				},
			},
			"updatedAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(flashcardFrom(p.Source).UpdatedAt), nil
				},
			},
		},
	})

	o.history = graphql.NewObject(graphql.ObjectConfig{
		Name: "FlashcardHistory",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return historyFrom(p.Source).ID, nil
				},
			},
			"status": &graphql.Field{
				Type: graphql.NewNonNull(flashcardStatusEnum),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return historyFrom(p.Source).Status, nil
				},
			},
			"responseDuration": &graphql.Field{
				Type: graphql.Float,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					duration := historyFrom(p.Source).ResponseDuration
					if duration == nil {
						return nil, nil
					}
					return *duration, nil
				},
			},
			"flashcardId": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return historyFrom(p.Source).FlashcardID, nil
				},
			},
			// Resolves soft-deleted cards too; their content fields come back
			// redacted.
			"flashcard": &graphql.Field{
				Type: o.flashcard,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					entry := historyFrom(p.Source)
					l := loaders.FromContext(p.Context)
					if l == nil {
						return nil, nil
					}
					thunk := l.Flashcards.Load(p.Context, entry.FlashcardID)
					return func() (interface{}, error) {
						card, err := thunk()
						if err != nil {
							return nil, sanitize(err)
						}
						if card == nil {
							return nil, nil
						}
						return card, nil
					}, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(historyFrom(p.Source).CreatedAt), nil
				},
			},
		},
	})

	o.collection = graphql.NewObject(graphql.ObjectConfig{
		Name: "Collection",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Int),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return collectionFrom(p.Source).ID, nil
				},
			},
			"name": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return collectionFrom(p.Source).Name, nil
				},
			},
			"description": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return collectionFrom(p.Source).Description, nil
				},
			},
			"isPublic": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return collectionFrom(p.Source).IsPublic, nil
				},
			},
			"flashcards": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.flashcard))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					cards := collectionFrom(p.Source).Flashcards
					if cards == nil {
						cards = []models.Flashcard{}
					}
					return cards, nil
				},
			},
			"tags": &graphql.Field{
				Type: tagList,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tags := collectionFrom(p.Source).Tags
					if tags == nil {
						tags = []models.Tag{}
					}
					return tags, nil
				},
			},
			"createdAt": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Float),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return unixMilli(collectionFrom(p.Source).CreatedAt), nil
				},
			},
		},
	})

	o.paginatedFlashcards = graphql.NewObject(graphql.ObjectConfig{
		Name: "PaginatedFlashcards",
		Fields: graphql.Fields{
			"flashcards": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.flashcard)))},
			"hasMore":    &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"total":      &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	o.paginatedHistory = graphql.NewObject(graphql.ObjectConfig{
		Name: "PaginatedFlashcardsHistory",
		Fields: graphql.Fields{
			"flashcardHistory": &graphql.Field{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.history)))},
			"hasMore":          &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	o.createFlashcard = graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateFlashcardResponse",
		Fields: graphql.Fields{
			"flashcard": &graphql.Field{Type: o.flashcard},
			"errors":    errorsField,
		},
	})

	o.updateFlashcard = graphql.NewObject(graphql.ObjectConfig{
		Name: "UpdateFlashcardResponse",
		Fields: graphql.Fields{
			"flashcard": &graphql.Field{Type: o.flashcard},
			"errors":    errorsField,
		},
	})

	o.forkFlashcard = graphql.NewObject(graphql.ObjectConfig{
		Name: "ForkFlashcardResponse",
		Fields: graphql.Fields{
			"forkedId": &graphql.Field{Type: graphql.String},
			"errors":   errorsField,
		},
	})

	o.respondToFlashcard = graphql.NewObject(graphql.ObjectConfig{
		Name: "RespondToFlashcardResponse",
		Fields: graphql.Fields{
			"done":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors": errorsField,
		},
	})

	o.userResponse = graphql.NewObject(graphql.ObjectConfig{
		Name: "UserResponse",
		Fields: graphql.Fields{
			"accessToken": &graphql.Field{Type: graphql.String},
			"isNewUser":   &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"errors":      errorsField,
		},
	})

	o.createCollection = graphql.NewObject(graphql.ObjectConfig{
		Name: "CreateCollectionResponse",
		Fields: graphql.Fields{
			"collection": &graphql.Field{Type: o.collection},
			"errors":     errorsField,
		},
	})

	byDifficulty := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReportByDifficulty",
		Fields: graphql.Fields{
			"easy":   &graphql.Field{Type: graphql.Int},
			"medium": &graphql.Field{Type: graphql.Int},
			"hard":   &graphql.Field{Type: graphql.Int},
		},
	})
	byStatus := graphql.NewObject(graphql.ObjectConfig{
		Name: "ReportByAnswerStatus",
		Fields: graphql.Fields{
			"knowAnswer":     &graphql.Field{Type: graphql.Int},
			"dontKnowAnswer": &graphql.Field{Type: graphql.Int},
			"unattempted":    &graphql.Field{Type: graphql.Int},
		},
	})
	o.report = graphql.NewObject(graphql.ObjectConfig{
		Name: "FlashcardReportResponse",
		Fields: graphql.Fields{
			"byDifficulty": &graphql.Field{Type: byDifficulty},
			"byStatus":     &graphql.Field{Type: byStatus},
		},
	})

	return o
}
