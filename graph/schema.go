// Package graph maps the transport schema onto the resolver layer. Nested
// fields that fan out, like a feed's creators or the caller's per-card stats,
// resolve through the request's batch loaders and return thunks so the
// executor can coalesce them.
package graph

import (
	"github.com/cardbin/cardbin-api/models"
	"github.com/cardbin/cardbin-api/resolvers"
	"github.com/graphql-go/graphql"
)

var createFlashcardInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateFlashcardInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"title":      &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"body":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"tags":       &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		"difficulty": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(difficultyEnum)},
		"isPublic":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var updateFlashcardInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateFlashcardInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"randId":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"title":      &graphql.InputObjectFieldConfig{Type: graphql.String},
		"body":       &graphql.InputObjectFieldConfig{Type: graphql.String},
		"tags":       &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"difficulty": &graphql.InputObjectFieldConfig{Type: difficultyEnum},
		"isPublic":   &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var getFlashcardsInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "GetFlashcardsInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"limit":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"cursor":   &graphql.InputObjectFieldConfig{Type: graphql.Float},
		"tags":     &graphql.InputObjectFieldConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		"username": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var getFlashcardsHistoryInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "GetFlashcardsHistoryInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"limit":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.Int)},
		"cursor": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var respondToFlashcardInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "RespondToFlashcardInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"randId":   &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"type":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(flashcardStatusEnum)},
		"duration": &graphql.InputObjectFieldConfig{Type: graphql.Float},
	},
})

var createCollectionInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CreateCollectionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"description": &graphql.InputObjectFieldConfig{Type: graphql.String},
		"flashcards":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.Int)))},
		"tags":        &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String)))},
		"isPublic":    &graphql.InputObjectFieldConfig{Type: graphql.Boolean},
	},
})

var updateUserInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateUserProfileInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var searchTagsInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SearchTagsInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"term": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var flashcardReportInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "FlashcardReportInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"timespan": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(timespanEnum)},
		"groupBy":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(groupByEnum)},
	},
})

// Schema wires every query and mutation to its resolver method.
func Schema(r *resolvers.Resolver) (graphql.Schema, error) {
	o := buildObjects(r)

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type: o.user,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := r.Me(p.Context)
					if err != nil {
						return nil, sanitize(err)
					}
					if user == nil {
						return nil, nil
					}
					return user, nil
				},
			},
			"flashcard": &graphql.Field{
				Type: o.flashcard,
				Args: graphql.FieldConfigArgument{
					"randId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					randID, _ := p.Args["randId"].(string)
					card, err := r.Flashcard(p.Context, randID)
					if err != nil {
						return nil, sanitize(err)
					}
					if card == nil {
						return nil, nil
					}
					return card, nil
				},
			},
			"flashcardsFeed": &graphql.Field{
				Type: graphql.NewNonNull(o.paginatedFlashcards),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(getFlashcardsInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					feed, err := r.FlashcardsFeed(p.Context, resolvers.GetFlashcardsInput{
						Limit:  argInt(m, "limit"),
						Cursor: timeCursor(m, "cursor"),
						Tags:   stringList(m, "tags"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return feed, nil
				},
			},
			"userFlashcards": &graphql.Field{
				Type: graphql.NewNonNull(o.paginatedFlashcards),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(getFlashcardsInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					feed, err := r.UserFlashcards(p.Context, resolvers.GetFlashcardsInput{
						Limit:    argInt(m, "limit"),
						Cursor:   timeCursor(m, "cursor"),
						Tags:     stringList(m, "tags"),
						Username: optString(m, "username"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return feed, nil
				},
			},
			"flashcardHistory": &graphql.Field{
				Type: graphql.NewNonNull(o.paginatedHistory),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(getFlashcardsHistoryInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					feed, err := r.FlashcardHistoryFeed(p.Context, resolvers.GetFlashcardHistoryInput{
						Limit:  argInt(m, "limit"),
						Cursor: timeCursor(m, "cursor"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return feed, nil
				},
			},
			"flashcardsReport": &graphql.Field{
				Type: graphql.NewNonNull(o.report),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(flashcardReportInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					timespan, _ := m["timespan"].(resolvers.ReportTimespan)
					groupBy, _ := m["groupBy"].(resolvers.ReportGroupBy)
					report, err := r.FlashcardsReport(p.Context, resolvers.FlashcardReportInput{
						Timespan: timespan,
						GroupBy:  groupBy,
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return report, nil
				},
			},
			"myTopTags": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.tag))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tags, err := r.MyTopTags(p.Context)
					if err != nil {
						return nil, sanitize(err)
					}
					return tags, nil
				},
			},
			"topTags": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.tag))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tags, err := r.TopTags(p.Context)
					if err != nil {
						return nil, sanitize(err)
					}
					return tags, nil
				},
			},
			"searchTags": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(o.tag))),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(searchTagsInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tags, err := r.SearchTags(p.Context, argString(inputMap(p), "term"))
					if err != nil {
						return nil, sanitize(err)
					}
					return tags, nil
				},
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"login": &graphql.Field{
				Type: graphql.NewNonNull(o.userResponse),
				Args: graphql.FieldConfigArgument{
					"idToken": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"name":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					idToken, _ := p.Args["idToken"].(string)
					name, _ := p.Args["name"].(string)
					resp, err := r.Login(p.Context, idToken, name)
					if err != nil {
						return nil, sanitize(err)
					}
					return resp, nil
				},
			},
			"updateUser": &graphql.Field{
				Type: o.user,
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateUserInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					user, err := r.UpdateUser(p.Context, resolvers.UpdateUserInput{
						Name: optString(inputMap(p), "name"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					if user == nil {
						return nil, nil
					}
					return user, nil
				},
			},
			"createFlashcard": &graphql.Field{
				Type: graphql.NewNonNull(o.createFlashcard),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createFlashcardInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					difficulty, _ := m["difficulty"].(models.Difficulty)
					resp, err := r.CreateFlashcard(p.Context, resolvers.CreateFlashcardInput{
						Title:      argString(m, "title"),
						Body:       argString(m, "body"),
						Tags:       stringList(m, "tags"),
						Difficulty: difficulty,
						IsPublic:   argBool(m, "isPublic"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return resp, nil
				},
			},
			"updateFlashcard": &graphql.Field{
				Type: graphql.NewNonNull(o.updateFlashcard),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateFlashcardInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					resp, err := r.UpdateFlashcard(p.Context, resolvers.UpdateFlashcardInput{
						RandID:     argString(m, "randId"),
						Title:      optString(m, "title"),
						Body:       optString(m, "body"),
						Tags:       stringList(m, "tags"),
						IsPublic:   optBool(m, "isPublic"),
						Difficulty: optDifficulty(m, "difficulty"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return resp, nil
				},
			},
			"deleteFlashcard": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"randId": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					randID, _ := p.Args["randId"].(string)
					done, err := r.DeleteFlashcard(p.Context, randID)
					if err != nil {
						return nil, sanitize(err)
					}
					return done, nil
				},
			},
			"forkFlashcard": &graphql.Field{
				Type: graphql.NewNonNull(o.forkFlashcard),
				Args: graphql.FieldConfigArgument{
					"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					from, _ := p.Args["from"].(string)
					resp, err := r.ForkFlashcard(p.Context, from)
					if err != nil {
						return nil, sanitize(err)
					}
					return resp, nil
				},
			},
			"respondToFlashcard": &graphql.Field{
				Type: graphql.NewNonNull(o.respondToFlashcard),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(respondToFlashcardInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					status, _ := m["type"].(models.FlashcardStatus)
					resp, err := r.RespondToFlashcard(p.Context, resolvers.RespondToFlashcardInput{
						RandID:   argString(m, "randId"),
						Type:     status,
						Duration: optFloat(m, "duration"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return resp, nil
				},
			},
			"createCollection": &graphql.Field{
				Type: graphql.NewNonNull(o.createCollection),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(createCollectionInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					m := inputMap(p)
					resp, err := r.CreateCollection(p.Context, resolvers.CreateCollectionInput{
						Name:        argString(m, "name"),
						Description: optString(m, "description"),
						Flashcards:  uintList(m, "flashcards"),
						Tags:        stringList(m, "tags"),
						IsPublic:    argBool(m, "isPublic"),
					})
					if err != nil {
						return nil, sanitize(err)
					}
					return resp, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{Query: query, Mutation: mutation})
}
