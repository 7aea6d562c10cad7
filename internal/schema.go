package internal

import (
	"github.com/graphql-go/graphql"
)

// NewSchema declares the GraphQL shape of the three record types and
// binds every field to the store. Scalar fields resolve through the
// default resolver over the model's json tags; relationship fields and
// the root query/mutation fields get explicit resolvers.
func NewSchema(store *Store) (graphql.Schema, error) {
	gameType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Game",
		Fields: graphql.Fields{
			"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"platform": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
			},
		},
	})

	authorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"id":       &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"verified": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
		},
	})

	reviewType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Review",
		Fields: graphql.Fields{
			"id":      &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"rating":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"content": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	// The relationship fields close the Game <-> Review <-> Author
	// cycle, so they are attached after all three types exist.
	gameType.AddFieldConfig("reviews", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(reviewType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return store.ReviewsForGame(p.Source.(*Game)), nil
		},
	})
	authorType.AddFieldConfig("reviews", &graphql.Field{
		Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(reviewType))),
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			return store.ReviewsForAuthor(p.Source.(*Author)), nil
		},
	})
	reviewType.AddFieldConfig("author", &graphql.Field{
		Type: authorType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if author := store.AuthorOfReview(p.Source.(*Review)); author != nil {
				return author, nil
			}
			return nil, nil
		},
	})
	reviewType.AddFieldConfig("game", &graphql.Field{
		Type: gameType,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			if game := store.GameOfReview(p.Source.(*Review)); game != nil {
				return game, nil
			}
			return nil, nil
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"games": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(gameType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.Games(), nil
				},
			},
			"game": &graphql.Field{
				Type: gameType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if game := store.FindGameByID(p.Args["id"].(string)); game != nil {
						return game, nil
					}
					return nil, nil
				},
			},
			"authors": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(authorType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.Authors(), nil
				},
			},
			"author": &graphql.Field{
				Type: authorType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if author := store.FindAuthorByID(p.Args["id"].(string)); author != nil {
						return author, nil
					}
					return nil, nil
				},
			},
			"reviews": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(reviewType))),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.Reviews(), nil
				},
			},
			"review": &graphql.Field{
				Type: reviewType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					if review := store.FindReviewByID(p.Args["id"].(string)); review != nil {
						return review, nil
					}
					return nil, nil
				},
			},
		},
	})

	addGameInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "AddGameInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"platform": &graphql.InputObjectFieldConfig{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
			},
		},
	})

	editGameInput := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "EditGameInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"title": &graphql.InputObjectFieldConfig{Type: graphql.String},
			"platform": &graphql.InputObjectFieldConfig{
				Type: graphql.NewList(graphql.NewNonNull(graphql.String)),
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"addGame": &graphql.Field{
				Type: graphql.NewNonNull(gameType),
				Args: graphql.FieldConfigArgument{
					"game": &graphql.ArgumentConfig{Type: graphql.NewNonNull(addGameInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					game := p.Args["game"].(map[string]interface{})
					return store.AddGame(AddGameInput{
						Title:    game["title"].(string),
						Platform: toStringSlice(game["platform"]),
					}), nil
				},
			},
			"updateGame": &graphql.Field{
				Type: gameType,
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"edits": &graphql.ArgumentConfig{Type: graphql.NewNonNull(editGameInput)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					edits := p.Args["edits"].(map[string]interface{})

					var input EditGameInput
					if title, ok := edits["title"].(string); ok {
						input.Title = &title
					}
					if platform, ok := edits["platform"]; ok && platform != nil {
						input.Platform = toStringSlice(platform)
					}

					if game := store.UpdateGame(p.Args["id"].(string), input); game != nil {
						return game, nil
					}
					return nil, nil
				},
			},
			"deleteGame": &graphql.Field{
				Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(gameType))),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return store.DeleteGame(p.Args["id"].(string)), nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

func toStringSlice(value interface{}) []string {
	raw, ok := value.([]interface{})
	if !ok {
		return []string{}
	}

	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
