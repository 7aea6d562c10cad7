package internal

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
)

func execute(t *testing.T, schema graphql.Schema, query string, variables map[string]interface{}) map[string]interface{} {
	t.Helper()

	result := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  query,
		VariableValues: variables,
	})
	assert.Empty(t, result.Errors)

	data, ok := result.Data.(map[string]interface{})
	assert.True(t, ok)
	return data
}

func newTestSchema(t *testing.T) (graphql.Schema, *Store) {
	t.Helper()

	store := NewStore()
	schema, err := NewSchema(store)
	assert.NoError(t, err)
	return schema, store
}

func TestQueryGames(t *testing.T) {
	assert := assert.New(t)

	schema, _ := newTestSchema(t)
	data := execute(t, schema, `{ games { id title platform } }`, nil)

	games := data["games"].([]interface{})
	assert.Len(games, 5)

	first := games[0].(map[string]interface{})
	assert.Equal("1", first["id"])
	assert.Equal("Legend of Code", first["title"])
	assert.Equal([]interface{}{"PC", "Switch"}, first["platform"])
}

func TestQueryGameWithNestedReviews(t *testing.T) {
	assert := assert.New(t)

	schema, _ := newTestSchema(t)
	data := execute(t, schema, `{
		game(id: "1") {
			title
			reviews { id rating author { id name } }
		}
	}`, nil)

	game := data["game"].(map[string]interface{})
	assert.Equal("Legend of Code", game["title"])

	reviews := game["reviews"].([]interface{})
	assert.Len(reviews, 2)

	first := reviews[0].(map[string]interface{})
	assert.Equal("101", first["id"])
	assert.Equal(5, first["rating"])
	assert.Equal("201", first["author"].(map[string]interface{})["id"])

	second := reviews[1].(map[string]interface{})
	assert.Equal("104", second["id"])
	assert.Equal(2, second["rating"])
	assert.Equal("202", second["author"].(map[string]interface{})["id"])
}

func TestQueryUnknownIDsResolveNull(t *testing.T) {
	assert := assert.New(t)

	schema, _ := newTestSchema(t)

	tests := map[string]string{
		"game":   `{ game(id: "999") { id } }`,
		"author": `{ author(id: "999") { id } }`,
		"review": `{ review(id: "999") { id } }`,
	}

	for field, query := range tests {
		data := execute(t, schema, query, nil)
		assert.Nil(data[field], field)
	}
}

func TestQueryAuthorReviews(t *testing.T) {
	assert := assert.New(t)

	schema, _ := newTestSchema(t)
	data := execute(t, schema, `{
		author(id: "202") { name verified reviews { id game { title } } }
	}`, nil)

	author := data["author"].(map[string]interface{})
	assert.Equal("yoshi", author["name"])
	assert.Equal(false, author["verified"])

	reviews := author["reviews"].([]interface{})
	assert.Len(reviews, 3)
	assert.Equal("Legend of Code",
		reviews[1].(map[string]interface{})["game"].(map[string]interface{})["title"])
}

func TestMutationAddGame(t *testing.T) {
	assert := assert.New(t)

	schema, store := newTestSchema(t)
	data := execute(t, schema, `mutation ($game: AddGameInput!) {
		addGame(game: $game) { id title platform }
	}`, map[string]interface{}{
		"game": map[string]interface{}{
			"title":    "Elden Ring",
			"platform": []interface{}{"PC", "PlayStation", "Xbox"},
		},
	})

	added := data["addGame"].(map[string]interface{})
	assert.Equal("Elden Ring", added["title"])
	assert.Equal([]interface{}{"PC", "PlayStation", "Xbox"}, added["platform"])

	id := added["id"].(string)
	assert.NotEmpty(id)
	assert.NotNil(store.FindGameByID(id))
	assert.Len(store.Games(), 6)
}

func TestMutationUpdateGamePartial(t *testing.T) {
	assert := assert.New(t)

	schema, _ := newTestSchema(t)
	data := execute(t, schema, `mutation {
		updateGame(id: "1", edits: { title: "Remastered" }) { id title platform }
	}`, nil)

	updated := data["updateGame"].(map[string]interface{})
	assert.Equal("1", updated["id"])
	assert.Equal("Remastered", updated["title"])
	assert.Equal([]interface{}{"PC", "Switch"}, updated["platform"])
}

func TestMutationUpdateGameUnknownIDIsNull(t *testing.T) {
	assert := assert.New(t)

	schema, store := newTestSchema(t)
	before := store.Games()

	data := execute(t, schema, `mutation {
		updateGame(id: "999", edits: { title: "Ghost" }) { id }
	}`, nil)

	assert.Nil(data["updateGame"])
	assert.Equal(before, store.Games())
}

func TestMutationDeleteGame(t *testing.T) {
	assert := assert.New(t)

	schema, store := newTestSchema(t)
	data := execute(t, schema, `mutation { deleteGame(id: "2") { id } }`, nil)

	games := data["deleteGame"].([]interface{})
	assert.Len(games, 4)
	assert.Nil(store.FindGameByID("2"))

	// Unknown id: still the full (unchanged) collection, no error.
	data = execute(t, schema, `mutation { deleteGame(id: "2") { id } }`, nil)
	assert.Len(data["deleteGame"].([]interface{}), 4)
}

func TestReviewOfDeletedGameResolvesNullGame(t *testing.T) {
	assert := assert.New(t)

	schema, store := newTestSchema(t)
	store.DeleteGame("1")

	data := execute(t, schema, `{ review(id: "101") { id game { id } } }`, nil)

	review := data["review"].(map[string]interface{})
	assert.Equal("101", review["id"])
	assert.Nil(review["game"])
}
