package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func reviewIDs(reviews []*Review) []string {
	ids := make([]string, 0, len(reviews))
	for _, review := range reviews {
		ids = append(ids, review.ID)
	}
	return ids
}

func TestReviewsForGame(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]struct {
		gameID string
		want   []string
	}{
		"two reviews in insertion order": {gameID: "1", want: []string{"101", "104"}},
		"single review":                  {gameID: "3", want: []string{"103"}},
		"shared game":                    {gameID: "2", want: []string{"102", "107"}},
	}

	store := NewStore()
	for name, tc := range tests {
		game := store.FindGameByID(tc.gameID)
		assert.NotNil(game, name)
		assert.Equal(tc.want, reviewIDs(store.ReviewsForGame(game)), name)
	}
}

func TestReviewsForGameWithoutReviews(t *testing.T) {
	assert := assert.New(t)

	store := NewStore()
	game := store.AddGame(AddGameInput{Title: "Unreviewed", Platform: []string{"PC"}})

	reviews := store.ReviewsForGame(game)
	assert.NotNil(reviews)
	assert.Empty(reviews)
}

func TestReviewsForAuthor(t *testing.T) {
	assert := assert.New(t)

	store := NewStore()

	author := store.FindAuthorByID("202")
	assert.Equal([]string{"102", "104", "105"}, reviewIDs(store.ReviewsForAuthor(author)))

	author = store.FindAuthorByID("201")
	assert.Equal([]string{"101", "106"}, reviewIDs(store.ReviewsForAuthor(author)))
}

func TestAuthorOfReview(t *testing.T) {
	assert := assert.New(t)

	store := NewStore()

	review := store.FindReviewByID("101")
	author := store.AuthorOfReview(review)
	assert.NotNil(author)
	assert.Equal("mario", author.Name)

	dangling := &Review{ID: "900", AuthorID: "999", GameID: "1"}
	assert.Nil(store.AuthorOfReview(dangling))
}

func TestGameOfReview(t *testing.T) {
	assert := assert.New(t)

	store := NewStore()

	review := store.FindReviewByID("104")
	game := store.GameOfReview(review)
	assert.NotNil(game)
	assert.Equal("Legend of Code", game.Title)
}

func TestGameOfReviewDanglingAfterDelete(t *testing.T) {
	assert := assert.New(t)

	store := NewStore()
	store.DeleteGame("1")

	// Reviews of the deleted game stay in the collection but their game
	// reference now resolves to nothing.
	for _, id := range []string{"101", "104"} {
		review := store.FindReviewByID(id)
		assert.NotNil(review)
		assert.Nil(store.GameOfReview(review))
	}

	// Other games keep their reviews untouched.
	game := store.FindGameByID("2")
	assert.Equal([]string{"102", "107"}, reviewIDs(store.ReviewsForGame(game)))
}
