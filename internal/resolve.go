package internal

// Relationship fields are computed from current store state on every
// call. No memoization: a review added or a game deleted is visible to
// the next call with no invalidation step.

// ReviewsForGame returns every review whose game_id matches the game,
// in review insertion order. A game nobody reviewed yields an empty
// slice, never nil-as-absent.
func (s *Store) ReviewsForGame(game *Game) []*Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*Review, 0)
	for _, review := range s.reviews {
		if review.GameID == game.ID {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

// ReviewsForAuthor is the author-side counterpart of ReviewsForGame.
func (s *Store) ReviewsForAuthor(author *Author) []*Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*Review, 0)
	for _, review := range s.reviews {
		if review.AuthorID == author.ID {
			reviews = append(reviews, review)
		}
	}
	return reviews
}

// AuthorOfReview resolves the review's author reference, nil when the
// referenced author does not exist.
func (s *Store) AuthorOfReview(review *Review) *Author {
	return s.FindAuthorByID(review.AuthorID)
}

// GameOfReview resolves the review's game reference. After a game is
// deleted its reviews still carry the old game_id, so nil is a normal
// outcome here, not a data error.
func (s *Store) GameOfReview(review *Review) *Game {
	return s.FindGameByID(review.GameID)
}
