package internal

import (
	"strconv"
	"sync"
)

// Store owns the three record collections. Each collection keeps
// insertion order; lookups are linear scans, which is fine at this data
// scale. The lock exists because the HTTP server resolves fields on
// concurrent goroutines while mutations rebuild the games collection.
type Store struct {
	mu      sync.RWMutex
	games   []*Game
	authors []*Author
	reviews []*Review
	nextID  int
}

// NewStore returns a store seeded with the initial dataset. Authors and
// reviews are read-only for the lifetime of the store; games are the
// only records mutated at runtime.
func NewStore() *Store {
	s := &Store{
		games:   seedGames(),
		authors: seedAuthors(),
		reviews: seedReviews(),
	}

	for _, game := range s.games {
		if n, err := strconv.Atoi(game.ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}

	return s
}

func seedGames() []*Game {
	return []*Game{
		{ID: "1", Title: "Legend of Code", Platform: []string{"PC", "Switch"}},
		{ID: "2", Title: "Dungeon Drift", Platform: []string{"PlayStation", "Xbox"}},
		{ID: "3", Title: "Star Forge Tactics", Platform: []string{"PC"}},
		{ID: "4", Title: "Pocket Farmer", Platform: []string{"Switch", "Mobile"}},
		{ID: "5", Title: "Neon Circuit", Platform: []string{"PC", "Xbox", "PlayStation"}},
	}
}

func seedAuthors() []*Author {
	return []*Author{
		{ID: "201", Name: "mario", Verified: true},
		{ID: "202", Name: "yoshi", Verified: false},
		{ID: "203", Name: "peach", Verified: true},
	}
}

func seedReviews() []*Review {
	return []*Review{
		{ID: "101", Rating: 5, Content: "A love letter to anyone who grew up debugging.", AuthorID: "201", GameID: "1"},
		{ID: "102", Rating: 10, Content: "Lost a whole weekend to this. No regrets.", AuthorID: "202", GameID: "2"},
		{ID: "103", Rating: 7, Content: "Solid tactics layer, thin story.", AuthorID: "203", GameID: "3"},
		{ID: "104", Rating: 2, Content: "Crashes on the second boss every single time.", AuthorID: "202", GameID: "1"},
		{ID: "105", Rating: 8, Content: "Perfect commute game.", AuthorID: "202", GameID: "4"},
		{ID: "106", Rating: 9, Content: "The soundtrack alone is worth it.", AuthorID: "201", GameID: "5"},
		{ID: "107", Rating: 6, Content: "Fun with friends, grindy alone.", AuthorID: "203", GameID: "2"},
	}
}

// Games returns the full games collection in insertion order. The
// returned slice is a copy so callers never observe a half-rebuilt
// collection during a concurrent delete.
func (s *Store) Games() []*Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*Game(nil), s.games...)
}

func (s *Store) Authors() []*Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*Author(nil), s.authors...)
}

func (s *Store) Reviews() []*Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]*Review(nil), s.reviews...)
}

// FindGameByID returns the first game with the given id, or nil when no
// such game exists. Absence is not an error; the schema layer turns nil
// into a null field.
func (s *Store) FindGameByID(id string) *Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return findGame(s.games, id)
}

func (s *Store) FindAuthorByID(id string) *Author {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, author := range s.authors {
		if author.ID == id {
			return author
		}
	}
	return nil
}

func (s *Store) FindReviewByID(id string) *Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, review := range s.reviews {
		if review.ID == id {
			return review
		}
	}
	return nil
}

func findGame(games []*Game, id string) *Game {
	for _, game := range games {
		if game.ID == id {
			return game
		}
	}
	return nil
}

// AddGame appends a new game and returns it. Ids come from a strictly
// increasing counter seeded past the highest numeric seed id, so they
// never collide with an existing game.
func (s *Store) AddGame(input AddGameInput) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	game := &Game{
		ID:       strconv.Itoa(s.nextID),
		Title:    input.Title,
		Platform: input.Platform,
	}
	s.nextID++
	s.games = append(s.games, game)

	return game
}

// UpdateGame merges the provided edits into the game with the given id
// and returns the updated record. Omitted fields keep their previous
// values. An unknown id is a silent no-op returning nil, mirroring the
// permissive not-found behavior of the read path.
//
// The update is copy-on-write: a fresh record with the merged fields is
// swapped into the collection under the lock. Records already handed to
// readers are never mutated after publication, so field reads outside
// the lock stay safe.
func (s *Store) UpdateGame(id string, edits EditGameInput) *Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, game := range s.games {
		if game.ID != id {
			continue
		}

		updated := &Game{
			ID:       game.ID,
			Title:    game.Title,
			Platform: game.Platform,
		}
		if edits.Title != nil {
			updated.Title = *edits.Title
		}
		if edits.Platform != nil {
			updated.Platform = edits.Platform
		}
		s.games[i] = updated

		return updated
	}

	return nil
}

// DeleteGame removes the game with the given id, if any, and returns
// the resulting full collection. Deleting an unknown id changes nothing
// and still returns the collection. Dependent reviews are not cascaded;
// they keep their game_id and resolve it to null from then on.
func (s *Store) DeleteGame(id string) []*Game {
	s.mu.Lock()
	defer s.mu.Unlock()

	games := make([]*Game, 0, len(s.games))
	for _, game := range s.games {
		if game.ID != id {
			games = append(games, game)
		}
	}
	s.games = games

	return append([]*Game(nil), s.games...)
}
