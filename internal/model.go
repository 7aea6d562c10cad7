package internal

type (
	// Game is a flat record; its reviews are derived on demand, never stored.
	Game struct {
		ID       string   `json:"id"`
		Title    string   `json:"title"`
		Platform []string `json:"platform"`
	}

	Author struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Verified bool   `json:"verified"`
	}

	// Review references exactly one author and one game by id. The
	// references are not enforced; deleting a game leaves its reviews
	// dangling and their game field resolves to null.
	Review struct {
		ID       string `json:"id"`
		Rating   int    `json:"rating"`
		Content  string `json:"content"`
		AuthorID string `json:"author_id"`
		GameID   string `json:"game_id"`
	}
)

// AddGameInput carries the fields of a new game. Both are stored
// verbatim: empty titles, empty platform lists and duplicate titles are
// all accepted.
type AddGameInput struct {
	Title    string   `json:"title"`
	Platform []string `json:"platform"`
}

// EditGameInput is a field-level merge: nil means "leave unchanged".
type EditGameInput struct {
	Title    *string  `json:"title,omitempty"`
	Platform []string `json:"platform,omitempty"`
}
