package internal

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/go-resty/resty/v2"
)

// Client is a thin GraphQL client over the server's /graphql endpoint,
// used by the CLI commands.
type Client struct {
	endpoint string
	rest     *resty.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		rest:     resty.New(),
	}
}

type GraphQLError struct {
	Message string `json:"message"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// Do executes a single query or mutation and unmarshals the data
// payload into out. Errors reported by the server come back as a
// wrapped ErrRequestFailed.
func (c *Client) Do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	body := map[string]interface{}{"query": query}
	if len(variables) > 0 {
		body["variables"] = variables
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(c.endpoint + "/graphql")
	if err != nil {
		return WrapError(err)
	}

	var result graphqlResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return WrapError(err)
	}

	if len(result.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrRequestFailed, result.Errors[0].Message)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: status %d", ErrRequestFailed, resp.StatusCode())
	}

	if out != nil {
		return json.Unmarshal(result.Data, out)
	}
	return nil
}

// ReviewEdge is a review with its relationship fields expanded. Author
// and Game are nil when the reference dangles.
type ReviewEdge struct {
	ID      string  `json:"id"`
	Rating  int     `json:"rating"`
	Content string  `json:"content"`
	Author  *Author `json:"author"`
	Game    *Game   `json:"game"`
}

type GameWithReviews struct {
	Game
	Reviews []*ReviewEdge `json:"reviews"`
}

type AuthorWithReviews struct {
	Author
	Reviews []*ReviewEdge `json:"reviews"`
}

func (c *Client) Games(ctx context.Context) ([]*Game, error) {
	var out struct {
		Games []*Game `json:"games"`
	}
	if err := c.Do(ctx, `{ games { id title platform } }`, nil, &out); err != nil {
		return nil, err
	}
	return out.Games, nil
}

func (c *Client) Game(ctx context.Context, id string) (*GameWithReviews, error) {
	query := `query ($id: ID!) {
		game(id: $id) {
			id title platform
			reviews { id rating content author { id name verified } }
		}
	}`

	var out struct {
		Game *GameWithReviews `json:"game"`
	}
	if err := c.Do(ctx, query, map[string]interface{}{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Game, nil
}

func (c *Client) Authors(ctx context.Context) ([]*Author, error) {
	var out struct {
		Authors []*Author `json:"authors"`
	}
	if err := c.Do(ctx, `{ authors { id name verified } }`, nil, &out); err != nil {
		return nil, err
	}
	return out.Authors, nil
}

func (c *Client) Author(ctx context.Context, id string) (*AuthorWithReviews, error) {
	query := `query ($id: ID!) {
		author(id: $id) {
			id name verified
			reviews { id rating content game { id title } }
		}
	}`

	var out struct {
		Author *AuthorWithReviews `json:"author"`
	}
	if err := c.Do(ctx, query, map[string]interface{}{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Author, nil
}

func (c *Client) Reviews(ctx context.Context) ([]*ReviewEdge, error) {
	query := `{ reviews { id rating content author { id name } game { id title } } }`

	var out struct {
		Reviews []*ReviewEdge `json:"reviews"`
	}
	if err := c.Do(ctx, query, nil, &out); err != nil {
		return nil, err
	}
	return out.Reviews, nil
}

func (c *Client) Review(ctx context.Context, id string) (*ReviewEdge, error) {
	query := `query ($id: ID!) {
		review(id: $id) { id rating content author { id name } game { id title } }
	}`

	var out struct {
		Review *ReviewEdge `json:"review"`
	}
	if err := c.Do(ctx, query, map[string]interface{}{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.Review, nil
}

func (c *Client) AddGame(ctx context.Context, input AddGameInput) (*Game, error) {
	query := `mutation ($game: AddGameInput!) {
		addGame(game: $game) { id title platform }
	}`

	var out struct {
		AddGame *Game `json:"addGame"`
	}
	err := c.Do(ctx, query, map[string]interface{}{
		"game": map[string]interface{}{
			"title":    input.Title,
			"platform": input.Platform,
		},
	}, &out)
	if err != nil {
		return nil, err
	}
	return out.AddGame, nil
}

// UpdateGame returns nil without an error when the id does not exist,
// mirroring the server's silent not-found behavior.
func (c *Client) UpdateGame(ctx context.Context, id string, edits EditGameInput) (*Game, error) {
	query := `mutation ($id: ID!, $edits: EditGameInput!) {
		updateGame(id: $id, edits: $edits) { id title platform }
	}`

	fields := map[string]interface{}{}
	if edits.Title != nil {
		fields["title"] = *edits.Title
	}
	if edits.Platform != nil {
		fields["platform"] = edits.Platform
	}

	var out struct {
		UpdateGame *Game `json:"updateGame"`
	}
	err := c.Do(ctx, query, map[string]interface{}{"id": id, "edits": fields}, &out)
	if err != nil {
		return nil, err
	}
	return out.UpdateGame, nil
}

func (c *Client) DeleteGame(ctx context.Context, id string) ([]*Game, error) {
	query := `mutation ($id: ID!) {
		deleteGame(id: $id) { id title platform }
	}`

	var out struct {
		DeleteGame []*Game `json:"deleteGame"`
	}
	if err := c.Do(ctx, query, map[string]interface{}{"id": id}, &out); err != nil {
		return nil, err
	}
	return out.DeleteGame, nil
}

func AskPrompt(Message, AnswerOne, AnswerTwo string) (string, error) {

	prompt := &survey.Select{
		Message: Message,
		Options: []string{AnswerOne, AnswerTwo},
	}

	answer := ""
	if err := survey.AskOne(prompt, &answer, survey.WithIcons(func(icons *survey.IconSet) {
		icons.SelectFocus.Format = "green+hb"
	}), survey.WithPageSize(2)); err != nil {
		return "No", err
	}

	return answer, nil
}

func AskInput(Message string) (string, error) {
	prompt := &survey.Input{
		Message: Message,
	}

	answer := ""
	if err := survey.AskOne(prompt, &answer, survey.WithIcons(func(icons *survey.IconSet) {
		icons.Question.Format = "green+hb"
	})); err != nil {
		return "", err
	}

	return answer, nil
}

func AskMultiSelect(Message string, Options []string) ([]string, error) {
	prompt := &survey.MultiSelect{
		Message: Message,
		Options: Options,
	}

	answer := []string{}
	if err := survey.AskOne(prompt, &answer, survey.WithIcons(func(icons *survey.IconSet) {
		icons.SelectFocus.Format = "green+hb"
	}), survey.WithPageSize(len(Options))); err != nil {
		return nil, err
	}

	return answer, nil
}
