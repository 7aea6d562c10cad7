package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/ghdwlsgur/gamegraph/internal"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func getGames(ctx context.Context, id string) error {
	client := newClient()

	if id != "" {
		game, err := client.Game(ctx, id)
		if err != nil {
			return err
		}
		if game == nil {
			fmt.Println(color.HiRedString("The game does not exist"))
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Platform"})
		t.AppendRow(table.Row{game.ID, game.Title, strings.Join(game.Platform, ", ")})
		t.Render()

		if len(game.Reviews) > 0 {
			r := table.NewWriter()
			r.SetOutputMirror(os.Stdout)
			r.AppendHeader(table.Row{"Review", "Rating", "Author", "Content"})
			for _, review := range game.Reviews {
				author := "-"
				if review.Author != nil {
					author = review.Author.Name
				}
				r.AppendRow(table.Row{review.ID, review.Rating, author, review.Content})
			}
			r.Render()
		} else {
			fmt.Println("No reviews for this game yet")
		}

		return nil
	}

	games, err := client.Games(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Platform"})
	for _, game := range games {
		t.AppendRow(table.Row{game.ID, game.Title, strings.Join(game.Platform, ", ")})
	}
	t.Render()

	return nil
}

func getAuthors(ctx context.Context, id string) error {
	client := newClient()

	if id != "" {
		author, err := client.Author(ctx, id)
		if err != nil {
			return err
		}
		if author == nil {
			fmt.Println(color.HiRedString("The author does not exist"))
			return nil
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Name", "Verified"})
		t.AppendRow(table.Row{author.ID, author.Name, author.Verified})
		t.Render()

		if len(author.Reviews) > 0 {
			r := table.NewWriter()
			r.SetOutputMirror(os.Stdout)
			r.AppendHeader(table.Row{"Review", "Rating", "Game", "Content"})
			for _, review := range author.Reviews {
				game := "-"
				if review.Game != nil {
					game = review.Game.Title
				}
				r.AppendRow(table.Row{review.ID, review.Rating, game, review.Content})
			}
			r.Render()
		}

		return nil
	}

	authors, err := client.Authors(ctx)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Name", "Verified"})
	for _, author := range authors {
		t.AppendRow(table.Row{author.ID, author.Name, author.Verified})
	}
	t.Render()

	return nil
}

func renderReviews(reviews []*internal.ReviewEdge) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Rating", "Author", "Game", "Content"})
	for _, review := range reviews {
		author, game := "-", "-"
		if review.Author != nil {
			author = review.Author.Name
		}
		// Game is nil when the review points at a deleted game.
		if review.Game != nil {
			game = review.Game.Title
		}
		t.AppendRow(table.Row{review.ID, review.Rating, author, game, review.Content})
	}
	t.Render()
}

func getReviews(ctx context.Context, id string) error {
	client := newClient()

	if id != "" {
		review, err := client.Review(ctx, id)
		if err != nil {
			return err
		}
		if review == nil {
			fmt.Println(color.HiRedString("The review does not exist"))
			return nil
		}

		renderReviews([]*internal.ReviewEdge{review})
		return nil
	}

	reviews, err := client.Reviews(ctx)
	if err != nil {
		return err
	}
	renderReviews(reviews)

	return nil
}

var (
	getCommand = &cobra.Command{
		Use:       "get",
		Short:     "Retrieving games, authors or reviews",
		Long:      "Retrieving games, authors or reviews from the graphql server, optionally by id.",
		ValidArgs: []string{"games", "authors", "reviews"},
		Args:      internal.WrapArgsError(cobra.RangeArgs(1, 2)),
		Run: func(_ *cobra.Command, args []string) {
			ctx := context.Background()

			var id string
			if len(args) > 1 {
				id = args[1]
			}

			var err error
			switch args[0] {
			case "games":
				err = getGames(ctx, id)
			case "authors":
				err = getAuthors(ctx, id)
			case "reviews":
				err = getReviews(ctx, id)
			default:
				err = internal.ErrInvalidParams
			}

			if err != nil {
				panicRed(err)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(getCommand)
}
