package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ghdwlsgur/gamegraph/internal"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func deleteGame(id string) error {
	answer, err := internal.AskPrompt(
		fmt.Sprintf("Delete game %s? Its reviews are kept and will resolve a null game.", id),
		"Yes", "No (exit)")
	if err != nil {
		return err
	}
	if answer != "Yes" {
		return nil
	}

	games, err := newClient().DeleteGame(context.Background(), id)
	if err != nil {
		return err
	}

	fmt.Printf("%s %s\n", color.GreenString("delete"), color.HiBlackString(id))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Title"})
	for _, game := range games {
		t.AppendRow(table.Row{game.ID, game.Title})
	}
	t.Render()

	return nil
}

var (
	deleteCommand = &cobra.Command{
		Use:   "delete game [id]",
		Short: "Deleting a game",
		Long:  "Deleting a game by id and printing the remaining collection. Deleting an unknown id is a no-op.",
		Args:  internal.WrapArgsError(cobra.ExactArgs(2)),
		Run: func(_ *cobra.Command, args []string) {
			if args[0] != "game" {
				panicRed(internal.ErrInvalidParams)
			}

			if err := deleteGame(args[1]); err != nil {
				panicRed(err)
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(deleteCommand)
}
