package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/ghdwlsgur/gamegraph/internal"
	"github.com/spf13/cobra"
)

var (
	updateTitle    string
	updatePlatform []string

	updateCommand = &cobra.Command{
		Use:   "update game [id]",
		Short: "Updating fields of a game",
		Long:  "Updating title and/or platforms of a game by id. Flags left out keep their current value.",
		Args:  internal.WrapArgsError(cobra.ExactArgs(2)),
		Run: func(cmd *cobra.Command, args []string) {
			if args[0] != "game" {
				panicRed(internal.ErrInvalidParams)
			}

			var edits internal.EditGameInput
			if cmd.Flags().Changed("title") {
				edits.Title = &updateTitle
			}
			if cmd.Flags().Changed("platform") {
				edits.Platform = updatePlatform
			}
			if edits.Title == nil && edits.Platform == nil {
				fmt.Println(color.HiYellowString("Nothing to update, pass --title and/or --platform"))
				return
			}

			game, err := newClient().UpdateGame(context.Background(), args[1], edits)
			if err != nil {
				panicRed(err)
			}
			if game == nil {
				fmt.Println(color.HiRedString("The game does not exist"))
				return
			}

			fmt.Printf("%s %s [ %s: %s ]\n",
				color.GreenString("update"),
				color.HiBlackString(game.Title),
				color.HiBlackString("platform"),
				color.HiGreenString(strings.Join(game.Platform, ", ")))
		},
	}
)

func init() {
	updateCommand.Flags().StringVarP(&updateTitle, "title", "t", "", `[optional] new title of the game`)
	updateCommand.Flags().StringSliceVarP(&updatePlatform, "platform", "p", nil, `[optional] new platform list of the game`)

	rootCmd.AddCommand(updateCommand)
}
