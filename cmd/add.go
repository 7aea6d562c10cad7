package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/ghdwlsgur/gamegraph/internal"
	"github.com/spf13/cobra"
)

var knownPlatforms = []string{"PC", "PlayStation", "Xbox", "Switch", "Mobile"}

func addGame() error {
	ctx := context.Background()

	title, err := internal.AskInput("Title of the game:")
	if err != nil {
		return err
	}

	platform, err := internal.AskMultiSelect("Platforms:", knownPlatforms)
	if err != nil {
		return err
	}

	s := spinner.New(spinner.CharSets[8], 100*time.Millisecond)
	s.UpdateCharSet(spinner.CharSets[39])
	s.Color("fgHiGreen")
	s.Prefix = color.HiGreenString("Adding the game ")
	s.Start()

	game, err := newClient().AddGame(ctx, internal.AddGameInput{
		Title:    title,
		Platform: platform,
	})
	s.Stop()
	if err != nil {
		return err
	}

	fmt.Printf("%s %s [ %s: %s ]\n",
		color.GreenString("add"),
		color.HiBlackString(game.Title),
		color.HiBlackString("id"),
		color.HiGreenString(game.ID))
	fmt.Printf("%s %s\n",
		color.HiBlackString("platform:"),
		strings.Join(game.Platform, ", "))

	return nil
}

var (
	addCommand = &cobra.Command{
		Use:       "add",
		Short:     "Adding a new game",
		Long:      "Adding a new game through interactive prompts for title and platforms.",
		ValidArgs: []string{"game"},
		Args:      cobra.MatchAll(internal.WrapArgsError(cobra.MinimumNArgs(1)), cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(_ *cobra.Command, args []string) {
			switch args[0] {
			case "game":
				if err := addGame(); err != nil {
					panicRed(err)
				}
			}
		},
	}
)

func init() {
	rootCmd.AddCommand(addCommand)
}
