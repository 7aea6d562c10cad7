package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ghdwlsgur/gamegraph/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCommand = &cobra.Command{
		Use:   "serve",
		Short: "Start the graphql api server",
		Long:  "Start the graphql api server with a freshly seeded store and the playground on the root path.",
		Run: func(_ *cobra.Command, _ []string) {
			store := internal.NewStore()

			server, err := internal.NewServer(store)
			if err != nil {
				panicRed(err)
			}

			port := viper.GetString("port")
			color.Green("playground (http://localhost:%s)", port)

			if err := server.Run(fmt.Sprintf(":%s", port)); err != nil {
				panicRed(err)
			}
		},
	}
)

func init() {
	serveCommand.Flags().StringP("port", "p", _defaultPort, `[optional] port the graphql server listens on`)

	viper.BindPFlag("port", serveCommand.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCommand)
}
