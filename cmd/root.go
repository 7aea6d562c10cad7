package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/ghdwlsgur/gamegraph/internal"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	_defaultEndpoint = "http://localhost:8080"
	_defaultPort     = "8080"
)

var (
	rootCmd = &cobra.Command{
		Use:   "gamegraph",
		Short: `gamegraph is a graphql api for game reviews`,
		Long:  `gamegraph serves a graphql api over in-memory game, author and review records and ships client commands to query and mutate it.`,
	}
)

func Execute(version string) {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		panicRed(err)
	}
}

func panicRed(err error) {
	fmt.Println(color.RedString("[err] %s", err.Error()))
	os.Exit(1)
}

func newClient() *internal.Client {
	return internal.NewClient(viper.GetString("endpoint"))
}

func initConfig() {
	home, err := homedir.Dir()
	if err != nil {
		return
	}

	viper.AddConfigPath(home)
	viper.SetConfigName(".gamegraph")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err == nil {
		color.Yellow("[Use] config file %s", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("endpoint", "e", _defaultEndpoint, `[optional] endpoint of the graphql server the client commands talk to`)

	rootCmd.InitDefaultVersionFlag()

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
}
