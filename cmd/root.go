package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardface",
	Short: "Render playing cards as SVG",
	Long: `Cardface renders playing cards as scalable vector graphics.
It draws single faces and backs, exports whole decks, validates exported
decks and previews cards in the terminal.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
