package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardface/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate an exported deck directory",
	Long: `Validate checks that a deck directory holds a valid deck.toml, a card
back and an SVG face for each of the 52 cards of a standard deck.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath := args[0]

		if _, err := os.Stat(deckPath); os.IsNotExist(err) {
			return fmt.Errorf("deck directory not found: %s", deckPath)
		}

		v := validator.NewValidator(deckPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) == 0 {
			fmt.Fprintf(out, "%s Deck '%s' is valid.\n", colorize.GreenString("✔"), deckPath)
		} else {
			fmt.Fprintf(out, "%s Deck '%s' has %d validation errors:\n",
				colorize.RedString("✘"), deckPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, colorize.YellowString("\nWarnings:"))
			for i, warn := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
