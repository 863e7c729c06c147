package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/deck"
	"github.com/arcanaland/cardface/internal/render"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Export and list decks of card images",
}

// deckExportCmd represents the deck export command
var deckExportCmd = &cobra.Command{
	Use:   "export [name]",
	Short: "Render a full 52-card deck into a directory",
	Long: `Export renders every card face and the card back into a deck directory
with a deck.toml manifest. The deck is written under the configured
output directory unless --dir is given.

Examples:
  cardface deck export classic
  cardface deck export classic --plain --dir ./web/cards`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = filepath.Join(cfg.OutputDir, args[0])
		}

		id, _ := cmd.Flags().GetString("id")
		author, _ := cmd.Flags().GetString("author")
		description, _ := cmd.Flags().GetString("description")

		themed := cfg.Themed
		if cmd.Flags().Changed("plain") {
			plain, _ := cmd.Flags().GetBool("plain")
			themed = !plain
		}

		var theme *render.Theme
		if themed {
			theme = &render.DefaultTheme
		}

		d, err := deck.Export(dir, deck.DeckSection{
			ID:          id,
			Name:        args[0],
			Author:      author,
			Description: description,
		}, theme)
		if err != nil {
			return fmt.Errorf("error exporting deck: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s (%d cards) to %s\n",
			colorize.GreenString("Exported"), colorize.HiWhiteString(d.Name), len(d.Cards), d.Path)
		fmt.Fprintf(out, "%s %s\n", colorize.CyanString("ID:"), d.ID)
		return nil
	},
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List exported decks in the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		entries, err := os.ReadDir(cfg.OutputDir)
		if os.IsNotExist(err) {
			fmt.Fprintf(out, "No decks found in %s.\n", cfg.OutputDir)
			fmt.Fprintln(out, "Run 'cardface deck export <name>' to create one.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading output directory: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			d, err := deck.LoadDeck(filepath.Join(cfg.OutputDir, entry.Name()))
			if err != nil {
				// Not a deck, skip
				continue
			}

			style := "plain"
			if d.Themed {
				style = "themed"
			}
			fmt.Fprintf(out, "  %s (%s, %s)\n", entry.Name(), d.Name, style)
			found++
		}

		if found == 0 {
			fmt.Fprintf(out, "No decks found in %s.\n", cfg.OutputDir)
		}
		return nil
	},
}

// deckSetOutputCmd represents the deck set-output command
var deckSetOutputCmd = &cobra.Command{
	Use:   "set-output [dir]",
	Short: "Set the default output directory for exported decks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		if err := config.SetOutputDir(dir); err != nil {
			return fmt.Errorf("error setting output directory: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Output directory set to: %s\n", dir)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckExportCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetOutputCmd)

	deckExportCmd.Flags().String("dir", "", "Directory to write the deck to")
	deckExportCmd.Flags().String("id", "", "Deck id (generated when empty)")
	deckExportCmd.Flags().String("author", "", "Deck author")
	deckExportCmd.Flags().String("description", "", "Deck description")
	deckExportCmd.Flags().Bool("plain", false, "Write class-only SVG for use with a stylesheet")
}
