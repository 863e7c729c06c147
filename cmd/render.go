package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/render"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render [rank] [suit]",
	Short: "Render the face of a card as SVG",
	Long: `Render writes the SVG for a single card face. The rank is printed
verbatim; the suit is one of C, H, S or D.

Examples:
  cardface render A H
  cardface render 10 D --themed -o 10D.svg`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		suit, err := card.ParseSuit(args[1])
		if err != nil {
			return err
		}

		svg := render.Face(card.Card{Rank: card.Rank(args[0]), Suit: suit}, renderOptions(cmd)...)
		return writeOutput(cmd, svg)
	},
}

// backCmd represents the back command
var backCmd = &cobra.Command{
	Use:   "back",
	Short: "Render the back of a card as SVG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeOutput(cmd, render.Back(renderOptions(cmd)...))
	},
}

func init() {
	for _, c := range []*cobra.Command{renderCmd, backCmd} {
		RootCmd.AddCommand(c)
		c.Flags().StringP("output", "o", "", "Write the SVG to a file instead of stdout")
		c.Flags().Bool("themed", false, "Inline colors and positions instead of relying on a stylesheet")
	}
}

func renderOptions(cmd *cobra.Command) []render.Option {
	themed, _ := cmd.Flags().GetBool("themed")
	if !themed {
		return nil
	}
	return []render.Option{render.WithTheme(render.DefaultTheme)}
}

func writeOutput(cmd *cobra.Command, svg *render.SVG) error {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return svg.Encode(cmd.OutOrStdout())
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer file.Close()

	if err := svg.Encode(file); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", output)
	return nil
}
