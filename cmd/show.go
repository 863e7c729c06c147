package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardface/internal/ansi"
	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/deck"
	"github.com/arcanaland/cardface/internal/render"
)

const (
	// pixels rendered per character cell before downsampling
	rasterScale = 8
	// widest art, in columns, that show will render
	maxShowWidth = 160
)

var showCmd = &cobra.Command{
	Use:   "show [card_code]",
	Short: "Preview a card in the terminal with ANSI art",
	Long: `Show rasterizes a card and prints it as ANSI terminal art next to the
card details. Card codes are the rank followed by the suit letter, like
'AH', '10D' or 'QS'. Use 'back' to preview the card back.

The rasterizer does not draw SVG text, so the rank label is missing from
the art; it is printed in the details beside it. The art is at most 160
columns wide and never wider than the terminal.

With --deck the image is read from an exported deck, found in the
configured output directory or as a relative path.

Examples:
  cardface show AH
  cardface show --deck classic 10D
  cardface show back`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		requested, _ := cmd.Flags().GetInt("width")
		width := artWidth(requested, cfg.AnsiWidth, terminalWidth())
		height := max(cfg.AnsiHeight*width/cfg.AnsiWidth, 1)

		deckFlag, _ := cmd.Flags().GetString("deck")

		var c *card.Card
		if !strings.EqualFold(args[0], "back") {
			parsed, err := card.ParseCode(args[0])
			if err != nil {
				return err
			}
			c = &parsed
		}

		source, deckName, err := loadSource(cmd.ErrOrStderr(), deckFlag, c)
		if err != nil {
			return err
		}

		img, err := ansi.Rasterize(source, width*rasterScale, int(float64(width*rasterScale)*render.AspectRatio))
		if err != nil {
			return fmt.Errorf("error rasterizing card: %v", err)
		}

		art := ansi.FromImage(img, width, height, true)
		displayCard(cmd.OutOrStdout(), c, art, deckName)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Read the card from an exported deck")
	showCmd.Flags().IntP("width", "w", 0, "Width of the art in terminal columns")
}

// loadSource returns the SVG to rasterize. Exported decks without inline
// colors cannot be rasterized faithfully, so the card is rendered with
// the default theme instead.
func loadSource(warn io.Writer, deckFlag string, c *card.Card) (io.Reader, string, error) {
	themed := render.WithTheme(render.DefaultTheme)

	if deckFlag == "" {
		if c == nil {
			return strings.NewReader(render.Back(themed).String()), "", nil
		}
		return strings.NewReader(render.Face(*c, themed).String()), "", nil
	}

	deckPath, err := config.GetDeckPath(deckFlag)
	if err != nil {
		return nil, "", err
	}

	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, "", fmt.Errorf("error loading deck: %v", err)
	}

	path := d.BackPath()
	if c != nil {
		found, err := d.GetCard(c.Code())
		if err != nil {
			return nil, "", err
		}
		path = d.CardPath(found)
	}

	if !d.Themed {
		fmt.Fprintln(warn, colorize.YellowString("Deck %s has no inline colors, previewing the default theme", d.Name))
		if c == nil {
			return strings.NewReader(render.Back(themed).String()), d.Name, nil
		}
		return strings.NewReader(render.Face(*c, themed).String()), d.Name, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("error reading card image: %v", err)
	}
	return bytes.NewReader(data), d.Name, nil
}

// artWidth picks the art width in columns: the requested width or the
// configured one, bounded by maxShowWidth and by the terminal width when
// known (termWidth > 0)
func artWidth(requested, configured, termWidth int) int {
	width := requested
	if width <= 0 {
		width = configured
	}
	if termWidth > 4 && width > termWidth-4 {
		width = termWidth - 4
	}
	return max(min(width, maxShowWidth), 1)
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// displayCard prints the ANSI art with the card details beside it, or
// below it when the terminal is too narrow
func displayCard(out io.Writer, c *card.Card, art, deckName string) {
	artLines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		if w := ansi.Width(line); w > maxArtWidth {
			maxArtWidth = w
		}
	}

	infoLines := cardInfo(c, deckName)

	termWidth := terminalWidth()
	if termWidth <= 0 {
		termWidth = 80
	}

	spacing := 4
	fmt.Fprintln(out)

	if maxArtWidth+spacing+24 > termWidth {
		for _, line := range artLines {
			fmt.Fprintf(out, "  %s\n", line)
		}
		fmt.Fprintln(out)
		for _, line := range infoLines {
			fmt.Fprintf(out, "  %s\n", line)
		}
		fmt.Fprintln(out)
		return
	}

	maxLines := max(len(artLines), len(infoLines))
	for i := 0; i < maxLines; i++ {
		fmt.Fprint(out, "  ")
		if i < len(artLines) {
			fmt.Fprint(out, artLines[i])
			fmt.Fprint(out, strings.Repeat(" ", maxArtWidth-ansi.Width(artLines[i])+spacing))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", maxArtWidth+spacing))
		}

		if i < len(infoLines) {
			fmt.Fprint(out, infoLines[i])
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}

func cardInfo(c *card.Card, deckName string) []string {
	var info []string

	if c == nil {
		info = append(info, colorize.CyanString("Card: ")+colorize.HiWhiteString("Back"))
	} else {
		symbol := suitSymbol(c.Suit)
		if c.Suit.Red() {
			symbol = colorize.RedString(symbol)
		}
		info = append(info, colorize.CyanString("Card: ")+colorize.HiWhiteString("%s", c))
		info = append(info, colorize.CyanString("Code: ")+colorize.HiWhiteString("%s", c.Code()))
		info = append(info, colorize.CyanString("Suit: ")+colorize.HiWhiteString("%s · ", c.Suit)+symbol)
		info = append(info, colorize.CyanString("Rank: ")+colorize.HiWhiteString("%s", c.Rank))
	}

	if deckName != "" {
		info = append(info, colorize.CyanString("Deck: ")+colorize.HiWhiteString(deckName))
	}

	return info
}

func suitSymbol(s card.Suit) string {
	switch s {
	case card.Clubs:
		return "♣"
	case card.Hearts:
		return "♥"
	case card.Spades:
		return "♠"
	case card.Diamonds:
		return "♦"
	default:
		return "•"
	}
}
