package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/render"
)

// SchemaVersion is the deck.toml schema written by Export
const SchemaVersion = "1.0"

// File layout of an exported deck
const (
	ManifestFile = "deck.toml"
	BackFile     = "back.svg"
	FacesDir     = "faces"
)

// Deck represents an exported deck of card images
type Deck struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Themed      bool
	Path        string

	// Cards by code (e.g. "10D")
	Cards map[string]card.Card

	config *DeckConfig
}

// DeckConfig is the deck.toml document
type DeckConfig struct {
	Deck DeckSection `toml:"deck"`
}

// DeckSection holds deck metadata
type DeckSection struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Version       string `toml:"version"`
	SchemaVersion string `toml:"schema_version"`
	Author        string `toml:"author,omitempty"`
	Description   string `toml:"description,omitempty"`
	Themed        bool   `toml:"themed"`
	CreatedDate   string `toml:"created_date,omitempty"`
}

// Standard returns the 52 cards of a standard deck, suit by suit
func Standard() []card.Card {
	cards := make([]card.Card, 0, len(card.Suits)*len(card.Ranks))
	for _, suit := range card.Suits {
		for _, rank := range card.Ranks {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}

// Export renders every card of the standard deck and its back into dir,
// along with a deck.toml manifest. A missing id is generated. With a
// non-nil theme the images carry inline presentation attributes.
func Export(dir string, meta DeckSection, theme *render.Theme) (*Deck, error) {
	var opts []render.Option
	meta.Themed = theme != nil
	if theme != nil {
		opts = append(opts, render.WithTheme(*theme))
	}

	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	if meta.Name == "" {
		meta.Name = filepath.Base(dir)
	}
	if meta.Version == "" {
		meta.Version = "1.0.0"
	}
	if meta.CreatedDate == "" {
		meta.CreatedDate = time.Now().Format("2006-01-02")
	}
	meta.SchemaVersion = SchemaVersion

	facesDir := filepath.Join(dir, FacesDir)
	if err := os.MkdirAll(facesDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating deck directory: %w", err)
	}

	if err := writeSVG(filepath.Join(dir, BackFile), render.Back(opts...)); err != nil {
		return nil, err
	}

	for _, c := range Standard() {
		path := filepath.Join(facesDir, c.Code()+".svg")
		if err := writeSVG(path, render.Face(c, opts...)); err != nil {
			return nil, err
		}
	}

	config := DeckConfig{Deck: meta}
	file, err := os.Create(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", ManifestFile, err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding %s: %w", ManifestFile, err)
	}

	return newDeck(dir, &config), nil
}

func writeSVG(path string, svg *render.SVG) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	if err := svg.Encode(file); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// LoadDeck loads an exported deck from a directory
func LoadDeck(deckPath string) (*Deck, error) {
	manifestPath := filepath.Join(deckPath, ManifestFile)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s not found in %s", ManifestFile, deckPath)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(manifestPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", ManifestFile, err)
	}

	return newDeck(deckPath, &config), nil
}

func newDeck(path string, config *DeckConfig) *Deck {
	d := &Deck{
		ID:          config.Deck.ID,
		Name:        config.Deck.Name,
		Version:     config.Deck.Version,
		Author:      config.Deck.Author,
		Description: config.Deck.Description,
		Themed:      config.Deck.Themed,
		Path:        path,
		Cards:       make(map[string]card.Card),
		config:      config,
	}

	for _, c := range Standard() {
		d.Cards[c.Code()] = c
	}

	return d
}

// Schema returns the schema version recorded in the manifest
func (d *Deck) Schema() string {
	return d.config.Deck.SchemaVersion
}

// GetCard gets a card by its code
func (d *Deck) GetCard(code string) (card.Card, error) {
	parsed, err := card.ParseCode(code)
	if err != nil {
		return card.Card{}, err
	}

	c, ok := d.Cards[parsed.Code()]
	if !ok {
		return card.Card{}, fmt.Errorf("card not found: %s", code)
	}
	return c, nil
}

// CardPath returns the SVG file of a card in this deck
func (d *Deck) CardPath(c card.Card) string {
	return filepath.Join(d.Path, FacesDir, c.Code()+".svg")
}

// BackPath returns the SVG file of the card back
func (d *Deck) BackPath() string {
	return filepath.Join(d.Path, BackFile)
}
