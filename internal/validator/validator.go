package validator

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/cardface/internal/deck"
	"github.com/arcanaland/cardface/internal/render"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{
		DeckPath: deckPath,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateManifest(); err != nil {
		return v.Results, err
	}

	v.validateBack()
	v.validateFaces()
	v.validateExtraFiles()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateManifest() error {
	manifestPath := filepath.Join(v.DeckPath, deck.ManifestFile)
	if _, err := os.Stat(manifestPath); os.IsNotExist(err) {
		return fmt.Errorf("%s not found in %s", deck.ManifestFile, v.DeckPath)
	}

	var config deck.DeckConfig
	meta, err := toml.DecodeFile(manifestPath, &config)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", deck.ManifestFile, err)
	}

	if config.Deck.ID == "" {
		v.errorf("deck.id is required in %s", deck.ManifestFile)
	}

	if config.Deck.Name == "" {
		v.errorf("deck.name is required in %s", deck.ManifestFile)
	}

	if config.Deck.Version == "" {
		v.errorf("deck.version is required in %s", deck.ManifestFile)
	}

	if config.Deck.SchemaVersion == "" {
		v.errorf("deck.schema_version is required in %s", deck.ManifestFile)
	} else if config.Deck.SchemaVersion != deck.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", config.Deck.SchemaVersion, deck.SchemaVersion)
	}

	for _, key := range meta.Undecoded() {
		v.warnf("unknown key in %s: %s", deck.ManifestFile, key)
	}

	return nil
}

// validateBack checks the card back image
func (v *Validator) validateBack() {
	backPath := filepath.Join(v.DeckPath, deck.BackFile)
	if _, err := os.Stat(backPath); os.IsNotExist(err) {
		v.errorf("%s not found", deck.BackFile)
		return
	}

	v.validateSVG(backPath)
}

// validateFaces checks that every card of the standard deck has a face
func (v *Validator) validateFaces() {
	facesDir := filepath.Join(v.DeckPath, deck.FacesDir)
	if _, err := os.Stat(facesDir); os.IsNotExist(err) {
		v.errorf("%s directory not found", deck.FacesDir)
		return
	}

	missingCards := []string{}
	for _, c := range deck.Standard() {
		cardPath := filepath.Join(facesDir, c.Code()+".svg")
		if _, err := os.Stat(cardPath); os.IsNotExist(err) {
			missingCards = append(missingCards, c.Code())
			continue
		}

		v.validateSVG(cardPath)
	}

	if len(missingCards) > 0 {
		v.errorf("missing cards in %s: %s", deck.FacesDir, strings.Join(missingCards, ", "))
	}
}

// validateExtraFiles warns about files that are not part of the deck
func (v *Validator) validateExtraFiles() {
	known := map[string]bool{}
	for _, c := range deck.Standard() {
		known[c.Code()+".svg"] = true
	}

	entries, err := os.ReadDir(filepath.Join(v.DeckPath, deck.FacesDir))
	if err != nil {
		return // Already reported
	}

	for _, entry := range entries {
		if !known[entry.Name()] {
			v.warnf("unexpected file in %s: %s", deck.FacesDir, entry.Name())
		}
	}
}

// validateSVG checks that a file is an SVG document with the card view box
func (v *Validator) validateSVG(path string) {
	rel, err := filepath.Rel(v.DeckPath, path)
	if err != nil {
		rel = path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		v.errorf("error reading %s: %v", rel, err)
		return
	}

	var doc render.SVG
	if err := xml.Unmarshal(data, &doc); err != nil {
		v.errorf("%s is not a valid svg document: %v", rel, err)
		return
	}

	if doc.Width() != render.CardWidth || doc.Height() != render.CardHeight {
		v.warnf("%s: unexpected viewBox %q", rel, doc.ViewBox)
	}
}
