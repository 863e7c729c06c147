package validator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/arcanaland/cardface/internal/deck"
)

type ValidatorTestSuite struct {
	suite.Suite
	dir string
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
	_, err := deck.Export(s.dir, deck.DeckSection{Name: "Test"}, nil)
	s.Require().NoError(err)
}

func (s *ValidatorTestSuite) TestValidDeck() {
	results, err := NewValidator(s.dir).Validate()

	s.Require().NoError(err)
	s.Empty(results.Errors)
	s.Empty(results.Warnings)
}

func (s *ValidatorTestSuite) TestMissingManifest() {
	s.Require().NoError(os.Remove(filepath.Join(s.dir, deck.ManifestFile)))

	_, err := NewValidator(s.dir).Validate()
	s.Error(err)
}

func (s *ValidatorTestSuite) TestManifestFields() {
	manifest := "[deck]\nname = \"Test\"\nschema_version = \"2.0\"\ncolour = \"red\"\n"
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, deck.ManifestFile), []byte(manifest), 0644))

	results, err := NewValidator(s.dir).Validate()
	s.Require().NoError(err)
	s.Contains(results.Errors, "deck.id is required in deck.toml")
	s.Contains(results.Errors, "deck.version is required in deck.toml")
	s.Contains(results.Errors, "unsupported schema_version: 2.0 (supported: 1.0)")
	s.Contains(results.Warnings, "unknown key in deck.toml: deck.colour")
}

func (s *ValidatorTestSuite) TestMissingCards() {
	s.Require().NoError(os.Remove(filepath.Join(s.dir, deck.FacesDir, "AH.svg")))
	s.Require().NoError(os.Remove(filepath.Join(s.dir, deck.FacesDir, "10S.svg")))
	s.Require().NoError(os.Remove(filepath.Join(s.dir, deck.BackFile)))

	results, err := NewValidator(s.dir).Validate()
	s.Require().NoError(err)
	s.Contains(results.Errors, "back.svg not found")
	s.Contains(results.Errors, "missing cards in faces: AH, 10S")
}

func (s *ValidatorTestSuite) TestInvalidSVG() {
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, deck.FacesDir, "KC.svg"), []byte("<html></html>"), 0644))
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, deck.FacesDir, "notes.txt"), []byte("x"), 0644))

	results, err := NewValidator(s.dir).Validate()
	s.Require().NoError(err)
	s.Len(results.Errors, 1)
	s.Contains(results.Errors[0], "faces/KC.svg is not a valid svg document")
	s.Contains(results.Warnings, "unexpected file in faces: notes.txt")
}

func (s *ValidatorTestSuite) TestUnexpectedViewBox() {
	doc := `<svg xmlns="http://www.w3.org/2000/svg" class="card" viewBox="0 0 100 100"></svg>`
	s.Require().NoError(os.WriteFile(filepath.Join(s.dir, deck.FacesDir, "QD.svg"), []byte(doc), 0644))

	results, err := NewValidator(s.dir).Validate()
	s.Require().NoError(err)
	s.Empty(results.Errors)
	s.Contains(results.Warnings, `faces/QD.svg: unexpected viewBox "0 0 100 100"`)
}
