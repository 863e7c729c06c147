package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	configHome string
	dataHome   string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.configHome = s.T().TempDir()
	s.dataHome = s.T().TempDir()
	s.T().Setenv("XDG_CONFIG_HOME", s.configHome)
	s.T().Setenv("XDG_DATA_HOME", s.dataHome)
}

func (s *ConfigTestSuite) TestLoadCreatesDefault() {
	config, err := LoadConfig()
	s.Require().NoError(err)

	s.Equal(filepath.Join(s.dataHome, "cardface", "decks"), config.OutputDir)
	s.True(config.Themed)
	s.Equal(DefaultAnsiWidth, config.AnsiWidth)
	s.Equal(DefaultAnsiHeight, config.AnsiHeight)
	s.FileExists(filepath.Join(s.configHome, "cardface", "config.toml"))
}

func (s *ConfigTestSuite) TestLoadExisting() {
	path := GetConfigFilePath()
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0755))
	s.Require().NoError(os.WriteFile(path, []byte("output_dir = \"/tmp/decks\"\nthemed = false\nansi_width = 20\n"), 0644))

	config, err := LoadConfig()
	s.Require().NoError(err)
	s.Equal("/tmp/decks", config.OutputDir)
	s.False(config.Themed)
	s.Equal(20, config.AnsiWidth)
	s.Equal(DefaultAnsiHeight, config.AnsiHeight)
}

func (s *ConfigTestSuite) TestLoadInvalid() {
	path := GetConfigFilePath()
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0755))
	s.Require().NoError(os.WriteFile(path, []byte("output_dir = ["), 0644))

	_, err := LoadConfig()
	s.Error(err)
}

func (s *ConfigTestSuite) TestSetOutputDir() {
	s.Require().NoError(SetOutputDir("/srv/cards"))

	config, err := LoadConfig()
	s.Require().NoError(err)
	s.Equal("/srv/cards", config.OutputDir)
}

func (s *ConfigTestSuite) TestGetDeckPath() {
	deckDir := filepath.Join(s.dataHome, "cardface", "decks", "classic")
	s.Require().NoError(os.MkdirAll(deckDir, 0755))

	path, err := GetDeckPath("classic")
	s.Require().NoError(err)
	s.Equal(deckDir, path)

	other := s.T().TempDir()
	path, err = GetDeckPath(other)
	s.Require().NoError(err)
	s.Equal(other, path)

	_, err = GetDeckPath("missing")
	s.Error(err)
}
