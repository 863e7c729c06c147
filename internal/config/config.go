package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default terminal art size in character cells, close to the card's aspect
// ratio once half-block cells are taken into account.
const (
	DefaultAnsiWidth  = 40
	DefaultAnsiHeight = 29
)

// Config represents the application configuration
type Config struct {
	OutputDir  string `toml:"output_dir"`
	Themed     bool   `toml:"themed"`
	AnsiWidth  int    `toml:"ansi_width"`
	AnsiHeight int    `toml:"ansi_height"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDeckLibraryPath returns the default directory for exported decks
func GetDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "cardface", "decks")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardface", "config.toml")
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		OutputDir:  GetDeckLibraryPath(),
		Themed:     true,
		AnsiWidth:  DefaultAnsiWidth,
		AnsiHeight: DefaultAnsiHeight,
	}
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := save(configPath, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if config.AnsiWidth <= 0 {
		config.AnsiWidth = DefaultAnsiWidth
	}
	if config.AnsiHeight <= 0 {
		config.AnsiHeight = DefaultAnsiHeight
	}

	return config, nil
}

// SetOutputDir stores the default output directory in the config file
func SetOutputDir(dir string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.OutputDir = dir
	return save(GetConfigFilePath(), config)
}

func save(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// GetDeckPath resolves a deck name against the output directory, falling
// back to treating it as a path
func GetDeckPath(deckName string) (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	deckPath := filepath.Join(config.OutputDir, deckName)
	if _, err := os.Stat(deckPath); err == nil {
		return deckPath, nil
	}

	if _, err := os.Stat(deckName); err == nil {
		return deckName, nil
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}
