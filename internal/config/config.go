package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Env     string
	Catalog CatalogConfig
}

// CatalogConfig holds the data folder layout and rendering defaults
type CatalogConfig struct {
	DataFolder    string
	FilePattern   string
	DefaultLocale string
}

// Load reads configuration from environment variables and returns a Config struct
func Load() (*Config, error) {
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATA_FOLDER", "data")
	viper.SetDefault("PRODUCT_FILE_PATTERN", "product-%03d.txt")
	viper.SetDefault("DEFAULT_LOCALE", "en_GB")

	pattern := viper.GetString("PRODUCT_FILE_PATTERN")
	if !strings.Contains(pattern, "%") {
		return nil, fmt.Errorf("invalid PRODUCT_FILE_PATTERN %q: no id placeholder", pattern)
	}

	config := &Config{
		Env: viper.GetString("ENV"),
		Catalog: CatalogConfig{
			DataFolder:    viper.GetString("DATA_FOLDER"),
			FilePattern:   pattern,
			DefaultLocale: viper.GetString("DEFAULT_LOCALE"),
		},
	}

	return config, nil
}
