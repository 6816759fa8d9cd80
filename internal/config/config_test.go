package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "data", cfg.Catalog.DataFolder)
	assert.Equal(t, "product-%03d.txt", cfg.Catalog.FilePattern)
	assert.Equal(t, "en_GB", cfg.Catalog.DefaultLocale)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DATA_FOLDER", "/var/lib/catalog")
	t.Setenv("DEFAULT_LOCALE", "fr_FR")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/catalog", cfg.Catalog.DataFolder)
	assert.Equal(t, "fr_FR", cfg.Catalog.DefaultLocale)
}

func TestLoad_PatternWithoutPlaceholder(t *testing.T) {
	t.Setenv("PRODUCT_FILE_PATTERN", "products.txt")

	_, err := Load()
	assert.Error(t, err)
}
