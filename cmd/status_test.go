package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monitorctl/internal/config"
	"monitorctl/internal/ddc"
)

func TestStatusCodes_DefaultsToCatalog(t *testing.T) {
	codes, err := statusCodes(config.Default())

	require.NoError(t, err)
	assert.Equal(t, ddc.CatalogCodes(), codes)
}

func TestStatusCodes_ConfigOverride(t *testing.T) {
	cfg := config.Default()
	cfg.StatusFeatures = []string{"brightness", "0x62"}

	codes, err := statusCodes(cfg)

	require.NoError(t, err)
	assert.Equal(t, []byte{0x10, 0x62}, codes)
}

func TestStatusCodes_UnknownFeatureName(t *testing.T) {
	cfg := config.Default()
	cfg.StatusFeatures = []string{"luminosity"}

	_, err := statusCodes(cfg)

	assert.Error(t, err)
}
