package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnrichFlags(t *testing.T, cmd *cobra.Command, apiKey string) {
	t.Helper()
	require.NoError(t, cmd.Flags().Set("input-csv", "in.csv"))
	require.NoError(t, cmd.Flags().Set("output-csv", "out.csv"))
	require.NoError(t, cmd.Flags().Set("max-rows", "5"))
	require.NoError(t, cmd.Flags().Set("api-key", apiKey))
}

func TestEnrichmentConfig_DrawsPerStageSecret(t *testing.T) {
	prev := loadedSecrets
	defer func() { loadedSecrets = prev }()
	loadedSecrets = map[string]string{
		"hunter-api-key":    "hunter-secret",
		"numverify-api-key": "numverify-secret",
	}

	setEnrichFlags(t, enrichEmailsCmd, "")
	cfg, err := enrichmentConfig(enrichEmailsCmd, "hunter-api-key")
	require.NoError(t, err)
	assert.Equal(t, "hunter-secret", cfg.APIKey)

	setEnrichFlags(t, enrichPhonesCmd, "")
	cfg, err = enrichmentConfig(enrichPhonesCmd, "numverify-api-key")
	require.NoError(t, err)
	assert.Equal(t, "numverify-secret", cfg.APIKey)
}

func TestEnrichmentConfig_FlagOverridesSecret(t *testing.T) {
	prev := loadedSecrets
	defer func() { loadedSecrets = prev }()
	loadedSecrets = map[string]string{"numverify-api-key": "numverify-secret"}

	setEnrichFlags(t, enrichPhonesCmd, "explicit-key")
	cfg, err := enrichmentConfig(enrichPhonesCmd, "numverify-api-key")
	require.NoError(t, err)
	assert.Equal(t, "explicit-key", cfg.APIKey)
}

func TestEnrichmentConfig_RejectsZeroRowLimit(t *testing.T) {
	setEnrichFlags(t, enrichEmailsCmd, "")
	require.NoError(t, enrichEmailsCmd.Flags().Set("max-rows", "-1"))

	_, err := enrichmentConfig(enrichEmailsCmd, "hunter-api-key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max-rows")
}
