// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adl-tools/candex/internal/enrich"
	"github.com/adl-tools/candex/pkg/types"
)

var enrichEmailsCmd = &cobra.Command{
	Use:   "enrich-emails",
	Short: "Add placeholder email columns to a candidates CSV",
	Long: `Enrich-emails reads a candidates CSV (the output of extract) and adds
email, enrichment_source, and enrichment_status columns. Addresses are
synthesized deterministically from the candidate names; no external lookup
is performed. Rows past --max-rows are carried through and marked skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := enrichmentConfig(cmd, "hunter-api-key")
		if err != nil {
			return err
		}
		fmt.Printf("Input   %s\nOutput  %s\nLimit   %d row(s)\n\n", cfg.InputPath, cfg.OutputPath, cfg.MaxRows)
		return enrich.Emails(cfg, os.Stdout)
	},
}

var enrichPhonesCmd = &cobra.Command{
	Use:   "enrich-phones",
	Short: "Add placeholder phone columns to a candidates CSV",
	Long: `Enrich-phones reads a candidates CSV (typically the enrich-emails
output) and adds phone, phone_source, and phone_status columns. Numbers are
synthesized per row by a cascade of stub sources and normalized to the
French XX XX XX XX XX format; no external lookup is performed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := enrichmentConfig(cmd, "numverify-api-key")
		if err != nil {
			return err
		}
		fmt.Printf("Input   %s\nOutput  %s\nLimit   %d row(s)\n\n", cfg.InputPath, cfg.OutputPath, cfg.MaxRows)
		return enrich.Phones(cfg, os.Stdout)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{enrichEmailsCmd, enrichPhonesCmd} {
		cmd.Flags().String("input-csv", "", "candidates CSV to enrich (required)")
		cmd.Flags().String("output-csv", "", "enriched CSV destination (required)")
		cmd.Flags().Int("max-rows", 0, "maximum rows to enrich (default from config, 20)")
		cmd.Flags().String("api-key", "", "lookup-service API key (default from .secrets/, unused by the stubs)")
		cmd.MarkFlagRequired("input-csv")
		cmd.MarkFlagRequired("output-csv")
		rootCmd.AddCommand(cmd)
	}
}

// enrichmentConfig builds the stage config from the shared enrichment flags.
// secretKey names the .secrets/ file consulted when --api-key is not given:
// hunter-api-key for the email stage, numverify-api-key for the phone stage.
func enrichmentConfig(cmd *cobra.Command, secretKey string) (types.EnrichmentConfig, error) {
	inputCSV, _ := cmd.Flags().GetString("input-csv")
	outputCSV, _ := cmd.Flags().GetString("output-csv")
	maxRows, _ := cmd.Flags().GetInt("max-rows")
	apiKey, _ := cmd.Flags().GetString("api-key")

	if maxRows == 0 {
		maxRows = viper.GetInt("enrich.max_rows")
	}
	if maxRows < 1 {
		return types.EnrichmentConfig{}, fmt.Errorf("max-rows must be at least 1, got %d", maxRows)
	}

	return types.EnrichmentConfig{
		InputPath:  inputCSV,
		OutputPath: outputCSV,
		MaxRows:    maxRows,
		APIKey:     secretDefault(secretKey, apiKey),
	}, nil
}
