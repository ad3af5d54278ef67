// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the candex CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adl-tools/candex/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if non-empty, else the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return loadedSecrets[key]
}

// rootCmd is the base command for the candex CLI.
var rootCmd = &cobra.Command{
	Use:   "candex",
	Short: "Extract and enrich licensing-exam candidate results",
	Long: `candex turns an official TAXIS/VTC exam results PDF into a filtered CSV
of admissible candidates, and optionally enriches the exported rows with
placeholder contact data.

Each stage is a subcommand: extract parses the PDF and writes the admissible
candidates CSV; enrich-emails and enrich-phones add synthesized contact
columns; runs lists past extraction runs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./candex.yaml or ~/.config/candex/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("candex")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "candex"))
		}
	}

	viper.SetEnvPrefix("CANDEX")
	viper.AutomaticEnv()

	viper.SetDefault("history.dir", "data")
	viper.SetDefault("enrich.max_rows", 20)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
