package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print project information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-12s %s\n", "Name", "candex")
		fmt.Printf("%-12s %s\n", "Version", version)
		fmt.Printf("%-12s %s\n", "Description", "Extraction and enrichment of TAXIS/VTC exam candidates")
		fmt.Printf("%-12s %s\n", "Stages", "extract, enrich-emails, enrich-phones, runs")
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
