// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/adl-tools/candex/internal/history"
	"github.com/adl-tools/candex/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent extraction runs",
	Long: `Runs lists the extraction runs recorded in the local history database,
newest first, with their page and record counts.`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().Int("limit", 0, "maximum runs to list (default 20)")

	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(types.HistoryConfig{DataDir: viper.GetString("history.dir")})
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("%-4s %-16s %-10s %-12s %6s %7s %10s\n",
		"ID", "DATE", "DEPT", "SESSION", "PAGES", "PARSED", "ADMISSIBLE")
	for _, r := range runs {
		fmt.Printf("%-4d %-16s %-10s %-12s %6d %7d %10d\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Department,
			r.SessionDate,
			r.Stats.Pages,
			r.Stats.RecordsParsed,
			r.Stats.Admissible)
	}
	return nil
}
