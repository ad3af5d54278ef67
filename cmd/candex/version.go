package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of candex",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("candex %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
