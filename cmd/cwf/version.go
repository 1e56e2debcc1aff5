package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cwf version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return outputJSON(struct {
				Version string `json:"version"`
				Commit  string `json:"commit"`
			}{version, commit})
		}
		fmt.Printf("cwf %s (%s)\n", version, commit)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
