package main

import (
	"github.com/spf13/cobra"
)

var crosswalkCmd = &cobra.Command{
	Use:     "crosswalk",
	GroupID: "generate",
	Short:   "Generate crosswalk CSVs from NIST workbooks",
}

func init() {
	rootCmd.AddCommand(crosswalkCmd)
}
