package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/catalog"
	"github.com/untoldecay/CrosswalkForge/internal/config"
	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

var catalogCmd = &cobra.Command{
	Use:     "catalog",
	GroupID: "generate",
	Short:   "Build OSCAL catalogs from framework workbooks",
}

var catalogCSFCmd = &cobra.Command{
	Use:   "csf",
	Short: "Build the NIST CSF v2.0 OSCAL catalog",
	Long: `Read the CSF 2.0 core sheet and build an OSCAL catalog: functions
become top-level groups, categories nested groups, and subcategories controls
with statement and example parts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		if input == "" {
			return fmt.Errorf("workbook path is required (use --input)")
		}
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("workbook does not exist at path: %s", input)
		}
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output = filepath.Join(config.GetString("catalog-dir"), "NIST_CSF_v2.0", "catalog.json")
		}

		wb, err := workbook.Open(input)
		if err != nil {
			return err
		}
		defer wb.Close()

		doc, err := catalog.BuildCSF(wb, catalog.NewUUID, time.Now)
		if err != nil {
			return err
		}

		err = withOutputLock(filepath.Dir(output), func() error {
			return doc.Save(output)
		})
		if err != nil {
			return err
		}

		ids := doc.ControlIDs()
		if jsonOutput {
			return outputJSON(struct {
				Output   string `json:"output"`
				Groups   int    `json:"groups"`
				Controls int    `json:"controls"`
			}{output, len(doc.Catalog.Groups), len(ids)})
		}
		infof("Catalog written to %s (%d groups, %d controls)",
			output, len(doc.Catalog.Groups), len(ids))
		return nil
	},
}

func init() {
	catalogCSFCmd.Flags().StringP("input", "i", "", "Path to the CSF v2 core workbook (.xlsx)")
	catalogCSFCmd.Flags().StringP("output", "o", "", "Catalog JSON output path")

	catalogCmd.AddCommand(catalogCSFCmd)
	rootCmd.AddCommand(catalogCmd)
}
