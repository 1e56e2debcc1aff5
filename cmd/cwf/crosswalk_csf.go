package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/catalog"
	"github.com/untoldecay/CrosswalkForge/internal/config"
	"github.com/untoldecay/CrosswalkForge/internal/crosswalk"
	"github.com/untoldecay/CrosswalkForge/internal/debug"
	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

var csfCrosswalkCmd = &cobra.Command{
	Use:   "csf",
	Short: "Generate the CSF v2 to SP 800-53 rev5 crosswalk",
	Long: `Read the CSF-to-800-53 concept crosswalk workbook, group reference
controls per CSF subcategory, and write the crosswalk CSV.

Target control IDs are validated against the 800-53 rev5 catalog when
--target-catalog is given; unknown IDs are warnings, not failures. When
--source-catalog is given, CSF subcategories absent from the workbook are
appended as explicit no-relationship gap rows.`,
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
			output = filepath.Join(config.GetString("output-dir"), "csf2_to_800-53_crosswalk.csv")
		}
		sourceCatalog, _ := cmd.Flags().GetString("source-catalog")
		targetCatalog, _ := cmd.Flags().GetString("target-catalog")
		sourceResource, _ := cmd.Flags().GetString("source-resource")
		targetResource, _ := cmd.Flags().GetString("target-resource")

		wb, err := workbook.Open(input)
		if err != nil {
			return err
		}
		defer wb.Close()

		mappings, err := crosswalk.ParseCSFMappings(wb)
		if err != nil {
			return err
		}
		debug.Logf("grouped %d CSF subcategory mappings from %s", len(mappings), input)

		if targetCatalog != "" {
			doc, err := catalog.Load(targetCatalog)
			if err != nil {
				return err
			}
			unknown := crosswalk.ValidateTargets(mappings, doc.ControlIDs())
			for _, id := range unknown {
				warnf("warning: target control %s not found in %s", id, targetCatalog)
			}
			if len(unknown) > 0 {
				warnf("%d target control IDs need review; rows are still included", len(unknown))
			}
		}

		var gaps []string
		if sourceCatalog != "" {
			doc, err := catalog.Load(sourceCatalog)
			if err != nil {
				return err
			}
			gaps = crosswalk.GapSources(mappings, doc.ControlIDList())
			debug.Logf("%d unmapped CSF subcategories", len(gaps))
		}

		err = withOutputLock(filepath.Dir(output), func() error {
			return crosswalk.WriteCSFCSVFile(output, mappings, gaps, sourceResource, targetResource)
		})
		if err != nil {
			return err
		}

		infof("Crosswalk written to %s (%d mapped, %d gaps)", output, len(mappings), len(gaps))
		return printSummary(crosswalk.CSFSummary(mappings, gaps))
	},
}

func init() {
	csfCrosswalkCmd.Flags().StringP("input", "i", "", "Path to the CSF-to-800-53 concept crosswalk workbook (.xlsx)")
	csfCrosswalkCmd.Flags().StringP("output", "o", "", "Crosswalk CSV output path")
	csfCrosswalkCmd.Flags().String("source-catalog", "", "CSF v2 catalog JSON for gap analysis")
	csfCrosswalkCmd.Flags().String("target-catalog", "", "800-53 rev5 catalog JSON for target validation")
	csfCrosswalkCmd.Flags().String("source-resource", "catalogs/NIST_CSF_v2.0/catalog.json", "Source catalog resource reference")
	csfCrosswalkCmd.Flags().String("target-resource", "catalogs/NIST_SP-800-53_rev5/catalog.json", "Target catalog resource reference")

	crosswalkCmd.AddCommand(csfCrosswalkCmd)
}
