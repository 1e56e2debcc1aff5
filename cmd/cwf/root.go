package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/classify"
	"github.com/untoldecay/CrosswalkForge/internal/config"
)

var (
	jsonOutput bool
	quiet      bool
	rulesPath  string
)

var rootCmd = &cobra.Command{
	Use:   "cwf",
	Short: "Generate compliance crosswalks and OSCAL artifacts from NIST workbooks",
	Long: `cwf reads NIST spreadsheet sources (framework comparison workbooks,
concept crosswalks, the CSF 2.0 core) and generates compliance-mapping
artifacts: crosswalk CSVs in the mapping-collection template, OSCAL catalog
JSON, markdown summary reports, and color-annotated review workbooks.

Every run is stateless: read the workbook, classify, write, exit. Rerunning
on an unchanged input produces byte-identical output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return err
		}
		// Flags beat config which beats defaults.
		if cmd.Flags().Changed("json") {
			config.Set("json", jsonOutput)
		}
		if cmd.Flags().Changed("quiet") {
			config.Set("quiet", quiet)
		}
		if cmd.Flags().Changed("rules") {
			config.Set("rules", rulesPath)
		}
		jsonOutput = config.GetBool("json")
		quiet = config.GetBool("quiet")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().StringVar(&rulesPath, "rules", "", "Path to a TOML classification-rules file (defaults to built-in table)")

	rootCmd.AddGroup(
		&cobra.Group{ID: "generate", Title: "Generation Commands:"},
		&cobra.Group{ID: "tools", Title: "Tool Commands:"},
	)
}

// loadClassifier builds the classifier from the configured rules file, or
// the built-in table when none is set.
func loadClassifier() (*classify.Classifier, error) {
	path := config.GetString("rules")
	if path == "" {
		return classify.New(classify.DefaultRules()), nil
	}
	rules, err := classify.LoadRules(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load classification rules: %w", err)
	}
	return classify.New(rules), nil
}
