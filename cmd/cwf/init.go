package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/untoldecay/CrosswalkForge/internal/ui"
)

// projectConfig is the shape written to .cwf/config.yaml.
type projectConfig struct {
	OutputDir  string `yaml:"output-dir"`
	CatalogDir string `yaml:"catalog-dir"`
	DataDir    string `yaml:"data-dir"`
	Rules      string `yaml:"rules,omitempty"`
	Converter  struct {
		Command    string `yaml:"command"`
		MinVersion string `yaml:"min-version,omitempty"`
	} `yaml:"converter"`
}

var initCmd = &cobra.Command{
	Use:     "init",
	GroupID: "tools",
	Short:   "Create a project config file",
	Long: `Write .cwf/config.yaml in the current directory. In a terminal an
interactive form collects the values; otherwise defaults are written
directly so init works in scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := projectConfig{
			OutputDir:  "content",
			CatalogDir: "catalogs",
			DataDir:    "data",
		}
		cfg.Converter.Command = "trestle"

		force, _ := cmd.Flags().GetBool("force")
		path := filepath.Join(".cwf", "config.yaml")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if ui.IsTerminal() {
			form := huh.NewForm(huh.NewGroup(
				huh.NewInput().
					Title("Output directory").
					Description("Where crosswalk CSVs are written").
					Value(&cfg.OutputDir),
				huh.NewInput().
					Title("Catalog directory").
					Description("Where OSCAL catalog JSON is written").
					Value(&cfg.CatalogDir),
				huh.NewInput().
					Title("Data directory").
					Description("Where source workbooks and summaries live").
					Value(&cfg.DataDir),
				huh.NewInput().
					Title("Converter command").
					Description("External CSV-to-OSCAL tool").
					Value(&cfg.Converter.Command),
				huh.NewInput().
					Title("Rules file").
					Description("Optional TOML classification rules (blank for built-in)").
					Value(&cfg.Rules),
			))
			if err := form.Run(); err != nil {
				return fmt.Errorf("init cancelled: %w", err)
			}
		}

		data, err := yaml.Marshal(&cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		if err := os.MkdirAll(".cwf", 0750); err != nil {
			return fmt.Errorf("failed to create .cwf directory: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		infof("Wrote %s", path)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}
