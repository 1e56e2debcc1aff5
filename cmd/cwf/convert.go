package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/config"
	"github.com/untoldecay/CrosswalkForge/internal/external"
)

var convertCmd = &cobra.Command{
	Use:     "convert <crosswalk.csv>",
	GroupID: "tools",
	Short:   "Run the external CSV-to-OSCAL converter on a crosswalk",
	Long: `Invoke the configured external tool to turn a crosswalk CSV into an
OSCAL mapping collection. The conversion itself happens entirely in that
tool; cwf only locates it, checks the minimum version, and relays output.

Configure with converter.command, converter.task, and
converter.min-version, or the CWF_CONVERTER_* environment variables.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		csvPath := args[0]
		if _, err := os.Stat(csvPath); err != nil {
			return fmt.Errorf("crosswalk CSV does not exist at path: %s", csvPath)
		}
		outputDir, _ := cmd.Flags().GetString("output-dir")
		if outputDir == "" {
			outputDir = config.GetString("output-dir")
		}

		conv := &external.Converter{
			Command:    config.GetString("converter.command"),
			Task:       config.GetString("converter.task"),
			MinVersion: config.GetString("converter.min-version"),
		}
		if !conv.Available() {
			return fmt.Errorf("converter %q not found on PATH", conv.Command)
		}

		out, err := conv.Convert(cmd.Context(), csvPath, outputDir)
		if out != "" {
			fmt.Print(out)
		}
		if err != nil {
			return err
		}
		infof("Conversion complete; mapping collection under %s", outputDir)
		return nil
	},
}

func init() {
	convertCmd.Flags().String("output-dir", "", "Directory for the generated mapping collection")

	rootCmd.AddCommand(convertCmd)
}
