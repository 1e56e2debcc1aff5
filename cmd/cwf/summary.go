package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/crosswalk"
	"github.com/untoldecay/CrosswalkForge/internal/ui"
	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	GroupID: "tools",
	Short:   "Show relationship counts for a comparison workbook",
	Long: `Classify the comparison workbook and print the summary report
without writing any crosswalk files. In a terminal the markdown report is
rendered; otherwise plain markdown is printed so the output can be piped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		if input == "" {
			return fmt.Errorf("workbook path is required (use --input)")
		}
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("workbook does not exist at path: %s", input)
		}

		classifier, err := loadClassifier()
		if err != nil {
			return err
		}

		wb, err := workbook.Open(input)
		if err != nil {
			return err
		}
		defer wb.Close()

		pairs, err := crosswalk.ParseComparison(wb)
		if err != nil {
			return err
		}

		res := crosswalk.Derive(pairs, classifier)
		reportSkipped(res.Summary)

		if jsonOutput {
			return outputJSON(newSummaryJSON(res.Summary))
		}

		md := crosswalk.SummaryMarkdown(res.Summary, "SP 800-53 Rev5 to Rev4 Crosswalk")
		if !ui.IsTerminal() {
			fmt.Print(md)
			return nil
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(ui.GetWidth()),
		)
		if err != nil {
			// Renderer setup failing is cosmetic; fall back to plain.
			fmt.Print(md)
			return nil
		}
		out, err := r.Render(md)
		if err != nil {
			fmt.Print(md)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringP("input", "i", "", "Path to the comparison workbook (.xlsx)")

	rootCmd.AddCommand(summaryCmd)
}
