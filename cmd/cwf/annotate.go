package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/crosswalk"
	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

var annotateCmd = &cobra.Command{
	Use:     "annotate",
	GroupID: "generate",
	Short:   "Write a review copy of the comparison workbook with relationships",
	Long: `Classify every control pair in the Rev4-to-Rev5 comparison workbook
and write a copy with a color-coded relationship column appended. Rows that
fail classification are marked needs-review in red. The input workbook is
never modified.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		if input == "" || output == "" {
			return fmt.Errorf("both --input and --output are required")
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
		pairs, err := crosswalk.ParseComparison(wb)
		wb.Close()
		if err != nil {
			return err
		}

		res := crosswalk.Derive(pairs, classifier)
		reportSkipped(res.Summary)

		annotations := make([]workbook.Annotation, 0, len(pairs))
		for _, row := range res.All {
			annotations = append(annotations, workbook.Annotation{
				Row:  row.Pair.Row,
				Kind: row.Kind,
			})
		}
		for _, e := range res.Summary.Skipped {
			annotations = append(annotations, workbook.Annotation{
				Row:    e.Row,
				Failed: true,
			})
		}

		if err := workbook.Annotate(input, output, crosswalk.ComparisonSheet, annotations); err != nil {
			return err
		}

		infof("Annotated workbook written to %s (%d rows, %d need review)",
			output, len(res.All), len(res.Summary.Skipped))
		return printSummary(res.Summary)
	},
}

func init() {
	annotateCmd.Flags().StringP("input", "i", "", "Path to the comparison workbook (.xlsx)")
	annotateCmd.Flags().StringP("output", "o", "", "Annotated workbook output path")

	rootCmd.AddCommand(annotateCmd)
}
