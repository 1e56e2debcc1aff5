package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/untoldecay/CrosswalkForge/internal/config"
	"github.com/untoldecay/CrosswalkForge/internal/crosswalk"
	"github.com/untoldecay/CrosswalkForge/internal/debug"
	"github.com/untoldecay/CrosswalkForge/internal/review"
	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

// nistOptions collects everything one Rev5→Rev4 generation run needs, so the
// watch command can re-run it without re-reading flags.
type nistOptions struct {
	input          string
	output         string
	summaryPath    string
	sourceResource string
	targetResource string
	withReview     bool
}

var nistCrosswalkCmd = &cobra.Command{
	Use:   "nist",
	Short: "Generate the SP 800-53 Rev5-to-Rev4 crosswalk",
	Long: `Read the Rev4-to-Rev5 comparison workbook, classify every control
pair into an OSCAL relationship, and write the crosswalk CSV plus a markdown
summary.

Rows in the withdrawn family (withdrawn, withdrawn4, withdrawn5) are counted
in the summary but omitted from the CSV. Rows whose indicator cannot be
classified are reported as warnings and excluded from both outputs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := nistOptionsFromFlags(cmd)
		if err != nil {
			return err
		}
		return runNistCrosswalk(cmd.Context(), opts)
	},
}

func nistOptionsFromFlags(cmd *cobra.Command) (nistOptions, error) {
	opts := nistOptions{}
	opts.input, _ = cmd.Flags().GetString("input")
	if opts.input == "" {
		return opts, fmt.Errorf("workbook path is required (use --input)")
	}
	opts.output, _ = cmd.Flags().GetString("output")
	if opts.output == "" {
		opts.output = filepath.Join(config.GetString("output-dir"), "nist_rev5_to_nist_rev4_crosswalk.csv")
	}
	opts.summaryPath, _ = cmd.Flags().GetString("summary")
	if opts.summaryPath == "" {
		opts.summaryPath = filepath.Join(config.GetString("data-dir"), "sp800-53r4-to-r5-comparison-summary.md")
	}
	opts.sourceResource, _ = cmd.Flags().GetString("source-resource")
	opts.targetResource, _ = cmd.Flags().GetString("target-resource")
	opts.withReview, _ = cmd.Flags().GetBool("review")
	return opts, nil
}

func runNistCrosswalk(ctx context.Context, opts nistOptions) error {
	if _, err := os.Stat(opts.input); err != nil {
		return fmt.Errorf("workbook does not exist at path: %s", opts.input)
	}

	classifier, err := loadClassifier()
	if err != nil {
		return err
	}

	wb, err := workbook.Open(opts.input)
	if err != nil {
		return err
	}
	defer wb.Close()

	pairs, err := crosswalk.ParseComparison(wb)
	if err != nil {
		return err
	}
	debug.Logf("parsed %d control pairs from %s", len(pairs), opts.input)

	res := crosswalk.Derive(pairs, classifier)
	reportSkipped(res.Summary)

	err = withOutputLock(filepath.Dir(opts.output), func() error {
		if err := crosswalk.WriteCSVFile(opts.output, res.All, opts.sourceResource, opts.targetResource); err != nil {
			return err
		}
		return crosswalk.WriteSummaryFile(opts.summaryPath, res.Summary, "SP 800-53 Rev5 to Rev4 Crosswalk")
	})
	if err != nil {
		return err
	}

	infof("Crosswalk written to %s (%d rows, %d excluded, %d skipped)",
		opts.output, len(res.Included()), res.Summary.Excluded(), len(res.Summary.Skipped))
	infof("Summary written to %s", opts.summaryPath)

	if opts.withReview {
		if err := draftReviewNotes(ctx, res); err != nil {
			return err
		}
	}
	return printSummary(res.Summary)
}

func draftReviewNotes(ctx context.Context, res *crosswalk.Result) error {
	r, err := review.New(
		os.Getenv("CWF_ANTHROPIC_API_KEY"),
		config.GetString("review.model"),
		config.GetInt("review.max-rows"),
	)
	if err != nil {
		return err
	}
	notes, err := r.Draft(ctx, res.All)
	if err != nil {
		return err
	}
	if jsonOutput {
		return outputJSON(notes)
	}
	for _, n := range notes {
		infof("\n%s → %s:\n%s", n.Source, n.Target, n.Text)
	}
	return nil
}

func init() {
	nistCrosswalkCmd.Flags().StringP("input", "i", "", "Path to the Rev4-to-Rev5 comparison workbook (.xlsx)")
	nistCrosswalkCmd.Flags().StringP("output", "o", "", "Crosswalk CSV output path")
	nistCrosswalkCmd.Flags().String("summary", "", "Summary markdown output path")
	nistCrosswalkCmd.Flags().String("source-resource", "catalogs/NIST_SP-800-53_rev5/catalog.json", "Source catalog resource reference")
	nistCrosswalkCmd.Flags().String("target-resource", "catalogs/NIST_SP-800-53_rev4/catalog.json", "Target catalog resource reference")
	nistCrosswalkCmd.Flags().Bool("review", false, "Draft AI review notes for intersects-with rows (requires CWF_ANTHROPIC_API_KEY)")

	crosswalkCmd.AddCommand(nistCrosswalkCmd)
}
