package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/untoldecay/CrosswalkForge/internal/types"
	"github.com/untoldecay/CrosswalkForge/internal/ui"
)

// outputJSON writes v as indented JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// warnf prints a warning line to stderr unless quiet is set.
func warnf(format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if ui.ShouldUseColor() {
		msg = ui.WarnStyle.Render(msg)
	}
	fmt.Fprintln(os.Stderr, msg)
}

// infof prints an informational line to stdout. Suppressed in quiet mode
// and in JSON mode, where stdout belongs to the machine-readable document.
func infof(format string, args ...interface{}) {
	if quiet || jsonOutput {
		return
	}
	fmt.Printf(format+"\n", args...)
}

// reportSkipped lists every skipped row on stderr so a failed classification
// is never silent.
func reportSkipped(s *types.Summary) {
	for _, e := range s.Skipped {
		warnf("warning: skipped %s", e.Error())
	}
}

// summaryJSON is the machine-readable shape of a run summary.
type summaryJSON struct {
	Counts   map[types.RelationshipKind]int `json:"counts"`
	Total    int                            `json:"total"`
	Mapped   int                            `json:"mapped"`
	Gaps     int                            `json:"gaps"`
	Excluded int                            `json:"excluded"`
	Skipped  []string                       `json:"skipped,omitempty"`
}

func newSummaryJSON(s *types.Summary) summaryJSON {
	out := summaryJSON{
		Counts:   s.Counts,
		Total:    s.Total,
		Mapped:   s.Mapped(),
		Gaps:     s.Gaps(),
		Excluded: s.Excluded(),
	}
	for _, e := range s.Skipped {
		out.Skipped = append(out.Skipped, e.Error())
	}
	return out
}

// printSummary renders the summary for humans (table) or machines (JSON).
func printSummary(s *types.Summary) error {
	if jsonOutput {
		return outputJSON(newSummaryJSON(s))
	}
	fmt.Println(ui.RenderSummaryTable(s))
	return nil
}
