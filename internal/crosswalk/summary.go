package crosswalk

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/untoldecay/CrosswalkForge/internal/types"
)

// kindDefinitions is the reader-facing gloss for each relationship kind,
// rendered at the end of every summary.
var kindDefinitions = map[types.RelationshipKind]string{
	types.KindEqualTo:        "no changes at all between the two revisions",
	types.KindEquivalentTo:   "cosmetic or discussion-only changes; same substance",
	types.KindSupersetOf:     "the source added requirements over the target",
	types.KindSubsetOf:       "the source removed requirements relative to the target",
	types.KindIntersectsWith: "overlapping changes in both directions",
	types.KindNoRelationship: "new source control; no target counterpart",
	types.KindWithdrawn:      "withdrawn in both revisions",
	types.KindWithdrawn4:     "withdrawn in Rev 4, does not appear in Rev 5",
	types.KindRestored5:      "withdrawn in Rev 4, restored in Rev 5",
	types.KindWithdrawn5:     "withdrawn in Rev 5",
}

// SummaryMarkdown renders the run summary as a markdown document: one counts
// table over the full taxonomy, the derived totals, any skipped rows, and
// the kind definitions. The output contains no timestamps so reruns on an
// unchanged workbook are byte-identical.
func SummaryMarkdown(s *types.Summary, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)

	b.WriteString("| Relationship | Count | Percentage |\n")
	b.WriteString("|---|---|---|\n")
	for _, k := range types.AllKinds {
		pct := 0.0
		if s.Total > 0 {
			pct = float64(s.Counts[k]) / float64(s.Total) * 100
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", k, s.Counts[k], pct)
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Total classified: %d\n\n", s.Total)
	fmt.Fprintf(&b, "- Mapped: %d\n", s.Mapped())
	fmt.Fprintf(&b, "- Gaps (no-relationship + restored5): %d\n", s.Gaps())
	fmt.Fprintf(&b, "- Excluded from CSV (withdrawn family): %d\n", s.Excluded())

	if len(s.Skipped) > 0 {
		fmt.Fprintf(&b, "\n## Skipped rows (%d)\n\n", len(s.Skipped))
		b.WriteString("Rows below failed classification and appear in neither the CSV nor the counts.\n\n")
		for _, e := range s.Skipped {
			fmt.Fprintf(&b, "- %s\n", e.Error())
		}
	}

	b.WriteString("\n## Relationship definitions\n\n")
	for _, k := range types.AllKinds {
		fmt.Fprintf(&b, "- **%s**: %s\n", k, kindDefinitions[k])
	}

	return b.String()
}

// WriteSummaryFile writes the markdown summary to disk, creating parent
// directories.
func WriteSummaryFile(path string, s *types.Summary, title string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create summary directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(SummaryMarkdown(s, title)), 0644); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return nil
}
