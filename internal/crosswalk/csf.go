package crosswalk

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/untoldecay/CrosswalkForge/internal/oscalid"
	"github.com/untoldecay/CrosswalkForge/internal/types"
	"github.com/untoldecay/CrosswalkForge/internal/workbook"
)

// RelationshipsSheet is the data sheet in the CSF-to-800-53 concept
// crosswalk workbook.
const RelationshipsSheet = "Relationships"

// Concept crosswalk header names. The workbook embeds newlines in these;
// FindColumn matches on collapsed whitespace.
const (
	focalColumn     = "Focal Document Element"
	referenceColumn = "Reference Document Element"
)

// CSFMapping is one grouped crosswalk row: a CSF subcategory and every
// 800-53 control it maps to, deduped, in encounter order.
type CSFMapping struct {
	Source  string
	Targets []string
}

// ParseCSFMappings reads the concept crosswalk and groups reference controls
// per CSF subcategory. Category- and function-level rows are dropped, as are
// rows with no reference control. Group order follows first appearance.
func ParseCSFMappings(wb *workbook.Workbook) ([]CSFMapping, error) {
	rows, err := wb.Rows(RelationshipsSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", RelationshipsSheet)
	}

	focal := workbook.FindColumn(rows[0], focalColumn)
	ref := workbook.FindColumn(rows[0], referenceColumn)
	if focal < 0 || ref < 0 {
		return nil, fmt.Errorf("sheet %q missing focal/reference columns", RelationshipsSheet)
	}

	index := make(map[string]int)
	var mappings []CSFMapping
	for i := 1; i < len(rows); i++ {
		rawSource := workbook.Cell(rows, i, focal)
		rawTarget := strings.TrimSpace(workbook.Cell(rows, i, ref))
		if rawTarget == "" || !oscalid.IsSubcategory(rawSource) {
			continue
		}
		source := oscalid.NormalizeCSF(rawSource)
		target := oscalid.NormalizeRev5(rawTarget)
		if target == "" {
			continue
		}

		pos, ok := index[source]
		if !ok {
			pos = len(mappings)
			index[source] = pos
			mappings = append(mappings, CSFMapping{Source: source})
		}
		if !contains(mappings[pos].Targets, target) {
			mappings[pos].Targets = append(mappings[pos].Targets, target)
		}
	}
	if len(mappings) == 0 {
		return nil, fmt.Errorf("sheet %q contains no subcategory mappings", RelationshipsSheet)
	}
	return mappings, nil
}

// ValidateTargets returns the sorted set of target IDs that do not exist in
// the target catalog. Unknown IDs are reported, not fatal: the rows still
// ship, flagged for review.
func ValidateTargets(mappings []CSFMapping, catalogIDs map[string]bool) []string {
	seen := make(map[string]bool)
	for _, m := range mappings {
		for _, id := range m.Targets {
			if !catalogIDs[id] && !seen[id] {
				seen[id] = true
			}
		}
	}
	unknown := make([]string, 0, len(seen))
	for id := range seen {
		unknown = append(unknown, id)
	}
	sort.Strings(unknown)
	return unknown
}

// GapSources returns CSF control IDs present in the source catalog but
// absent from the workbook mappings, in catalog order. These become
// no-relationship rows so the crosswalk explicitly records uncovered
// subcategories.
func GapSources(mappings []CSFMapping, catalogOrder []string) []string {
	mapped := make(map[string]bool, len(mappings))
	for _, m := range mappings {
		mapped[m.Source] = true
	}
	var gaps []string
	for _, id := range catalogOrder {
		if !mapped[id] {
			gaps = append(gaps, id)
		}
	}
	return gaps
}

// WriteCSFCSV emits the grouped mappings followed by gap rows in template
// format. Mapped rows carry superset-of (one CSF subcategory covers several
// 800-53 controls); gap rows leave target, relationship, and confidence
// empty.
func WriteCSFCSV(w io.Writer, mappings []CSFMapping, gaps []string, sourceResource, targetResource string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ColumnNames); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	if err := cw.Write(ColumnDescriptions); err != nil {
		return fmt.Errorf("failed to write CSV descriptions: %w", err)
	}
	for _, m := range mappings {
		record := []string{
			sourceResource,
			targetResource,
			m.Source,
			strings.Join(m.Targets, " "),
			string(types.KindSupersetOf),
			DefaultConfidence,
			"",
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", m.Source, err)
		}
	}
	for _, id := range gaps {
		// Empty target and relationship mark the row as a source gap
		// for the downstream csv-to-oscal-mc task.
		record := []string{
			sourceResource,
			targetResource,
			id,
			"",
			"",
			"",
			"",
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write gap row for %s: %w", id, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteCSFCSVFile writes the CSF crosswalk CSV to disk.
func WriteCSFCSVFile(path string, mappings []CSFMapping, gaps []string, sourceResource, targetResource string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV %s: %w", path, err)
	}
	if err := WriteCSFCSV(f, mappings, gaps, sourceResource, targetResource); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV %s: %w", path, err)
	}
	return nil
}

// CSFSummary builds a summary for the CSF run: one superset-of per grouped
// mapping, one no-relationship per gap.
func CSFSummary(mappings []CSFMapping, gaps []string) *types.Summary {
	s := types.NewSummary()
	for range mappings {
		s.Add(types.KindSupersetOf)
	}
	for range gaps {
		s.Add(types.KindNoRelationship)
	}
	return s
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
