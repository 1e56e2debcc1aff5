// Package types defines the core data model shared across crosswalk
// generation: control pairs, the relationship taxonomy, and run summaries.
package types

import "fmt"

// RelationshipKind is the OSCAL relationship assigned to a control pair.
// The set is closed: classification either yields one of these values or
// fails for that row.
type RelationshipKind string

const (
	// KindEqualTo means the control is unchanged between frameworks.
	KindEqualTo RelationshipKind = "equal-to"
	// KindEquivalentTo means only cosmetic or discussion-level changes.
	KindEquivalentTo RelationshipKind = "equivalent-to"
	// KindSupersetOf means the source control gained requirements.
	KindSupersetOf RelationshipKind = "superset-of"
	// KindSubsetOf means the source control lost requirements.
	KindSubsetOf RelationshipKind = "subset-of"
	// KindIntersectsWith means overlapping changes in both directions.
	KindIntersectsWith RelationshipKind = "intersects-with"
	// KindNoRelationship means a new control with no counterpart.
	KindNoRelationship RelationshipKind = "no-relationship"
	// KindWithdrawn means withdrawn in both frameworks.
	KindWithdrawn RelationshipKind = "withdrawn"
	// KindWithdrawn4 means previously withdrawn in Rev 4, absent in Rev 5.
	KindWithdrawn4 RelationshipKind = "withdrawn4"
	// KindRestored5 means withdrawn in Rev 4 but restored in Rev 5.
	KindRestored5 RelationshipKind = "restored5"
	// KindWithdrawn5 means active in Rev 4, withdrawn in Rev 5.
	KindWithdrawn5 RelationshipKind = "withdrawn5"
)

// AllKinds lists every valid relationship kind in display order.
var AllKinds = []RelationshipKind{
	KindEqualTo,
	KindEquivalentTo,
	KindSupersetOf,
	KindSubsetOf,
	KindIntersectsWith,
	KindNoRelationship,
	KindWithdrawn,
	KindWithdrawn4,
	KindRestored5,
	KindWithdrawn5,
}

// ParseKind converts a string to a RelationshipKind, rejecting anything
// outside the closed set.
func ParseKind(s string) (RelationshipKind, error) {
	for _, k := range AllKinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown relationship kind: %q", s)
}

// Excluded reports whether rows of this kind are omitted from CSV output.
// Withdrawn controls have no mapping to express; they appear only in the
// summary's excluded count.
func (k RelationshipKind) Excluded() bool {
	switch k {
	case KindWithdrawn, KindWithdrawn4, KindWithdrawn5:
		return true
	}
	return false
}

// Gap reports whether rows of this kind represent coverage gaps. Gap rows
// are emitted to CSV so downstream review sees them, but count separately
// from mapped controls.
func (k RelationshipKind) Gap() bool {
	return k == KindNoRelationship || k == KindRestored5
}

// ControlPair is a candidate relationship between a source control (Rev 5 or
// CSF) and a prior control (Rev 4 or 800-53), as read from the workbook.
type ControlPair struct {
	// Source is the normalized source control ID (e.g. "ac-2.1").
	Source string
	// Target is the normalized prior control ID. Empty for new controls.
	Target string
	// Indicator is the workbook's raw changed-elements text.
	Indicator string
	// Detail is the workbook's free-text change description.
	Detail string
	// Row is the 1-based workbook row the pair came from.
	Row int
}

// CrosswalkRow is a classified control pair ready for CSV emission.
type CrosswalkRow struct {
	Pair ControlPair
	Kind RelationshipKind
}

// RowError records a row that could not be classified. The row is excluded
// from both the CSV and the summary counts.
type RowError struct {
	Row    int
	Source string
	Err    error
}

func (e RowError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("row %d (%s): %v", e.Row, e.Source, e.Err)
	}
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Summary aggregates per-kind counts for one run. Total counts classified
// rows only; skipped rows are listed separately and never feed the totals.
type Summary struct {
	Counts  map[RelationshipKind]int `json:"counts"`
	Total   int                      `json:"total"`
	Skipped []RowError               `json:"-"`
}

// NewSummary returns an empty summary with all kinds present at zero, so
// rendering is stable regardless of which kinds a workbook produces.
func NewSummary() *Summary {
	counts := make(map[RelationshipKind]int, len(AllKinds))
	for _, k := range AllKinds {
		counts[k] = 0
	}
	return &Summary{Counts: counts}
}

// Add records one classified row.
func (s *Summary) Add(k RelationshipKind) {
	s.Counts[k]++
	s.Total++
}

// Skip records a row that failed classification.
func (s *Summary) Skip(e RowError) {
	s.Skipped = append(s.Skipped, e)
}

// Mapped is the count of rows with a substantive mapping: every kind that is
// neither a gap nor excluded.
func (s *Summary) Mapped() int {
	n := 0
	for k, c := range s.Counts {
		if !k.Gap() && !k.Excluded() {
			n += c
		}
	}
	return n
}

// Gaps is the count of no-relationship and restored5 rows.
func (s *Summary) Gaps() int {
	return s.Counts[KindNoRelationship] + s.Counts[KindRestored5]
}

// Excluded is the count of withdrawn-family rows omitted from the CSV.
func (s *Summary) Excluded() int {
	n := 0
	for k, c := range s.Counts {
		if k.Excluded() {
			n += c
		}
	}
	return n
}
