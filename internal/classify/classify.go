// Package classify assigns an OSCAL relationship kind to each control pair
// based on the comparison workbook's changed-elements and change-details
// columns. The decision tree is keyword-driven and table-configurable; a row
// whose indicator matches nothing in the table is a classification error,
// never a silent default.
package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/untoldecay/CrosswalkForge/internal/types"
)

// ErrMissingIndicator marks rows with no relationship indicator at all.
var ErrMissingIndicator = errors.New("missing relationship indicator")

// ErrWithdrawnConflict marks rows whose withdrawn markers contradict each
// other (withdrawn in Rev 4, not restored, not previously withdrawn, yet
// still listed as active). These need manual review.
var ErrWithdrawnConflict = errors.New("conflicting withdrawn markers")

// Classifier maps control pairs to relationship kinds using a rule table.
type Classifier struct {
	rules Rules
}

// New returns a classifier using the given rules.
func New(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the relationship kind for one control pair.
//
// Direction: source = Rev 5, target = Rev 4. The withdrawn family is decided
// first from the change-details column, then new/unchanged markers, then the
// substantive keyword buckets. An indicator that survives all of that without
// matching any known keyword is an error for the row.
func (c *Classifier) Classify(pair types.ControlPair) (types.RelationshipKind, error) {
	ce := strings.ToLower(strings.TrimSpace(pair.Indicator))
	cd := strings.ToLower(strings.TrimSpace(pair.Detail))

	if ce == "" && cd == "" {
		return "", ErrMissingIndicator
	}

	withdrawnRev4 := strings.Contains(cd, c.rules.WithdrawnRev4)
	restoredRev5 := strings.Contains(cd, c.rules.RestoredRev5)
	previouslyWithdrawn := strings.Contains(cd, c.rules.PreviouslyWithdrawnRev4)
	withdrawnRev5 := ce == c.rules.WithdrawnMarker

	// Withdrawn in Rev 4 but back in Rev 5: a gap row, not an exclusion.
	if withdrawnRev4 && restoredRev5 {
		return types.KindRestored5, nil
	}
	if previouslyWithdrawn {
		return types.KindWithdrawn4, nil
	}
	// Gone in both revisions.
	if withdrawnRev4 && withdrawnRev5 {
		return types.KindWithdrawn, nil
	}
	if withdrawnRev5 {
		return types.KindWithdrawn5, nil
	}
	if withdrawnRev4 {
		return "", ErrWithdrawnConflict
	}

	for _, n := range c.rules.New {
		if strings.Contains(ce, n) {
			return types.KindNoRelationship, nil
		}
	}

	if ce == c.rules.UnchangedMarker {
		return types.KindEqualTo, nil
	}

	// Drop neutral-only lines; what remains decides the relationship.
	substantive := c.substantiveLines(ce)
	if len(substantive) == 0 {
		return types.KindEquivalentTo, nil
	}

	hasAdds := c.containsAny(ce, c.rules.Adds)
	hasRemoves := c.containsAny(ce, c.rules.Removes)
	hasChanges := c.containsAny(ce, c.rules.ChangesControl)

	if !hasAdds && !hasRemoves && !hasChanges {
		return "", fmt.Errorf("unrecognized relationship indicator %q", pair.Indicator)
	}

	if hasChanges || (hasAdds && hasRemoves) {
		return types.KindIntersectsWith, nil
	}
	if hasAdds {
		return types.KindSupersetOf, nil
	}
	return types.KindSubsetOf, nil
}

// substantiveLines returns the indicator lines that are not covered by the
// neutral prefix list.
func (c *Classifier) substantiveLines(ce string) []string {
	var out []string
	for _, line := range strings.Split(ce, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		neutral := false
		for _, n := range c.rules.Neutral {
			if strings.HasPrefix(line, n) {
				neutral = true
				break
			}
		}
		if !neutral {
			out = append(out, line)
		}
	}
	return out
}

func (c *Classifier) containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
