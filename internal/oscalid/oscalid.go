// Package oscalid normalizes control identifiers from NIST source documents
// into OSCAL catalog ID form.
//
// The three source formats are:
//
//	Rev 5 column:   AC-1, AC-2(1)        -> ac-1, ac-2.1
//	Rev 4 SORT-AS:  AC-01-00, AC-02-01   -> ac-1, ac-2.1
//	CSF element:    GV.OC-01             -> gv.oc-01
package oscalid

import (
	"regexp"
	"strconv"
	"strings"
)

// subcategoryPattern matches CSF subcategory IDs like "GV.OC-01". Category
// rows ("GV.OC") and function rows ("GV") must not match.
var subcategoryPattern = regexp.MustCompile(`^[A-Z]{2}\.[A-Z]{2}-\d+$`)

// NormalizeRev5 converts a Rev 5 control ID to catalog form. Enhancements in
// parentheses become dotted suffixes and leading zeros are dropped:
// "AC-02(01)" -> "ac-2.1".
func NormalizeRev5(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	id = strings.TrimSuffix(id, ",")
	if id == "" {
		return ""
	}

	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return id
	}
	family, num := parts[0], parts[1]

	if open := strings.Index(num, "("); open >= 0 {
		base := num[:open]
		enh := strings.TrimSuffix(num[open+1:], ")")
		return family + "-" + stripZeros(base) + "." + stripZeros(enh)
	}
	return family + "-" + stripZeros(num)
}

// NormalizeRev4SortAs converts a Rev 4 SORT-AS ID to catalog form. The
// trailing "-00" component marks a base control: "AC-01-00" -> "ac-1",
// "AC-02-01" -> "ac-2.1". IDs outside the three-part shape pass through
// lowercased.
func NormalizeRev4SortAs(id string) string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return ""
	}

	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return id
	}
	family, base, enh := parts[0], stripZeros(parts[1]), parts[2]
	if enh == "00" {
		return family + "-" + base
	}
	return family + "-" + base + "." + stripZeros(enh)
}

// NormalizeCSF converts a CSF element ID to catalog form. The catalog keeps
// the dotted shape, so lowercasing and trimming is all that applies.
func NormalizeCSF(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// IsSubcategory reports whether the raw workbook value is a CSF subcategory
// ID. Crosswalk rows at category or function level are filtered out before
// classification.
func IsSubcategory(raw string) bool {
	return subcategoryPattern.MatchString(strings.TrimSpace(raw))
}

// stripZeros removes leading zeros from a numeric component, leaving
// non-numeric components untouched.
func stripZeros(s string) string {
	if n, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(n)
	}
	return s
}
