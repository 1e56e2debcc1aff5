package classify

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Rules holds the keyword lists that drive classification. The comparison
// workbook's own legend is the authoritative source for these phrases; the
// defaults transcribe the legend shipped with the Rev4/Rev5 comparison
// workbook, and a rules file lets users re-transcribe it when NIST revises
// the wording.
type Rules struct {
	// Adds are changed-elements phrases meaning Rev 5 gained requirements.
	Adds []string `toml:"adds"`
	// Removes are phrases meaning Rev 5 lost requirements.
	Removes []string `toml:"removes"`
	// ChangesControl are phrases meaning requirement text was rewritten.
	ChangesControl []string `toml:"changes_control"`
	// Neutral are phrases that carry no substantive change on their own.
	Neutral []string `toml:"neutral"`
	// New are phrases marking controls introduced with no counterpart.
	New []string `toml:"new"`

	// WithdrawnRev4 matches change details for controls withdrawn in Rev 4.
	WithdrawnRev4 string `toml:"withdrawn_rev4"`
	// RestoredRev5 matches change details for controls restored in Rev 5.
	RestoredRev5 string `toml:"restored_rev5"`
	// PreviouslyWithdrawnRev4 matches controls already gone before Rev 5.
	PreviouslyWithdrawnRev4 string `toml:"previously_withdrawn_rev4"`
	// WithdrawnMarker is the changed-elements value for Rev 5 withdrawals.
	WithdrawnMarker string `toml:"withdrawn_marker"`
	// UnchangedMarker is the changed-elements value for untouched controls.
	UnchangedMarker string `toml:"unchanged_marker"`
}

// DefaultRules returns the built-in keyword table.
func DefaultRules() Rules {
	return Rules{
		Adds:           []string{"adds control text", "adds parameter"},
		Removes:        []string{"removes parameter", "removes control text"},
		ChangesControl: []string{"changes control text", "changes parameter"},
		Neutral:        []string{"changes discussion", "adds discussion", "changes title", "adds to", "n"},
		New:            []string{"new base control", "new control enhancement"},

		WithdrawnRev4:           "withdrawn in rev4",
		RestoredRev5:            "restored in rev5",
		PreviouslyWithdrawnRev4: "previously withdrawn in rev4",
		WithdrawnMarker:         "withdrawn",
		UnchangedMarker:         "n",
	}
}

// LoadRules reads a TOML rules file. Keyword lists omitted from the file
// fall back to the defaults, so a legend transcription only needs to name
// what changed.
func LoadRules(path string) (Rules, error) {
	r := DefaultRules()
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	if err := toml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return r, nil
}
