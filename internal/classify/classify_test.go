package classify

import (
	"errors"
	"testing"

	"github.com/untoldecay/CrosswalkForge/internal/types"
)

func TestClassify(t *testing.T) {
	c := New(DefaultRules())

	tests := []struct {
		name      string
		indicator string
		detail    string
		want      types.RelationshipKind
	}{
		{"unchanged", "N", "", types.KindEqualTo},
		{"discussion only", "Changes Discussion", "", types.KindEquivalentTo},
		{"title only", "Changes Title", "", types.KindEquivalentTo},
		{
			"multiple neutral lines",
			"Changes Discussion\nChanges Title",
			"",
			types.KindEquivalentTo,
		},
		{"adds text", "Adds Control Text", "", types.KindSupersetOf},
		{"adds parameter", "Adds Parameter", "", types.KindSupersetOf},
		{"removes text", "Removes Control Text", "", types.KindSubsetOf},
		{"removes parameter", "Removes Parameter", "", types.KindSubsetOf},
		{"changes text", "Changes Control Text", "", types.KindIntersectsWith},
		{
			"adds and removes",
			"Adds Parameter\nRemoves Control Text",
			"",
			types.KindIntersectsWith,
		},
		{
			"adds plus neutral stays superset",
			"Adds Control Text\nChanges Discussion",
			"",
			types.KindSupersetOf,
		},
		{"new base control", "New Base Control", "", types.KindNoRelationship},
		{"new enhancement", "New Control Enhancement", "", types.KindNoRelationship},
		{"withdrawn in rev5", "Withdrawn", "Incorporated into AC-6.", types.KindWithdrawn5},
		{
			"withdrawn both",
			"Withdrawn",
			"Withdrawn in Rev4.",
			types.KindWithdrawn,
		},
		{
			"previously withdrawn",
			"",
			"Previously withdrawn in Rev4.",
			types.KindWithdrawn4,
		},
		{
			"restored in rev5",
			"Adds Control Text",
			"Withdrawn in Rev4, restored in Rev5.",
			types.KindRestored5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := types.ControlPair{Indicator: tt.indicator, Detail: tt.detail}
			got, err := c.Classify(pair)
			if err != nil {
				t.Fatalf("Classify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.indicator, tt.detail, got, tt.want)
			}
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	c := New(DefaultRules())

	tests := []struct {
		name      string
		indicator string
		detail    string
		wantErr   error
	}{
		{"empty row", "", "", ErrMissingIndicator},
		{"whitespace only", "  \n ", "\t", ErrMissingIndicator},
		{
			"withdrawn conflict",
			"Adds Control Text",
			"Withdrawn in Rev4.",
			ErrWithdrawnConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := types.ControlPair{Indicator: tt.indicator, Detail: tt.detail}
			_, err := c.Classify(pair)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Classify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClassifyUnknownIndicatorIsError(t *testing.T) {
	c := New(DefaultRules())

	// An indicator outside the rule table must fail loudly, not fall
	// through to some default kind.
	pair := types.ControlPair{Indicator: "Reworded For Clarity", Row: 12}
	kind, err := c.Classify(pair)
	if err == nil {
		t.Fatalf("Classify() = %q, want error for unknown indicator", kind)
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	c := New(DefaultRules())
	pair := types.ControlPair{
		Indicator: "Adds Parameter\nChanges Discussion",
		Detail:    "Expanded scoping.",
	}

	first, err := c.Classify(pair)
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := c.Classify(pair)
		if err != nil || got != first {
			t.Fatalf("run %d: Classify() = %q, %v; want %q, nil", i, got, err, first)
		}
	}
}
