package types

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RelationshipKind
		wantErr bool
	}{
		{"equal-to", "equal-to", KindEqualTo, false},
		{"withdrawn4", "withdrawn4", KindWithdrawn4, false},
		{"restored5", "restored5", KindRestored5, false},
		{"empty", "", "", true},
		{"unknown", "related-to", "", true},
		{"case sensitive", "Equal-To", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind     RelationshipKind
		excluded bool
		gap      bool
	}{
		{KindEqualTo, false, false},
		{KindEquivalentTo, false, false},
		{KindSupersetOf, false, false},
		{KindSubsetOf, false, false},
		{KindIntersectsWith, false, false},
		{KindNoRelationship, false, true},
		{KindRestored5, false, true},
		{KindWithdrawn, true, false},
		{KindWithdrawn4, true, false},
		{KindWithdrawn5, true, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Excluded(); got != tt.excluded {
				t.Errorf("%s.Excluded() = %v, want %v", tt.kind, got, tt.excluded)
			}
			if got := tt.kind.Gap(); got != tt.gap {
				t.Errorf("%s.Gap() = %v, want %v", tt.kind, got, tt.gap)
			}
		})
	}
}

func TestSummaryTotals(t *testing.T) {
	s := NewSummary()
	for i := 0; i < 3; i++ {
		s.Add(KindEqualTo)
	}
	s.Add(KindNoRelationship)
	s.Add(KindNoRelationship)
	s.Add(KindWithdrawn4)
	s.Add(KindIntersectsWith)
	s.Add(KindIntersectsWith)
	s.Add(KindIntersectsWith)
	s.Add(KindIntersectsWith)

	if s.Total != 10 {
		t.Fatalf("Total = %d, want 10", s.Total)
	}
	if got := s.Mapped(); got != 7 {
		t.Errorf("Mapped() = %d, want 7", got)
	}
	if got := s.Gaps(); got != 2 {
		t.Errorf("Gaps() = %d, want 2", got)
	}
	if got := s.Excluded(); got != 1 {
		t.Errorf("Excluded() = %d, want 1", got)
	}
	if s.Mapped()+s.Gaps()+s.Excluded() != s.Total {
		t.Errorf("mapped+gaps+excluded = %d, want Total %d",
			s.Mapped()+s.Gaps()+s.Excluded(), s.Total)
	}
}

func TestSummarySkipDoesNotCount(t *testing.T) {
	s := NewSummary()
	s.Add(KindEqualTo)
	s.Skip(RowError{Row: 7, Source: "ac-3"})

	if s.Total != 1 {
		t.Errorf("Total = %d, want 1 (skipped rows must not count)", s.Total)
	}
	if len(s.Skipped) != 1 {
		t.Errorf("len(Skipped) = %d, want 1", len(s.Skipped))
	}
}
