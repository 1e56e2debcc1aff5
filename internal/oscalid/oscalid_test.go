package oscalid

import "testing"

func TestNormalizeRev5(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"base control", "AC-1", "ac-1"},
		{"leading zero", "AC-01", "ac-1"},
		{"enhancement", "AC-2(1)", "ac-2.1"},
		{"enhancement leading zeros", "AC-02(01)", "ac-2.1"},
		{"double digit", "SI-12", "si-12"},
		{"trailing comma", "AC-4,", "ac-4"},
		{"whitespace", "  AC-3 ", "ac-3"},
		{"no hyphen passthrough", "PM", "pm"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRev5(tt.input); got != tt.want {
				t.Errorf("NormalizeRev5(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeRev4SortAs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"base control", "AC-01-00", "ac-1"},
		{"enhancement", "AC-02-01", "ac-2.1"},
		{"enhancement leading zeros", "SI-04-05", "si-4.5"},
		{"double digit base", "AC-12-00", "ac-12"},
		{"two-part passthrough", "AC-01", "ac-01"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRev4SortAs(tt.input); got != tt.want {
				t.Errorf("NormalizeRev4SortAs(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCSF(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"GV.OC-01", "gv.oc-01"},
		{" DE.AE-02 ", "de.ae-02"},
		{"pr.aa-05", "pr.aa-05"},
	}

	for _, tt := range tests {
		if got := NormalizeCSF(tt.input); got != tt.want {
			t.Errorf("NormalizeCSF(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsSubcategory(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"GV.OC-01", true},
		{"RS.MA-05", true},
		{"GV.OC", false},  // category level
		{"GV", false},     // function level
		{"gv.oc-01", false},
		{"GV.OC-01: Context", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSubcategory(tt.input); got != tt.want {
			t.Errorf("IsSubcategory(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
