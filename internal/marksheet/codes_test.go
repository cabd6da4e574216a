package marksheet

import "testing"

func TestExtractCodeNames(t *testing.T) {
	tests := []struct {
		name  string
		pages []string
		want  map[string]string
	}{
		{
			name:  "single declaration",
			pages: []string{"ABC101 - Engineering Mathematics:\n"},
			want:  map[string]string{"ABC101": "Engineering Mathematics"},
		},
		{
			name:  "en-dash separator",
			pages: []string{"DEF202 – Applied Physics (Theory)\n"},
			want:  map[string]string{"DEF202": "Applied Physics (Theory)"},
		},
		{
			name: "multiple declarations across pages",
			pages: []string{
				"ABC101 - Mathematics:\n",
				"DEF202 - Physics:\n",
			},
			want: map[string]string{
				"ABC101": "Mathematics",
				"DEF202": "Physics",
			},
		},
		{
			name: "later declaration overwrites earlier",
			pages: []string{
				"ABC101 - Old Name:\n",
				"ABC101 - New Name:\n",
			},
			want: map[string]string{"ABC101": "New Name"},
		},
		{
			name: "pages past the scan bound are ignored",
			pages: []string{
				"ABC101 - Mathematics:\n", "", "", "", "",
				"ZZZ999 - Should Not Appear:\n",
			},
			want: map[string]string{"ABC101": "Mathematics"},
		},
		{
			name:  "short code is skipped",
			pages: []string{"AB - Too Short:\n"},
			want:  map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractCodeNames(tt.pages)
			if len(got) != len(tt.want) {
				t.Fatalf("ExtractCodeNames() = %v, want %v", got, tt.want)
			}
			for code, name := range tt.want {
				if got[code] != name {
					t.Errorf("mapping[%q] = %q, want %q", code, got[code], name)
				}
			}
		})
	}
}

func TestCodeNameMapNameFor(t *testing.T) {
	m := CodeNameMap{"ABC101": "Mathematics"}

	if got := m.NameFor("ABC101"); got != "Mathematics" {
		t.Errorf("NameFor(known) = %q, want Mathematics", got)
	}

	// An undeclared code resolves to the sentinel, never an empty string.
	if got := m.NameFor("MISSING"); got != UnknownPaperName {
		t.Errorf("NameFor(unknown) = %q, want %q", got, UnknownPaperName)
	}

	var empty CodeNameMap
	if got := empty.NameFor("ANY"); got != UnknownPaperName {
		t.Errorf("NameFor on nil map = %q, want %q", got, UnknownPaperName)
	}
}
