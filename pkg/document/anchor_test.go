package document

import (
	"strings"
	"testing"
)

const memo = "# Memo\n\n## Facts\nA.\n\n## Analysis\n(placeholder)\n"

func TestFindSectionInsertOffset(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		title      string
		wantOffset int
		wantFound  bool
	}{
		{"middle section ends at next heading", memo, "Facts", strings.Index(memo, "## Analysis"), true},
		{"last section ends at document end", memo, "Analysis", len(memo), true},
		{"case insensitive match", memo, "fActS", strings.Index(memo, "## Analysis"), true},
		{"title trimmed before match", memo, "  Facts  ", strings.Index(memo, "## Analysis"), true},
		{"missing section falls back to append", memo, "Conclusion", len(memo), false},
		{"empty title not found", memo, "", len(memo), false},
		{"blank title not found", memo, "   ", len(memo), false},
		{"level-1 heading is not a section", memo, "Memo", len(memo), false},
		{"empty document", "", "Facts", 0, false},
		{"section without trailing newline", "## Facts\nA.", "Facts", len("## Facts\nA."), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, found := FindSectionInsertOffset(tt.text, tt.title)
			if offset != tt.wantOffset || found != tt.wantFound {
				t.Errorf("FindSectionInsertOffset(%q) = (%d, %v), want (%d, %v)",
					tt.title, offset, found, tt.wantOffset, tt.wantFound)
			}
		})
	}
}

func TestFindSectionInsertOffsetDuplicateHeadings(t *testing.T) {
	text := "## Facts\nfirst\n\n## Facts\nsecond\n"

	offset, found := FindSectionInsertOffset(text, "Facts")
	if !found {
		t.Fatal("expected duplicate heading to be found")
	}
	// First occurrence wins: insertion point is before the second heading.
	want := strings.Index(text, "## Facts\nsecond")
	if offset != want {
		t.Errorf("offset = %d, want %d (before second heading)", offset, want)
	}
}

func TestFindRange(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		literal string
		wantOK  bool
	}{
		{"present literal", memo, "(placeholder)", true},
		{"literal at start", memo, "# Memo", true},
		{"literal at end", memo, "(placeholder)\n", true},
		{"absent literal", memo, "nonexistent", false},
		{"case sensitive", memo, "(PLACEHOLDER)", false},
		{"empty literal", memo, "", false},
		{"empty text", "", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, ok := FindRange(tt.text, tt.literal)
			if ok != tt.wantOK {
				t.Fatalf("FindRange(%q) ok = %v, want %v", tt.literal, ok, tt.wantOK)
			}
			if ok && tt.text[start:end] != tt.literal {
				t.Errorf("text[%d:%d] = %q, want %q", start, end, tt.text[start:end], tt.literal)
			}
		})
	}
}

func TestFindRangeFirstOccurrence(t *testing.T) {
	text := "alpha beta alpha"

	start, end, ok := FindRange(text, "alpha")
	if !ok || start != 0 || end != 5 {
		t.Errorf("FindRange = (%d, %d, %v), want first occurrence (0, 5, true)", start, end, ok)
	}
}
