package document

import (
	"strings"
	"testing"
)

func TestInsertAtSectionExistingSection(t *testing.T) {
	b := NewBuffer(memo)
	before := b.Text()

	b.InsertAtSection("Analysis", "New text.")

	got := b.Text()
	analysisStart := strings.Index(got, "## Analysis")
	analysis := got[analysisStart:]
	placeholderIdx := strings.Index(analysis, "(placeholder)")
	newTextIdx := strings.Index(analysis, "New text.")
	if placeholderIdx < 0 || newTextIdx < 0 {
		t.Fatalf("Analysis section missing content:\n%s", analysis)
	}
	if placeholderIdx > newTextIdx {
		t.Error("existing content should precede inserted content")
	}

	// Outside the section nothing changes.
	factsBefore := before[:strings.Index(before, "## Analysis")]
	factsAfter := got[:strings.Index(got, "## Analysis")]
	if factsBefore != factsAfter {
		t.Errorf("content before the target section changed:\n%q\n%q", factsBefore, factsAfter)
	}
}

func TestInsertAtSectionBeforeNextHeading(t *testing.T) {
	b := NewBuffer(memo)

	b.InsertAtSection("Facts", "B.")

	got := b.Text()
	factsEnd := strings.Index(got, "## Analysis")
	if !strings.Contains(got[:factsEnd], "B.") {
		t.Errorf("inserted content should land before the next heading:\n%s", got)
	}
	if !strings.Contains(got[:factsEnd], "A.") {
		t.Error("original section content lost")
	}
	if strings.Index(got[:factsEnd], "A.") > strings.Index(got[:factsEnd], "B.") {
		t.Error("inserted content should follow original content")
	}
}

func TestInsertAtSectionMissingSectionAppends(t *testing.T) {
	b := NewBuffer(memo)

	b.InsertAtSection("Conclusion", "Wrapping up.")

	got := b.Text()
	if !strings.Contains(got, "## Conclusion") {
		t.Fatalf("expected new section heading, got:\n%s", got)
	}
	if !strings.HasPrefix(got, memo[:len(memo)-1]) {
		t.Error("existing document content changed")
	}

	// Targeting is idempotent: a second insert with the same title lands in
	// the section created above rather than appending another heading.
	b.InsertAtSection("Conclusion", "More.")
	if strings.Count(b.Text(), "## Conclusion") != 1 {
		t.Errorf("duplicate heading created:\n%s", b.Text())
	}
	if !strings.Contains(b.Text(), "Wrapping up.") || !strings.Contains(b.Text(), "More.") {
		t.Error("content should accumulate in the appended section")
	}
}

func TestInsertAtEnd(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		content  string
		expected string
	}{
		{"empty buffer", "", "Hello", "Hello"},
		{"ends with newline", "Line.\n", "Next", "Line.\nNext"},
		{"no trailing newline gets separator", "Line.", "Next", "Line.\n\nNext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(tt.initial)
			b.InsertAtEnd(tt.content)
			if b.Text() != tt.expected {
				t.Errorf("InsertAtEnd(%q) = %q, want %q", tt.content, b.Text(), tt.expected)
			}
		})
	}
}

func TestReplaceRangeAfterFindRange(t *testing.T) {
	b := NewBuffer(memo)

	start, end, ok := FindRange(b.Text(), "(placeholder)")
	if !ok {
		t.Fatal("pattern should be present")
	}
	before := b.Text()[:start]
	after := b.Text()[end:]

	b.ReplaceRange(start, end, "Real analysis.")

	want := before + "Real analysis." + after
	if b.Text() != want {
		t.Errorf("ReplaceRange result = %q, want %q", b.Text(), want)
	}
	if b.Caret() != start+len("Real analysis.") {
		t.Errorf("caret = %d, want %d", b.Caret(), start+len("Real analysis."))
	}
}

func TestReplaceRangeClampsOffsets(t *testing.T) {
	b := NewBuffer("abc")

	b.ReplaceRange(2, 99, "Z")
	if b.Text() != "abZ" {
		t.Errorf("out-of-range end should clamp, got %q", b.Text())
	}

	b.ReplaceRange(-5, 1, "x")
	if b.Text() != "xbZ" {
		t.Errorf("negative start should clamp, got %q", b.Text())
	}
}

func TestHighlightRange(t *testing.T) {
	b := NewBuffer(memo)
	before := b.Text()

	start, end, _ := FindRange(b.Text(), "(placeholder)")
	b.HighlightRange(start, end)

	if b.Text() != before {
		t.Error("highlight must not mutate content")
	}
	s, e, ok := b.Selection()
	if !ok || s != start || e != end {
		t.Errorf("Selection() = (%d, %d, %v), want (%d, %d, true)", s, e, ok, start, end)
	}

	b.ClearHighlight()
	if _, _, ok := b.Selection(); ok {
		t.Error("selection should be cleared")
	}
}

func TestInsertLink(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(*Buffer)
		fallback string
		href     string
		wantOK   bool
		contains string
	}{
		{"selection becomes label", func(b *Buffer) {
			s, e, _ := FindRange(b.Text(), "(placeholder)")
			b.HighlightRange(s, e)
		}, "ignored", "https://example.com/doc", true, "[(placeholder)](https://example.com/doc)"},
		{"fallback label without selection", nil, "source memo", "https://example.com", true, "[source memo](https://example.com)"},
		{"href as label of last resort", nil, "", "https://example.com", true, "[https://example.com](https://example.com)"},
		{"blank href rejected", nil, "label", "   ", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuffer(memo)
			if tt.setup != nil {
				tt.setup(b)
			}
			before := b.Text()

			ok := b.InsertLink(tt.fallback, tt.href)
			if ok != tt.wantOK {
				t.Fatalf("InsertLink ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				if b.Text() != before {
					t.Error("rejected link must not mutate content")
				}
				return
			}
			if !strings.Contains(b.Text(), tt.contains) {
				t.Errorf("document missing %q:\n%s", tt.contains, b.Text())
			}
		})
	}
}

func TestInsertLinkReplacesSelection(t *testing.T) {
	b := NewBuffer("see the filing here")
	s, e, _ := FindRange(b.Text(), "the filing")
	b.HighlightRange(s, e)

	b.InsertLink("", "https://example.com/f")

	want := "see [the filing](https://example.com/f) here"
	if b.Text() != want {
		t.Errorf("got %q, want %q", b.Text(), want)
	}
	if b.Caret() != s+len("[the filing](https://example.com/f)") {
		t.Errorf("caret should advance past the markup, got %d", b.Caret())
	}
}

func TestOnChangeFires(t *testing.T) {
	b := NewBuffer("x")
	var notified []string
	b.OnChange(func(text string) { notified = append(notified, text) })

	b.InsertAtEnd("y")
	b.SetText("sync") // host sync must not re-notify

	if len(notified) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notified))
	}
	if notified[0] != "x\n\ny" {
		t.Errorf("notified with %q", notified[0])
	}
}
