// Package document implements the text engine behind the editor pane: anchor
// lookup over a markdown-flavored buffer and the imperative mutation surface
// the assistant panel drives.
//
// Only level-2 (`## `) headings are structurally meaningful. A section's
// content runs from the line after its heading to the next level-2 heading or
// end of text, exclusive.
package document

import (
	"regexp"
	"strings"
)

var level2Heading = regexp.MustCompile(`^##\s+`)

// FindSectionInsertOffset locates the insertion point for new content inside
// the named section: the character offset immediately before the next level-2
// heading, or the end of the document when the section is last. Heading
// matching compares trimmed lines case-insensitively against "## " + title.
//
// When the section does not exist (or title is blank), found is false and the
// caller is expected to append a new section instead of failing. Duplicate
// headings: the first match wins.
func FindSectionInsertOffset(text, title string) (offset int, found bool) {
	want := strings.ToLower("## " + strings.TrimSpace(title))
	if strings.TrimSpace(title) == "" {
		return len(text), false
	}

	lines := strings.SplitAfter(text, "\n")
	pos := 0
	inSection := false
	for _, line := range lines {
		bare := strings.TrimSuffix(line, "\n")
		if inSection && level2Heading.MatchString(bare) {
			return pos, true
		}
		if !inSection && strings.ToLower(strings.TrimSpace(bare)) == want {
			inSection = true
		}
		pos += len(line)
	}
	if inSection {
		return len(text), true
	}
	return len(text), false
}

// FindRange returns the character offsets [start, end) of the first exact
// occurrence of literal in text. This is a plain substring search, not fuzzy
// matching: callers must supply the exact excerpt originally shown to the
// user. An empty literal is never found.
func FindRange(text, literal string) (start, end int, ok bool) {
	if literal == "" {
		return 0, 0, false
	}
	idx := strings.Index(text, literal)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(literal), true
}
