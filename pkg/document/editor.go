package document

import "strings"

// Buffer is the single mutable text buffer behind the editor pane. It tracks
// the caret and an optional selection, and reports every content change
// through a host-registered callback. The buffer does not own application
// state beyond the text itself.
//
// All operations are plain string transforms on the current content. Ranges
// must come from FindRange against the current text; a range computed before
// an intervening edit is stale and produces an incorrect (but never panicking)
// result.
type Buffer struct {
	text     string
	caret    int
	selStart int
	selEnd   int
	selected bool
	onChange func(string)
}

// NewBuffer creates a buffer with the given initial content and the caret at
// the start.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

// OnChange registers the callback invoked after every content mutation.
func (b *Buffer) OnChange(fn func(string)) {
	b.onChange = fn
}

// Text returns the current content.
func (b *Buffer) Text() string {
	return b.text
}

// Caret returns the current caret offset.
func (b *Buffer) Caret() int {
	return b.caret
}

// Selection returns the active half-open selection range, if any.
func (b *Buffer) Selection() (start, end int, ok bool) {
	if !b.selected {
		return 0, 0, false
	}
	return b.selStart, b.selEnd, true
}

// SetText replaces the whole content without firing the change callback.
// The host view calls this to sync edits the user typed directly into the
// widget. Caret and selection are clamped to the new length.
func (b *Buffer) SetText(text string) {
	b.text = text
	b.caret = clamp(b.caret, 0, len(text))
	if b.selected {
		b.selStart = clamp(b.selStart, 0, len(text))
		b.selEnd = clamp(b.selEnd, b.selStart, len(text))
		if b.selStart == b.selEnd {
			b.selected = false
		}
	}
}

// InsertAtSection inserts content at the end of the named section, keeping a
// newline separator on both sides. When the section does not exist a new
// "## title" section is appended, so the operation always succeeds; a later
// insert with the same title targets the section created here.
func (b *Buffer) InsertAtSection(title, content string) {
	offset, found := FindSectionInsertOffset(b.text, title)
	if !found {
		b.appendSection(title, content)
		return
	}

	block := content
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	if offset > 0 && b.text[offset-1] != '\n' {
		block = "\n" + block
	}
	b.splice(offset, offset, block)
	b.caret = offset + len(block)
	b.clearSelection()
}

// appendSection adds a fresh section heading plus content at the end of the
// document, separated from existing content by a blank line.
func (b *Buffer) appendSection(title, content string) {
	sep := ""
	switch {
	case b.text == "":
	case strings.HasSuffix(b.text, "\n\n"):
	case strings.HasSuffix(b.text, "\n"):
		sep = "\n"
	default:
		sep = "\n\n"
	}
	block := sep + "## " + strings.TrimSpace(title) + "\n\n" + content
	if !strings.HasSuffix(block, "\n") {
		block += "\n"
	}
	b.splice(len(b.text), len(b.text), block)
	b.caret = len(b.text)
	b.clearSelection()
}

// InsertAtEnd appends content to the document, inserting a blank-line
// separator when the buffer does not already end with a newline.
func (b *Buffer) InsertAtEnd(content string) {
	sep := ""
	if b.text != "" && !strings.HasSuffix(b.text, "\n") {
		sep = "\n\n"
	}
	b.splice(len(b.text), len(b.text), sep+content)
	b.caret = len(b.text)
	b.clearSelection()
}

// ReplaceRange replaces the half-open range [start, end) with text and moves
// the caret past the replacement. Offsets are clamped to the buffer rather
// than panicking on bad input.
func (b *Buffer) ReplaceRange(start, end int, text string) {
	start = clamp(start, 0, len(b.text))
	end = clamp(end, start, len(b.text))
	b.splice(start, end, text)
	b.caret = start + len(text)
	b.clearSelection()
}

// HighlightRange selects the half-open range [start, end) without mutating
// content. The host view mirrors the selection into the visible widget.
func (b *Buffer) HighlightRange(start, end int) {
	start = clamp(start, 0, len(b.text))
	end = clamp(end, start, len(b.text))
	b.selStart = start
	b.selEnd = end
	b.selected = end > start
	b.caret = start
}

// ClearHighlight drops the active selection.
func (b *Buffer) ClearHighlight() {
	b.clearSelection()
}

// InsertLink writes a markdown link at the caret, or over the active
// selection. The label is the selected text when a selection exists, else
// fallbackLabel, else the href itself. Returns false (and changes nothing)
// when href is blank.
func (b *Buffer) InsertLink(fallbackLabel, href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}

	start, end := b.caret, b.caret
	label := strings.TrimSpace(fallbackLabel)
	if s, e, ok := b.Selection(); ok {
		start, end = s, e
		label = b.text[s:e]
	}
	if label == "" {
		label = href
	}

	markup := "[" + label + "](" + href + ")"
	b.splice(start, end, markup)
	b.caret = start + len(markup)
	b.clearSelection()
	return true
}

func (b *Buffer) splice(start, end int, insert string) {
	b.text = b.text[:start] + insert + b.text[end:]
	if b.onChange != nil {
		b.onChange(b.text)
	}
}

func (b *Buffer) clearSelection() {
	b.selected = false
	b.selStart = 0
	b.selEnd = 0
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
