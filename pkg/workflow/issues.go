package workflow

import (
	"github.com/quillforge/sidekick/pkg/document"
)

// ApplyIssueFix replaces the issue's anchored excerpt in the document with
// the chosen fix option. On success the issue is removed from the open list
// (terminal removal, not a status flag) and the validation score rises by the
// configured delta, capped at 100.
//
// When the anchor pattern is no longer present in the document the fix is
// rejected with ErrAnchorNotFound and nothing is mutated: never partially
// apply.
func (s *Store) ApplyIssueFix(issueID string, option int, buf *document.Buffer) error {
	idx := -1
	for i, issue := range s.issues {
		if issue.ID == issueID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrIssueNotFound
	}
	issue := s.issues[idx]
	if option < 0 || option >= len(issue.FixOptions) {
		return ErrNoFixOption
	}

	start, end, ok := document.FindRange(buf.Text(), issue.FindPattern)
	if !ok {
		return ErrAnchorNotFound
	}
	buf.ReplaceRange(start, end, issue.FixOptions[option])

	s.issues = append(s.issues[:idx], s.issues[idx+1:]...)
	s.score += s.scoreDelta
	if s.score > 100 {
		s.score = 100
	}
	return nil
}

// HighlightIssue selects the issue's excerpt in the document so the user can
// see what a fix would replace. Content is not mutated.
func (s *Store) HighlightIssue(issueID string, buf *document.Buffer) error {
	for _, issue := range s.issues {
		if issue.ID != issueID {
			continue
		}
		start, end, ok := document.FindRange(buf.Text(), issue.FindPattern)
		if !ok {
			return ErrAnchorNotFound
		}
		buf.HighlightRange(start, end)
		return nil
	}
	return ErrIssueNotFound
}
