package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillforge/sidekick/pkg/files"
	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/workflow"
)

// submitCommandBar turns a command-bar submission into a new action in the
// active phase, with both sides of the exchange recorded in the chat.
func (m *WorkspaceModel) submitCommandBar(text string) tea.Cmd {
	categoryID := m.activeCategoryID()
	if categoryID == "" {
		return statusCmd("Create a phase first (p)")
	}

	m.appendChat(chatUser, text)
	a := m.store.AddAction(text, "Queued from the command bar.", categoryID, models.PriorityMedium)
	m.appendChat(chatAssistant, fmt.Sprintf(
		"Queued %q in this phase. Attach sources with a to get started.", a.Title))

	actions := m.currentActions()
	m.selectedAction = len(actions) - 1
	return statusCmd(fmt.Sprintf("Queued %q", a.Title))
}

// attachSelectedFile adds the picked file as an uploading source and starts
// the simulated upload ticks.
func (m *WorkspaceModel) attachSelectedFile(path string) tea.Cmd {
	m.mode = modeNormal
	a := m.currentAction()
	if a == nil {
		return statusCmd("No action selected")
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}
	opID, err := m.store.AttachSources(a.ID, []workflow.SourceFile{
		{Name: filepath.Base(path), Size: size},
	})
	if err != nil {
		return statusCmd(err.Error())
	}

	m.appendChat(chatAssistant, fmt.Sprintf("Uploading %s…", filepath.Base(path)))
	return uploadTick(millis(m.settings.Simulation.UploadTickMs), a.ID, opID)
}

// startGeneration closes out the sources stage and begins the simulated
// draft generation.
func (m *WorkspaceModel) startGeneration() tea.Cmd {
	a := m.currentAction()
	if a == nil {
		return statusCmd("No action selected")
	}
	opID, err := m.store.Generate(a.ID)
	switch {
	case errors.Is(err, workflow.ErrSourcesNotReady), errors.Is(err, workflow.ErrInvalidTransition):
		return statusCmd("Attach sources and wait for them to be ready first")
	case err != nil:
		return statusCmd(err.Error())
	}

	m.appendChat(chatAssistant, fmt.Sprintf("Generating a draft for %q…", a.Title))
	return generationTimer(millis(m.settings.Simulation.GenerationDelayMs), a.ID, opID)
}

// startValidation begins the simulated validation of generated content.
func (m *WorkspaceModel) startValidation() tea.Cmd {
	a := m.currentAction()
	if a == nil {
		return statusCmd("No action selected")
	}
	opID, err := m.store.Validate(a.ID)
	if err != nil {
		return statusCmd("Generate a draft before validating")
	}

	m.appendChat(chatAssistant, fmt.Sprintf("Validating %q…", a.Title))
	return validationTimer(millis(m.settings.Simulation.ValidationDelayMs), a.ID, opID)
}

// dismissAction short-circuits the selected action to its terminal state.
func (m *WorkspaceModel) dismissAction() tea.Cmd {
	a := m.currentAction()
	if a == nil {
		return statusCmd("No action selected")
	}
	if err := m.store.Dismiss(a.ID); err != nil {
		return statusCmd("Action is already completed")
	}
	return statusCmd(fmt.Sprintf("Dismissed %q", a.Title))
}

// switchStageTab moves the selected action's display cursor. Informational
// only: it never changes pipeline state.
func (m *WorkspaceModel) switchStageTab(delta int) tea.Cmd {
	a := m.currentAction()
	if a == nil {
		return nil
	}
	idx := 0
	for i, s := range models.Stages {
		if s == a.CurrentStage {
			idx = i
		}
	}
	idx += delta
	if idx < 0 || idx >= len(models.Stages) {
		return nil
	}
	m.store.SetCurrentStage(a.ID, models.Stages[idx])
	return nil
}

// insertDraft places the selected action's generated content into the memo
// section matching the content type, creating the section when missing.
func (m *WorkspaceModel) insertDraft() tea.Cmd {
	a := m.currentAction()
	if a == nil || a.GeneratedContent == nil {
		return statusCmd("Nothing generated yet — press g first")
	}

	m.syncBufferFromEditor()
	section := sectionForContent(a.GeneratedContent.Type)
	m.buf.InsertAtSection(section, a.GeneratedContent.Content)
	m.syncEditorFromBuffer()
	return statusCmd(fmt.Sprintf("Inserted draft into %s", section))
}

// copyDraft puts the generated content on the system clipboard.
func (m *WorkspaceModel) copyDraft() tea.Cmd {
	a := m.currentAction()
	if a == nil || a.GeneratedContent == nil {
		return statusCmd("Nothing generated yet — press g first")
	}
	if err := clipboard.WriteAll(a.GeneratedContent.Content); err != nil {
		return statusCmd("Couldn't access the clipboard")
	}
	return statusCmd("Draft copied to clipboard")
}

// actOnRecommendation starts work on the selected recommendation.
func (m *WorkspaceModel) actOnRecommendation() tea.Cmd {
	r := m.currentRecommendation()
	if r == nil {
		return statusCmd("No recommendations")
	}
	if err := m.store.ActOnRecommendation(r.ID); err != nil {
		return statusCmd("Recommendation can't be started")
	}
	if r.Intent == models.IntentAddEvidence {
		m.appendChat(chatAssistant, fmt.Sprintf(
			"Working on %q — attach the evidence with a on any action.", r.Title))
	}
	return statusCmd(fmt.Sprintf("Started %q", r.Title))
}

// closeRecommendation dismisses the selected recommendation for good.
func (m *WorkspaceModel) closeRecommendation() tea.Cmd {
	r := m.currentRecommendation()
	if r == nil {
		return statusCmd("No recommendations")
	}
	if err := m.store.CloseRecommendation(r.ID); err != nil {
		return statusCmd("Recommendation is already closed")
	}
	return statusCmd(fmt.Sprintf("Closed %q", r.Title))
}

// highlightIssue selects the issue's excerpt in the editor so the user can
// inspect it before fixing.
func (m *WorkspaceModel) highlightIssue() tea.Cmd {
	issue := m.currentIssue()
	if issue == nil {
		return statusCmd("No open issues")
	}

	m.syncBufferFromEditor()
	if err := m.store.HighlightIssue(issue.ID, m.buf); err != nil {
		return statusCmd("Couldn't locate the text to replace")
	}
	start, _, _ := m.buf.Selection()
	m.moveEditorCursorTo(start)
	m.focus = paneEditor
	return tea.Batch(m.editor.Focus(), statusCmd(fmt.Sprintf("Highlighted %q", issue.Excerpt)))
}

// applyIssueFix replaces the issue's excerpt with the selected fix option.
func (m *WorkspaceModel) applyIssueFix() tea.Cmd {
	issue := m.currentIssue()
	if issue == nil {
		return statusCmd("No open issues")
	}

	m.syncBufferFromEditor()
	err := m.store.ApplyIssueFix(issue.ID, m.selectedFix, m.buf)
	if errors.Is(err, workflow.ErrAnchorNotFound) {
		return statusCmd("Couldn't locate the text to replace")
	}
	if err != nil {
		return statusCmd(err.Error())
	}

	m.syncEditorFromBuffer()
	m.selectedFix = 0
	m.appendChat(chatAssistant, fmt.Sprintf(
		"Fixed %q — the document score is now %d.", issue.Title, m.store.Score()))
	return statusCmd(fmt.Sprintf("Fixed — score %d/100", m.store.Score()))
}

// saveDocument writes the buffer to the workspace.
func (m *WorkspaceModel) saveDocument() tea.Cmd {
	m.syncBufferFromEditor()
	if err := files.WriteDocument(m.buf.Text()); err != nil {
		return statusCmd("Couldn't save the document")
	}
	m.dirty = false
	return statusCmd("Document saved")
}

// sectionForContent maps a generated content type to its memo section.
func sectionForContent(t models.ContentType) string {
	switch t {
	case models.ContentSummary:
		return "Summary"
	case models.ContentAnalysis:
		return "Analysis"
	default:
		return "Open Items"
	}
}
