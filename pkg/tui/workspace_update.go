package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/utils"
)

func (m *WorkspaceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case uploadTickMsg:
		return m, m.handleUploadTick(msg)

	case analysisDoneMsg:
		return m, m.handleAnalysisDone(msg)

	case generationDoneMsg:
		return m, m.handleGenerationDone(msg)

	case validationDoneMsg:
		return m, m.handleValidationDone(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	cmds = append(cmds, cmd)

	if m.mode == modeFilePicking {
		m.picker, cmd = m.picker.Update(msg)
		cmds = append(cmds, cmd)
		if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
			cmds = append(cmds, m.attachSelectedFile(path))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m *WorkspaceModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlay inputs own the keyboard while active.
	switch m.mode {
	case modeCommandBar, modeLinkPrompt, modePhaseName, modePhaseDescription:
		return m.handleInputKey(msg)
	case modeFilePicking:
		return m.handlePickerKey(msg)
	}

	if m.focus == paneEditor {
		return m.handleEditorKey(msg)
	}
	return m.handleBrowseKey(msg)
}

// handleEditorKey routes keys while the editor pane has focus. Everything not
// claimed below is typing and goes to the textarea.
func (m *WorkspaceModel) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editor.Blur()
		m.buf.ClearHighlight()
		m.focus = paneAssistant
		return m, nil

	case "ctrl+s":
		return m, m.saveDocument()

	case "ctrl+l":
		m.syncBufferFromEditor()
		m.mode = modeLinkPrompt
		m.input.Placeholder = "https://…"
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		m.syncBufferFromEditor()
		m.dirty = true
		return m, cmd
	}
}

// handleBrowseKey routes keys while the library or assistant pane has focus.
func (m *WorkspaceModel) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.focus == paneLibrary {
			m.focus = paneAssistant
		} else {
			m.focus = paneLibrary
		}
		return m, nil

	case "e", "enter":
		if m.focus == paneAssistant && m.tab != tabWorkflow {
			break
		}
		fallthrough
	case "ctrl+e":
		m.focus = paneEditor
		return m, m.editor.Focus()

	case "ctrl+s":
		return m, m.saveDocument()

	case "1":
		m.tab = tabWorkflow
		return m, nil
	case "2":
		m.tab = tabChat
		m.refreshChatView()
		return m, nil
	case "3":
		m.tab = tabReview
		return m, nil
	}

	if m.focus == paneAssistant {
		switch m.tab {
		case tabWorkflow:
			return m.handleWorkflowKey(msg)
		case tabChat:
			return m.handleChatKey(msg)
		case tabReview:
			return m.handleReviewKey(msg)
		}
	}
	if m.focus == paneLibrary {
		return m.handleLibraryKey(msg)
	}
	return m, nil
}

func (m *WorkspaceModel) handleWorkflowKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		if m.activeCategory > 0 {
			m.activeCategory--
			m.selectedAction = 0
		}
	case "right", "l":
		if m.activeCategory < len(m.store.Categories())-1 {
			m.activeCategory++
			m.selectedAction = 0
		}
	case "up", "k":
		if m.selectedAction > 0 {
			m.selectedAction--
		}
	case "down", "j":
		if m.selectedAction < len(m.currentActions())-1 {
			m.selectedAction++
		}
	case "[":
		return m, m.switchStageTab(-1)
	case "]":
		return m, m.switchStageTab(1)
	case "a":
		return m.startFilePicking()
	case "g":
		return m, m.startGeneration()
	case "v":
		return m, m.startValidation()
	case "x":
		return m, m.dismissAction()
	case "i":
		return m, m.insertDraft()
	case "y":
		return m, m.copyDraft()
	case "n":
		m.mode = modeCommandBar
		m.input.Placeholder = "Describe the work to queue…"
		m.input.SetValue("")
		m.input.Focus()
	case "p":
		m.mode = modePhaseName
		m.input.Placeholder = "New phase name"
		m.input.SetValue("")
		m.input.Focus()
	}
	return m, nil
}

func (m *WorkspaceModel) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "n":
		m.mode = modeCommandBar
		m.input.Placeholder = "Describe the work to queue…"
		m.input.SetValue("")
		m.input.Focus()
		return m, nil
	}
	var cmd tea.Cmd
	m.chatView, cmd = m.chatView.Update(msg)
	return m, cmd
}

func (m *WorkspaceModel) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.reviewOnIssues = !m.reviewOnIssues
		return m, nil
	case "up", "k":
		if m.reviewOnIssues && m.selectedIssue > 0 {
			m.selectedIssue--
			m.selectedFix = 0
		} else if !m.reviewOnIssues && m.selectedRec > 0 {
			m.selectedRec--
		}
		return m, nil
	case "down", "j":
		if m.reviewOnIssues && m.selectedIssue < len(m.store.Issues())-1 {
			m.selectedIssue++
			m.selectedFix = 0
		} else if !m.reviewOnIssues && m.selectedRec < len(m.store.Recommendations())-1 {
			m.selectedRec++
		}
		return m, nil
	}

	if m.reviewOnIssues {
		switch msg.String() {
		case "o":
			if issue := m.currentIssue(); issue != nil && len(issue.FixOptions) > 0 {
				m.selectedFix = (m.selectedFix + 1) % len(issue.FixOptions)
			}
		case "H":
			return m, m.highlightIssue()
		case "f":
			return m, m.applyIssueFix()
		}
		return m, nil
	}

	switch msg.String() {
	case "a", "enter":
		return m, m.actOnRecommendation()
	case "x":
		return m, m.closeRecommendation()
	}
	return m, nil
}

func (m *WorkspaceModel) handleLibraryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "a":
		return m.startFilePicking()
	case "up", "k":
		if m.selectedAction > 0 {
			m.selectedAction--
		}
	case "down", "j":
		if m.selectedAction < len(m.currentActions())-1 {
			m.selectedAction++
		}
	}
	return m, nil
}

// handleInputKey drives the shared overlay text input: command bar, link
// prompt, and the two-step phase form.
func (m *WorkspaceModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeInput()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.input.Value())
		switch m.mode {
		case modeCommandBar:
			m.closeInput()
			// Blank submissions are silently rejected.
			if value == "" {
				return m, nil
			}
			return m, m.submitCommandBar(value)

		case modeLinkPrompt:
			m.closeInput()
			m.focus = paneEditor
			cmd := m.editor.Focus()
			if !m.buf.InsertLink("", value) {
				return m, tea.Batch(cmd, statusCmd("Link needs a non-empty URL"))
			}
			m.syncEditorFromBuffer()
			return m, cmd

		case modePhaseName:
			if value == "" {
				return m, nil
			}
			m.pendingPhaseName = value
			m.mode = modePhaseDescription
			m.input.Placeholder = "Phase description (optional)"
			m.input.SetValue("")
			return m, nil

		case modePhaseDescription:
			name := m.pendingPhaseName
			m.closeInput()
			c := m.store.AddCategory(name, value, "")
			m.activeCategory = len(m.store.Categories()) - 1
			m.selectedAction = 0
			return m, statusCmd(fmt.Sprintf("Added phase %q", c.Name))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *WorkspaceModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.mode = modeNormal
		return m, nil
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if didSelect, path := m.picker.DidSelectFile(msg); didSelect {
		return m, tea.Batch(cmd, m.attachSelectedFile(path))
	}
	return m, cmd
}

func (m *WorkspaceModel) closeInput() {
	m.mode = modeNormal
	m.pendingPhaseName = ""
	m.input.Blur()
	m.input.SetValue("")
}

func (m *WorkspaceModel) startFilePicking() (tea.Model, tea.Cmd) {
	if m.currentAction() == nil {
		return m, statusCmd("No action selected — queue one first (n)")
	}
	wd, err := os.Getwd()
	if err == nil {
		m.picker.CurrentDirectory = wd
	}
	m.mode = modeFilePicking
	return m, m.picker.Init()
}

// handleUploadTick advances the simulated upload and schedules the next tick
// until every source is ready, then kicks off the sufficiency analysis.
func (m *WorkspaceModel) handleUploadTick(msg uploadTickMsg) tea.Cmd {
	done, err := m.store.AdvanceUploads(msg.actionID, msg.opID, 20)
	if err != nil {
		// A superseded or dismissed operation just stops ticking.
		return nil
	}
	delay := millis(m.settings.Simulation.UploadTickMs)
	if !done {
		return uploadTick(delay, msg.actionID, msg.opID)
	}

	m.appendChat(chatAssistant, "Sources are ready. Checking whether they're sufficient…")
	opID, err := m.store.StartAnalysis(msg.actionID)
	if err != nil {
		return statusCmd(err.Error())
	}
	return analysisTimer(millis(m.settings.Simulation.AnalysisDelayMs), msg.actionID, opID)
}

func (m *WorkspaceModel) handleAnalysisDone(msg analysisDoneMsg) tea.Cmd {
	if err := m.store.FinishAnalysis(msg.actionID, msg.opID); err != nil {
		return nil
	}
	a, err := m.store.Action(msg.actionID)
	if err != nil || a.SourceAnalysis == nil {
		return nil
	}

	switch a.SourceAnalysis.Status {
	case models.AnalysisSufficient:
		m.appendChat(chatAssistant, fmt.Sprintf(
			"Sources look sufficient (%s confidence). Press g to generate the draft.",
			utils.FormatConfidence(a.SourceAnalysis.Confidence)))
	case models.AnalysisIrrelevant:
		m.appendChat(chatAssistant,
			"The attached material doesn't address this action. "+strings.Join(a.SourceAnalysis.Recommendations, " "))
	default:
		m.appendChat(chatAssistant,
			"The sources leave gaps: "+strings.Join(a.SourceAnalysis.Gaps, "; ")+
				". You can attach more (a) or continue anyway (g).")
	}
	return nil
}

func (m *WorkspaceModel) handleGenerationDone(msg generationDoneMsg) tea.Cmd {
	if err := m.store.FinishGeneration(msg.actionID, msg.opID); err != nil {
		return nil
	}
	a, err := m.store.Action(msg.actionID)
	if err != nil || a.GeneratedContent == nil {
		return nil
	}
	m.appendChat(chatAssistant, fmt.Sprintf(
		"Draft ready: %d words at %s confidence. Insert it with i, or validate with v.",
		a.GeneratedContent.WordCount, utils.FormatConfidence(a.GeneratedContent.Confidence)))
	return nil
}

func (m *WorkspaceModel) handleValidationDone(msg validationDoneMsg) tea.Cmd {
	if err := m.store.FinishValidation(msg.actionID, msg.opID); err != nil {
		return nil
	}
	a, err := m.store.Action(msg.actionID)
	if err != nil {
		return nil
	}
	var parts []string
	for _, r := range a.ValidationResults {
		parts = append(parts, fmt.Sprintf("%s: %s", r.Type, r.Status))
	}
	m.appendChat(chatAssistant, "Validation finished — "+strings.Join(parts, ", ")+".")
	return statusCmd(fmt.Sprintf("%q completed", a.Title))
}

func millis(ms int) time.Duration {
	if ms <= 0 {
		ms = 1
	}
	return time.Duration(ms) * time.Millisecond
}
