package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/utils"
)

func (m *WorkspaceModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.mode == modeFilePicking {
		return lipgloss.JoinVertical(lipgloss.Top,
			paneTitleStyle.Render("ATTACH SOURCE"),
			m.picker.View(),
			helpStyle.Render("enter select · esc cancel"),
		)
	}

	contentHeight := m.height - 2
	if contentHeight < 5 {
		contentHeight = 5
	}

	var panes []string
	if m.settings.UI.ShowLibrary {
		panes = append(panes, m.renderLibrary(contentHeight))
	}
	panes = append(panes, m.renderEditor(contentHeight))
	if m.settings.UI.ShowAssistant {
		panes = append(panes, m.renderAssistant(contentHeight))
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, panes...)
	return lipgloss.JoinVertical(lipgloss.Top, row, m.renderBottomLine())
}

func (m *WorkspaceModel) paneStyle(pane focusPane) lipgloss.Style {
	if m.focus == pane {
		return activePaneStyle
	}
	return inactivePaneStyle
}

func (m *WorkspaceModel) renderLibrary(height int) string {
	width := m.settings.UI.SidebarWidth - 2
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("LIBRARY") + "\n")

	a := m.currentAction()
	if a == nil {
		b.WriteString(dimStyle.Render("No action selected"))
	} else {
		b.WriteString(utils.Truncate(a.Title, width) + "\n\n")
		if len(a.Sources) == 0 {
			b.WriteString(dimStyle.Render("No sources attached\nPress a to add one"))
		}
		for _, src := range a.Sources {
			b.WriteString(m.renderSource(src, width) + "\n")
		}
	}

	return m.paneStyle(paneLibrary).
		Width(m.settings.UI.SidebarWidth - 2).
		Height(height).
		Render(b.String())
}

func (m *WorkspaceModel) renderSource(src models.Source, width int) string {
	marker := "·"
	switch src.Status {
	case models.SourceUploading:
		marker = m.spin.View()
	case models.SourceReady:
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("✓")
	case models.SourceError:
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("✗")
	}

	line := fmt.Sprintf("%s %s", marker, utils.Truncate(src.Name, width-8))
	meta := dimStyle.Render("  " + utils.FormatByteSize(src.Size))
	if src.Status == models.SourceUploading {
		meta = "  " + progressBar(width-4, float64(src.UploadProgress)/100)
	}
	return line + "\n" + meta
}

func (m *WorkspaceModel) renderEditor(height int) string {
	title := paneTitleStyle.Render("MEMO")
	if m.dirty {
		title += dimStyle.Render(" *")
	}
	return m.paneStyle(paneEditor).
		Height(height).
		Render(title + "\n" + m.editor.View())
}

func (m *WorkspaceModel) renderAssistant(height int) string {
	width := m.settings.UI.AssistantWidth - 4

	header := paneTitleStyle.Render("ASSISTANT") +
		dimStyle.Render(fmt.Sprintf("  score %d/100", m.store.Score()))
	tabs := m.renderTabs()

	var content string
	switch m.tab {
	case tabWorkflow:
		content = m.renderWorkflowTab(width)
	case tabChat:
		content = m.chatView.View()
	case tabReview:
		content = m.renderReviewTab(width)
	}

	return m.paneStyle(paneAssistant).
		Width(m.settings.UI.AssistantWidth - 2).
		Height(height).
		Render(header + "\n" + tabs + "\n\n" + content)
}

func (m *WorkspaceModel) renderTabs() string {
	names := []string{"1 Workflow", "2 Chat", "3 Review"}
	var parts []string
	for i, name := range names {
		if assistantTab(i) == m.tab {
			parts = append(parts, selectedStyle.Render(name))
		} else {
			parts = append(parts, dimStyle.Render(name))
		}
	}
	return strings.Join(parts, dimStyle.Render(" │ "))
}

func (m *WorkspaceModel) renderWorkflowTab(width int) string {
	var b strings.Builder

	cats := m.store.Categories()
	if len(cats) == 0 {
		return dimStyle.Render("No phases yet — press p to add one")
	}
	cat := cats[m.activeCategory]
	progress := m.store.CategoryProgress(cat.ID)
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		dimStyle.Render("◀"),
		lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Bold(true).Render(cat.Name),
		dimStyle.Render("▶")))
	b.WriteString(progressBar(width-8, progress) + " " + utils.FormatProgress(progress) + "\n\n")

	actions := m.currentActions()
	if len(actions) == 0 {
		b.WriteString(dimStyle.Render("No actions in this phase — press n\n"))
	}
	for i, a := range actions {
		marker := "  "
		if i == m.selectedAction {
			marker = selectedStyle.Render("▸ ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, priorityBadge(a.Priority), utils.Truncate(a.Title, width-6)))
		b.WriteString("    " + m.renderStageBadges(a) + "\n")
	}

	if a := m.currentAction(); a != nil {
		b.WriteString("\n" + m.renderStageDetail(a, width))
	}
	return b.String()
}

func (m *WorkspaceModel) renderStageBadges(a *models.Action) string {
	var parts []string
	for _, s := range models.Stages {
		label := string(s)
		if s == a.CurrentStage {
			label = selectedStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		parts = append(parts, stageGlyph(a.StageStatusOf(s))+" "+label)
	}
	return strings.Join(parts, "  ")
}

// renderStageDetail shows the selected action's current stage tab.
func (m *WorkspaceModel) renderStageDetail(a *models.Action, width int) string {
	var b strings.Builder
	b.WriteString(dimStyle.Render(strings.Repeat("─", width)) + "\n")
	b.WriteString(utils.Truncate(a.Description, width) + "\n")
	if a.AIReasoning != nil {
		b.WriteString(dimStyle.Render(wordwrap.String("why: "+a.AIReasoning.Reasoning, width)) + "\n")
	}
	b.WriteString("\n")

	switch a.CurrentStage {
	case models.StageSources:
		b.WriteString(fmt.Sprintf("%d source(s) attached · est %s\n", len(a.Sources), a.EstimatedDuration))
		if sa := a.SourceAnalysis; sa != nil {
			b.WriteString("analysis: " + string(sa.Status))
			if sa.Status != models.AnalysisRunning {
				b.WriteString(" (" + utils.FormatConfidence(sa.Confidence) + ")")
			}
			b.WriteString("\n")
			for _, gap := range sa.Gaps {
				b.WriteString(dimStyle.Render(wordwrap.String("gap: "+gap, width)) + "\n")
			}
		}
		if a.NeedsUserSources {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render("Needs more sources from you") + "\n")
		}

	case models.StageGeneration:
		if a.GeneratedContent == nil {
			b.WriteString(dimStyle.Render("Nothing generated yet\n"))
		} else {
			gc := a.GeneratedContent
			b.WriteString(fmt.Sprintf("%s · %d words · %s confidence\n",
				gc.Type, gc.WordCount, utils.FormatConfidence(gc.Confidence)))
			b.WriteString(wordwrap.String(utils.Truncate(gc.Content, width*4), width) + "\n")
		}

	case models.StageValidation:
		if len(a.ValidationResults) == 0 {
			if a.Completed() {
				b.WriteString(dimStyle.Render("Dismissed without validation\n"))
			} else {
				b.WriteString(dimStyle.Render("Not validated yet\n"))
			}
		}
		for _, r := range a.ValidationResults {
			style := lipgloss.NewStyle().Foreground(severityColors[r.Severity])
			b.WriteString(fmt.Sprintf("%s %s — %s\n", style.Render(string(r.Status)), r.Type,
				utils.Truncate(r.Message, width-20)))
		}
	}
	return b.String()
}

func (m *WorkspaceModel) renderReviewTab(width int) string {
	var b strings.Builder

	if m.reviewOnIssues {
		b.WriteString(selectedStyle.Render("Issues") + dimStyle.Render(" │ Recommendations (r)") + "\n\n")
		issues := m.store.Issues()
		if len(issues) == 0 {
			b.WriteString(dimStyle.Render("No open issues — nice work"))
		}
		for i, issue := range issues {
			marker := "  "
			if i == m.selectedIssue {
				marker = selectedStyle.Render("▸ ")
			}
			sev := lipgloss.NewStyle().Foreground(severityColors[issue.Severity]).Render(string(issue.Severity))
			b.WriteString(fmt.Sprintf("%s%s %s\n", marker, sev, utils.Truncate(issue.Title, width-10)))
			b.WriteString(dimStyle.Render(fmt.Sprintf("    %s · %q\n", issue.Section, utils.Truncate(issue.Excerpt, width-12))))
			if i == m.selectedIssue && len(issue.FixOptions) > 0 {
				fix := issue.FixOptions[m.selectedFix]
				b.WriteString(wordwrap.String(fmt.Sprintf("    fix %d/%d: %s",
					m.selectedFix+1, len(issue.FixOptions), fix), width) + "\n")
			}
		}
		return b.String()
	}

	b.WriteString(dimStyle.Render("Issues (r) │ ") + selectedStyle.Render("Recommendations") + "\n\n")
	recs := m.store.Recommendations()
	if len(recs) == 0 {
		b.WriteString(dimStyle.Render("No recommendations"))
	}
	for i, r := range recs {
		marker := "  "
		if i == m.selectedRec {
			marker = selectedStyle.Render("▸ ")
		}
		status := dimStyle.Render(string(r.Status))
		if r.Status == models.RecEvidenceAdded {
			status = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render(string(r.Status))
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, priorityBadge(r.Priority), utils.Truncate(r.Title, width-6)))
		b.WriteString("    " + status)
		if r.Context.Section != "" {
			b.WriteString(dimStyle.Render(" · " + r.Context.Section))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *WorkspaceModel) renderBottomLine() string {
	switch m.mode {
	case modeCommandBar:
		return paneTitleStyle.Render("new action ") + m.input.View()
	case modeLinkPrompt:
		return paneTitleStyle.Render("link url ") + m.input.View()
	case modePhaseName:
		return paneTitleStyle.Render("phase name ") + m.input.View()
	case modePhaseDescription:
		return paneTitleStyle.Render("phase description ") + m.input.View()
	}

	var help string
	switch {
	case m.focus == paneEditor:
		help = "esc back · ctrl+s save · ctrl+l link · ctrl+c quit"
	case m.focus == paneLibrary:
		help = "a attach · j/k select · tab panes · q quit"
	case m.tab == tabWorkflow:
		help = "←/→ phase · j/k action · [/] stage · a attach · g generate · v validate · i insert · x dismiss · n new · p phase"
	case m.tab == tabReview:
		help = "r toggle · j/k select · a act · x close · H highlight · o option · f fix"
	default:
		help = "n new action · j/k scroll · 1/2/3 tabs · q quit"
	}
	return helpStyle.Render(help)
}

// refreshChatView rebuilds the chat transcript in the viewport and scrolls
// to the latest message.
func (m *WorkspaceModel) refreshChatView() {
	width := m.chatView.Width
	if width <= 0 {
		width = 40
	}

	var b strings.Builder
	for _, entry := range m.chat {
		wrapped := wordwrap.String(entry.text, width-4)
		stamp := dimStyle.Render(entry.at.Format("15:04"))
		if entry.role == chatUser {
			b.WriteString(stamp + " you\n" + userBubbleStyle.Render(wrapped) + "\n\n")
		} else {
			b.WriteString(stamp + " sidekick\n" + assistantBubbleStyle.Render(wrapped) + "\n\n")
		}
	}
	m.chatView.SetContent(b.String())
	m.chatView.GotoBottom()
}
