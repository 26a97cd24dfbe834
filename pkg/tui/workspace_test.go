package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/seed"
	"github.com/quillforge/sidekick/pkg/workflow"
)

func newTestWorkspace() *WorkspaceModel {
	store := seed.NewStore(82, 4)
	m := NewWorkspaceModel(store, seed.Document(), models.DefaultSettings())
	m.SetSize(140, 40)
	return m
}

// runCmd executes a returned command synchronously and gives back the message.
func runCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

func TestNewWorkspaceModel(t *testing.T) {
	m := newTestWorkspace()

	if m.focus != paneAssistant {
		t.Errorf("initial focus = %v, want assistant pane", m.focus)
	}
	if m.tab != tabWorkflow {
		t.Errorf("initial tab = %v, want workflow", m.tab)
	}
	if len(m.chat) != 1 || m.chat[0].role != chatAssistant {
		t.Error("workspace should open with a single assistant greeting")
	}
	if m.buf.Text() != seed.Document() {
		t.Error("buffer should hold the seed document")
	}
}

func TestSubmitCommandBar(t *testing.T) {
	m := newTestWorkspace()
	before := len(m.currentActions())

	msg := runCmd(m.submitCommandBar("Check the escrow terms"))

	if len(m.currentActions()) != before+1 {
		t.Fatalf("expected a new action in the active phase")
	}
	created := m.currentActions()[len(m.currentActions())-1]
	if created.Title != "Check the escrow terms" {
		t.Errorf("action title = %q", created.Title)
	}
	if created.Category != m.activeCategoryID() {
		t.Errorf("action category = %q, want active phase %q", created.Category, m.activeCategoryID())
	}
	if m.selectedAction != len(m.currentActions())-1 {
		t.Error("new action should be selected")
	}
	if _, ok := msg.(StatusMsg); !ok {
		t.Errorf("expected a StatusMsg, got %T", msg)
	}

	// Both sides of the exchange land in the chat.
	var sawUser, sawAck bool
	for _, entry := range m.chat {
		if entry.role == chatUser && entry.text == "Check the escrow terms" {
			sawUser = true
		}
		if entry.role == chatAssistant && strings.Contains(entry.text, "Queued") {
			sawAck = true
		}
	}
	if !sawUser || !sawAck {
		t.Error("command bar submission should append user and assistant chat entries")
	}
}

func TestBlankCommandBarSubmissionIsNoOp(t *testing.T) {
	m := newTestWorkspace()
	before := len(m.store.Actions())

	m.mode = modeCommandBar
	m.input.SetValue("   ")
	model, _ := m.handleInputKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*WorkspaceModel)

	if len(m.store.Actions()) != before {
		t.Error("blank submission must not create an action")
	}
	if m.mode != modeNormal {
		t.Error("command bar should close")
	}
}

func TestInsertDraftTargetsSectionByContentType(t *testing.T) {
	m := newTestWorkspace()
	a := m.currentAction()
	a.GeneratedContent = &models.GeneratedContent{
		Content: "Meridian's filings show steady volumes.",
		Type:    models.ContentSummary,
	}

	runCmd(m.insertDraft())

	text := m.buf.Text()
	summaryEnd := strings.Index(text, "## Facts")
	if !strings.Contains(text[:summaryEnd], "Meridian's filings show steady volumes.") {
		t.Errorf("draft should land in the Summary section:\n%s", text)
	}
	if m.editor.Value() != text {
		t.Error("editor widget should mirror the buffer after insertion")
	}
}

func TestInsertDraftWithoutContent(t *testing.T) {
	m := newTestWorkspace()
	before := m.buf.Text()

	msg := runCmd(m.insertDraft())

	if m.buf.Text() != before {
		t.Error("nothing should be inserted when no draft exists")
	}
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "Nothing generated") {
		t.Errorf("expected a guidance status, got %v", msg)
	}
}

func TestApplyIssueFixThroughWorkspace(t *testing.T) {
	m := newTestWorkspace()
	m.reviewOnIssues = true
	m.selectedIssue = 0

	msg := runCmd(m.applyIssueFix())

	if strings.Contains(m.buf.Text(), "(placeholder)") {
		t.Error("fix should replace the anchored excerpt")
	}
	if m.store.Score() != 86 {
		t.Errorf("score = %d, want 86", m.store.Score())
	}
	if status, ok := msg.(StatusMsg); !ok || !strings.Contains(string(status), "86") {
		t.Errorf("status should report the new score, got %v", msg)
	}
	if m.editor.Value() != m.buf.Text() {
		t.Error("editor widget should mirror the buffer after the fix")
	}
}

func TestApplyIssueFixAnchorGone(t *testing.T) {
	m := newTestWorkspace()
	m.reviewOnIssues = true
	m.editor.SetValue(strings.ReplaceAll(m.editor.Value(), "(placeholder)", "rewritten"))
	before := m.editor.Value()

	msg := runCmd(m.applyIssueFix())

	status, ok := msg.(StatusMsg)
	if !ok || !strings.Contains(string(status), "Couldn't locate") {
		t.Errorf("expected the anchor-not-found message, got %v", msg)
	}
	if m.buf.Text() != before {
		t.Error("failed fix must not mutate the document")
	}
	if m.store.Score() != 82 {
		t.Errorf("score = %d, should be unchanged", m.store.Score())
	}
}

func TestHighlightIssueFocusesEditor(t *testing.T) {
	m := newTestWorkspace()
	m.reviewOnIssues = true
	before := m.buf.Text()

	runCmd(m.highlightIssue())

	if m.buf.Text() != before {
		t.Error("highlight must not mutate the document")
	}
	if m.focus != paneEditor {
		t.Error("highlight should move focus to the editor")
	}
	start, end, ok := m.buf.Selection()
	if !ok {
		t.Fatal("expected an active selection")
	}
	if m.buf.Text()[start:end] != "(placeholder)" {
		t.Errorf("selection = %q", m.buf.Text()[start:end])
	}
}

func TestSwitchStageTabIsInformational(t *testing.T) {
	m := newTestWorkspace()
	a := m.currentAction()

	m.switchStageTab(1)
	if a.CurrentStage != models.StageGeneration {
		t.Errorf("display cursor = %s, want generation", a.CurrentStage)
	}
	if a.StageStatusOf(models.StageSources) != models.StagePending {
		t.Error("stage tab switch must not change pipeline state")
	}

	m.switchStageTab(-1)
	if a.CurrentStage != models.StageSources {
		t.Errorf("display cursor = %s, want sources", a.CurrentStage)
	}
	// Already at the first stage: no wrap.
	m.switchStageTab(-1)
	if a.CurrentStage != models.StageSources {
		t.Error("stage cursor should not wrap below the first stage")
	}
}

func TestPhaseFormCreatesDynamicCategory(t *testing.T) {
	m := newTestWorkspace()
	before := len(m.store.Categories())

	m.mode = modePhaseName
	m.input.SetValue("Remedies")
	model, _ := m.handleInputKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*WorkspaceModel)
	if m.mode != modePhaseDescription {
		t.Fatal("phase form should advance to the description step")
	}

	m.input.SetValue("Available remedies and damages")
	model, _ = m.handleInputKey(tea.KeyMsg{Type: tea.KeyEnter})
	m = model.(*WorkspaceModel)

	cats := m.store.Categories()
	if len(cats) != before+1 {
		t.Fatalf("expected a new phase")
	}
	created := cats[len(cats)-1]
	if created.Name != "Remedies" || !created.Dynamic {
		t.Errorf("unexpected phase: %+v", created)
	}
	if m.activeCategory != len(cats)-1 {
		t.Error("new phase should become active")
	}
}

func TestMoveEditorCursor(t *testing.T) {
	m := newTestWorkspace()
	offset := strings.Index(m.buf.Text(), "(placeholder)")

	m.moveEditorCursorTo(offset)

	wantRow := strings.Count(m.buf.Text()[:offset], "\n")
	if m.editor.Line() != wantRow {
		t.Errorf("editor line = %d, want %d", m.editor.Line(), wantRow)
	}
}

func TestViewRendersAllPanes(t *testing.T) {
	m := newTestWorkspace()

	view := m.View()
	for _, want := range []string{"LIBRARY", "MEMO", "ASSISTANT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing pane title %q", want)
		}
	}
	if !strings.Contains(view, "score 82/100") {
		t.Error("assistant header should show the validation score")
	}
}

func TestUploadTickDrivesPipeline(t *testing.T) {
	m := newTestWorkspace()
	a := m.currentAction()
	opID, err := m.store.AttachSources(a.ID, []workflow.SourceFile{{Name: "lease.pdf", Size: 2048}})
	if err != nil {
		t.Fatalf("AttachSources failed: %v", err)
	}

	// Five 20% ticks complete the upload; the handler then starts the
	// sufficiency analysis and schedules its timer.
	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		cmd = m.handleUploadTick(uploadTickMsg{actionID: a.ID, opID: opID})
	}

	src := a.Sources[len(a.Sources)-1]
	if src.Status != models.SourceReady || src.UploadProgress != 100 {
		t.Errorf("source after ticks: %+v", src)
	}
	if a.SourceAnalysis == nil || a.SourceAnalysis.Status != models.AnalysisRunning {
		t.Errorf("analysis should be running, got %+v", a.SourceAnalysis)
	}
	if cmd == nil {
		t.Error("expected an analysis timer command")
	}

	// A tick from a superseded operation stops silently.
	if cmd := m.handleUploadTick(uploadTickMsg{actionID: a.ID, opID: opID}); cmd != nil {
		t.Error("stale tick should not reschedule")
	}
}
