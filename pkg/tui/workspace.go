package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillforge/sidekick/pkg/document"
	"github.com/quillforge/sidekick/pkg/models"
	"github.com/quillforge/sidekick/pkg/workflow"
)

type focusPane int

const (
	paneLibrary focusPane = iota
	paneEditor
	paneAssistant
)

type assistantTab int

const (
	tabWorkflow assistantTab = iota
	tabChat
	tabReview
)

// inputMode tracks which overlay input, if any, owns the keyboard.
type inputMode int

const (
	modeNormal inputMode = iota
	modeCommandBar
	modeLinkPrompt
	modePhaseName
	modePhaseDescription
	modeFilePicking
)

type chatRole int

const (
	chatUser chatRole = iota
	chatAssistant
)

type chatEntry struct {
	role chatRole
	text string
	at   time.Time
}

// WorkspaceModel is the single workspace view: library sidebar, editor pane,
// and assistant panel. It owns the document buffer and the workflow store on
// behalf of the whole UI.
type WorkspaceModel struct {
	store    *workflow.Store
	buf      *document.Buffer
	settings *models.Settings

	focus focusPane
	tab   assistantTab
	mode  inputMode

	editor   textarea.Model
	chatView viewport.Model
	input    textinput.Model
	picker   filepicker.Model
	spin     spinner.Model

	chat []chatEntry

	activeCategory int
	selectedAction int
	selectedRec    int
	selectedIssue  int
	selectedFix    int
	reviewOnIssues bool

	pendingPhaseName string

	dirty  bool
	width  int
	height int
}

// NewWorkspaceModel builds the workspace around a populated store, the
// working document text, and loaded settings.
func NewWorkspaceModel(store *workflow.Store, documentText string, settings *models.Settings) *WorkspaceModel {
	ta := textarea.New()
	ta.ShowLineNumbers = settings.Editor.ShowLineNumbers
	ta.Prompt = "  "
	ta.CharLimit = 0
	ta.SetValue(documentText)

	ti := textinput.New()
	ti.CharLimit = 200

	fp := filepicker.New()
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.AllowedTypes = []string{}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	buf := document.NewBuffer(documentText)

	m := &WorkspaceModel{
		store:    store,
		buf:      buf,
		settings: settings,
		focus:    paneAssistant,
		tab:      tabWorkflow,
		editor:   ta,
		chatView: viewport.New(40, 10),
		input:    ti,
		picker:   fp,
		spin:     sp,
	}
	buf.OnChange(func(string) { m.dirty = true })

	m.appendChat(chatAssistant,
		"Welcome back. I queued the next actions for this memo — pick one in the "+
			"workflow tab, or describe new work in the command bar (n).")
	return m
}

func (m *WorkspaceModel) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spin.Tick)
}

// SetSize distributes the window between the three panes.
func (m *WorkspaceModel) SetSize(width, height int) {
	m.width = width
	m.height = height

	editorWidth := width
	if m.settings.UI.ShowLibrary {
		editorWidth -= m.settings.UI.SidebarWidth
	}
	if m.settings.UI.ShowAssistant {
		editorWidth -= m.settings.UI.AssistantWidth
	}
	if editorWidth < 20 {
		editorWidth = 20
	}

	contentHeight := height - 4 // borders and help line
	if contentHeight < 5 {
		contentHeight = 5
	}

	m.editor.SetWidth(editorWidth - 2)
	m.editor.SetHeight(contentHeight)
	m.chatView.Width = m.settings.UI.AssistantWidth - 4
	m.chatView.Height = contentHeight - 2
	m.refreshChatView()
}

// activeCategoryID returns the phase the command bar and workflow tab operate
// on.
func (m *WorkspaceModel) activeCategoryID() string {
	cats := m.store.Categories()
	if len(cats) == 0 {
		return ""
	}
	if m.activeCategory >= len(cats) {
		m.activeCategory = len(cats) - 1
	}
	return cats[m.activeCategory].ID
}

// currentActions returns the actions of the active phase.
func (m *WorkspaceModel) currentActions() []*models.Action {
	return m.store.ActionsInCategory(m.activeCategoryID())
}

// currentAction returns the selected action in the active phase, or nil.
func (m *WorkspaceModel) currentAction() *models.Action {
	actions := m.currentActions()
	if len(actions) == 0 {
		return nil
	}
	if m.selectedAction >= len(actions) {
		m.selectedAction = len(actions) - 1
	}
	return actions[m.selectedAction]
}

// currentRecommendation returns the selected recommendation, or nil.
func (m *WorkspaceModel) currentRecommendation() *models.Recommendation {
	recs := m.store.Recommendations()
	if len(recs) == 0 {
		return nil
	}
	if m.selectedRec >= len(recs) {
		m.selectedRec = len(recs) - 1
	}
	return recs[m.selectedRec]
}

// currentIssue returns the selected open issue, or nil.
func (m *WorkspaceModel) currentIssue() *models.Issue {
	issues := m.store.Issues()
	if len(issues) == 0 {
		return nil
	}
	if m.selectedIssue >= len(issues) {
		m.selectedIssue = len(issues) - 1
	}
	return issues[m.selectedIssue]
}

func (m *WorkspaceModel) appendChat(role chatRole, text string) {
	m.chat = append(m.chat, chatEntry{role: role, text: text, at: time.Now()})
	m.refreshChatView()
}

// syncBufferFromEditor mirrors user typing into the logical buffer before any
// programmatic operation computes offsets against it. Ranges are only ever
// derived from the synced content, which keeps them from going stale.
func (m *WorkspaceModel) syncBufferFromEditor() {
	m.buf.SetText(m.editor.Value())
}

// syncEditorFromBuffer pushes a programmatic mutation back into the visible
// widget and parks the cursor at the buffer caret.
func (m *WorkspaceModel) syncEditorFromBuffer() {
	m.editor.SetValue(m.buf.Text())
	m.moveEditorCursorTo(m.buf.Caret())
}

// moveEditorCursorTo places the textarea cursor at a character offset.
func (m *WorkspaceModel) moveEditorCursorTo(offset int) {
	text := m.buf.Text()
	if offset > len(text) {
		offset = len(text)
	}
	row, col := 0, 0
	for i := 0; i < offset; i++ {
		if text[i] == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}
	for m.editor.Line() > 0 {
		m.editor.CursorUp()
	}
	m.editor.CursorStart()
	for i := 0; i < row; i++ {
		m.editor.CursorDown()
	}
	m.editor.SetCursor(col)
}
