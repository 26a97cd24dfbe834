package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages driving the simulated asynchronous work. Each carries the
// operation ID stamped when the work began; the store drops completions whose
// operation has been superseded, so a stray timer can never corrupt an
// action.

type uploadTickMsg struct {
	actionID string
	opID     string
}

type analysisDoneMsg struct {
	actionID string
	opID     string
}

type generationDoneMsg struct {
	actionID string
	opID     string
}

type validationDoneMsg struct {
	actionID string
	opID     string
}

type clearStatusMsg struct{}

func uploadTick(delay time.Duration, actionID, opID string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return uploadTickMsg{actionID: actionID, opID: opID}
	})
}

func analysisTimer(delay time.Duration, actionID, opID string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return analysisDoneMsg{actionID: actionID, opID: opID}
	})
}

func generationTimer(delay time.Duration, actionID, opID string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return generationDoneMsg{actionID: actionID, opID: opID}
	})
}

func validationTimer(delay time.Duration, actionID, opID string) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return validationDoneMsg{actionID: actionID, opID: opID}
	})
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}
