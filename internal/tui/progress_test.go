package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/egrn/pkg/egrn"
)

func update(t *testing.T, m ProgressModel, msg tea.Msg) (ProgressModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(ProgressModel)
	require.True(t, ok)
	return pm, cmd
}

func TestProgressModel_TracksOutcomes(t *testing.T) {
	m := NewProgressModel("Unpacking", 4, nil)
	assert.Equal(t, 0.0, m.Percent())

	m, _ = update(t, m, progressMsg{Index: 1, Total: 4, Outcome: egrn.FileOutcome{
		Source: "/in/a.zip", Kind: egrn.OutcomeSucceeded, Identifier: "77_01_1",
	}})
	m, _ = update(t, m, progressMsg{Index: 2, Total: 4, Outcome: egrn.FileOutcome{
		Source: "/in/b.zip", Kind: egrn.OutcomeNoXML,
	}})

	assert.Equal(t, 0.5, m.Percent())
	view := m.View()
	assert.Contains(t, view, "Unpacking")
	assert.Contains(t, view, "2/4")
	assert.Contains(t, view, "b.zip: no-xml")
}

func TestProgressModel_FinishQuits(t *testing.T) {
	m := NewProgressModel("Unpacking", 1, nil)
	m, cmd := update(t, m, finishMsg{})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.NotContains(t, m.View(), "stop after current archive")
}

func TestProgressModel_QuitKeyCancelsOnce(t *testing.T) {
	calls := 0
	m := NewProgressModel("Unpacking", 3, func() { calls++ })

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	assert.Equal(t, 1, calls)
	assert.Contains(t, m.View(), "stopping after current archive")
}

func TestProgressModel_WindowResizeClampsBar(t *testing.T) {
	m := NewProgressModel("Unpacking", 1, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, m.bar.Width)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 8, Height: 40})
	assert.Equal(t, maxBarWidth, m.bar.Width)
}

func TestLastLine(t *testing.T) {
	assert.Equal(t, "a.zip → 1", lastLine(egrn.FileOutcome{Source: "x/a.zip", Kind: egrn.OutcomeSucceeded, Identifier: "1"}))
	assert.Equal(t, "b.zip: error", lastLine(egrn.FileOutcome{Source: "b.zip", Kind: egrn.OutcomeErrored}))
}
