package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/egrn/pkg/egrn"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 80
)

// progressMsg carries one finished archive into the model.
type progressMsg egrn.Progress

// finishMsg tells the model the batch is over.
type finishMsg struct{}

// ProgressModel renders a batch as a progress bar with the last outcome.
type ProgressModel struct {
	title    string
	total    int
	done     int
	last     egrn.FileOutcome
	counts   map[egrn.OutcomeKind]int
	bar      progress.Model
	spinner  spinner.Model
	keys     KeyMap
	onCancel func()
	stopping bool
	finished bool
}

// NewProgressModel creates a model for a batch of total archives. onCancel,
// when non-nil, is called once if the user asks to stop.
func NewProgressModel(title string, total int, onCancel func()) ProgressModel {
	return ProgressModel{
		title:    title,
		total:    total,
		counts:   make(map[egrn.OutcomeKind]int),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(SpinnerStyle)),
		keys:     DefaultKeyMap(),
		onCancel: onCancel,
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done = msg.Index
		if msg.Total > 0 {
			m.total = msg.Total
		}
		m.last = msg.Outcome
		m.counts[msg.Outcome.Kind]++
		return m, nil

	case finishMsg:
		m.finished = true
		return m, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && !m.stopping {
			m.stopping = true
			if m.onCancel != nil {
				m.onCancel()
			}
		}
		return m, nil

	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > maxBarWidth {
			w = maxBarWidth
		}
		if w > 10 {
			m.bar.Width = w
		}
		return m, nil

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Percent returns the completed fraction in [0, 1].
func (m ProgressModel) Percent() float64 {
	if m.total <= 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	var b strings.Builder

	head := m.spinner.View() + " " + TitleStyle.Render(m.title)
	if m.finished {
		head = SuccessStyle.Render(SymbolCheck) + " " + TitleStyle.Render(m.title)
	}
	b.WriteString(head + "\n")
	b.WriteString(m.bar.ViewAs(m.Percent()))
	b.WriteString(fmt.Sprintf(" %d/%d\n", m.done, m.total))

	if m.done > 0 {
		b.WriteString(MutedStyle.Render(fmt.Sprintf("%s %d  %s %d  %s %d",
			SuccessStyle.Render(SymbolCheck), m.counts[egrn.OutcomeSucceeded],
			WarningStyle.Render(SymbolSkip), m.counts[egrn.OutcomeNoIdentifier]+m.counts[egrn.OutcomeNoXML],
			ErrorStyle.Render(SymbolCross), m.counts[egrn.OutcomeErrored])))
		b.WriteString("  " + MutedStyle.Render(lastLine(m.last)) + "\n")
	}

	switch {
	case m.stopping && !m.finished:
		b.WriteString(WarningStyle.Render("stopping after current archive...") + "\n")
	case !m.finished:
		b.WriteString(HelpStyle.Render(m.keys.HelpText()) + "\n")
	}
	return b.String()
}

func lastLine(o egrn.FileOutcome) string {
	name := filepath.Base(o.Source)
	if o.Kind == egrn.OutcomeSucceeded {
		return name + " " + SymbolArrowRight + " " + o.Identifier
	}
	return name + ": " + o.Kind.String()
}

// ProgressBar drives a ProgressModel on its own goroutine.
type ProgressBar struct {
	program *tea.Program
	done    chan struct{}
	err     error
}

// StartProgress starts drawing a progress bar on out.
func StartProgress(out io.Writer, title string, total int, onCancel func()) *ProgressBar {
	pb := &ProgressBar{done: make(chan struct{})}
	pb.program = tea.NewProgram(NewProgressModel(title, total, onCancel), tea.WithOutput(out))
	go func() {
		defer close(pb.done)
		_, pb.err = pb.program.Run()
	}()
	return pb
}

// Update reports a finished archive. Suitable as an archive progress hook.
func (pb *ProgressBar) Update(p egrn.Progress) {
	pb.program.Send(progressMsg(p))
}

// Finish renders the final frame and waits for the program to exit.
func (pb *ProgressBar) Finish() error {
	pb.program.Send(finishMsg{})
	<-pb.done
	return pb.err
}
