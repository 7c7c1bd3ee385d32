// Package components provides small terminal UI pieces used by the preview
// command.
package components

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/j-veylop/waka-box/internal/ui/styles"
)

// taskDoneMsg carries the result of the task a TaskSpinner waits on.
type taskDoneMsg struct {
	err error
}

// TaskSpinner is a tea.Model that animates a labelled spinner until its task
// returns, then quits.
type TaskSpinner struct {
	spinner spinner.Model
	label   string
	style   lipgloss.Style
	task    func() error
	done    bool
	err     error
}

// NewTaskSpinner creates a spinner that runs task when the program starts.
func NewTaskSpinner(label string, task func() error) TaskSpinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Primary)

	return TaskSpinner{
		spinner: s,
		label:   label,
		style:   styles.HelpStyle,
		task:    task,
	}
}

// Init starts the spinner and the task together.
func (m TaskSpinner) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runTask)
}

func (m TaskSpinner) runTask() tea.Msg {
	return taskDoneMsg{err: m.task()}
}

// Update advances the spinner and quits once the task is done.
func (m TaskSpinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(taskDoneMsg); ok {
		m.done = true
		m.err = done.err
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View renders the spinner and label, and nothing once the task is done so
// the final frame is cleared.
func (m TaskSpinner) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.style.Render(m.label) + "\n"
}

// Label returns the spinner's label.
func (m TaskSpinner) Label() string {
	return m.label
}

// Done reports whether the task has returned.
func (m TaskSpinner) Done() bool {
	return m.done
}

// Err returns the task's error once it is done.
func (m TaskSpinner) Err() error {
	return m.err
}

// RunWithSpinner runs task while a spinner is drawn on out. It returns the
// task's error, or the program's error if the spinner could not run or ctx
// was cancelled first. Keyboard input is not read.
func RunWithSpinner(ctx context.Context, out io.Writer, label string, task func() error) error {
	p := tea.NewProgram(
		NewTaskSpinner(label, task),
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithInput(nil),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(TaskSpinner); ok {
		return m.Err()
	}
	return nil
}
