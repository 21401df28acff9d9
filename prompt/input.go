package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// inputModel asks for one line of text and won't finish until validate accepts it
type inputModel struct {
	message  string
	input    textinput.Model
	validate func(string) error

	err     error
	done    bool
	aborted bool
}

func newInputModel(message string, validate func(string) error, width int) inputModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64
	input.Width = max(10, width-4)
	input.Focus()

	if validate == nil {
		validate = func(string) error { return nil }
	}

	return inputModel{
		message:  message,
		input:    input,
		validate: validate,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, AbortKey):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, SelectKey):
			if err := m.validate(m.Value()); err != nil {
				m.err = err
				return m, nil
			}

			m.err = nil
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return answered(m.message, m.Value())
	}
	if m.aborted {
		return ""
	}

	lines := []string{TitleStyle.Render(m.message), m.input.View()}
	if m.err != nil {
		lines = append(lines, ErrorStyle.Render(m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}
