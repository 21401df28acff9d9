package prompt

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type choiceModel struct {
	message string
	list    list.Model

	chosen  int
	done    bool
	aborted bool
}

func newChoiceModel(message string, choices []string, width int, height int) choiceModel {
	return choiceModel{
		message: message,
		list:    newChoiceList(message, choices, newSimpleListDelegate(nil), width, height),
		chosen:  -1,
	}
}

func (m choiceModel) Init() tea.Cmd {
	return nil
}

func (m choiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// keys belong to the filter input while it's open
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, min(msg.Height, m.list.Height()))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, AbortKey):
			// esc clears an applied filter before it aborts
			if msg.Type == tea.KeyEsc && m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}

			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, SelectKey):
			item, ok := m.list.SelectedItem().(choiceItem)
			if !ok {
				return m, nil
			}

			m.chosen = item.index
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m choiceModel) View() string {
	if m.done {
		item, _ := m.list.SelectedItem().(choiceItem)
		return answered(m.message, item.label)
	}
	if m.aborted {
		return ""
	}

	return m.list.View() + "\n" + HelpStyle.Render("enter: select • /: filter • esc: quit") + "\n"
}
