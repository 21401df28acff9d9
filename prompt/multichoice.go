package prompt

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

// selection is shared between the model and its delegate so both see the same marks
type selection struct {
	order []int
}

func (s *selection) has(index int) bool {
	return slices.Contains(s.order, index)
}

func (s *selection) toggle(index int) {
	if i := slices.Index(s.order, index); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
		return
	}

	s.order = append(s.order, index)
}

type multiChoiceModel struct {
	message string
	choices []string
	list    list.Model
	picked  *selection
	min     int
	max     int

	err     error
	done    bool
	aborted bool
}

func newMultiChoiceModel(message string, choices []string, min int, max int, width int, height int) multiChoiceModel {
	picked := &selection{}

	return multiChoiceModel{
		message: message,
		choices: choices,
		list:    newChoiceList(message, choices, newSimpleListDelegate(picked), width, height),
		picked:  picked,
		min:     min,
		max:     max,
	}
}

func (m multiChoiceModel) Init() tea.Cmd {
	return nil
}

// Picked returns indexes into the original choices in the order they were marked
func (m multiChoiceModel) Picked() []int {
	return slices.Clone(m.picked.order)
}

func (m multiChoiceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if msg.Type == tea.KeyEsc && m.list.FilterState() == list.FilterApplied {
				m.list.ResetFilter()
				return m, nil
			}

			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, ToggleKey):
			item, ok := m.list.SelectedItem().(choiceItem)
			if !ok {
				return m, nil
			}

			if !m.picked.has(item.index) && len(m.picked.order) >= m.max {
				m.err = fmt.Errorf("you can pick at most %d", m.max)
				return m, nil
			}

			m.picked.toggle(item.index)
			m.err = nil
			return m, nil
		case key.Matches(msg, SelectKey):
			if count := len(m.picked.order); count < m.min || count > m.max {
				m.err = fmt.Errorf("pick between %d and %d, you have %d", m.min, m.max, count)
				return m, nil
			}

			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m multiChoiceModel) View() string {
	if m.done {
		labels := lo.Map(m.picked.order, func(i int, _ int) string {
			return m.choices[i]
		})
		return answered(m.message, strings.Join(labels, ", "))
	}
	if m.aborted {
		return ""
	}

	status := HelpStyle.Render(fmt.Sprintf("%d/%d picked • space: toggle • enter: confirm • /: filter • esc: quit", len(m.picked.order), m.max))
	if m.err != nil {
		status = ErrorStyle.Render(m.err.Error())
	}

	return m.list.View() + "\n" + status + "\n"
}
