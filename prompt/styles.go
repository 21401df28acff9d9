package prompt

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	HighlightedColor = lipgloss.Color("33")
	ErrorColor       = lipgloss.Color("203")
	FadedColor       = lipgloss.Color("244")

	TitleStyle  = lipgloss.NewStyle().Bold(true)
	AnswerStyle = lipgloss.NewStyle().Foreground(HighlightedColor)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ErrorColor)
	NoticeStyle = lipgloss.NewStyle().Foreground(FadedColor).Italic(true)
	HelpStyle   = lipgloss.NewStyle().Foreground(FadedColor)

	HighlightedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(HighlightedColor)
	ItemStyle            = lipgloss.NewStyle().PaddingLeft(2)

	SelectKey = key.NewBinding(
		key.WithKeys("enter"),
	)
	ToggleKey = key.NewBinding(
		key.WithKeys(" "),
	)
	AbortKey = key.NewBinding(
		key.WithKeys(tea.KeyEsc.String(), tea.KeyCtrlC.String()),
	)
)

// choiceItem remembers where a label sat in the original choices so filtering doesn't change answers
type choiceItem struct {
	label string
	index int
}

func (i choiceItem) FilterValue() string { return i.label }

func choiceItems(choices []string) []list.Item {
	items := make([]list.Item, len(choices))
	for i, choice := range choices {
		items[i] = choiceItem{label: choice, index: i}
	}

	return items
}

type simpleDelegate struct {
	HighlightedItemStyle lipgloss.Style
	ItemStyle            lipgloss.Style

	// marks is nil for single choice lists
	marks *selection
}

func (d simpleDelegate) Height() int {
	height := math.Min(float64(d.ItemStyle.GetHeight()), float64(d.HighlightedItemStyle.GetHeight()))
	return int(math.Max(1, height))
}
func (d simpleDelegate) Spacing() int                            { return 0 }
func (d simpleDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d simpleDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(choiceItem)
	if !ok {
		return
	}

	label := item.label
	if d.marks != nil {
		box := "[ ]"
		if d.marks.has(item.index) {
			box = "[x]"
		}
		label = box + " " + label
	}

	if index == m.Index() {
		fmt.Fprint(w, d.HighlightedItemStyle.Render("> "+label))
	} else {
		fmt.Fprint(w, d.ItemStyle.Render("  "+label))
	}
}

func newSimpleListDelegate(marks *selection) simpleDelegate {
	return simpleDelegate{HighlightedItemStyle, ItemStyle, marks}
}

func newChoiceList(title string, choices []string, delegate list.ItemDelegate, width int, height int) list.Model {
	choiceList := list.New(choiceItems(choices), delegate, width, height)
	choiceList.Title = title
	choiceList.Styles.Title = TitleStyle
	choiceList.SetFilteringEnabled(true)
	choiceList.SetShowStatusBar(false)
	choiceList.SetShowHelp(false)
	choiceList.DisableQuitKeybindings()

	return choiceList
}

func answered(message string, answer string) string {
	return fmt.Sprintf("%s %s\n", TitleStyle.Render(message), AnswerStyle.Render(answer))
}
