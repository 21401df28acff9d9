// Package prompt asks the user questions on a terminal using bubbletea programs.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// ErrAborted is returned when the user quits a prompt with esc or ctrl+c
var ErrAborted = errors.New("prompt aborted")

const (
	defaultWidth   = 80
	defaultHeight  = 20
	maxListHeight  = 20
	listHeightTrim = 4
)

// Terminal runs one small bubbletea program per question
type Terminal struct {
	in     io.Reader
	out    io.Writer
	width  int
	height int
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	width, height := defaultWidth, defaultHeight

	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil {
			width, height = w, h
		}
	}

	return &Terminal{
		in:     in,
		out:    out,
		width:  width,
		height: min(maxListHeight, max(height-listHeightTrim, 5)),
	}
}

func (t *Terminal) run(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out))
	return program.Run()
}

func (t *Terminal) Input(message string, validate func(string) error) (string, error) {
	final, err := t.run(newInputModel(message, validate, t.width))
	if err != nil {
		return "", err
	}

	m := final.(inputModel)
	if m.aborted {
		return "", ErrAborted
	}

	return m.Value(), nil
}

func (t *Terminal) Select(message string, choices []string) (int, error) {
	if len(choices) == 0 {
		return 0, fmt.Errorf("nothing to choose for %q", message)
	}

	final, err := t.run(newChoiceModel(message, choices, t.width, t.height))
	if err != nil {
		return 0, err
	}

	m := final.(choiceModel)
	if m.aborted {
		return 0, ErrAborted
	}

	return m.chosen, nil
}

func (t *Terminal) MultiSelect(message string, choices []string, min int, max int) ([]int, error) {
	if len(choices) < min {
		return nil, fmt.Errorf("need %d choices for %q, only have %d", min, message, len(choices))
	}

	final, err := t.run(newMultiChoiceModel(message, choices, min, max, t.width, t.height))
	if err != nil {
		return nil, err
	}

	m := final.(multiChoiceModel)
	if m.aborted {
		return nil, ErrAborted
	}

	return m.Picked(), nil
}

func (t *Terminal) Notify(message string) {
	log.Warn().Str("notice", message).Msg("told user")
	fmt.Fprintln(t.out, NoticeStyle.Render(message))
}
