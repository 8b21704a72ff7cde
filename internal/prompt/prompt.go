// Package prompt asks the user for the account to analyse.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
)

// Label is printed in front of the input field.
const Label = "ENTER THE USERNAME TO FETCH DATA : "

// GitHub logins are at most 39 characters long.
const maxLoginLength = 39

// ErrCancelled is returned when the user leaves the prompt without submitting.
var ErrCancelled = errors.New("prompt cancelled")

// Model is the bubbletea model of the account prompt.
type Model struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewModel creates a focused prompt.
func NewModel() Model {
	ti := textinput.New()
	ti.Prompt = Label
	ti.Placeholder = "octocat"
	ti.CharLimit = maxLoginLength
	ti.Focus()
	return Model{input: ti}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		// A line feed arrives as ctrl+j.
		case tea.KeyEnter, tea.KeyCtrlJ:
			if m.Value() == "" {
				return m, nil
			}
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	switch {
	case m.submitted:
		return "\n" + Label + m.Value() + "\n"
	case m.cancelled:
		return ""
	}
	return "\n" + m.input.View() + "\n"
}

// Value is the trimmed text typed so far.
func (m Model) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// Submitted reports whether a non-blank value was confirmed.
func (m Model) Submitted() bool {
	return m.submitted
}

// Ask runs the prompt on in/out and returns the submitted account. When in is
// not a terminal a single line is read instead.
func Ask(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	if !isTerminal(in) {
		return readLine(in, out)
	}
	p := tea.NewProgram(NewModel(), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to read account: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.Submitted() {
		return "", ErrCancelled
	}
	return m.Value(), nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}

// readLine reads up to the first newline or EOF. Blank input cancels.
func readLine(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprint(out, Label)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read account: %w", err)
	}
	account := strings.TrimSpace(line)
	if account == "" {
		return "", ErrCancelled
	}
	return account, nil
}
