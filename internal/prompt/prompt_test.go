package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	updated, ok := next.(Model)
	require.True(t, ok)
	return updated, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModel_SubmitTrimsInput(t *testing.T) {
	m := typeText(t, NewModel(), "  octocat ")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.Submitted())
	assert.Equal(t, "octocat", m.Value())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Contains(t, m.View(), Label+"octocat")
}

func TestModel_LineFeedSubmits(t *testing.T) {
	m := typeText(t, NewModel(), "octocat")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyCtrlJ})

	assert.True(t, m.Submitted())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_EnterOnBlankInputIsIgnored(t *testing.T) {
	m := typeText(t, NewModel(), "   ")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.Submitted())
	assert.Nil(t, cmd)
}

func TestModel_Cancel(t *testing.T) {
	testCases := []struct {
		name string
		key  tea.KeyType
	}{
		{name: "escape", key: tea.KeyEsc},
		{name: "ctrl+c", key: tea.KeyCtrlC},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := typeText(t, NewModel(), "octocat")

			m, cmd := send(t, m, tea.KeyMsg{Type: tc.key})

			assert.False(t, m.Submitted())
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestModel_ViewShowsLabel(t *testing.T) {
	assert.Contains(t, NewModel().View(), Label)
}

func TestAsk_NonTerminalInput(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{name: "line terminated", input: "octocat\n", expected: "octocat"},
		{name: "carriage return and line feed", input: "octocat\r\n", expected: "octocat"},
		{name: "no trailing newline", input: "octocat", expected: "octocat"},
		{name: "only the first line is read", input: " octocat \nhubot\n", expected: "octocat"},
		{name: "empty input cancels", input: "", expectedErr: ErrCancelled},
		{name: "blank line cancels", input: "   \n", expectedErr: ErrCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer

			account, err := Ask(context.Background(), strings.NewReader(tc.input), &out)

			if tc.expectedErr != nil {
				assert.ErrorIs(t, err, tc.expectedErr)
				assert.Empty(t, account)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, account)
			}
			assert.Equal(t, Label, out.String())
		})
	}
}
