package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PromptModel is an inline single-line text input. A Validate function may
// reject the entered value; the error is shown and the input cleared for
// another attempt. Esc or Ctrl+C cancels.
type PromptModel struct {
	Question string
	// Default is used when the user submits an empty line
	Default string
	// Validate rejects bad input; nil accepts anything
	Validate func(string) error

	input     string
	lastError string
	done      bool
	Canceled  bool
	Value     string
}

func NewPrompt(question, defaultValue string, validate func(string) error) PromptModel {
	return PromptModel{Question: question, Default: defaultValue, Validate: validate}
}

func (m PromptModel) Init() tea.Cmd {
	return nil
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.done = true
		m.Canceled = true
		return m, tea.Quit

	case tea.KeyEnter:
		value := m.input
		if value == "" {
			value = m.Default
		}
		if m.Validate != nil {
			if err := m.Validate(value); err != nil {
				m.lastError = err.Error()
				m.input = ""
				return m, nil
			}
		}
		m.done = true
		m.Value = value
		return m, tea.Quit

	case tea.KeyBackspace:
		if m.input != "" {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}

	case tea.KeySpace:
		m.lastError = ""
		m.input += " "

	case tea.KeyRunes:
		m.lastError = ""
		m.input += string(keyMsg.Runes)
	}

	return m, nil
}

func (m PromptModel) View() string {
	if m.done {
		if m.Canceled {
			return fmt.Sprintf("%s canceled\n", m.Question)
		}
		return fmt.Sprintf("%s %s\n", m.Question, m.Value)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s ", m.Question)
	if m.Default != "" {
		fmt.Fprintf(&b, "%s ", Dim("["+m.Default+"]"))
	}
	b.WriteString(m.input)
	b.WriteString("█")
	if m.lastError != "" {
		fmt.Fprintf(&b, "\n%s", otherAuthorStyle.Render(m.lastError))
	}
	b.WriteString("\n")
	return b.String()
}

// Prompt asks for one line of input, re-asking until validate accepts it.
// The second return value is false when the user canceled.
func Prompt(question, defaultValue string, validate func(string) error) (string, bool, error) {
	final, err := tea.NewProgram(NewPrompt(question, defaultValue, validate)).Run()
	if err != nil {
		return "", false, err
	}

	m, ok := final.(PromptModel)
	if !ok || m.Canceled {
		return "", false, nil
	}
	return m.Value, true, nil
}
