package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmModel is a one-line yes/no question rendered inline (no alt
// screen). Enter accepts the highlighted choice, y/n jump straight to an
// answer, Esc and Ctrl+C decline.
type ConfirmModel struct {
	Question string
	// 0 = yes, 1 = no
	selection int
	answered  bool
	Accepted  bool
}

func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{Question: question, selection: 1}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		m.answered = true
		m.Accepted = true
		return m, tea.Quit
	case "n", "N", "esc", "ctrl+c", "q":
		m.answered = true
		m.Accepted = false
		return m, tea.Quit
	case "left", "h", "right", "l", "tab":
		m.selection = 1 - m.selection
	case "enter":
		m.answered = true
		m.Accepted = m.selection == 0
		return m, tea.Quit
	}

	return m, nil
}

func (m ConfirmModel) View() string {
	if m.answered {
		answer := "no"
		if m.Accepted {
			answer = "yes"
		}
		return fmt.Sprintf("%s %s\n", m.Question, answer)
	}

	yes, no := "  yes  ", "  no  "
	if m.selection == 0 {
		yes = ownAuthorStyle.Render("> yes <")
	} else {
		no = otherAuthorStyle.Render("> no <")
	}

	return fmt.Sprintf("%s %s %s %s\n", m.Question, yes, no, Dim("(y/n, arrows + enter)"))
}

// Confirm asks the question and blocks until the user answers. A terminal
// that cannot run the program counts as a declined confirmation.
func Confirm(question string) (bool, error) {
	final, err := tea.NewProgram(NewConfirm(question)).Run()
	if err != nil {
		return false, err
	}

	m, ok := final.(ConfirmModel)
	if !ok {
		return false, nil
	}
	return m.Accepted, nil
}
