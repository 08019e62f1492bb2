package tui

import (
	"context"
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
)

// Answer is what the user replied to a yes/no question.
type Answer int

const (
	AnswerNo Answer = iota
	AnswerYes
	// AnswerCancelled means the question was dismissed with esc, q or ctrl+c.
	AnswerCancelled
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerCancelled:
		return "cancelled"
	default:
		return "no"
	}
}

var confirmKeys = struct {
	Yes, No, Accept, Quit key.Binding
}{
	Yes:    key.NewBinding(key.WithKeys("y", "Y")),
	No:     key.NewBinding(key.WithKeys("n", "N")),
	Accept: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c")),
}

// confirmModel asks one yes/no question before choose touches a file the
// user already has, such as an existing config.
type confirmModel struct {
	question   string
	defaultYes bool

	answer Answer
	done   bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, confirmKeys.Yes):
		m.answer = AnswerYes
	case key.Matches(k, confirmKeys.No):
		m.answer = AnswerNo
	case key.Matches(k, confirmKeys.Accept):
		m.answer = AnswerNo
		if m.defaultYes {
			m.answer = AnswerYes
		}
	case key.Matches(k, confirmKeys.Quit):
		m.answer = AnswerCancelled
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.render())
}

// hint shows the enter default in upper case.
func (m confirmModel) hint() string {
	if m.defaultYes {
		return "[Y/n]"
	}
	return "[y/N]"
}

func (m confirmModel) render() string {
	if m.done {
		return ""
	}
	return PromptStyle().Render(m.question) + " " + RuleStyle().Render(m.hint()) + " "
}

// Confirm asks question on stderr. Enter picks the default, which is yes
// only when defaultYes is set.
func Confirm(ctx context.Context, question string, defaultYes bool) (Answer, error) {
	profile := colorprofile.Detect(os.Stderr, os.Environ())
	p := tea.NewProgram(confirmModel{question: question, defaultYes: defaultYes},
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(profile),
	)
	final, err := p.Run()
	if err != nil {
		return AnswerCancelled, fmt.Errorf("ask %q: %w", question, err)
	}
	return final.(confirmModel).answer, nil
}
