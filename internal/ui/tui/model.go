package tui

import (
	"strings"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/raphi011/choose/internal/prompt"
	"github.com/raphi011/choose/internal/ui/styles"
)

// Model hosts a prompt.Session. It implements tea.Model and
// prompt.InputSource.
type Model struct {
	sess     *prompt.Session
	handler  func(*prompt.Key)
	detached bool

	buf   *Buffer
	keys  keyMap
	help  help.Model
	width int
}

// New creates a model for sess. The session must not have been started.
func New(sess *prompt.Session) *Model {
	h := help.New()
	h.Styles.ShortKey = styles.MutedStyle.Bold(true)
	h.Styles.ShortDesc = styles.MutedStyle
	h.Styles.ShortSeparator = styles.MutedStyle

	return &Model{
		sess:  sess,
		buf:   &Buffer{},
		keys:  defaultKeyMap(),
		help:  h,
		width: 60,
	}
}

// Listen implements prompt.InputSource.
func (m *Model) Listen(handler func(*prompt.Key)) {
	m.handler = handler
}

// Detach implements prompt.InputSource.
func (m *Model) Detach() {
	m.detached = true
	m.handler = nil
}

// Session returns the hosted session.
func (m *Model) Session() *prompt.Session {
	return m.sess
}

// Buffer returns the sink the session draws into.
func (m *Model) Buffer() *Buffer {
	return m.buf
}

func (m *Model) Init() tea.Cmd {
	m.sess.Start(m, m.buf)
	if m.detached {
		return tea.Quit
	}
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.SetWidth(msg.Width)
		return m, nil

	case tea.KeyPressMsg:
		if m.detached || m.handler == nil {
			return m, tea.Quit
		}
		m.handler(m.keys.translate(msg))
		if m.detached {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

// render draws the framed menu. A cancelled menu leaves nothing behind.
func (m *Model) render() string {
	if m.sess.State() == prompt.Stopped {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderLines())
	if m.sess.State() == prompt.Active {
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))
	}

	frame := FrameStyle()
	if m.width > 0 && lipgloss.Width(b.String())+frame.GetHorizontalFrameSize() > m.width {
		frame = frame.MaxWidth(m.width)
	}
	return frame.Render(b.String())
}

// renderLines styles the buffer. While a question is shown the layout is
// rule, prompt, rule, then one line per choice.
func (m *Model) renderLines() string {
	lines := m.buf.Lines()
	if m.sess.State() != prompt.Active {
		for i, line := range lines {
			lines[i] = ChoiceNormalStyle().Render(line)
		}
		return strings.Join(lines, "\n")
	}

	choice := m.sess.ChoiceIndex()
	for i, line := range lines {
		switch {
		case i == 1:
			lines[i] = PromptStyle().Render(line)
		case i < 3:
			lines[i] = RuleStyle().Render(line)
		case i-3 == choice:
			lines[i] = ChoiceSelectedStyle().Render(line)
		default:
			lines[i] = ChoiceNormalStyle().Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
