package settings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"

	"github.com/macropower/chatwin/pkg/ui/styles"
	"github.com/macropower/chatwin/pkg/version"
)

const (
	cursorMark = "›"
	checkedBox = "[x]"
	emptyBox   = "[ ]"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(styles.Fuchsia).MarginBottom(1)
	sectionStyle = lipgloss.NewStyle().Foreground(styles.BrightGray).MarginTop(1)
	cursorStyle  = lipgloss.NewStyle().Foreground(styles.Fuchsia).Bold(true)
	checkedStyle = lipgloss.NewStyle().Foreground(styles.Green)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Chat window settings"))
	b.WriteString("\n")

	for i, s := range m.sliders {
		b.WriteString(m.cursorView(i))
		b.WriteString(s.View())
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Window"))
	b.WriteString("\n")

	for i, f := range flags {
		idx := len(m.sliders) + i

		box := styles.SubtleStyle.Render(emptyBox)
		if f.get(m.chat) {
			box = checkedStyle.Render(checkedBox)
		}

		label := f.label
		if m.Modified(f.key) {
			label = styles.SelectedStyle.Render(label)
		}

		b.WriteString(m.cursorView(idx))
		b.WriteString(box + " " + label)
		b.WriteString("\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		m.statusView(),
		m.help.View(m.KeyMap),
	)
}

func (m Model) cursorView(i int) string {
	if i == m.cursor {
		return cursorStyle.Render(cursorMark) + " "
	}

	return "  "
}

func (m Model) statusView() string {
	width := m.width
	if width <= 0 {
		width = 80
	}

	logo := styles.LogoStyle.Render(" chatwin " + version.GetVersion() + " ")

	style := styles.StatusBarStyle
	switch m.kind {
	case statusSuccess:
		style = styles.StatusBarSuccessStyle
	case statusError:
		style = styles.StatusBarErrorStyle
	case statusNone:
	}

	msg := m.status
	if msg == "" && m.store.Dirty() {
		msg = "Unsaved changes"
	}

	rest := max(0, width-ansi.PrintableRuneWidth(logo))

	return logo + style.Render(styles.Fit(" "+msg, rest))
}
