package settings

import (
	tea "github.com/charmbracelet/bubbletea"
)

// program runs a [Model] as a [tea.Model].
type program struct {
	m Model
}

func (p program) Init() tea.Cmd {
	return p.m.Init()
}

//nolint:ireturn // Must satisfy [tea.Model].
func (p program) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := p.m.Update(msg)

	return program{m: m}, cmd
}

func (p program) View() string {
	return p.m.View()
}

// NewProgram returns a [tea.Program] running m.
func NewProgram(m Model, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(program{m: m}, opts...)
}

// Result extracts the [Model] from the final model returned by
// [tea.Program.Run]. It returns false for models not started by [NewProgram].
func Result(tm tea.Model) (Model, bool) {
	p, ok := tm.(program)

	return p.m, ok
}
