package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhTheme returns a huh form theme built from the palette.
func HuhTheme() *huh.Theme {
	h := huh.ThemeBase()

	h.Focused.Base = h.Focused.Base.BorderForeground(Fuchsia)
	h.Focused.Card = h.Focused.Base
	h.Focused.Title = h.Focused.Title.Foreground(Fuchsia).Bold(true)
	h.Focused.NoteTitle = h.Focused.NoteTitle.Foreground(Fuchsia).Bold(true).MarginBottom(1)
	h.Focused.Description = h.Focused.Description.Foreground(DimFuchsia)
	h.Focused.ErrorIndicator = h.Focused.ErrorIndicator.Foreground(Red)
	h.Focused.ErrorMessage = h.Focused.ErrorMessage.Foreground(Red)
	h.Focused.SelectSelector = h.Focused.SelectSelector.Foreground(Fuchsia)
	h.Focused.SelectedOption = h.Focused.SelectedOption.Foreground(Fuchsia)
	h.Focused.UnselectedOption = h.Focused.UnselectedOption.Foreground(BrightGray)
	h.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(Green).SetString("✓ ")
	h.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(Subtle).SetString("• ")
	h.Focused.FocusedButton = h.Focused.FocusedButton.
		Foreground(LogoStyle.GetForeground()).
		Background(Fuchsia)
	h.Focused.Next = h.Focused.FocusedButton
	h.Focused.BlurredButton = h.Focused.BlurredButton.
		Foreground(Cream).
		Background(Subtle)

	h.Focused.TextInput.Cursor = h.Focused.TextInput.Cursor.Foreground(Fuchsia)
	h.Focused.TextInput.Placeholder = h.Focused.TextInput.Placeholder.Foreground(Subtle)
	h.Focused.TextInput.Prompt = h.Focused.TextInput.Prompt.Foreground(Fuchsia)

	h.Blurred = h.Focused
	h.Blurred.Base = h.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	h.Blurred.Card = h.Blurred.Base
	h.Blurred.Title = h.Blurred.Title.Foreground(BrightGray).Bold(false)

	h.Group.Title = h.Focused.Title
	h.Group.Description = h.Focused.Description

	return h
}
