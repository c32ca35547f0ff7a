package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

var (
	// ErrInvalidConfig is returned when a settings file fails validation.
	ErrInvalidConfig = errors.New("invalid settings")
	// ErrNotInteractive is returned when a command needs a terminal.
	ErrNotInteractive = errors.New("a terminal is required")
	// ErrConfigExists is returned by init when the settings file exists.
	ErrConfigExists = errors.New("settings file already exists")
)

// ErrorHandler renders command errors for [fang.WithErrorHandler].
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))
	mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	mustN(fmt.Fprintln(w))

	hint := errorHint(err)
	if hint == "" {
		return
	}

	mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(
		lipgloss.Left,
		styles.ErrorText.UnsetWidth().Render("Try"),
		styles.Program.Flag.Render(hint),
	)))
	mustN(fmt.Fprintln(w))
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, ErrConfigExists):
		return "init --force"
	case errors.Is(err, ErrNotInteractive):
		return "running in a terminal"
	case isUsageError(err):
		return "--help"
	}

	return ""
}

// Cobra does not export its usage errors, so they are matched by prefix.
// See: https://github.com/spf13/cobra/pull/2266
func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts ",
		"requires ",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
