package cli

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

const highlightStyle = "dracula"

// writeHighlighted writes src to w, colored with the lexer for language when
// w is a color terminal. Other writers get src unchanged.
func writeHighlighted(w io.Writer, src, language string) error {
	formatterName := ""
	switch termenv.NewOutput(w).Profile {
	case termenv.TrueColor:
		formatterName = "terminal16m"
	case termenv.ANSI256:
		formatterName = "terminal256"
	case termenv.ANSI:
		formatterName = "terminal8"
	case termenv.Ascii:
	}

	lexer := lexers.Get(language)
	if formatterName == "" || lexer == nil {
		mustN(io.WriteString(w, src))
		return nil
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return fmt.Errorf("tokenise %s: %w", language, err)
	}

	err = formatters.Get(formatterName).Format(w, chromastyles.Get(highlightStyle), it)
	if err != nil {
		return fmt.Errorf("format %s: %w", language, err)
	}

	return nil
}
