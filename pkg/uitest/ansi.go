package uitest

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// SetupColorProfile forces TrueColor output so rendered styles are stable
// regardless of the terminal running the tests.
func SetupColorProfile() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

// Segment is a run of printable text rendered with a single SGR style.
// Colors are ANSI palette indexes ("1", "212") or upper-case hex ("EE6FF8").
type Segment struct {
	Text       string
	Foreground string
	Background string
	Bold       bool
	Faint      bool
	Italic     bool
	Underline  bool
}

// Segments is rendered output split by style.
type Segments []Segment

// Styled splits output into [Segments].
func Styled(output string) Segments {
	var (
		segs  Segments
		cur   Segment
		text  strings.Builder
		state byte
	)

	flush := func() {
		if text.Len() == 0 {
			return
		}

		seg := cur
		seg.Text = text.String()
		segs = append(segs, seg)
		text.Reset()
	}

	p := ansi.GetParser()
	defer ansi.PutParser(p)

	input := []byte(output)
	for len(input) > 0 {
		seq, width, n, newState := ansi.DecodeSequence(input, state, p)

		switch {
		case ansi.HasCsiPrefix(seq) && seq[len(seq)-1] == 'm':
			flush()
			cur = applySGR(cur, p)
		case width > 0:
			text.Write(seq)
		}

		input = input[n:]
		state = newState
	}

	flush()

	return segs
}

// Plain returns the text of all segments without styling.
func (s Segments) Plain() string {
	var b strings.Builder
	for _, seg := range s {
		b.WriteString(seg.Text)
	}

	return b.String()
}

// Find returns the first segment containing text.
func (s Segments) Find(text string) (Segment, bool) {
	for _, seg := range s {
		if strings.Contains(seg.Text, text) {
			return seg, true
		}
	}

	return Segment{}, false
}

func applySGR(cur Segment, p *ansi.Parser) Segment {
	params := p.Params()

	if len(params) == 0 {
		return Segment{}
	}

	for i := 0; i < len(params); i++ {
		switch code := params[i].Param(0); {
		case code == 0:
			cur = Segment{}
		case code == 1:
			cur.Bold = true
		case code == 2:
			cur.Faint = true
		case code == 3:
			cur.Italic = true
		case code == 4:
			cur.Underline = true
		case code == 22:
			cur.Bold, cur.Faint = false, false
		case code == 23:
			cur.Italic = false
		case code == 24:
			cur.Underline = false
		case code == 39:
			cur.Foreground = ""
		case code == 49:
			cur.Background = ""
		case code == 38 || code == 48:
			color, used := extendedColor(params[i+1:])
			if code == 38 {
				cur.Foreground = color
			} else {
				cur.Background = color
			}

			i += used
		case code >= 30 && code <= 37:
			cur.Foreground = fmt.Sprint(code - 30)
		case code >= 40 && code <= 47:
			cur.Background = fmt.Sprint(code - 40)
		case code >= 90 && code <= 97:
			cur.Foreground = fmt.Sprint(code - 90 + 8)
		case code >= 100 && code <= 107:
			cur.Background = fmt.Sprint(code - 100 + 8)
		}
	}

	return cur
}

// extendedColor decodes the parameters following a 38 or 48 code, returning
// the color and the number of parameters consumed.
func extendedColor(params []ansi.Param) (string, int) {
	if len(params) == 0 {
		return "", 0
	}

	switch params[0].Param(0) {
	case 5:
		if len(params) >= 2 {
			return fmt.Sprint(params[1].Param(0)), 2
		}

	case 2:
		if len(params) >= 4 {
			return fmt.Sprintf("%02X%02X%02X",
				params[1].Param(0), params[2].Param(0), params[3].Param(0),
			), 4
		}
	}

	return "", len(params)
}
