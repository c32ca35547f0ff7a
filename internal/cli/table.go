package cli

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/macropower/chatwin/pkg/config"
	"github.com/macropower/chatwin/pkg/loadreport"
)

func renderTable(w io.Writer, header table.Row, rows []table.Row, configs ...table.ColumnConfig) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(header)
	tw.AppendRows(rows)

	if len(configs) > 0 {
		tw.SetColumnConfigs(configs)
	}

	tw.Render()
}

func renderReport(w io.Writer, r *loadreport.Report) {
	rows := make([]table.Row, 0, r.Len())
	for _, e := range r.Errors() {
		rows = append(rows, table.Row{e.Key, e.Kind.String(), e.Message})
	}

	renderTable(w, table.Row{"Key", "Problem", "Message"}, rows)
}

type settingRow struct {
	label string
	key   string
	value string
	unit  string
}

func settingRows(s config.Settings) []settingRow {
	px := func(n int) string { return strconv.Itoa(n) }
	on := strconv.FormatBool

	return []settingRow{
		{"Width", config.KeyWidth, px(s.Width), "px"},
		{"Height", config.KeyHeight, px(s.Height), "px"},
		{"Position X", config.KeyPositionX, px(s.PositionX), "px"},
		{"Position Y", config.KeyPositionY, px(s.PositionY), "px"},
		{"Chroma border", config.KeyChromaEnabled, on(s.ChromaEnabled), ""},
		{"Invert chroma", config.KeyInvertChroma, on(s.ChromaInvert), ""},
		{"Corner radius", config.KeyChromaCornerRadius, px(s.ChromaCornerRadius), "px"},
		{"Border left", config.KeyChromaLeft, px(s.ChromaBorder.Left), "px"},
		{"Border top", config.KeyChromaTop, px(s.ChromaBorder.Top), "px"},
		{"Border right", config.KeyChromaRight, px(s.ChromaBorder.Right), "px"},
		{"Border bottom", config.KeyChromaBottom, px(s.ChromaBorder.Bottom), "px"},
		{"Scrollable", config.KeyScrollable, on(s.Scrollable), ""},
		{"Reverse scrolling", config.KeyReverseScrolling, on(s.ReverseScrolling), ""},
		{"Resizable", config.KeyResizable, on(s.Resizable), ""},
		{"Remember position", config.KeyRememberPosition, on(s.RememberPosition), ""},
		{"Chat from bottom", config.KeyFromBottom, on(s.ChatFromBottom), ""},
		{"Always on top", config.KeyAlwaysOnTop, on(s.AlwaysOnTop), ""},
		{"Anti-alias", config.KeyAntiAlias, on(s.AntiAlias), ""},
	}
}

func renderSettings(w io.Writer, s config.Settings) {
	src := settingRows(s)

	rows := make([]table.Row, 0, len(src))
	for _, r := range src {
		rows = append(rows, table.Row{r.label, r.key, r.value, r.unit})
	}

	renderTable(w, table.Row{"Setting", "Key", "Value", "Unit"}, rows,
		table.ColumnConfig{Number: 3, Align: text.AlignRight},
	)
}
