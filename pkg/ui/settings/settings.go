// Package settings provides a terminal editor for the chat window settings.
//
// The editor shows a [slider.Model] for every numeric setting and a checkbox
// for every flag. Changes are written to the [config.Chat] as they happen;
// the backing [Store] is only saved on request or when quitting.
package settings

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/chatwin/pkg/config"
	"github.com/macropower/chatwin/pkg/loadreport"
	"github.com/macropower/chatwin/pkg/props"
	"github.com/macropower/chatwin/pkg/ui/slider"
	"github.com/macropower/chatwin/pkg/ui/styles"
)

// Slider bounds for settings without a natural maximum.
const (
	MaxDimension = 4096
	MaxBorder    = 512
)

const labelWidth = 18

// Store is a property store that can be saved and reloaded.
type Store interface {
	props.Store
	Save() error
	Reload() error
	Dirty() bool
}

// ReloadMsg asks the editor to reload the store, usually because the file
// changed on disk.
type ReloadMsg struct{}

type numeric struct {
	get    func(*config.Chat) int
	set    func(*config.Chat, int)
	label  string
	unit   string
	key    string
	max    int
	min    int
	chroma bool
}

type flag struct {
	get   func(*config.Chat) bool
	set   func(*config.Chat, bool)
	label string
	key   string
}

func setBorder(side func(b *config.Border, v int)) func(*config.Chat, int) {
	return func(c *config.Chat, v int) {
		b := c.ChromaBorder()
		side(&b, v)
		c.SetChromaBorder(b.Left, b.Top, b.Right, b.Bottom)
	}
}

var numerics = []numeric{
	{
		label: "Width", unit: "px", key: config.KeyWidth,
		min: config.MinDimension, max: MaxDimension,
		get: (*config.Chat).Width, set: (*config.Chat).SetWidth,
	},
	{
		label: "Height", unit: "px", key: config.KeyHeight,
		min: config.MinDimension, max: MaxDimension,
		get: (*config.Chat).Height, set: (*config.Chat).SetHeight,
	},
	{
		label: "Corner radius", unit: "px", key: config.KeyChromaCornerRadius, chroma: true,
		min: config.MinChromaCornerRadius, max: config.MaxChromaCornerRadius,
		get: (*config.Chat).ChromaCornerRadius, set: (*config.Chat).SetChromaCornerRadius,
	},
	{
		label: "Border left", unit: "px", key: config.KeyChromaLeft, chroma: true,
		min: config.MinChromaBorder, max: MaxBorder,
		get: func(c *config.Chat) int { return c.ChromaBorder().Left },
		set: setBorder(func(b *config.Border, v int) { b.Left = v }),
	},
	{
		label: "Border top", unit: "px", key: config.KeyChromaTop, chroma: true,
		min: config.MinChromaBorder, max: MaxBorder,
		get: func(c *config.Chat) int { return c.ChromaBorder().Top },
		set: setBorder(func(b *config.Border, v int) { b.Top = v }),
	},
	{
		label: "Border right", unit: "px", key: config.KeyChromaRight, chroma: true,
		min: config.MinChromaBorder, max: MaxBorder,
		get: func(c *config.Chat) int { return c.ChromaBorder().Right },
		set: setBorder(func(b *config.Border, v int) { b.Right = v }),
	},
	{
		label: "Border bottom", unit: "px", key: config.KeyChromaBottom, chroma: true,
		min: config.MinChromaBorder, max: MaxBorder,
		get: func(c *config.Chat) int { return c.ChromaBorder().Bottom },
		set: setBorder(func(b *config.Border, v int) { b.Bottom = v }),
	},
}

var flags = []flag{
	{label: "Scrollable", key: config.KeyScrollable, get: (*config.Chat).IsScrollable, set: (*config.Chat).SetScrollable},
	{label: "Reverse scrolling", key: config.KeyReverseScrolling, get: (*config.Chat).IsReverseScrolling, set: (*config.Chat).SetReverseScrolling},
	{label: "Resizable", key: config.KeyResizable, get: (*config.Chat).IsResizable, set: (*config.Chat).SetResizable},
	{label: "Remember position", key: config.KeyRememberPosition, get: (*config.Chat).IsRememberPosition, set: (*config.Chat).SetRememberPosition},
	{label: "Chat from bottom", key: config.KeyFromBottom, get: (*config.Chat).IsChatFromBottom, set: (*config.Chat).SetChatFromBottom},
	{label: "Chroma border", key: config.KeyChromaEnabled, get: (*config.Chat).IsChromaEnabled, set: (*config.Chat).SetChromaEnabled},
	{label: "Invert chroma", key: config.KeyInvertChroma, get: (*config.Chat).IsChromaInvert, set: (*config.Chat).SetChromaInvert},
	{label: "Always on top", key: config.KeyAlwaysOnTop, get: (*config.Chat).IsAlwaysOnTop, set: (*config.Chat).SetAlwaysOnTop},
	{label: "Anti-alias", key: config.KeyAntiAlias, get: (*config.Chat).IsAntiAlias, set: (*config.Chat).SetAntiAlias},
}

type statusKind int

const (
	statusNone statusKind = iota
	statusSuccess
	statusError
)

// Model is the settings editor.
type Model struct {
	chat    *config.Chat
	store   Store
	saved   map[string]string
	KeyMap  KeyMap
	status  string
	err     error
	sliders []slider.Model
	help    help.Model
	cursor  int
	width   int
	kind    statusKind
}

// New returns an editor for chat, which must be loaded and bound to store.
func New(chat *config.Chat, store Store) (Model, error) {
	if !chat.Loaded() {
		return Model{}, fmt.Errorf("settings editor: %w", config.ErrNotLoaded)
	}

	m := Model{
		chat:   chat,
		store:  store,
		KeyMap: DefaultKeyMap(),
		help:   help.New(),
	}

	for _, n := range numerics {
		s := slider.New(n.label, n.unit, n.min, n.max,
			slider.WithValue(n.get(chat)),
			slider.WithLabelWidth(labelWidth),
			slider.WithKeyMap(m.KeyMap.Slider),
		)
		s.OnChange(func(v int) {
			// Resyncing after a reload sets values the chat already holds.
			if n.get(chat) != v {
				n.set(chat, v)
			}
		})

		m.sliders = append(m.sliders, s)
	}

	m.snapshot()
	m.focus(0)
	m.refresh()

	return m, nil
}

// Err returns the error from the save made when quitting, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

		return m, nil

	case ReloadMsg:
		m.reload()

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.KeyMap.Quit):
		if m.store.Dirty() {
			if err := m.store.Save(); err != nil {
				m.err = fmt.Errorf("save on quit: %w", err)
			}
		}

		return m, tea.Quit

	case key.Matches(msg, m.KeyMap.Save):
		m.save()

	case key.Matches(msg, m.KeyMap.Reload):
		m.reload()

	case key.Matches(msg, m.KeyMap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.KeyMap.Up):
		m.focus(m.cursor - 1)

	case key.Matches(msg, m.KeyMap.Down):
		m.focus(m.cursor + 1)

	case key.Matches(msg, m.KeyMap.Toggle):
		if f, ok := m.focusedFlag(); ok {
			f.set(m.chat, !f.get(m.chat))
		}

	default:
		if m.cursor < len(m.sliders) {
			var cmd tea.Cmd

			m.sliders[m.cursor], cmd = m.sliders[m.cursor].Update(msg)
			m.refresh()

			return m, cmd
		}
	}

	m.refresh()

	return m, nil
}

func (m *Model) save() {
	if err := m.store.Save(); err != nil {
		slog.Error("save settings", slog.Any("error", err))
		m.setStatus(statusError, "Save failed: "+err.Error())

		return
	}

	m.snapshot()
	m.setStatus(statusSuccess, "Saved")
}

// reload re-reads the store and loads it into the chat. When the new values
// are invalid the chat keeps its current settings.
func (m *Model) reload() {
	if err := m.store.Reload(); err != nil {
		slog.Error("reload settings", slog.Any("error", err))
		m.setStatus(statusError, "Reload failed: "+err.Error())

		return
	}

	r := m.chat.Load(loadreport.New())
	if !r.ErrorFree() {
		slog.Warn("reloaded settings are invalid", slog.Int("errors", r.Len()))
		m.setStatus(statusError, fmt.Sprintf("Reload found %d invalid settings, keeping current values", r.Len()))

		return
	}

	for i, n := range numerics {
		m.sliders[i].SetValue(n.get(m.chat))
	}

	m.snapshot()
	m.refresh()
	m.setStatus(statusSuccess, "Reloaded")
}

func (m *Model) snapshot() {
	m.saved = make(map[string]string, len(config.Keys()))
	for _, k := range config.Keys() {
		if v, ok := m.store.Get(k); ok {
			m.saved[k] = v
		}
	}
}

// refresh updates cosmetic slider state: chroma settings are dimmed while the
// chroma border is off, and unsaved values are highlighted.
func (m *Model) refresh() {
	chroma := m.chat.IsChromaEnabled()

	for i, n := range numerics {
		if n.chroma {
			m.sliders[i].SetEnabled(chroma)
		}

		var c lipgloss.TerminalColor
		if strconv.Itoa(m.sliders[i].Value()) != m.saved[n.key] {
			c = styles.Fuchsia
		}

		m.sliders[i].SetValueTextColor(c)
	}
}

func (m *Model) focus(i int) {
	total := len(m.sliders) + len(flags)
	m.cursor = (i + total) % total

	for j := range m.sliders {
		if j == m.cursor {
			m.sliders[j].Focus()
		} else {
			m.sliders[j].Blur()
		}
	}
}

func (m Model) focusedFlag() (flag, bool) {
	i := m.cursor - len(m.sliders)
	if i < 0 || i >= len(flags) {
		return flag{}, false
	}

	return flags[i], true
}

func (m *Model) setStatus(kind statusKind, msg string) {
	m.kind = kind
	m.status = msg
}

// Modified reports whether key holds a value that has not been saved.
func (m Model) Modified(key string) bool {
	v, _ := m.store.Get(key)
	return v != m.saved[key]
}
