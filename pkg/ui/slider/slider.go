// Package slider provides a labeled slider control for bounded integers.
//
// A [Model] renders as a label, a horizontal track and a fixed-width value
// readout followed by a unit. The readout can show the value scaled by a
// constant factor, and change listeners are called synchronously whenever the
// value changes.
package slider

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/chatwin/pkg/ui/styles"
)

// NoScale is the identity scale.
const NoScale = 1.0

const (
	nbsp         = "\u00a0"
	defaultWidth = 24
	pageDivisor  = 10
)

// Styles defines the styles used to render a [Model].
type Styles struct {
	Label    lipgloss.Style
	Track    lipgloss.Style
	Fill     lipgloss.Style
	Handle   lipgloss.Style
	Focused  lipgloss.Style
	Value    lipgloss.Style
	Disabled lipgloss.Style
}

// DefaultStyles returns the default slider styles.
func DefaultStyles() Styles {
	return Styles{
		Label:    styles.TextStyle,
		Track:    lipgloss.NewStyle().Foreground(styles.MidGray),
		Fill:     lipgloss.NewStyle().Foreground(styles.DimFuchsia),
		Handle:   lipgloss.NewStyle().Foreground(styles.BrightGray),
		Focused:  lipgloss.NewStyle().Foreground(styles.Fuchsia).Bold(true),
		Value:    lipgloss.NewStyle().Bold(true),
		Disabled: lipgloss.NewStyle().Foreground(styles.Subtle),
	}
}

// Option configures a [Model].
type Option func(*Model)

// WithValue sets the initial value. It defaults to the minimum.
func WithValue(v int) Option {
	return func(m *Model) {
		m.value = v
	}
}

// WithDigits sets the width the value readout is padded to.
func WithDigits(n int) Option {
	return func(m *Model) {
		m.digits = n
	}
}

// WithScale sets the display scale. A zero scale is ignored.
func WithScale(scale float64) Option {
	return func(m *Model) {
		if scale != 0 {
			m.scale = scale
		}
	}
}

// WithWidth sets the width of the track in cells.
func WithWidth(w int) Option {
	return func(m *Model) {
		m.width = max(2, w)
	}
}

// WithLabelWidth pads or truncates the label to w cells, so that sliders
// stacked vertically line up.
func WithLabelWidth(w int) Option {
	return func(m *Model) {
		m.labelWidth = w
	}
}

// WithKeyMap sets the key bindings.
func WithKeyMap(km KeyMap) Option {
	return func(m *Model) {
		m.KeyMap = km
	}
}

// Model is a labeled slider.
type Model struct {
	valueColor lipgloss.TerminalColor
	KeyMap     KeyMap
	label      string
	unit       string
	listeners  []func(int)
	Styles     Styles
	scale      float64
	value      int
	min        int
	max        int
	digits     int
	width      int
	labelWidth int
	enabled    bool
	focused    bool
}

// New returns a slider for values in [minimum, maximum].
func New(label, unit string, minimum, maximum int, opts ...Option) Model {
	if maximum < minimum {
		maximum = minimum
	}

	m := Model{
		KeyMap:  DefaultKeyMap(),
		Styles:  DefaultStyles(),
		label:   label,
		unit:    unit,
		min:     minimum,
		max:     maximum,
		value:   minimum,
		digits:  max(len(strconv.Itoa(minimum)), len(strconv.Itoa(maximum))),
		scale:   NoScale,
		width:   defaultWidth,
		enabled: true,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.value = m.clamp(m.value)

	return m
}

// Label returns the label text.
func (m Model) Label() string {
	return m.label
}

// Min returns the lower bound.
func (m Model) Min() int {
	return m.min
}

// Max returns the upper bound.
func (m Model) Max() int {
	return m.max
}

// Value returns the raw value.
func (m Model) Value() int {
	return m.value
}

// SetValue sets the raw value, clamped to the slider bounds. Listeners are
// called when the value changes.
func (m *Model) SetValue(v int) {
	v = m.clamp(v)
	if v == m.value {
		return
	}

	m.value = v
	for _, fn := range m.listeners {
		fn(v)
	}
}

// ScaledValue returns the value multiplied by the scale.
func (m Model) ScaledValue() float64 {
	return float64(m.value) * m.scale
}

// SetScaledValue sets the value to v divided by the scale, rounded to the
// nearest integer.
func (m *Model) SetScaledValue(v float64) {
	m.SetValue(int(math.Round(v / m.scale)))
}

// Scale returns the display scale.
func (m Model) Scale() float64 {
	return m.scale
}

// ValueString returns the value as displayed: the integer itself when the
// scale is the identity, otherwise the scaled value with two decimals.
func (m Model) ValueString() string {
	if m.scale == NoScale {
		return strconv.Itoa(m.value)
	}

	return fmt.Sprintf("%.2f", m.ScaledValue())
}

// PaddedValue returns [Model.ValueString] left-padded to the digit width.
// Padding and any spaces in the value are non-breaking spaces.
func (m Model) PaddedValue() string {
	s := m.ValueString()
	if n := m.digits - utf8.RuneCountInString(s); n > 0 {
		s = strings.Repeat(" ", n) + s
	}

	return strings.ReplaceAll(s, " ", nbsp)
}

// ValueText returns the readout shown after the track.
func (m Model) ValueText() string {
	if m.unit == "" {
		return m.PaddedValue()
	}

	return m.PaddedValue() + " " + m.unit
}

// OnChange registers fn to be called with the new value after every change.
// Listeners run synchronously in registration order.
func (m *Model) OnChange(fn func(int)) {
	m.listeners = append(m.listeners, fn)
}

// SetEnabled enables or disables the slider. A disabled slider is dimmed and
// ignores key input.
func (m *Model) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Enabled reports whether the slider is enabled.
func (m Model) Enabled() bool {
	return m.enabled
}

// SetValueTextColor sets the color of the value readout.
func (m *Model) SetValueTextColor(c lipgloss.TerminalColor) {
	m.valueColor = c
}

// Focus makes the slider respond to key input.
func (m *Model) Focus() {
	m.focused = true
}

// Blur stops the slider from responding to key input.
func (m *Model) Blur() {
	m.focused = false
}

// Focused reports whether the slider has focus.
func (m Model) Focused() bool {
	return m.focused
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.enabled || !m.focused {
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.KeyMap.Decrease):
		m.SetValue(m.value - 1)
	case key.Matches(keyMsg, m.KeyMap.Increase):
		m.SetValue(m.value + 1)
	case key.Matches(keyMsg, m.KeyMap.PageDecrease):
		m.SetValue(m.value - m.pageStep())
	case key.Matches(keyMsg, m.KeyMap.PageIncrease):
		m.SetValue(m.value + m.pageStep())
	case key.Matches(keyMsg, m.KeyMap.Min):
		m.SetValue(m.min)
	case key.Matches(keyMsg, m.KeyMap.Max):
		m.SetValue(m.max)
	}

	return m, nil
}

func (m Model) View() string {
	label := m.label
	if m.labelWidth > 0 {
		label = styles.Fit(label, m.labelWidth)
	}

	valueStyle := m.Styles.Value
	if m.valueColor != nil {
		valueStyle = valueStyle.Foreground(m.valueColor)
	}

	if !m.enabled {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			m.Styles.Disabled.Render(label),
			" ",
			m.Styles.Disabled.Render(m.track(false)),
			" ",
			m.Styles.Disabled.Render(m.ValueText()),
		)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.Styles.Label.Render(label),
		" ",
		m.track(true),
		" ",
		valueStyle.Render(m.ValueText()),
	)
}

// track renders the slider rail with the handle at the current position.
func (m Model) track(styled bool) string {
	pos := m.handlePosition()

	fill := strings.Repeat("━", pos)
	rest := strings.Repeat("─", m.width-pos-1)
	handle := "●"

	if !styled {
		return fill + handle + rest
	}

	handleStyle := m.Styles.Handle
	if m.focused {
		handleStyle = m.Styles.Focused
	}

	return m.Styles.Fill.Render(fill) + handleStyle.Render(handle) + m.Styles.Track.Render(rest)
}

func (m Model) handlePosition() int {
	span := m.max - m.min
	if span == 0 {
		return 0
	}

	ratio := float64(m.value-m.min) / float64(span)

	return int(math.Round(ratio * float64(m.width-1)))
}

func (m Model) pageStep() int {
	return max(1, (m.max-m.min)/pageDivisor)
}

func (m Model) clamp(v int) int {
	return min(max(v, m.min), m.max)
}
