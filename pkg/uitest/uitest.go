package uitest

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultTimeout bounds every wait in this package unless overridden.
const DefaultTimeout = 3 * time.Second

// BubbleModel is satisfied by Bubble Tea components whose Update returns
// their concrete type instead of [tea.Model].
type BubbleModel[T any] interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (T, tea.Cmd) //nolint:ireturn // Mirrors [tea.Model].
	View() string
}

// adapter lets a [BubbleModel] run as a [tea.Model].
type adapter[T BubbleModel[T]] struct {
	model T
}

func (a adapter[T]) Init() tea.Cmd {
	return a.model.Init()
}

//nolint:ireturn // Must satisfy [tea.Model].
func (a adapter[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := a.model.Update(msg)

	return adapter[T]{model: m}, cmd
}

func (a adapter[T]) View() string {
	return a.model.View()
}

// NewTestModel starts m under teatest with the given terminal size.
func NewTestModel[T BubbleModel[T]](tb testing.TB, m T, size Size) *teatest.TestModel {
	tb.Helper()

	return teatest.NewTestModel(tb, adapter[T]{model: m},
		teatest.WithInitialTermSize(size.Width, size.Height),
	)
}

// FinalModel stops tm and returns the last state of the wrapped model.
func FinalModel[T BubbleModel[T]](tb testing.TB, tm *teatest.TestModel) T {
	tb.Helper()

	tm.Send(tea.QuitMsg{})

	fm := tm.FinalModel(tb, teatest.WithFinalTimeout(DefaultTimeout))

	a, ok := fm.(adapter[T])
	if !ok {
		tb.Fatalf("unexpected final model type %T", fm)
	}

	return a.model
}

// WaitForCapture waits until condition holds for the output read so far and
// returns that output.
func WaitForCapture(tb testing.TB, r io.Reader, condition func([]byte) bool) string {
	tb.Helper()

	var captured []byte

	teatest.WaitFor(tb, r, func(b []byte) bool {
		if !condition(b) {
			return false
		}

		captured = append([]byte(nil), b...)

		return true
	},
		teatest.WithDuration(DefaultTimeout),
		teatest.WithCheckInterval(10*time.Millisecond),
	)

	return string(captured)
}

// Keys converts key names such as "left", "pgup" or "ctrl+s" into messages.
// Any other name is sent as typed runes.
func Keys(names ...string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(names))
	for _, name := range names {
		if kt, ok := keyTypes[name]; ok {
			msgs = append(msgs, tea.KeyMsg{Type: kt})
			continue
		}

		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
	}

	return msgs
}

// SendKeys sends each named key to tm, in order.
func SendKeys(tm *teatest.TestModel, names ...string) {
	for _, msg := range Keys(names...) {
		tm.Send(msg)
	}
}

var keyTypes = map[string]tea.KeyType{
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"enter":     tea.KeyEnter,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"esc":       tea.KeyEsc,
	" ":         tea.KeySpace,
	"ctrl+s":    tea.KeyCtrlS,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+r":    tea.KeyCtrlR,
}
