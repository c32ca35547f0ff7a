package settings_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/macropower/chatwin/pkg/config"
	"github.com/macropower/chatwin/pkg/props"
	"github.com/macropower/chatwin/pkg/ui/settings"
	"github.com/macropower/chatwin/pkg/uitest"
)

// Rows before the first checkbox: width, height, radius and four insets.
const sliderRows = 7

func writeFile(t *testing.T, path string, values props.Map) {
	t.Helper()

	f := props.NewFile(path)
	for k, v := range values {
		f.Set(k, v)
	}

	require.NoError(t, f.Save())
}

func setup(t *testing.T, values props.Map) (*props.File, *config.Chat, settings.Model) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "chat.properties")
	writeFile(t, path, values)

	f, err := props.OpenFile(path)
	require.NoError(t, err)

	chat := config.NewChat(f)
	r := chat.Load(nil)
	require.True(t, r.ErrorFree(), r.String())

	m, err := settings.New(chat, f)
	require.NoError(t, err)

	return f, chat, m
}

func send(m settings.Model, keys ...string) settings.Model {
	for _, msg := range uitest.Keys(keys...) {
		m, _ = m.Update(msg)
	}

	return m
}

func onDisk(t *testing.T, f *props.File, key string) string {
	t.Helper()

	disk, err := props.OpenFile(f.Path())
	require.NoError(t, err)

	v, _ := disk.Get(key)

	return v
}

func TestNew_Unloaded(t *testing.T) {
	t.Parallel()

	f := props.NewFile(filepath.Join(t.TempDir(), "chat.properties"))

	_, err := settings.New(config.NewChat(f), f)
	require.ErrorIs(t, err, config.ErrNotLoaded)
}

func TestModel_SliderWritesThrough(t *testing.T) {
	t.Parallel()

	f, chat, m := setup(t, config.DefaultValues())

	m = send(m, "right", "right", "pgup")

	want := config.DefaultSettings.Width + 2 + (settings.MaxDimension-config.MinDimension)/10
	assert.Equal(t, want, chat.Width())

	v, _ := f.Get(config.KeyWidth)
	assert.Equal(t, "761", v)
	assert.True(t, f.Dirty())
	assert.True(t, m.Modified(config.KeyWidth))

	// Nothing is written to disk until saved.
	assert.Equal(t, "350", onDisk(t, f, config.KeyWidth))

	m = send(m, "ctrl+s")
	assert.False(t, f.Dirty())
	assert.False(t, m.Modified(config.KeyWidth))
	assert.Equal(t, "761", onDisk(t, f, config.KeyWidth))
	assert.Contains(t, uitest.Styled(m.View()).Plain(), "Saved")
}

func TestModel_Border(t *testing.T) {
	t.Parallel()

	values := config.DefaultValues()
	values[config.KeyChromaEnabled] = "true"
	values[config.KeyChromaTop] = "5"

	f, chat, m := setup(t, values)

	// Border left.
	m = send(m, "down", "down", "down", "end")

	assert.Equal(t, config.Border{Left: settings.MaxBorder, Top: 5}, chat.ChromaBorder())

	v, _ := f.Get(config.KeyChromaLeft)
	assert.Equal(t, "512", v)

	v, _ = f.Get(config.KeyChromaTop)
	assert.Equal(t, "5", v)
}

func TestModel_ChromaDisabled(t *testing.T) {
	t.Parallel()

	values := config.DefaultValues()
	values[config.KeyChromaEnabled] = "false"

	_, chat, m := setup(t, values)

	// Corner radius slider ignores input while the chroma border is off.
	m = send(m, "down", "down", "right")
	assert.Equal(t, config.DefaultSettings.ChromaCornerRadius, chat.ChromaCornerRadius())

	// Enable the chroma border, then go back to the corner radius.
	for range sliderRows + 5 - 2 {
		m = send(m, "down")
	}

	m = send(m, " ")
	require.True(t, chat.IsChromaEnabled())

	for range sliderRows + 5 - 2 {
		m = send(m, "up")
	}

	send(m, "right")
	assert.Equal(t, config.DefaultSettings.ChromaCornerRadius+1, chat.ChromaCornerRadius())
}

func TestModel_Toggle(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		get  func(*config.Chat) bool
		key  string
		rows int
	}{
		"scrollable": {
			rows: 0,
			key:  config.KeyScrollable,
			get:  (*config.Chat).IsScrollable,
		},
		"always on top": {
			rows: 7,
			key:  config.KeyAlwaysOnTop,
			get:  (*config.Chat).IsAlwaysOnTop,
		},
		"anti-alias": {
			rows: 8,
			key:  config.KeyAntiAlias,
			get:  (*config.Chat).IsAntiAlias,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, chat, m := setup(t, config.DefaultValues())
			before := tc.get(chat)

			for range sliderRows + tc.rows {
				m = send(m, "down")
			}

			m = send(m, " ")
			assert.Equal(t, !before, tc.get(chat))

			v, _ := f.Get(tc.key)
			assert.Equal(t, map[bool]string{true: "true", false: "false"}[!before], v)
			assert.True(t, m.Modified(tc.key))

			send(m, "enter")
			assert.Equal(t, before, tc.get(chat))
		})
	}
}

func TestModel_CursorWraps(t *testing.T) {
	t.Parallel()

	f, chat, m := setup(t, config.DefaultValues())

	// Up from the first row lands on the last checkbox.
	m = send(m, "up", " ")
	assert.True(t, chat.IsAntiAlias())

	// Down from the last checkbox lands on the width slider.
	send(m, "down", "left")
	assert.Equal(t, config.DefaultSettings.Width-1, chat.Width())
	assert.True(t, f.Dirty())
}

func TestModel_Reload(t *testing.T) {
	t.Parallel()

	f, chat, m := setup(t, config.DefaultValues())

	changed := config.DefaultValues()
	changed[config.KeyWidth] = "800"
	changed[config.KeyAlwaysOnTop] = "true"
	writeFile(t, f.Path(), changed)

	m, _ = m.Update(settings.ReloadMsg{})

	assert.Equal(t, 800, chat.Width())
	assert.True(t, chat.IsAlwaysOnTop())
	assert.False(t, f.Dirty(), "resync must not write back")
	assert.False(t, m.Modified(config.KeyWidth))
	assert.Contains(t, uitest.Styled(m.View()).Plain(), "Reloaded")

	// The slider follows the reloaded value.
	send(m, "right")
	assert.Equal(t, 801, chat.Width())
}

func TestModel_ReloadInvalid(t *testing.T) {
	t.Parallel()

	f, chat, m := setup(t, config.DefaultValues())

	broken := config.DefaultValues()
	broken[config.KeyWidth] = "0"
	broken[config.KeyHeight] = "tall"
	writeFile(t, f.Path(), broken)

	m, _ = m.Update(settings.ReloadMsg{})

	assert.Equal(t, config.DefaultSettings.Width, chat.Width())
	assert.Equal(t, config.DefaultSettings.Height, chat.Height())
	assert.Contains(t, uitest.Styled(m.View()).Plain(), "Reload found 2 invalid settings")
}

func TestModel_QuitSaves(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		keys     []string
		wantDisk string
	}{
		"dirty": {
			keys:     []string{"left", "q"},
			wantDisk: "349",
		},
		"clean": {
			keys:     []string{"q"},
			wantDisk: "350",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			f, _, m := setup(t, config.DefaultValues())

			var cmd tea.Cmd
			for _, msg := range uitest.Keys(tc.keys...) {
				m, cmd = m.Update(msg)
			}

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			require.NoError(t, m.Err())
			assert.Equal(t, tc.wantDisk, onDisk(t, f, config.KeyWidth))
		})
	}
}

type failingStore struct {
	*props.File
}

var errReadOnly = errors.New("read-only")

func (failingStore) Save() error {
	return errReadOnly
}

func TestModel_SaveErrors(t *testing.T) {
	t.Parallel()

	f, chat, _ := setup(t, config.DefaultValues())

	m, err := settings.New(chat, failingStore{File: f})
	require.NoError(t, err)

	m = send(m, "right", "ctrl+s")
	assert.Contains(t, uitest.Styled(m.View()).Plain(), "Save failed: read-only")

	m = send(m, "q")
	require.ErrorIs(t, m.Err(), errReadOnly)
}

func TestModel_Program(t *testing.T) {
	t.Parallel()

	f, chat, m := setup(t, config.DefaultValues())

	tm := uitest.NewTestModel(t, m, uitest.Standard)

	uitest.WaitForCapture(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Chat window settings"))
	})

	uitest.SendKeys(tm, "down", "right", "ctrl+s")

	uitest.WaitForCapture(t, tm.Output(), func(b []byte) bool {
		return bytes.Contains(b, []byte("Saved"))
	})

	final := uitest.FinalModel[settings.Model](t, tm)
	require.NoError(t, final.Err())

	assert.Equal(t, config.DefaultSettings.Height+1, chat.Height())
	assert.Equal(t, "501", onDisk(t, f, config.KeyHeight))
}
