package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/chatwin/pkg/config"
	"github.com/macropower/chatwin/pkg/loadreport"
	"github.com/macropower/chatwin/pkg/props"
)

func validStore() props.Map {
	return props.Map{
		config.KeyWidth:              "480",
		config.KeyHeight:             "640",
		config.KeyChromaLeft:         "1",
		config.KeyChromaTop:          "2",
		config.KeyChromaRight:        "3",
		config.KeyChromaBottom:       "4",
		config.KeyChromaCornerRadius: "12",
		config.KeyScrollable:         "true",
		config.KeyReverseScrolling:   "false",
		config.KeyResizable:          "true",
		config.KeyRememberPosition:   "true",
		config.KeyFromBottom:         "false",
		config.KeyChromaEnabled:      "true",
		config.KeyInvertChroma:       "false",
		config.KeyAlwaysOnTop:        "true",
		config.KeyAntiAlias:          "true",
		config.KeyPositionX:          "-20",
		config.KeyPositionY:          "30",
	}
}

func TestChat_Load(t *testing.T) {
	t.Parallel()

	store := validStore()
	c := config.NewChat(store)
	assert.False(t, c.Loaded())

	r := c.Load(loadreport.New())
	require.True(t, r.ErrorFree(), r.String())
	require.True(t, c.Loaded())

	assert.Equal(t, 480, c.Width())
	assert.Equal(t, 640, c.Height())
	assert.Equal(t, 12, c.ChromaCornerRadius())
	assert.Equal(t, config.Border{Left: 1, Top: 2, Right: 3, Bottom: 4}, c.ChromaBorder())
	assert.Equal(t, -20, c.ChatWindowPositionX())
	assert.Equal(t, 30, c.ChatWindowPositionY())
	assert.True(t, c.IsScrollable())
	assert.False(t, c.IsReverseScrolling())
	assert.True(t, c.IsResizable())
	assert.True(t, c.IsRememberPosition())
	assert.False(t, c.IsChatFromBottom())
	assert.True(t, c.IsChromaEnabled())
	assert.False(t, c.IsChromaInvert())
	assert.True(t, c.IsAlwaysOnTop())
	assert.True(t, c.IsAntiAlias())

	s, ok := c.Settings()
	require.True(t, ok)
	assert.Equal(t, 480, s.Width)
}

func TestChat_LoadOptionalKeys(t *testing.T) {
	t.Parallel()

	store := validStore()
	delete(store, config.KeyAntiAlias)
	delete(store, config.KeyPositionX)
	delete(store, config.KeyPositionY)

	c := config.NewChat(store)
	r := c.Load(nil)
	require.True(t, r.ErrorFree(), r.String())

	assert.False(t, c.IsAntiAlias())
	assert.Equal(t, 0, c.ChatWindowPositionX())
	assert.Equal(t, 0, c.ChatWindowPositionY())
}

func TestChat_LoadMissingKey(t *testing.T) {
	t.Parallel()

	for _, key := range config.RequiredKeys() {
		t.Run(key, func(t *testing.T) {
			t.Parallel()

			store := validStore()
			delete(store, key)

			c := config.NewChat(store)
			r := c.Load(loadreport.New())

			errs := r.Errors()
			require.Len(t, errs, 1)
			assert.Equal(t, key, errs[0].Key)
			assert.Equal(t, loadreport.KindMissing, errs[0].Kind)
			require.ErrorIs(t, r.Err(), loadreport.ErrMissingKey)

			assert.False(t, c.Loaded())
		})
	}
}

func TestChat_LoadInvalidValues(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		key  string
		val  string
		kind loadreport.Kind
	}{
		"zero width": {
			key:  config.KeyWidth,
			val:  "0",
			kind: loadreport.KindOutOfRange,
		},
		"negative height": {
			key:  config.KeyHeight,
			val:  "-5",
			kind: loadreport.KindOutOfRange,
		},
		"non-integer width": {
			key:  config.KeyWidth,
			val:  "wide",
			kind: loadreport.KindMalformed,
		},
		"decimal height": {
			key:  config.KeyHeight,
			val:  "10.5",
			kind: loadreport.KindMalformed,
		},
		"negative border": {
			key:  config.KeyChromaBottom,
			val:  "-1",
			kind: loadreport.KindOutOfRange,
		},
		"corner radius below range": {
			key:  config.KeyChromaCornerRadius,
			val:  "-1",
			kind: loadreport.KindOutOfRange,
		},
		"corner radius above range": {
			key:  config.KeyChromaCornerRadius,
			val:  "129",
			kind: loadreport.KindOutOfRange,
		},
		"bool vocabulary": {
			key:  config.KeyScrollable,
			val:  "yes",
			kind: loadreport.KindMalformed,
		},
		"bool case": {
			key:  config.KeyAlwaysOnTop,
			val:  "TRUE",
			kind: loadreport.KindMalformed,
		},
		"optional bool still validated": {
			key:  config.KeyAntiAlias,
			val:  "1",
			kind: loadreport.KindMalformed,
		},
		"optional int still validated": {
			key:  config.KeyPositionX,
			val:  "left",
			kind: loadreport.KindMalformed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := validStore()
			store[tc.key] = tc.val

			c := config.NewChat(store)
			r := c.Load(loadreport.New())

			errs := r.ErrorsFor(tc.key)
			require.Len(t, errs, 1, r.String())
			assert.Equal(t, tc.kind, errs[0].Kind)
			assert.Equal(t, 1, r.Len())
			assert.False(t, c.Loaded())
		})
	}
}

func TestChat_LoadCornerRadiusBounds(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"0", "128"} {
		store := validStore()
		store[config.KeyChromaCornerRadius] = v

		r := config.NewChat(store).Load(nil)
		assert.True(t, r.ErrorFree(), "radius %s: %s", v, r.String())
	}
}

func TestChat_LoadAccumulatesErrors(t *testing.T) {
	t.Parallel()

	store := validStore()
	delete(store, config.KeyHeight)
	store[config.KeyWidth] = "0"
	store[config.KeyScrollable] = "maybe"
	store[config.KeyChromaLeft] = "x"

	r := config.NewChat(store).Load(loadreport.New())

	assert.Equal(t, 4, r.Len(), r.String())
	assert.Len(t, r.ErrorsFor(config.KeyHeight), 1)
	assert.Len(t, r.ErrorsFor(config.KeyWidth), 1)
	assert.Len(t, r.ErrorsFor(config.KeyScrollable), 1)
	assert.Len(t, r.ErrorsFor(config.KeyChromaLeft), 1)
}

func TestChat_FailedLoadKeepsState(t *testing.T) {
	t.Parallel()

	store := validStore()
	c := config.NewChat(store)
	require.True(t, c.Load(nil).ErrorFree())

	store[config.KeyWidth] = "0"
	store[config.KeyHeight] = "999"

	r := c.Load(nil)
	require.False(t, r.ErrorFree())

	// Nothing was committed, including valid values.
	assert.Equal(t, 480, c.Width())
	assert.Equal(t, 640, c.Height())
}

func TestChat_SharedReport(t *testing.T) {
	t.Parallel()

	r := loadreport.New()
	r.AddError("fontSize", loadreport.KindMalformed, "not an integer")

	c := config.NewChat(validStore())
	c.Load(r)

	// An error from another section of the same report prevents commit.
	assert.False(t, c.Loaded())
	assert.Equal(t, 1, r.Len())
}

func TestChat_Reset(t *testing.T) {
	t.Parallel()

	c := config.NewChat(validStore())
	require.True(t, c.Load(nil).ErrorFree())

	c.Reset()
	assert.False(t, c.Loaded())

	_, ok := c.Settings()
	assert.False(t, ok)

	assert.Equal(t, 0, c.ChatWindowPositionX())
	assert.Equal(t, 0, c.ChatWindowPositionY())

	assert.PanicsWithValue(t, config.ErrNotLoaded, func() {
		_ = c.Width()
	})
	assert.PanicsWithValue(t, config.ErrNotLoaded, func() {
		_ = c.IsChromaEnabled()
	})
}

func TestChat_LoadFrom(t *testing.T) {
	t.Parallel()

	c := config.NewChat(props.Map{})
	require.False(t, c.Load(nil).ErrorFree())

	other := validStore()
	r := c.LoadFrom(other, nil)
	require.True(t, r.ErrorFree(), r.String())

	c.SetWidth(10)
	assert.Equal(t, "10", other[config.KeyWidth])
}

func TestChat_SettersWriteThrough(t *testing.T) {
	t.Parallel()

	store := validStore()
	c := config.NewChat(store)
	require.True(t, c.Load(nil).ErrorFree())

	c.SetWidth(500)
	assert.Equal(t, "500", store[config.KeyWidth])
	assert.Equal(t, 500, c.Width())

	c.SetHeight(300)
	assert.Equal(t, "300", store[config.KeyHeight])

	c.SetChromaCornerRadius(64)
	assert.Equal(t, "64", store[config.KeyChromaCornerRadius])

	c.SetChromaBorder(1, 2, 3, 4)
	assert.Equal(t, "1", store[config.KeyChromaLeft])
	assert.Equal(t, "2", store[config.KeyChromaTop])
	assert.Equal(t, "3", store[config.KeyChromaRight])
	assert.Equal(t, "4", store[config.KeyChromaBottom])
	assert.Equal(t, config.Border{Left: 1, Top: 2, Right: 3, Bottom: 4}, c.ChromaBorder())

	c.SetChatWindowPositionX(7)
	c.SetChatWindowPositionY(-8)
	assert.Equal(t, "7", store[config.KeyPositionX])
	assert.Equal(t, "-8", store[config.KeyPositionY])

	boolSetters := map[string]func(bool){
		config.KeyScrollable:       c.SetScrollable,
		config.KeyReverseScrolling: c.SetReverseScrolling,
		config.KeyResizable:        c.SetResizable,
		config.KeyRememberPosition: c.SetRememberPosition,
		config.KeyFromBottom:       c.SetChatFromBottom,
		config.KeyChromaEnabled:    c.SetChromaEnabled,
		config.KeyInvertChroma:     c.SetChromaInvert,
		config.KeyAlwaysOnTop:      c.SetAlwaysOnTop,
		config.KeyAntiAlias:        c.SetAntiAlias,
	}
	for key, set := range boolSetters {
		set(true)
		assert.Equal(t, "true", store[key], key)

		set(false)
		assert.Equal(t, "false", store[key], key)
	}

	assert.False(t, c.IsChromaInvert())
	assert.False(t, c.IsChromaEnabled())

	// The store still loads after any sequence of setter calls.
	assert.True(t, config.NewChat(store).Load(nil).ErrorFree())
}

func TestChat_SettersWhileUnloaded(t *testing.T) {
	t.Parallel()

	store := props.Map{}
	c := config.NewChat(store)

	c.SetWidth(500)
	c.SetChromaBorder(4, 3, 2, 1)
	c.SetChromaEnabled(true)

	assert.False(t, c.Loaded())
	assert.Equal(t, props.Map{
		config.KeyWidth:         "500",
		config.KeyChromaLeft:    "4",
		config.KeyChromaTop:     "3",
		config.KeyChromaRight:   "2",
		config.KeyChromaBottom:  "1",
		config.KeyChromaEnabled: "true",
	}, store)
}

func TestChat_SetValue(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check   func(t *testing.T, c *config.Chat, store props.Map)
		key     string
		value   string
		wantErr bool
	}{
		"width": {
			key:   config.KeyWidth,
			value: "1024",
			check: func(t *testing.T, c *config.Chat, store props.Map) {
				t.Helper()
				assert.Equal(t, 1024, c.Width())
				assert.Equal(t, "1024", store[config.KeyWidth])
			},
		},
		"border piece keeps other insets": {
			key:   config.KeyChromaRight,
			value: "9",
			check: func(t *testing.T, c *config.Chat, store props.Map) {
				t.Helper()
				assert.Equal(t, config.Border{Left: 1, Top: 2, Right: 9, Bottom: 4}, c.ChromaBorder())
				assert.Equal(t, "9", store[config.KeyChromaRight])
			},
		},
		"bool": {
			key:   config.KeyInvertChroma,
			value: "true",
			check: func(t *testing.T, c *config.Chat, store props.Map) {
				t.Helper()
				assert.True(t, c.IsChromaInvert())
				assert.Equal(t, "true", store[config.KeyInvertChroma])
			},
		},
		"position": {
			key:   config.KeyPositionY,
			value: "-100",
			check: func(t *testing.T, c *config.Chat, _ props.Map) {
				t.Helper()
				assert.Equal(t, -100, c.ChatWindowPositionY())
			},
		},
		"out of range": {
			key:     config.KeyChromaCornerRadius,
			value:   "500",
			wantErr: true,
		},
		"malformed bool": {
			key:     config.KeyResizable,
			value:   "on",
			wantErr: true,
		},
		"unknown key": {
			key:     "chatFont",
			value:   "Arial",
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			store := validStore()
			c := config.NewChat(store)
			require.True(t, c.Load(nil).ErrorFree())

			before := store.Clone()

			err := c.SetValue(tc.key, tc.value)
			if tc.wantErr {
				require.Error(t, err)
				assert.Equal(t, before, store)

				return
			}

			require.NoError(t, err)
			tc.check(t, c, store)
		})
	}
}

func TestDefaultValues(t *testing.T) {
	t.Parallel()

	values := config.DefaultValues()
	assert.Len(t, values, len(config.Keys()))

	c := config.NewChat(values)
	r := c.Load(nil)
	require.True(t, r.ErrorFree(), r.String())

	s, ok := c.Settings()
	require.True(t, ok)
	assert.Equal(t, config.DefaultSettings, s)
	assert.Equal(t, values, s.Values())
}

func TestKeys(t *testing.T) {
	t.Parallel()

	assert.Len(t, config.Keys(), 18)
	assert.Len(t, config.RequiredKeys(), 15)
	assert.NotContains(t, config.RequiredKeys(), config.KeyAntiAlias)
	assert.NotContains(t, config.RequiredKeys(), config.KeyPositionX)
	assert.True(t, config.IsKnownKey(config.KeyWidth))
	assert.False(t, config.IsKnownKey("chatFont"))
}
