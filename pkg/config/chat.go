package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/macropower/chatwin/pkg/loadreport"
	"github.com/macropower/chatwin/pkg/props"
)

// ErrNotLoaded is the panic value of getters called on an unloaded [Chat].
var ErrNotLoaded = errors.New("chat config is not loaded")

// Border is the chroma-key exclusion border, as four insets.
type Border struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Settings is a complete, validated chat window configuration.
type Settings struct {
	ChromaBorder       Border `json:"chromaBorder"`
	Width              int    `json:"width"`
	Height             int    `json:"height"`
	ChromaCornerRadius int    `json:"chromaCornerRadius"`
	PositionX          int    `json:"positionX"`
	PositionY          int    `json:"positionY"`
	Scrollable         bool   `json:"scrollable"`
	ReverseScrolling   bool   `json:"reverseScrolling"`
	Resizable          bool   `json:"resizable"`
	RememberPosition   bool   `json:"rememberPosition"`
	ChatFromBottom     bool   `json:"chatFromBottom"`
	ChromaEnabled      bool   `json:"chromaEnabled"`
	ChromaInvert       bool   `json:"chromaInvert"`
	AlwaysOnTop        bool   `json:"alwaysOnTop"`
	AntiAlias          bool   `json:"antiAlias"`
}

// Chat holds the chat window display configuration. It is either unloaded,
// or loaded with a complete [Settings] value.
type Chat struct {
	store    props.Store
	settings *Settings
}

// NewChat returns an unloaded [Chat] that reads from and writes to store.
func NewChat(store props.Store) *Chat {
	return &Chat{store: store}
}

// Store returns the backing store.
func (c *Chat) Store() props.Store {
	return c.store
}

// Reset returns c to the unloaded state.
func (c *Chat) Reset() {
	c.settings = nil
}

// Loaded reports whether c holds settings.
func (c *Chat) Loaded() bool {
	return c.settings != nil
}

// Settings returns a copy of the loaded settings, and whether c is loaded.
func (c *Chat) Settings() (Settings, bool) {
	if c.settings == nil {
		return Settings{}, false
	}

	return *c.settings, true
}

// LoadFrom binds c to store, then calls [Chat.Load].
func (c *Chat) LoadFrom(store props.Store, r *loadreport.Report) *loadreport.Report {
	c.store = store
	return c.Load(r)
}

// Load validates the store and, only if r is error-free afterwards, assigns
// every setting at once. Problems are accumulated in r, which is returned.
// A nil r is replaced by a new report. When r has errors, c is not modified.
func (c *Chat) Load(r *loadreport.Report) *loadreport.Report {
	if r == nil {
		r = loadreport.New()
	}

	ValidateValues(r, c.store)

	if !r.ErrorFree() {
		return r
	}

	s := &Settings{
		Width:              c.intValue(KeyWidth),
		Height:             c.intValue(KeyHeight),
		ChromaCornerRadius: c.intValue(KeyChromaCornerRadius),
		ChromaBorder: Border{
			Left:   c.intValue(KeyChromaLeft),
			Top:    c.intValue(KeyChromaTop),
			Right:  c.intValue(KeyChromaRight),
			Bottom: c.intValue(KeyChromaBottom),
		},
		PositionX:        c.intValue(KeyPositionX),
		PositionY:        c.intValue(KeyPositionY),
		Scrollable:       c.boolValue(KeyScrollable),
		ReverseScrolling: c.boolValue(KeyReverseScrolling),
		Resizable:        c.boolValue(KeyResizable),
		RememberPosition: c.boolValue(KeyRememberPosition),
		ChatFromBottom:   c.boolValue(KeyFromBottom),
		ChromaEnabled:    c.boolValue(KeyChromaEnabled),
		ChromaInvert:     c.boolValue(KeyInvertChroma),
		AlwaysOnTop:      c.boolValue(KeyAlwaysOnTop),
		AntiAlias:        c.boolValue(KeyAntiAlias),
	}

	c.settings = s

	return r
}

// intValue parses an already validated integer; absent keys read as 0.
func (c *Chat) intValue(key string) int {
	v, ok := c.store.Get(key)
	if !ok {
		return 0
	}

	n, _ := strconv.Atoi(v) //nolint:errcheck // Validated by ValidateValues.

	return n
}

// boolValue reads an already validated boolean; absent keys read as false.
func (c *Chat) boolValue(key string) bool {
	v, _ := c.store.Get(key)
	return v == literalTrue
}

func (c *Chat) mustSettings() *Settings {
	if c.settings == nil {
		panic(ErrNotLoaded)
	}

	return c.settings
}

func (c *Chat) setInt(key string, v int, apply func(*Settings)) {
	if c.settings != nil {
		apply(c.settings)
	}

	c.store.Set(key, strconv.Itoa(v))
}

func (c *Chat) setBool(key string, v bool, apply func(*Settings)) {
	if c.settings != nil {
		apply(c.settings)
	}

	c.store.Set(key, formatBool(v))
}

func (c *Chat) Width() int { return c.mustSettings().Width }

func (c *Chat) SetWidth(width int) {
	c.setInt(KeyWidth, width, func(s *Settings) { s.Width = width })
}

func (c *Chat) Height() int { return c.mustSettings().Height }

func (c *Chat) SetHeight(height int) {
	c.setInt(KeyHeight, height, func(s *Settings) { s.Height = height })
}

func (c *Chat) ChromaCornerRadius() int { return c.mustSettings().ChromaCornerRadius }

func (c *Chat) SetChromaCornerRadius(radius int) {
	c.setInt(KeyChromaCornerRadius, radius, func(s *Settings) { s.ChromaCornerRadius = radius })
}

// ChatWindowPositionX returns the remembered X coordinate, or 0 when unloaded.
func (c *Chat) ChatWindowPositionX() int {
	if c.settings == nil {
		return 0
	}

	return c.settings.PositionX
}

func (c *Chat) SetChatWindowPositionX(x int) {
	c.setInt(KeyPositionX, x, func(s *Settings) { s.PositionX = x })
}

// ChatWindowPositionY returns the remembered Y coordinate, or 0 when unloaded.
func (c *Chat) ChatWindowPositionY() int {
	if c.settings == nil {
		return 0
	}

	return c.settings.PositionY
}

func (c *Chat) SetChatWindowPositionY(y int) {
	c.setInt(KeyPositionY, y, func(s *Settings) { s.PositionY = y })
}

func (c *Chat) ChromaBorder() Border { return c.mustSettings().ChromaBorder }

// SetChromaBorder sets all four insets, writing the left, top, right and
// bottom keys in that order.
func (c *Chat) SetChromaBorder(left, top, right, bottom int) {
	b := Border{Left: left, Top: top, Right: right, Bottom: bottom}
	if c.settings != nil {
		c.settings.ChromaBorder = b
	}

	c.store.Set(KeyChromaLeft, strconv.Itoa(b.Left))
	c.store.Set(KeyChromaTop, strconv.Itoa(b.Top))
	c.store.Set(KeyChromaRight, strconv.Itoa(b.Right))
	c.store.Set(KeyChromaBottom, strconv.Itoa(b.Bottom))
}

func (c *Chat) IsScrollable() bool { return c.mustSettings().Scrollable }

func (c *Chat) SetScrollable(v bool) {
	c.setBool(KeyScrollable, v, func(s *Settings) { s.Scrollable = v })
}

func (c *Chat) IsReverseScrolling() bool { return c.mustSettings().ReverseScrolling }

func (c *Chat) SetReverseScrolling(v bool) {
	c.setBool(KeyReverseScrolling, v, func(s *Settings) { s.ReverseScrolling = v })
}

func (c *Chat) IsResizable() bool { return c.mustSettings().Resizable }

func (c *Chat) SetResizable(v bool) {
	c.setBool(KeyResizable, v, func(s *Settings) { s.Resizable = v })
}

func (c *Chat) IsRememberPosition() bool { return c.mustSettings().RememberPosition }

func (c *Chat) SetRememberPosition(v bool) {
	c.setBool(KeyRememberPosition, v, func(s *Settings) { s.RememberPosition = v })
}

func (c *Chat) IsChatFromBottom() bool { return c.mustSettings().ChatFromBottom }

func (c *Chat) SetChatFromBottom(v bool) {
	c.setBool(KeyFromBottom, v, func(s *Settings) { s.ChatFromBottom = v })
}

func (c *Chat) IsChromaEnabled() bool { return c.mustSettings().ChromaEnabled }

func (c *Chat) SetChromaEnabled(v bool) {
	c.setBool(KeyChromaEnabled, v, func(s *Settings) { s.ChromaEnabled = v })
}

func (c *Chat) IsChromaInvert() bool { return c.mustSettings().ChromaInvert }

func (c *Chat) SetChromaInvert(v bool) {
	c.setBool(KeyInvertChroma, v, func(s *Settings) { s.ChromaInvert = v })
}

func (c *Chat) IsAlwaysOnTop() bool { return c.mustSettings().AlwaysOnTop }

func (c *Chat) SetAlwaysOnTop(v bool) {
	c.setBool(KeyAlwaysOnTop, v, func(s *Settings) { s.AlwaysOnTop = v })
}

func (c *Chat) IsAntiAlias() bool { return c.mustSettings().AntiAlias }

func (c *Chat) SetAntiAlias(v bool) {
	c.setBool(KeyAntiAlias, v, func(s *Settings) { s.AntiAlias = v })
}

// SetValue validates a raw value for key and applies it with the matching
// typed setter.
func (c *Chat) SetValue(key, value string) error {
	r := ValidateValue(loadreport.New(), key, value)
	if !r.ErrorFree() {
		return fmt.Errorf("set %s: %w", key, r.Err())
	}

	f, _ := lookupField(key)
	if f.kind == kindBool {
		c.setBoolKey(key, value == literalTrue)
		return nil
	}

	n, _ := strconv.Atoi(value) //nolint:errcheck // Validated above.
	c.setIntKey(key, n)

	return nil
}

func (c *Chat) setBoolKey(key string, v bool) {
	switch key {
	case KeyScrollable:
		c.SetScrollable(v)
	case KeyReverseScrolling:
		c.SetReverseScrolling(v)
	case KeyResizable:
		c.SetResizable(v)
	case KeyRememberPosition:
		c.SetRememberPosition(v)
	case KeyFromBottom:
		c.SetChatFromBottom(v)
	case KeyChromaEnabled:
		c.SetChromaEnabled(v)
	case KeyInvertChroma:
		c.SetChromaInvert(v)
	case KeyAlwaysOnTop:
		c.SetAlwaysOnTop(v)
	case KeyAntiAlias:
		c.SetAntiAlias(v)
	}
}

func (c *Chat) setIntKey(key string, n int) {
	switch key {
	case KeyWidth:
		c.SetWidth(n)
	case KeyHeight:
		c.SetHeight(n)
	case KeyChromaCornerRadius:
		c.SetChromaCornerRadius(n)
	case KeyPositionX:
		c.SetChatWindowPositionX(n)
	case KeyPositionY:
		c.SetChatWindowPositionY(n)
	case KeyChromaLeft, KeyChromaTop, KeyChromaRight, KeyChromaBottom:
		if c.settings == nil {
			c.store.Set(key, strconv.Itoa(n))
			return
		}

		b := c.settings.ChromaBorder

		switch key {
		case KeyChromaLeft:
			b.Left = n
		case KeyChromaTop:
			b.Top = n
		case KeyChromaRight:
			b.Right = n
		case KeyChromaBottom:
			b.Bottom = n
		}

		c.SetChromaBorder(b.Left, b.Top, b.Right, b.Bottom)
	}
}
