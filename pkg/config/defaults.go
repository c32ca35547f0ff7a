package config

import (
	"strconv"

	"github.com/macropower/chatwin/pkg/props"
)

// DefaultSettings is the configuration written by a fresh install.
var DefaultSettings = Settings{
	Width:              350,
	Height:             500,
	ChromaCornerRadius: 10,
	Scrollable:         true,
	Resizable:          true,
	ChatFromBottom:     true,
}

// Values serializes s into a property map holding every known key.
func (s Settings) Values() props.Map {
	return props.Map{
		KeyWidth:              strconv.Itoa(s.Width),
		KeyHeight:             strconv.Itoa(s.Height),
		KeyChromaLeft:         strconv.Itoa(s.ChromaBorder.Left),
		KeyChromaTop:          strconv.Itoa(s.ChromaBorder.Top),
		KeyChromaRight:        strconv.Itoa(s.ChromaBorder.Right),
		KeyChromaBottom:       strconv.Itoa(s.ChromaBorder.Bottom),
		KeyChromaCornerRadius: strconv.Itoa(s.ChromaCornerRadius),
		KeyPositionX:          strconv.Itoa(s.PositionX),
		KeyPositionY:          strconv.Itoa(s.PositionY),
		KeyScrollable:         formatBool(s.Scrollable),
		KeyReverseScrolling:   formatBool(s.ReverseScrolling),
		KeyResizable:          formatBool(s.Resizable),
		KeyRememberPosition:   formatBool(s.RememberPosition),
		KeyFromBottom:         formatBool(s.ChatFromBottom),
		KeyChromaEnabled:      formatBool(s.ChromaEnabled),
		KeyInvertChroma:       formatBool(s.ChromaInvert),
		KeyAlwaysOnTop:        formatBool(s.AlwaysOnTop),
		KeyAntiAlias:          formatBool(s.AntiAlias),
	}
}

// DefaultValues returns the property map for [DefaultSettings].
func DefaultValues() props.Map {
	return DefaultSettings.Values()
}
