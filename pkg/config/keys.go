package config

// Property keys read and written by [Chat].
const (
	KeyWidth              = "chatWidth"
	KeyHeight             = "chatHeight"
	KeyChromaLeft         = "chatChromaLeft"
	KeyChromaTop          = "chatChromaTop"
	KeyChromaRight        = "chatChromaRight"
	KeyChromaBottom       = "chatChromaBottom"
	KeyChromaCornerRadius = "chatChromaCornerRadius"
	KeyScrollable         = "chatScrollable"
	KeyReverseScrolling   = "chatReverseScrolling"
	KeyResizable          = "chatResizable"
	KeyRememberPosition   = "chatRememberPosition"
	KeyPositionX          = "chatPositionX"
	KeyPositionY          = "chatPositionY"
	KeyFromBottom         = "chatFromBottom"
	KeyChromaEnabled      = "chatChromaEnabled"
	KeyInvertChroma       = "chatInvertChroma"
	KeyAlwaysOnTop        = "chatAlwaysOnTop"
	KeyAntiAlias          = "chatAntiAlias"
)

// Value limits.
const (
	MinDimension          = 1
	MinChromaBorder       = 0
	MinChromaCornerRadius = 0
	MaxChromaCornerRadius = 128
)

type valueKind int

const (
	kindInt valueKind = iota
	kindBool
)

func (k valueKind) String() string {
	if k == kindBool {
		return "boolean"
	}

	return "integer"
}

// field describes one property key.
type field struct {
	key         string
	description string
	kind        valueKind
	min         int
	max         int
	hasMin      bool
	hasMax      bool
	required    bool
}

func intField(key string, required bool, description string) field {
	return field{key: key, kind: kindInt, required: required, description: description}
}

func minField(key string, minimum int, description string) field {
	return field{key: key, kind: kindInt, required: true, min: minimum, hasMin: true, description: description}
}

func boolField(key string, required bool, description string) field {
	return field{key: key, kind: kindBool, required: required, description: description}
}

// fields lists every key in validation order.
var fields = []field{
	minField(KeyWidth, MinDimension, "Width of the chat window in pixels."),
	minField(KeyHeight, MinDimension, "Height of the chat window in pixels."),
	minField(KeyChromaLeft, MinChromaBorder, "Left inset of the chroma border in pixels."),
	minField(KeyChromaTop, MinChromaBorder, "Top inset of the chroma border in pixels."),
	minField(KeyChromaRight, MinChromaBorder, "Right inset of the chroma border in pixels."),
	minField(KeyChromaBottom, MinChromaBorder, "Bottom inset of the chroma border in pixels."),
	{
		key:         KeyChromaCornerRadius,
		kind:        kindInt,
		required:    true,
		min:         MinChromaCornerRadius,
		hasMin:      true,
		max:         MaxChromaCornerRadius,
		hasMax:      true,
		description: "Corner rounding of the chroma border.",
	},
	boolField(KeyScrollable, true, "Whether the chat scrolls with the mouse wheel."),
	boolField(KeyReverseScrolling, true, "Whether the chat scrolls in reverse."),
	boolField(KeyResizable, true, "Whether the window can be resized by dragging its borders."),
	boolField(KeyRememberPosition, true, "Whether to remember the window position."),
	boolField(KeyFromBottom, true, "Whether a short chat builds upward from the bottom."),
	boolField(KeyChromaEnabled, true, "Whether the chroma border is drawn."),
	boolField(KeyInvertChroma, true, "Whether the chroma border is inverted."),
	boolField(KeyAlwaysOnTop, true, "Whether the window stays on top of other windows."),
	boolField(KeyAntiAlias, false, "Whether scaled chat graphics are anti-aliased."),
	intField(KeyPositionX, false, "Remembered window X coordinate."),
	intField(KeyPositionY, false, "Remembered window Y coordinate."),
}

// Keys returns every known property key.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		keys = append(keys, f.key)
	}

	return keys
}

// RequiredKeys returns the keys that must be present for [Chat.Load] to
// succeed.
func RequiredKeys() []string {
	keys := []string{}
	for _, f := range fields {
		if f.required {
			keys = append(keys, f.key)
		}
	}

	return keys
}

// IsKnownKey reports whether key is read by [Chat].
func IsKnownKey(key string) bool {
	_, ok := lookupField(key)
	return ok
}

func lookupField(key string) (field, bool) {
	for _, f := range fields {
		if f.key == key {
			return f, true
		}
	}

	return field{}, false
}
