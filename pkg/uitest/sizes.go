package uitest

// Size is a terminal size in cells.
type Size struct {
	Width  int
	Height int
}

// Terminal sizes used by component tests.
var (
	// Compact is the classic 80x24 terminal.
	Compact = Size{Width: 80, Height: 24}
	// Standard is a typical modern terminal.
	Standard = Size{Width: 120, Height: 40}
	// Narrow forces labels and status lines to truncate.
	Narrow = Size{Width: 40, Height: 12}
)
