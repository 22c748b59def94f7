package types

import "fmt"

// IndentCharacter selects the canonical indentation character.
type IndentCharacter int

const (
	// IndentTabs expects one tab per nesting level.
	IndentTabs IndentCharacter = iota

	// IndentSpaces expects Width spaces per nesting level.
	IndentSpaces
)

// IndentStyle is the per-file indentation configuration.
type IndentStyle struct {
	Character IndentCharacter
	Width     int // spaces per level; ignored for tabs
}

// Tabs returns the tab indentation style.
func Tabs() IndentStyle {
	return IndentStyle{Character: IndentTabs, Width: 1}
}

// Spaces returns a space indentation style with the given positive
// per-level width.
func Spaces(width int) IndentStyle {
	if width < 1 {
		width = 1
	}
	return IndentStyle{Character: IndentSpaces, Width: width}
}

// UnitWidth returns the number of characters in one indentation level.
func (s IndentStyle) UnitWidth() int {
	if s.Character == IndentTabs {
		return 1
	}
	if s.Width < 1 {
		return 1
	}
	return s.Width
}

// Rune returns the indentation character.
func (s IndentStyle) Rune() rune {
	if s.Character == IndentTabs {
		return '\t'
	}
	return ' '
}

// String renders the style the way the CLI --indent/--width flags accept it.
func (s IndentStyle) String() string {
	if s.Character == IndentTabs {
		return "tabs"
	}
	return fmt.Sprintf("spaces(%d)", s.UnitWidth())
}

// ParseIndentStyle parses "tabs" or "spaces" (with a separate width) as
// given on the command line.
func ParseIndentStyle(name string, width int) (IndentStyle, error) {
	switch name {
	case "tabs", "tab":
		return Tabs(), nil
	case "spaces", "space":
		if width < 1 {
			return IndentStyle{}, fmt.Errorf("space indentation requires a positive width, got %d", width)
		}
		return Spaces(width), nil
	default:
		return IndentStyle{}, fmt.Errorf("unknown indentation style %q (want tabs or spaces)", name)
	}
}
