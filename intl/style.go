package intl

import (
	"fmt"
	"strings"
)

// Style selects a predefined date or time format length.
type Style int

const (
	// StyleUnset means no style was chosen; formatters treat it as StyleFull.
	StyleUnset Style = iota
	StyleFull
	StyleLong
	StyleMedium
	StyleShort
	// StyleNone omits the date or time part entirely.
	StyleNone
)

func (s Style) String() string {
	switch s {
	case StyleUnset:
		return "unset"
	case StyleFull:
		return "full"
	case StyleLong:
		return "long"
	case StyleMedium:
		return "medium"
	case StyleShort:
		return "short"
	case StyleNone:
		return "none"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Valid reports whether s is one of the defined styles.
func (s Style) Valid() bool {
	return s >= StyleUnset && s <= StyleNone
}

func (s Style) resolved() Style {
	if s == StyleUnset {
		return StyleFull
	}
	return s
}

// ParseStyle parses a style name. The empty string yields StyleUnset.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unset":
		return StyleUnset, nil
	case "full":
		return StyleFull, nil
	case "long":
		return StyleLong, nil
	case "medium":
		return StyleMedium, nil
	case "short":
		return StyleShort, nil
	case "none":
		return StyleNone, nil
	default:
		return StyleUnset, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}
}

// Calendar selects the calendar system of a formatter.
type Calendar int

const (
	// CalendarUnspecified means no calendar was chosen.
	CalendarUnspecified Calendar = iota
	CalendarGregorian
	// CalendarTraditional is the locale's traditional calendar. Not supported
	// by DateFormatter.
	CalendarTraditional
)

func (c Calendar) String() string {
	switch c {
	case CalendarUnspecified:
		return "unspecified"
	case CalendarGregorian:
		return "gregorian"
	case CalendarTraditional:
		return "traditional"
	default:
		return fmt.Sprintf("calendar(%d)", int(c))
	}
}

// Valid reports whether c is one of the defined calendars.
func (c Calendar) Valid() bool {
	return c >= CalendarUnspecified && c <= CalendarTraditional
}

// ParseCalendar parses a calendar name. The empty string yields
// CalendarUnspecified.
func ParseCalendar(s string) (Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "unspecified":
		return CalendarUnspecified, nil
	case "gregorian":
		return CalendarGregorian, nil
	case "traditional":
		return CalendarTraditional, nil
	default:
		return CalendarUnspecified, fmt.Errorf("%w: %q", ErrUnknownCalendar, s)
	}
}
