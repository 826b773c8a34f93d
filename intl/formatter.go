package intl

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/araddon/dateparse"
	"github.com/goodsign/monday"
)

// Formatter parses text into instants and renders instants as text.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Status: every operation updates ErrorCode/ErrorMessage.
// - Parse uses the grammar derived from the locale and styles; SetPattern
//   changes the output pattern only.
type Formatter interface {
	// Locale returns the resolved locale identifier.
	Locale() string
	// Timezone returns the resolved timezone identifier.
	Timezone() string
	// Calendar returns the resolved calendar.
	Calendar() Calendar

	// Pattern returns the custom output pattern, or "" when styles are used.
	Pattern() string
	// SetPattern sets the custom output pattern. "" restores the style layout.
	SetPattern(pattern string) error
	// Layout returns the Go layout used by Format.
	Layout() string

	Lenient() bool
	SetLenient(lenient bool)

	Parse(value string) (time.Time, error)
	Format(t time.Time) string
	// FormatStatus formats t and returns the status of that call. Concurrent
	// operations on the formatter cannot change the returned status.
	FormatStatus(t time.Time) (out string, code ErrorCode, message string)

	// ErrorCode returns the status of the last operation.
	ErrorCode() ErrorCode
	// ErrorMessage returns the message of the last operation.
	ErrorMessage() string
}

// DateFormatter is the Formatter backed by monday locale data.
type DateFormatter struct {
	locale    monday.Locale
	location  *time.Location
	timezone  string
	dateStyle Style
	timeStyle Style

	// inputLayout is the grammar Parse accepts.
	inputLayout string

	mu      sync.RWMutex
	pattern string
	layout  string
	lenient bool
	code    ErrorCode
	message string
}

// NewDateFormatter creates a formatter. Unmatched locales and timezones fall
// back to FallbackLocale and FallbackTimezone; the resolved values are
// reported by Locale and Timezone. Formatters start lenient.
func NewDateFormatter(locale string, dateStyle, timeStyle Style, timezone string, calendar Calendar) (*DateFormatter, error) {
	if !dateStyle.Valid() {
		return nil, &Error{Op: "create", Code: IllegalArgumentError, Message: fmt.Sprintf("invalid date style %d", int(dateStyle))}
	}
	if !timeStyle.Valid() {
		return nil, &Error{Op: "create", Code: IllegalArgumentError, Message: fmt.Sprintf("invalid time style %d", int(timeStyle))}
	}
	switch calendar {
	case CalendarUnspecified, CalendarGregorian:
	case CalendarTraditional:
		return nil, &Error{Op: "create", Code: UnsupportedError, Message: "only the gregorian calendar is supported"}
	default:
		return nil, &Error{Op: "create", Code: IllegalArgumentError, Message: fmt.Sprintf("invalid calendar %d", int(calendar))}
	}

	resolvedLocale, _ := ResolveLocale(locale)
	loc, tzID, _ := ResolveTimezone(timezone)

	dateStyle, timeStyle = dateStyle.resolved(), timeStyle.resolved()
	layout := styleLayout(resolvedLocale, dateStyle, timeStyle)

	return &DateFormatter{
		locale:      resolvedLocale,
		location:    loc,
		timezone:    tzID,
		dateStyle:   dateStyle,
		timeStyle:   timeStyle,
		inputLayout: layout,
		layout:      layout,
		lenient:     true,
	}, nil
}

// Locale returns the resolved locale in underscore form.
func (f *DateFormatter) Locale() string {
	return string(f.locale)
}

// Timezone returns the resolved IANA timezone name.
func (f *DateFormatter) Timezone() string {
	return f.timezone
}

// Location returns the resolved timezone as a *time.Location.
func (f *DateFormatter) Location() *time.Location {
	return f.location
}

// Calendar returns the resolved calendar. Only gregorian is supported.
func (f *DateFormatter) Calendar() Calendar {
	return CalendarGregorian
}

// DateStyle returns the resolved date style.
func (f *DateFormatter) DateStyle() Style {
	return f.dateStyle
}

// TimeStyle returns the resolved time style.
func (f *DateFormatter) TimeStyle() Style {
	return f.timeStyle
}

// Pattern returns the custom output pattern, or "" when formatting in styles.
func (f *DateFormatter) Pattern() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.pattern
}

// SetPattern replaces the output pattern. An empty pattern restores the style
// layout; a rejected pattern leaves the previous one in place.
func (f *DateFormatter) SetPattern(pattern string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if pattern == "" {
		f.pattern = ""
		f.layout = f.inputLayout
		f.setStatus(ZeroError, "")
		return nil
	}

	if err := validatePattern(pattern); err != nil {
		f.setStatus(IllegalArgumentError, err.Error())
		return &Error{Op: "pattern", Code: IllegalArgumentError, Message: err.Error()}
	}

	f.pattern = pattern
	f.layout = patternLayout(pattern)
	f.setStatus(ZeroError, "")
	return nil
}

// Layout returns the Go layout Format currently renders with.
func (f *DateFormatter) Layout() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.layout
}

// Lenient reports whether Parse accepts input beyond the style grammar.
func (f *DateFormatter) Lenient() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.lenient
}

// SetLenient toggles lenient parsing.
func (f *DateFormatter) SetLenient(lenient bool) {
	f.mu.Lock()
	f.lenient = lenient
	f.mu.Unlock()
}

// Parse reads value in the formatter's style grammar. In strict mode the
// whole value must match. Lenient mode also trims surrounding whitespace and
// falls back to format detection.
func (f *DateFormatter) Parse(value string) (time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := monday.ParseInLocation(f.inputLayout, value, f.location, f.locale)
	if err == nil {
		f.setStatus(ZeroError, "")
		return t, nil
	}

	if f.lenient {
		trimmed := strings.TrimSpace(value)
		if lt, lerr := monday.ParseInLocation(f.inputLayout, trimmed, f.location, f.locale); lerr == nil {
			f.setStatus(ZeroError, "")
			return lt, nil
		}
		if lt, lerr := dateparse.ParseIn(trimmed, f.location); lerr == nil {
			f.setStatus(ZeroError, "")
			return lt, nil
		}
	}

	msg := fmt.Sprintf("cannot parse %q as %q", value, f.inputLayout)
	f.setStatus(ParseError, msg)
	return time.Time{}, &Error{Op: "parse", Code: ParseError, Message: msg, Err: err}
}

// Format renders t in the formatter's timezone and current layout.
func (f *DateFormatter) Format(t time.Time) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := monday.Format(t.In(f.location), f.layout, f.locale)
	f.setStatus(ZeroError, "")
	return out
}

// FormatStatus is Format plus the status it left, read under the same lock.
func (f *DateFormatter) FormatStatus(t time.Time) (string, ErrorCode, string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := monday.Format(t.In(f.location), f.layout, f.locale)
	f.setStatus(ZeroError, "")
	return out, f.code, f.statusMessage()
}

// ErrorCode returns the status code of the last operation.
func (f *DateFormatter) ErrorCode() ErrorCode {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.code
}

// ErrorMessage returns the status code name of the last operation, followed
// by its message on failure.
func (f *DateFormatter) ErrorMessage() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.statusMessage()
}

// statusMessage must be called with mu held.
func (f *DateFormatter) statusMessage() string {
	if f.code == ZeroError {
		return f.code.String()
	}
	return f.code.String() + ": " + f.message
}

// setStatus must be called with mu held.
func (f *DateFormatter) setStatus(code ErrorCode, message string) {
	f.code = code
	f.message = message
}

// Ensure DateFormatter implements Formatter
var _ Formatter = (*DateFormatter)(nil)
